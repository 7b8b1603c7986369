package curve25519

import (
	"bytes"
	"errors"

	fasthex "github.com/tmthrgd/go-hex"
)

const PublicKeySize = 32

var ZeroPublicKeyBytes = PublicKeyBytes{}

// PublicKeyBytes Canonical compressed encoding of an Edwards25519 point, used
// as cache key and test-vector form.
type PublicKeyBytes [PublicKeySize]byte

func (k *PublicKeyBytes) Slice() []byte {
	return (*k)[:]
}

func (k *PublicKeyBytes) String() string {
	return fasthex.EncodeToString(k.Slice())
}

func (k *PublicKeyBytes) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || len(b) == 2 {
		return nil
	}

	if len(b) != PublicKeySize*2+2 {
		return errors.New("wrong key size")
	}

	if _, err := fasthex.Decode(k[:], b[1:len(b)-1]); err != nil {
		return err
	} else {
		return nil
	}
}

func (k PublicKeyBytes) MarshalJSON() ([]byte, error) {
	var buf [PublicKeySize*2 + 2]byte
	buf[0] = '"'
	buf[PublicKeySize*2+1] = '"'
	fasthex.Encode(buf[1:], k[:])
	return buf[:], nil
}

func EncodePoint(p *Point) (out PublicKeyBytes) {
	copy(out[:], p.Bytes())
	return out
}

// DecodePoint Decompress a canonically-encoded Edwards25519 point into r.
//
// Returns nil on malformed input instead of failing: points encoded with an
// unreduced field element, or negative where the negative is equivalent
// (0 == -0), are rejected so each point keeps a single encoding.
func DecodePoint(r *Point, buf PublicKeyBytes) *Point {
	if r == nil {
		return nil
	}

	if _, err := r.SetBytes(buf[:]); err != nil {
		return nil
	}

	if !bytes.Equal(r.Bytes(), buf[:]) {
		return nil
	}
	return r
}
