package group

import (
	"encoding/binary"
	"errors"
	"math/bits"

	fasthex "github.com/tmthrgd/go-hex"
	"lukechampine.com/uint128"
)

const (
	// ScalarSize Size of the byte representation of a Scalar
	ScalarSize = 32
	// ScalarBits Fixed bit width of a Scalar
	ScalarBits = 256
)

// Scalar A fixed-width 256-bit unsigned integer, little-endian limb order.
//
// Callers are expected to keep values reduced modulo their group order; the
// multiplication engine only reads bits and never reduces.
type Scalar [4]uint64

var ZeroScalar Scalar

func (s *Scalar) SetUint64(v uint64) *Scalar {
	*s = Scalar{v}
	return s
}

func (s *Scalar) SetUint128(v uint128.Uint128) *Scalar {
	*s = Scalar{v.Lo, v.Hi}
	return s
}

// SetBytes Interprets buf as a ScalarSize-byte little-endian integer.
func (s *Scalar) SetBytes(buf []byte) (*Scalar, error) {
	if len(buf) != ScalarSize {
		return nil, errors.New("wrong scalar size")
	}
	for i := range s {
		s[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}
	return s, nil
}

func (s *Scalar) Bytes() (buf [ScalarSize]byte) {
	for i := range s {
		binary.LittleEndian.PutUint64(buf[i*8:], s[i])
	}
	return buf
}

// Bit returns bit i of s. i must be below ScalarBits.
func (s *Scalar) Bit(i uint) uint64 {
	return (s[i/64] >> (i % 64)) & 1
}

// BitLen returns the minimal number of bits needed to represent s.
// Variable time; only use with public scalars.
func (s *Scalar) BitLen() int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] != 0 {
			return i*64 + bits.Len64(s[i])
		}
	}
	return 0
}

// IsZero returns 1 when s is zero and 0 otherwise, in constant time.
func (s *Scalar) IsZero() uint64 {
	z := s[0] | s[1] | s[2] | s[3]
	return 1 ^ ((z | -z) >> 63)
}

// Equal returns 1 when s == o and 0 otherwise, in constant time.
func (s *Scalar) Equal(o *Scalar) uint64 {
	z := (s[0] ^ o[0]) | (s[1] ^ o[1]) | (s[2] ^ o[2]) | (s[3] ^ o[3])
	return 1 ^ ((z | -z) >> 63)
}

func (s *Scalar) String() string {
	buf := s.Bytes()
	return fasthex.EncodeToString(buf[:])
}

func ScalarFromString(str string) (s Scalar, err error) {
	buf, err := fasthex.DecodeString(str)
	if err != nil {
		return s, err
	}
	if len(buf) != ScalarSize {
		return s, errors.New("wrong scalar size")
	}
	_, err = s.SetBytes(buf)
	return s, err
}

func MustScalarFromString(str string) Scalar {
	if s, err := ScalarFromString(str); err != nil {
		panic(err)
	} else {
		return s
	}
}

func (s *Scalar) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || len(b) == 2 {
		return nil
	}

	if len(b) != ScalarSize*2+2 {
		return errors.New("wrong scalar size")
	}

	var buf [ScalarSize]byte
	if _, err := fasthex.Decode(buf[:], b[1:len(b)-1]); err != nil {
		return err
	}
	_, err := s.SetBytes(buf[:])
	return err
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	var buf [ScalarSize*2 + 2]byte
	buf[0] = '"'
	buf[ScalarSize*2+1] = '"'
	raw := s.Bytes()
	fasthex.Encode(buf[1:], raw[:])
	return buf[:], nil
}
