package curve25519

import (
	"git.gammaspectra.live/P2Pool/group"
	"git.gammaspectra.live/P2Pool/group/utils"
	"git.gammaspectra.live/P2Pool/sha3"
)

// DeriveScalar Maps arbitrary data to a uniformly distributed scalar by
// hashing with Keccak-512 and reducing modulo the basepoint order.
func DeriveScalar(data []byte) *Scalar {
	h := sha3.NewLegacyKeccak512()
	_, _ = h.Write(data)
	var buf [64]byte
	s, _ := new(Scalar).SetUniformBytes(utils.SumNoEscape(h, buf[:0]))
	return s
}

// ScalarToGroup widens a curve scalar to the engine's bit-addressable form.
func ScalarToGroup(s *Scalar) (out group.Scalar) {
	_, _ = out.SetBytes(s.Bytes())
	return out
}

// ScalarFromGroup narrows k back to a curve scalar, failing when k is not
// canonical modulo the basepoint order.
func ScalarFromGroup(k *group.Scalar) (*Scalar, error) {
	buf := k.Bytes()
	return new(Scalar).SetCanonicalBytes(buf[:])
}
