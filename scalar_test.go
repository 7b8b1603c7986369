package group

import (
	"testing"

	"git.gammaspectra.live/P2Pool/group/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestScalarSetBytes(t *testing.T) {
	var buf [ScalarSize]byte
	for i := range buf {
		buf[i] = byte(i)
	}

	var s Scalar
	_, err := s.SetBytes(buf[:])
	require.NoError(t, err)
	assert.Equal(t, buf, s.Bytes())
	assert.Equal(t, uint64(0x0706050403020100), s[0])
	assert.Equal(t, uint64(0x1f1e1d1c1b1a1918), s[3])

	_, err = s.SetBytes(buf[:16])
	assert.Error(t, err)
	_, err = s.SetBytes(nil)
	assert.Error(t, err)
}

func TestScalarSetUint(t *testing.T) {
	var s Scalar
	s.SetUint64(13)
	assert.Equal(t, Scalar{13}, s)

	s.SetUint128(uint128.New(1, 2))
	assert.Equal(t, Scalar{1, 2}, s)
	// high limbs are cleared
	s.SetUint64(0)
	assert.Equal(t, ZeroScalar, s)
}

func TestScalarBits(t *testing.T) {
	s := Scalar{0b1101}
	assert.Equal(t, uint64(1), s.Bit(0))
	assert.Equal(t, uint64(0), s.Bit(1))
	assert.Equal(t, uint64(1), s.Bit(2))
	assert.Equal(t, uint64(1), s.Bit(3))
	assert.Equal(t, uint64(0), s.Bit(255))
	assert.Equal(t, 4, s.BitLen())

	assert.Equal(t, 0, ZeroScalar.BitLen())
	assert.Equal(t, 256, (&Scalar{0, 0, 0, 1 << 63}).BitLen())
	assert.Equal(t, 65, (&Scalar{0, 1}).BitLen())
}

func TestScalarCompare(t *testing.T) {
	a := Scalar{1, 2, 3, 4}
	b := a
	assert.Equal(t, uint64(1), a.Equal(&b))
	b[3]++
	assert.Equal(t, uint64(0), a.Equal(&b))

	assert.Equal(t, uint64(1), ZeroScalar.IsZero())
	assert.Equal(t, uint64(0), a.IsZero())
}

func TestScalarString(t *testing.T) {
	s := Scalar{13}
	str := s.String()
	require.Len(t, str, ScalarSize*2)
	assert.Equal(t, "0d", str[:2])

	back, err := ScalarFromString(str)
	require.NoError(t, err)
	assert.Equal(t, s, back)

	_, err = ScalarFromString("0d")
	assert.Error(t, err)
	_, err = ScalarFromString("zz" + str[2:])
	assert.Error(t, err)

	assert.Equal(t, s, MustScalarFromString(str))
	assert.Panics(t, func() {
		MustScalarFromString("not hex")
	})
}

func TestScalarJSON(t *testing.T) {
	s := Scalar{0xdeadbeef, 0, 1, 1 << 63}

	data, err := utils.MarshalJSON(&s)
	require.NoError(t, err)
	assert.Equal(t, `"`+s.String()+`"`, string(data))

	var back Scalar
	require.NoError(t, utils.UnmarshalJSON(data, &back))
	assert.Equal(t, s, back)

	assert.Error(t, back.UnmarshalJSON([]byte(`"0d"`)))
}
