package field

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldRing(t *testing.T) {
	a := FromUint64(7)
	b := FromUint64(11)

	require.True(t, a.Add(b).Equal(FromUint64(18)))
	require.True(t, b.Sub(a).Equal(FromUint64(4)))
	require.True(t, a.Mul(b).Equal(FromUint64(77)))
	require.True(t, a.Add(a.Neg()).IsZero())
}

func TestInvert(t *testing.T) {
	a := FromUint64(12345)
	inv := a.Invert()
	require.True(t, a.Mul(inv).Equal(One()))
}

func TestInvertZeroPanics(t *testing.T) {
	require.Panics(t, func() { Zero().Invert() })
}

func TestPowU64(t *testing.T) {
	a := FromUint64(3)
	require.True(t, a.PowU64(4).Equal(FromUint64(81)))
	require.True(t, a.PowU64(0).Equal(One()))
}

func TestBytes32RoundTrip(t *testing.T) {
	a := FromUint64(123456789)
	b, err := FromReprVartime(a.Bytes32())
	require.NoError(t, err)
	require.True(t, a.Equal(b))
}

func TestFromReprVartimeRejectsNonCanonical(t *testing.T) {
	var raw [32]byte
	for i := range raw {
		raw[i] = 0xff
	}
	_, err := FromReprVartime(raw)
	require.Error(t, err)
}

func TestRandomIsCanonicalAndVaries(t *testing.T) {
	a, err := Random(rand.Reader)
	require.NoError(t, err)
	b, err := Random(rand.Reader)
	require.NoError(t, err)
	require.False(t, a.Equal(b), "two independent draws colliding is astronomically unlikely")
}

func TestZeroize(t *testing.T) {
	a := FromUint64(42)
	a.Zeroize()
	require.True(t, a.IsZero())
}
