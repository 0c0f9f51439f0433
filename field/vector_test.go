package field

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHadamardProduct(t *testing.T) {
	a := []Element{FromUint64(2), FromUint64(3), FromUint64(4)}
	b := []Element{FromUint64(5), FromUint64(6), FromUint64(7)}
	got := HadamardProduct(a, b)
	want := []Element{FromUint64(10), FromUint64(18), FromUint64(28)}
	for i := range want {
		require.True(t, got[i].Equal(want[i]))
	}
}

func TestHadamardProductLengthMismatchPanics(t *testing.T) {
	require.Panics(t, func() {
		HadamardProduct([]Element{One()}, []Element{One(), One()})
	})
}

func TestConcat(t *testing.T) {
	a := []Element{FromUint64(1)}
	b := []Element{FromUint64(2), FromUint64(3)}
	got := Concat(a, b)
	require.Len(t, got, 3)
	require.True(t, got[0].Equal(FromUint64(1)))
	require.True(t, got[1].Equal(FromUint64(2)))
	require.True(t, got[2].Equal(FromUint64(3)))
}

func TestZeroVector(t *testing.T) {
	v := ZeroVector(4)
	require.Len(t, v, 4)
	for _, e := range v {
		require.True(t, e.IsZero())
	}
}
