package curve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcadialabs/r1cs-nark-acc/field"
)

func TestGroupLaws(t *testing.T) {
	g := Generator()
	id := Identity()

	require.True(t, g.Add(id).IsEqual(g), "identity must be neutral")
	require.True(t, g.Add(g.Negate()).IsEqual(id))

	two := field.FromUint64(2)
	require.True(t, BaseScale(two).IsEqual(g.Add(g)))
}

func TestMSM(t *testing.T) {
	g := Generator()
	bases := []Element{g, g.Add(g), g.Add(g).Add(g)}
	scalars := []field.Element{field.FromUint64(1), field.FromUint64(2), field.FromUint64(3)}

	got := MSM(scalars, bases)
	// 1*g + 2*(2g) + 3*(3g) = 14g
	want := BaseScale(field.FromUint64(14))
	require.True(t, got.IsEqual(want))
}

func TestMSMLengthMismatchPanics(t *testing.T) {
	require.Panics(t, func() {
		MSM([]field.Element{field.One()}, []Element{Generator(), Generator()})
	})
}

func TestBytesRoundTrip(t *testing.T) {
	g := BaseScale(field.FromUint64(7))
	got := SetBytes(g.Bytes())
	require.True(t, got.IsEqual(g))
}

func TestIdentityBytesRoundTrip(t *testing.T) {
	id := Identity()
	got := SetBytes(id.Bytes())
	require.True(t, got.IsEqual(id))
	require.True(t, got.IsIdentity())
}
