package curve

import (
	"testing"

	circl "github.com/cloudflare/circl/group"
	"github.com/stretchr/testify/require"
)

// TestRistrettoGroupLaws exercises the alternate Ristretto255 instantiation
// to demonstrate that the module's §6 group contract is not hard-wired to
// secp256k1 (§9: "implementers choose concrete instantiations... via a
// static parameter").
func TestRistrettoGroupLaws(t *testing.T) {
	g := RistrettoGenerator()
	id := RistrettoIdentity()

	require.True(t, g.Add(id).IsEqual(g), "identity must be neutral")

	two := circl.Ristretto255.NewScalar()
	two.SetUint64(2)
	doubled := g.Scale(two)
	require.True(t, doubled.IsEqual(g.Add(g)), "scaling by 2 must equal self-addition")

	r := RistrettoRandom()
	require.False(t, r.IsEqual(id), "a random element should not be the identity with overwhelming probability")
}
