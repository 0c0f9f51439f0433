package r1cs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcadialabs/r1cs-nark-acc/field"
)

// TestSyntheticFixtureIsSatisfied covers §8 invariant 1: every R1CS
// produced by the synthetic fixture satisfies is_sat(w, x).
func TestSyntheticFixtureIsSatisfied(t *testing.T) {
	r, w, x := ProduceSyntheticR1CS(20, 10, 5) // S1
	require.True(t, r.IsSat(w, x))
}

func TestSyntheticFixtureLargeShape(t *testing.T) {
	r, w, x := ProduceSyntheticR1CS(8000, 8000, 10) // S3 shape
	require.True(t, r.IsSat(w, x))
}

func TestIsSatRejectsTamperedWitness(t *testing.T) {
	r, w, x := ProduceSyntheticR1CS(12, 6, 3)
	require.True(t, r.IsSat(w, x))

	tampered := append([]field.Element(nil), w...)
	tampered[0] = tampered[0].Add(field.One())
	require.False(t, r.IsSat(tampered, x))
}

func TestMulVectorOrderIndependent(t *testing.T) {
	var m1, m2 Matrix
	m1.AddEntry(0, 0, field.FromUint64(2))
	m1.AddEntry(0, 1, field.FromUint64(3))
	m1.AddEntry(1, 1, field.FromUint64(5))

	// Same triples, reversed insertion order.
	m2.AddEntry(1, 1, field.FromUint64(5))
	m2.AddEntry(0, 1, field.FromUint64(3))
	m2.AddEntry(0, 0, field.FromUint64(2))

	z := []field.Element{field.FromUint64(7), field.FromUint64(11)}
	r1 := m1.MulVector(2, z)
	r2 := m2.MulVector(2, z)
	for i := range r1 {
		require.True(t, r1[i].Equal(r2[i]))
	}
}

func TestMulVectorDuplicateEntriesSum(t *testing.T) {
	var m Matrix
	m.AddEntry(0, 0, field.FromUint64(2))
	m.AddEntry(0, 0, field.FromUint64(3))

	z := []field.Element{field.FromUint64(10)}
	got := m.MulVector(1, z)
	require.True(t, got[0].Equal(field.FromUint64(50)))
}
