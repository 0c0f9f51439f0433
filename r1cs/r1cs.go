// Package r1cs implements the R1CS instance type consumed by the NARK and
// accumulator provers (§3 "R1CS instance", §4.1): sparse constraint
// matrices, matrix-vector product, satisfiability check, and the synthetic
// fixture generator used by the test scenarios (S1-S3, §8).
//
// Grounded on original_source/src/predicates/r1cs/r1cs.rs. The full
// assignment vector is fixed to z = x ∥ w (public input then witness), the
// order spec.md §9 mandates project-wide; the original source already uses
// this order in both produce_synthetic_r1cs and is_sat, so no reordering of
// that algorithm was needed, only the port itself.
package r1cs

import (
	"github.com/arcadialabs/r1cs-nark-acc/field"
)

// entry is one sparse matrix triple (row, col, value).
type entry struct {
	row, col int
	val      field.Element
}

// Matrix is a sparse num_cons x (num_input+num_vars) constraint matrix,
// stored as a list of nonzero (row, col, value) triples.
type Matrix struct {
	entries []entry
}

// AddEntry appends a single nonzero triple. Used by callers building a
// matrix incrementally (the synthetic fixture generator, external circuit
// compilers).
func (m *Matrix) AddEntry(row, col int, val field.Element) {
	m.entries = append(m.entries, entry{row: row, col: col, val: val})
}

// MulVector returns M·z for a matrix with numRows rows, mirroring
// Matrix::mul_vector in original_source/src/predicates/r1cs/r1cs.rs.
func (m Matrix) MulVector(numRows int, z []field.Element) []field.Element {
	result := field.ZeroVector(numRows)
	for _, e := range m.entries {
		result[e.row] = result[e.row].Add(e.val.Mul(z[e.col]))
	}
	return result
}

// R1CS is an immutable constraint-system instance (§3: "R1CS instances are
// immutable after construction").
type R1CS struct {
	A, B, C                    Matrix
	NumCons, NumVars, NumInput int
}

// New constructs an R1CS instance from its matrices and dimensions.
func New(a, b, c Matrix, numCons, numVars, numInput int) R1CS {
	return R1CS{A: a, B: b, C: c, NumCons: numCons, NumVars: numVars, NumInput: numInput}
}

// IsSat reports whether (A·z) ∘ (B·z) = C·z for z = x ∥ w.
func (r R1CS) IsSat(w, x []field.Element) bool {
	z := field.Concat(x, w)
	az := r.A.MulVector(r.NumCons, z)
	bz := r.B.MulVector(r.NumCons, z)
	cz := r.C.MulVector(r.NumCons, z)
	abz := field.HadamardProduct(az, bz)
	for i := range abz {
		if !abz[i].Equal(cz[i]) {
			return false
		}
	}
	return true
}

// ProduceSyntheticR1CS builds a satisfiable fixture of the given shape,
// identical in construction to
// R1CS::produce_synthetic_r1cs in the original source: each constraint i
// enables a single A and B column and solves the corresponding C entry so
// the instance is satisfied by the generated witness/public input. Used by
// the S1-S3 test scenarios (§8).
func ProduceSyntheticR1CS(numCons, numVars, numInput int) (R1CS, []field.Element, []field.Element) {
	publicInput := make([]field.Element, numInput)
	for i := 0; i < numInput; i++ {
		publicInput[i] = field.FromUint64(uint64(i + 1))
	}

	witness := make([]field.Element, numVars)
	for i := 0; i < numVars; i++ {
		witness[i] = field.FromUint64(uint64(i + 1))
	}

	z := field.Concat(publicInput, witness)

	var a, b, c Matrix
	for i := 0; i < numCons; i++ {
		aCol := i % numVars
		bCol := (i + 1) % numVars
		cCol := (i + 2) % numVars

		a.AddEntry(i, aCol, field.One())
		b.AddEntry(i, bCol, field.One())
		cVal := z[aCol].Mul(z[bCol]).Mul(z[cCol].Invert())
		c.AddEntry(i, cCol, cVal)
	}

	return New(a, b, c, numCons, numVars, numInput), witness, publicInput
}
