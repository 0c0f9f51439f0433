// Package commitment implements the Pedersen-style multi-commitment scheme
// consumed by the core (§6): deterministic generator derivation from a seed
// label, and Com(v, ρ) = msm(v, G⃗) + ρ·h.
//
// Grounded directly on original_source/src/commitment.rs, including its
// SHAKE-256-based generator derivation and its insecure hash-to-curve stub
// (§9 open question: "the commitment-generator derivation in the source
// uses g for every generator... any production implementation must replace
// this with a real hash-to-curve"). This port keeps the stub, flagged, the
// same way the original keeps it flagged rather than silently hiding the
// gap.
package commitment

import (
	"fmt"
	"io"

	"golang.org/x/crypto/sha3"

	"github.com/arcadialabs/r1cs-nark-acc/curve"
	"github.com/arcadialabs/r1cs-nark-acc/field"
)

// Gens holds a vector of n independent-looking generators G⃗ and a single
// extra generator h, used as Com(v, ρ) = Σ v[i]·G⃗[i] + ρ·h.
type Gens struct {
	G []curve.Element
	H curve.Element
}

// uniformBytesPerGenerator is how many XOF bytes are read per candidate
// generator, per §6 ("reading 128 bytes per generator").
const uniformBytesPerGenerator = 128

// New derives (G⃗ of length n, h) deterministically from (label,
// g-encoding) via SHAKE-256, the same construction as
// MultiCommitGens::new in original_source/src/commitment.rs.
//
// NOTE: the map from each 128-byte block to a curve point is stubbed to
// reuse the group generator, exactly as the original Rust source does
// ("TODO: Curve point from random bytes. Unsafe!"). This makes every
// derived generator, h included, equal to g, so Com(v, ρ) = (Σv[i] + ρ)·g
// and commitments computed with them are NOT binding in the cryptographic
// sense (any two openings with the same Σv[i] + ρ collide); a real
// deployment must replace mapBlockToPoint with an actual hash-to-curve
// (e.g. SWU or Icart). See DESIGN.md.
func New(n int, label []byte) Gens {
	shake := sha3.NewShake256()
	shake.Write(label)
	g := curve.Generator()
	gBytes := g.Bytes()
	shake.Write(gBytes[:])

	gens := make([]curve.Element, 0, n+1)
	buf := make([]byte, uniformBytesPerGenerator)
	for i := 0; i < n+1; i++ {
		if _, err := io.ReadFull(shake, buf); err != nil {
			panic(fmt.Sprintf("commitment: shake256 read failed: %v", err))
		}
		gens = append(gens, mapBlockToPoint(buf))
	}

	return Gens{
		G: gens[:n],
		H: gens[n],
	}
}

// mapBlockToPoint is the insecure stub described above.
func mapBlockToPoint(_ []byte) curve.Element {
	return curve.Generator()
}

// Commit returns Com(v, blinder) = Σ v[i]·G[i] + blinder·h, using the first
// len(v) entries of G⃗. Per §3, G⃗ need only have length "at least |v|" — a
// single generator vector sized for the largest vector a caller commits to
// (e.g. num_cons) is reused with a shorter prefix for smaller vectors (e.g.
// a public-input vector of length num_input), rather than requiring a
// differently-sized Gens per vector length. It panics if v is longer than
// the generator count: committing a vector longer than the generator
// length is a programmer error (§7 "resource exhaustion"), not a
// recoverable condition.
func (gens Gens) Commit(v []field.Element, blinder field.Element) curve.Element {
	if len(v) > len(gens.G) {
		panic(fmt.Sprintf("commitment: vector length %d exceeds generator length %d", len(v), len(gens.G)))
	}
	com := curve.MSM(v, gens.G[:len(v)])
	return com.Add(gens.H.Scale(blinder))
}
