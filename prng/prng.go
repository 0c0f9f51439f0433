// Package prng implements the CSPRNG consumed by the core (§6): seed from
// OS randomness, absorb the seed as a scalar, and expose a squeeze(n)
// operation returning n field elements.
//
// Grounded on original_source/src/prng.rs, which wraps
// poseidon_transcript::transcript::PoseidonTranscript the same way
// src/transcript.rs does, seeded with `F::rand(&mut OsRng)`. This port
// reuses the transcript package's duplex construction under a distinct
// domain label so that a PRNG instance and a Fiat-Shamir transcript never
// collide even if both happened to absorb the same bytes.
package prng

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/arcadialabs/r1cs-nark-acc/field"
	"github.com/arcadialabs/r1cs-nark-acc/transcript"
)

const domainLabel = "r1cs-nark-acc/prng/v1"

// PRNG is a squeeze-only scalar source seeded from crypto/rand at
// construction. It is unrelated to any proof transcript: nothing it
// produces is ever fed into a verifier's Fiat-Shamir challenges.
type PRNG struct {
	t *transcript.Transcript
}

// New seeds a fresh PRNG from the OS CSPRNG, matching
// `F::rand(&mut OsRng)` in original_source/src/prng.rs.
func New() (*PRNG, error) {
	return NewFromReader(rand.Reader)
}

// NewFromReader seeds a fresh PRNG from an arbitrary entropy source. New is
// NewFromReader(rand.Reader); this generalization exists so that tests can
// construct two PRNGs from an identical fixed seed and check the bit-exact
// determinism §8 invariant 6 demands ("given identical inputs and identical
// PRNG seeds, prover outputs are bit-identical") without the package
// exposing raw transcript state.
func NewFromReader(r io.Reader) (*PRNG, error) {
	var seedBytes [32]byte
	if _, err := io.ReadFull(r, seedBytes[:]); err != nil {
		return nil, fmt.Errorf("prng: reading seed randomness: %w", err)
	}

	seed, err := field.FromReprVartime(seedBytes)
	if err != nil {
		// A uniformly random 32 bytes only rarely fails canonical
		// decoding (the field is close to 2^256); retry with a fresh
		// draw rather than surfacing a spurious error to the caller.
		return NewFromReader(r)
	}

	t := transcript.New([]byte(domainLabel))
	t.AppendScalar(seed)
	return &PRNG{t: t}, nil
}

// Squeeze draws n field elements from the PRNG.
func (p *PRNG) Squeeze(n int) []field.Element {
	return p.t.Squeeze(n)
}
