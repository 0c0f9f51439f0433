// Package transcript implements the duplex-sponge transcript contract
// consumed by the core (§6): absorb group points, squeeze scalar
// challenges, and reset to a fresh domain-separated state.
//
// The design spec treats the actual Poseidon sponge as an external
// collaborator, specified only through this narrow contract (§1 "Out of
// scope... the Poseidon sponge and its domain-separated transcript
// wrapper... specified only through the narrow contracts the core
// consumes"). original_source/src/transcript.rs and src/prng.rs wrap
// poseidon_transcript::transcript::PoseidonTranscript, a crate outside this
// port's corpus. In its place this package builds an equivalent duplex
// transcript out of golang.org/x/crypto/sha3's SHAKE-256 XOF — the same
// extendable-output primitive original_source/src/commitment.rs already
// uses for generator derivation — absorbing encoded points/scalars into a
// running buffer and squeezing challenges by hashing
// (label ∥ "squeeze" ∥ buffer ∥ counter), retrying the counter on a
// non-canonical field encoding exactly as field.Random does. Every squeezed
// scalar is folded back into the buffer before the next is drawn, so two
// consecutive Squeeze calls with no intervening Append still diverge, as a
// true duplex sponge's internal state would demand.
package transcript

import (
	"encoding/binary"
	"io"

	"golang.org/x/crypto/sha3"

	"github.com/arcadialabs/r1cs-nark-acc/curve"
	"github.com/arcadialabs/r1cs-nark-acc/field"
)

// Transcript is a linear resource: it must not be cloned mid-proof (§9,
// "Transcript as linear resource"). The one sanctioned Reset is an explicit
// domain-separation action, not an implicit clone.
type Transcript struct {
	label []byte
	buf   []byte
}

// New returns a transcript freshly initialized with the given
// domain-separation label. All provers and their matching verifiers must
// use the same label.
func New(label []byte) *Transcript {
	return &Transcript{label: append([]byte(nil), label...)}
}

// AppendPoint absorbs the affine coordinate pair of p.
func (t *Transcript) AppendPoint(p curve.Element) {
	b := p.Bytes()
	t.buf = append(t.buf, b[:]...)
}

// AppendPoints absorbs each point of ps in turn.
func (t *Transcript) AppendPoints(ps []curve.Element) {
	for _, p := range ps {
		t.AppendPoint(p)
	}
}

// AppendScalar absorbs a single field element directly, without going
// through the point encoding. A real Poseidon sponge absorbs field elements
// natively, and append_point is itself just absorbing a pair of them
// (affine X, Y); this method exposes that lower layer for the one caller
// that has a bare scalar rather than a point (prng.New's seed absorption).
func (t *Transcript) AppendScalar(s field.Element) {
	b := s.Bytes32()
	t.buf = append(t.buf, b[:]...)
}

// Squeeze draws k scalar challenges from the transcript, in order.
func (t *Transcript) Squeeze(k int) []field.Element {
	out := make([]field.Element, k)
	for i := 0; i < k; i++ {
		e := t.squeezeOne()
		out[i] = e
		eb := e.Bytes32()
		t.buf = append(t.buf, eb[:]...)
	}
	return out
}

func (t *Transcript) squeezeOne() field.Element {
	for nonce := uint64(0); ; nonce++ {
		xof := sha3.NewShake256()
		xof.Write(t.label)
		xof.Write([]byte("squeeze"))
		xof.Write(t.buf)
		var nb [8]byte
		binary.LittleEndian.PutUint64(nb[:], nonce)
		xof.Write(nb[:])

		var raw [32]byte
		if _, err := io.ReadFull(xof, raw[:]); err != nil {
			panic("transcript: xof read failed")
		}
		if e, err := field.FromReprVartime(raw); err == nil {
			return e
		}
	}
}

// Reset reinitializes the transcript to the post-domain-separator state,
// discarding every absorbed point/scalar since New. Used only by the R1CS
// accumulator's per-proof NARK-challenge replay (§4.7 step 1), where each
// accumulated NARK proof was independently Fiat–Shamir'd and so must be
// re-derived from a clean slate rather than continuing the running state.
func (t *Transcript) Reset() {
	t.buf = t.buf[:0]
}
