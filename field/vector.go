package field

// HadamardProduct returns the componentwise product of a and b. It panics if
// the lengths differ — a shape mismatch is a programmer error, not a
// recoverable condition (§7). Mirrors original_source/src/utils.rs'
// hadamard_prod.
func HadamardProduct(a, b []Element) []Element {
	if len(a) != len(b) {
		panic("field: hadamard product length mismatch")
	}
	out := make([]Element, len(a))
	for i := range a {
		out[i] = a[i].Mul(b[i])
	}
	return out
}

// AddVectors returns the componentwise sum of a and b.
func AddVectors(a, b []Element) []Element {
	if len(a) != len(b) {
		panic("field: vector addition length mismatch")
	}
	out := make([]Element, len(a))
	for i := range a {
		out[i] = a[i].Add(b[i])
	}
	return out
}

// ScaleVector returns s*a componentwise.
func ScaleVector(a []Element, s Element) []Element {
	out := make([]Element, len(a))
	for i := range a {
		out[i] = a[i].Mul(s)
	}
	return out
}

// ZeroVector returns a vector of n zero elements.
func ZeroVector(n int) []Element {
	out := make([]Element, n)
	for i := range out {
		out[i] = Zero()
	}
	return out
}

// Concat returns a ∥ b as a fresh slice.
func Concat(a, b []Element) []Element {
	out := make([]Element, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
