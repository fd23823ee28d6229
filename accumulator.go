package plaintext

// Accumulator is the transient state an extraction engine carries
// while building the plaintext for one document. Each extraction run
// allocates its own Accumulator, mutates it exclusively for the
// duration of the traversal, and discards it once the plaintext (and
// any offset map) is finalized. It must never be shared across
// concurrent runs.
type Accumulator struct {
	// PendingWhitespace is true while the plaintext built so far ends
	// in whitespace (or is still empty), meaning the next whitespace
	// encountered must be suppressed rather than emitted.
	PendingWhitespace bool

	// Runes holds the plaintext as Unicode scalar values. Counting in
	// runes rather than encoded bytes keeps offsets addressable for
	// back-mapping under multi-byte encodings.
	Runes []rune
}

// NewAccumulator returns an accumulator ready for a fresh extraction
// run. PendingWhitespace starts true so leading document whitespace is
// dropped.
func NewAccumulator() *Accumulator {
	return &Accumulator{PendingWhitespace: true}
}

// String returns the plaintext accumulated so far.
func (a *Accumulator) String() string {
	return string(a.Runes)
}

// Len returns the number of Unicode scalar values accumulated so far.
func (a *Accumulator) Len() int {
	return len(a.Runes)
}
