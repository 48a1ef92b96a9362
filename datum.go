package avro

// Union is the datum form of a sum-type value: exactly one branch of a
// union schema is selected, and the wire carries both the branch's index
// and its value (spec.md §3's "(branch_index, value) pair" invariant).
// Encoder.Write accepts either a bare value (the first accepting branch is
// chosen, per the union write rule) or a Union value (to pin a specific
// branch regardless of write-time ambiguity); Decoder.Read always returns
// a Union for a union-kinded writer schema.
type Union struct {
	Index int
	Value any
}

// Record is the datum form of a record/error/request value: a mapping
// from field name to the field's datum. Maps have no ordering guarantee
// beyond per-block insertion (spec.md §3), so Record is a plain map
// rather than an ordered structure; wire order is always the writer
// schema's declared field order, independent of map iteration order.
type Record map[string]any

// Fixed is the datum form of a fixed-size byte sequence.
type Fixed []byte
