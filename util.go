package avro

import "golang.org/x/exp/constraints"

// withinRange reports whether v falls within [lo, hi] inclusive. It backs
// the validator's int32 range check and its enum-index check, mirroring the
// teacher's generic
// Roundup helper: one small generic function over constraints.Integer
// instead of a type-specific copy for each integer width.
func withinRange[T constraints.Integer](v, lo, hi T) bool {
	return v >= lo && v <= hi
}
