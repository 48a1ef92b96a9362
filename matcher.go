package avro

// Compatible reports whether a value written under writer can be read
// under reader, per the format's compatibility matrix (spec.md §4.7). It
// compares kinds, names, and type tags — not deep structural equivalence
// of nested records; a writer/reader pair that passes Compatible at one
// level can still fail once Decoder recurses into a mismatched nested
// schema.
func Compatible(writer, reader Schema) bool {
	if writer == nil || reader == nil {
		return false
	}

	if writer.Kind() == KindUnion || reader.Kind() == KindUnion {
		return true
	}

	if writer.Kind() == reader.Kind() {
		switch writer.Kind() {
		case KindArray:
			return sameTypeTag(writer.Element(), reader.Element())
		case KindMap:
			return sameTypeTag(writer.ValueType(), reader.ValueType())
		case KindEnum:
			return writer.Fullname() == reader.Fullname()
		case KindFixed:
			return writer.Fullname() == reader.Fullname() && writer.Size() == reader.Size()
		case KindRecord, KindError:
			return writer.Fullname() == reader.Fullname()
		case KindRequest:
			return true
		default:
			return true // identical primitive kinds always match
		}
	}

	return isPromotion(writer.Kind(), reader.Kind())
}

// isPromotion reports whether reader is numerically promotable from
// writer: int -> long/float/double, long -> float/double, float -> double.
func isPromotion(writer, reader SchemaKind) bool {
	switch writer {
	case KindInt:
		return reader == KindLong || reader == KindFloat || reader == KindDouble
	case KindLong:
		return reader == KindFloat || reader == KindDouble
	case KindFloat:
		return reader == KindDouble
	default:
		return false
	}
}

// sameTypeTag compares two schemas the way the matcher compares nested
// array/map element types: same kind, and for named kinds the same
// fullname, without recursing into deeper structure.
func sameTypeTag(a, b Schema) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindEnum, KindFixed, KindRecord, KindError:
		return a.Fullname() == b.Fullname()
	default:
		return true
	}
}
