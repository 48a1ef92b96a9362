package avro

// Validate reports whether datum conforms to schema. It performs no
// allocation beyond what recursing into nested schemas requires, since
// the encoder calls it on every single write (spec.md §4.4).
func Validate(schema Schema, datum any) bool {
	return validateDatum(schema, datum)
}

func validateDatum(s Schema, datum any) bool {
	switch s.Kind() {
	case KindNull:
		return datum == nil
	case KindBoolean:
		_, ok := datum.(bool)
		return ok
	case KindInt:
		n, ok := asLong(datum)
		return ok && withinRange(n, int64(-1<<31), int64(1<<31-1))
	case KindLong:
		_, ok := asLong(datum)
		return ok
	case KindFloat:
		return isFloatLike(datum)
	case KindDouble:
		return isFloatLike(datum)
	case KindString:
		_, ok := datum.(string)
		return ok
	case KindBytes:
		if s.LogicalType() == "decimal" {
			return validateDecimalDatum(s, datum)
		}
		return isByteSlice(datum)
	case KindArray:
		items, ok := asSlice(datum)
		if !ok {
			return false
		}
		for _, item := range items {
			if !validateDatum(s.Element(), item) {
				return false
			}
		}
		return true
	case KindMap:
		m, ok := datum.(map[string]any)
		if !ok {
			return false
		}
		for _, v := range m {
			if !validateDatum(s.ValueType(), v) {
				return false
			}
		}
		return true
	case KindUnion:
		return validateUnionDatum(s, datum)
	case KindEnum:
		return validateEnumDatum(s, datum)
	case KindFixed:
		if s.LogicalType() == "decimal" {
			return validateDecimalDatum(s, datum)
		}
		return isByteSliceOfLen(datum, s.Size())
	case KindRecord, KindError, KindRequest:
		return validateRecordDatum(s, datum)
	default:
		return false
	}
}

func validateDecimalDatum(s Schema, datum any) bool {
	precision, scale := decimalAttrs(s)
	switch v := datum.(type) {
	case Decimal:
		u, err := decimalUnscaled(v, scale)
		return err == nil && decimalFitsPrecision(u, precision)
	case int, int32, int64, float32, float64:
		u, err := decimalUnscaled(v, scale)
		return err == nil && decimalFitsPrecision(u, precision)
	default:
		return false
	}
}

func decimalAttrs(s Schema) (precision, scale int) {
	if p, ok := s.ExtraAttrs()["precision"]; ok {
		precision, _ = p.(int)
	}
	if sc, ok := s.ExtraAttrs()["scale"]; ok {
		scale, _ = sc.(int)
	}
	return precision, scale
}

func validateUnionDatum(s Schema, datum any) bool {
	if u, ok := datum.(Union); ok {
		if u.Index < 0 || u.Index >= len(s.Branches()) {
			return false
		}
		return validateDatum(s.BranchAt(u.Index), u.Value)
	}
	for _, branch := range s.Branches() {
		if validateDatum(branch, datum) {
			return true
		}
	}
	return false
}

func validateEnumDatum(s Schema, datum any) bool {
	switch v := datum.(type) {
	case string:
		return s.HasSymbol(v)
	case int:
		return withinRange(v, 0, len(s.Symbols())-1)
	default:
		return false
	}
}

func validateRecordDatum(s Schema, datum any) bool {
	rec, ok := asRecord(datum)
	if !ok {
		return false
	}
	for _, f := range s.Fields() {
		v, present := rec[f.Name()]
		if !present {
			if !f.HasDefault() {
				return false
			}
			continue
		}
		if !validateDatum(f.Type(), v) {
			return false
		}
	}
	return true
}

// --- datum coercion helpers ---

func asLong(datum any) (int64, bool) {
	switch v := datum.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	default:
		return 0, false
	}
}

func isFloatLike(datum any) bool {
	switch datum.(type) {
	case float32, float64, int, int8, int16, int32, int64:
		return true
	default:
		return false
	}
}

func isByteSlice(datum any) bool {
	switch datum.(type) {
	case []byte, Fixed:
		return true
	default:
		return false
	}
}

func isByteSliceOfLen(datum any, size int) bool {
	var b []byte
	switch v := datum.(type) {
	case []byte:
		b = v
	case Fixed:
		b = v
	default:
		return false
	}
	return len(b) == size
}

func asSlice(datum any) ([]any, bool) {
	switch v := datum.(type) {
	case []any:
		return v, true
	default:
		return nil, false
	}
}

func asRecord(datum any) (map[string]any, bool) {
	switch v := datum.(type) {
	case Record:
		return v, true
	case map[string]any:
		return v, true
	default:
		return nil, false
	}
}
