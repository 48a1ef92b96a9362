package avro

import "github.com/puzpuzpuz/xsync/v4"

// defaultCache memoizes a field's materialized default datum, keyed by the
// field reference itself. Schemas (and their fields) are immutable and
// outlive any Encoder/Decoder (spec.md §3), so materializing the same
// field's default twice always produces the same result — exactly the
// shape of the teacher's reflect.Type -> int size cache in fixed.go,
// reused here for Field -> datum instead of Type -> size.
var defaultCache = xsync.NewMap[Field, any]()

// materializeDefault produces a datum from a field's declared default,
// mirroring the schema recursion: arrays and maps recurse per element,
// records recurse per field (falling back to that nested field's own
// default when the declaration omits it), and a union's default always
// targets its first branch (spec.md §4.6's "Default-value reader").
func materializeDefault(f Field) (any, error) {
	if cached, ok := defaultCache.Load(f); ok {
		return cached, nil
	}
	v, err := materializeAs(f.Type(), f.DefaultValue())
	if err != nil {
		return nil, err
	}
	defaultCache.Store(f, v)
	return v, nil
}

func materializeAs(s Schema, raw any) (any, error) {
	switch s.Kind() {
	case KindNull:
		return nil, nil
	case KindBoolean, KindString:
		return raw, nil
	case KindInt:
		n, _ := asLong(raw)
		return int32(n), nil
	case KindLong:
		n, _ := asLong(raw)
		return n, nil
	case KindFloat:
		return float32(toFloat64(raw)), nil
	case KindDouble:
		return toFloat64(raw), nil
	case KindBytes, KindFixed:
		if s.LogicalType() == "decimal" {
			return raw, nil
		}
		switch v := raw.(type) {
		case []byte:
			return v, nil
		case string:
			return []byte(v), nil
		default:
			return nil, ErrDatumTypeMismatch
		}
	case KindEnum:
		sym, ok := raw.(string)
		if !ok {
			return nil, ErrDatumTypeMismatch
		}
		return sym, nil
	case KindArray:
		items, ok := raw.([]any)
		if !ok {
			return nil, ErrDatumTypeMismatch
		}
		out := make([]any, len(items))
		for i, item := range items {
			v, err := materializeAs(s.Element(), item)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case KindMap:
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, ErrDatumTypeMismatch
		}
		out := make(map[string]any, len(m))
		for k, item := range m {
			v, err := materializeAs(s.ValueType(), item)
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	case KindUnion:
		if len(s.Branches()) == 0 {
			return nil, ErrDatumTypeMismatch
		}
		v, err := materializeAs(s.BranchAt(0), raw)
		if err != nil {
			return nil, err
		}
		return Union{Index: 0, Value: v}, nil
	case KindRecord, KindError, KindRequest:
		m, ok := asRecord(raw)
		if !ok {
			return nil, ErrDatumTypeMismatch
		}
		out := make(Record, len(s.Fields()))
		for _, field := range s.Fields() {
			if v, present := m[field.Name()]; present {
				materialized, err := materializeAs(field.Type(), v)
				if err != nil {
					return nil, err
				}
				out[field.Name()] = materialized
				continue
			}
			if !field.HasDefault() {
				return nil, ErrMissingDefault
			}
			materialized, err := materializeDefault(field)
			if err != nil {
				return nil, err
			}
			out[field.Name()] = materialized
		}
		return out, nil
	default:
		return nil, ErrUnknownSchemaKind
	}
}

func toFloat64(raw any) float64 {
	switch v := raw.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}
