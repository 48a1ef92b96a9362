package avro

// Encoder is the schema-directed recursive writer (spec.md §4.5). It is
// stateless between calls beyond the sticky first error it latches,
// mirroring the teacher's Writer: once Write returns a non-nil error,
// every later call is a no-op that returns the same error. An Encoder
// holds only a reference to its Stream and never owns it.
type Encoder struct {
	stream Stream
	schema Schema
	codec  LongCodec
	err    error
}

// NewEncoder creates an Encoder bound to stream, writing data shaped by
// writerSchema. The default LongCodec (native int64 zig-zag) is used; see
// NewEncoderWithLongCodec to select an alternate backend.
func NewEncoder(stream Stream, writerSchema Schema) (*Encoder, error) {
	return NewEncoderWithLongCodec(stream, writerSchema, nativeLongCodec{})
}

// NewEncoderWithLongCodec is NewEncoder with an explicit LongCodec. The
// backend is fixed for the Encoder's entire lifetime; it is never chosen
// per-operation (spec.md §9).
func NewEncoderWithLongCodec(stream Stream, writerSchema Schema, codec LongCodec) (*Encoder, error) {
	if stream == nil {
		return nil, ErrNilStream
	}
	if writerSchema == nil {
		return nil, ErrNilSchema
	}
	if err := checkPlatform(); err != nil {
		return nil, err
	}
	return &Encoder{stream: stream, schema: writerSchema, codec: codec}, nil
}

// Err returns the first error this Encoder latched, if any.
func (e *Encoder) Err() error {
	return e.err
}

// Write validates datum against the writer's schema and, if it conforms,
// serializes it to the stream. A datum that fails validation never
// reaches the stream. Validation does not catch everything: a string that
// is not valid UTF-8, or an error from the stream, fails Write after part
// of the datum may already have been written.
func (e *Encoder) Write(datum any) error {
	if e.err != nil {
		return e.err
	}
	if !Validate(e.schema, datum) {
		e.err = ErrDatumTypeMismatch
		return e.err
	}
	e.err = e.writeValue(e.schema, datum)
	return e.err
}

func (e *Encoder) writeValue(s Schema, datum any) error {
	switch s.Kind() {
	case KindNull:
		return writeNull(e.stream)
	case KindBoolean:
		return writeBoolean(e.stream, datum.(bool))
	case KindInt:
		n, _ := asLong(datum)
		return writeInt(e.stream, e.codec, int32(n))
	case KindLong:
		n, _ := asLong(datum)
		return writeLong(e.stream, e.codec, n)
	case KindFloat:
		return writeFloat(e.stream, float32(toFloat64(datum)))
	case KindDouble:
		return writeDouble(e.stream, toFloat64(datum))
	case KindString:
		return writeString(e.stream, e.codec, datum.(string))
	case KindBytes:
		if s.LogicalType() == "decimal" {
			return e.writeDecimal(s, datum, false)
		}
		return writeBytes(e.stream, e.codec, asBytes(datum))
	case KindFixed:
		if s.LogicalType() == "decimal" {
			return e.writeDecimal(s, datum, true)
		}
		return e.stream.Write(asBytes(datum))
	case KindArray:
		return e.writeArray(s, datum)
	case KindMap:
		return e.writeMap(s, datum)
	case KindUnion:
		return e.writeUnion(s, datum)
	case KindEnum:
		return e.writeEnum(s, datum)
	case KindRecord, KindError, KindRequest:
		return e.writeRecord(s, datum)
	default:
		return ErrUnknownSchemaKind
	}
}

func (e *Encoder) writeDecimal(s Schema, datum any, fixed bool) error {
	_, scale := decimalAttrs(s)
	unscaled, err := decimalUnscaled(datum, scale)
	if err != nil {
		return err
	}
	b := encodeDecimalBytes(unscaled)
	if !fixed {
		return writeBytes(e.stream, e.codec, b)
	}
	return e.stream.Write(signExtendTo(b, s.Size()))
}

// signExtendTo pads b on the left to exactly size bytes, using the sign
// byte implied by b's most significant bit, for a fixed-size decimal
// field (which has no length prefix to make minimality meaningful).
func signExtendTo(b []byte, size int) []byte {
	if len(b) >= size {
		return b[len(b)-size:]
	}
	pad := byte(0x00)
	if len(b) > 0 && b[0]&0x80 != 0 {
		pad = 0xFF
	}
	out := make([]byte, size)
	for i := 0; i < size-len(b); i++ {
		out[i] = pad
	}
	copy(out[size-len(b):], b)
	return out
}

func (e *Encoder) writeArray(s Schema, datum any) error {
	items, _ := asSlice(datum)
	return writeBlock(e.stream, e.codec, len(items), func(i int) error {
		return e.writeValue(s.Element(), items[i])
	})
}

func (e *Encoder) writeMap(s Schema, datum any) error {
	m, _ := datum.(map[string]any)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return writeBlock(e.stream, e.codec, len(keys), func(i int) error {
		if err := writeString(e.stream, e.codec, keys[i]); err != nil {
			return err
		}
		return e.writeValue(s.ValueType(), m[keys[i]])
	})
}

// writeUnion scans branches in declared order and emits the first one
// that accepts datum, per the write-time union rule; a Union value pins a
// specific branch instead of triggering a fresh scan, used when a datum
// is ambiguously acceptable by more than one branch and the caller wants
// control over which one is chosen.
func (e *Encoder) writeUnion(s Schema, datum any) error {
	if u, ok := datum.(Union); ok {
		if err := writeLong(e.stream, e.codec, int64(u.Index)); err != nil {
			return err
		}
		return e.writeValue(s.BranchAt(u.Index), u.Value)
	}
	for i, branch := range s.Branches() {
		if validateDatum(branch, datum) {
			if err := writeLong(e.stream, e.codec, int64(i)); err != nil {
				return err
			}
			return e.writeValue(branch, datum)
		}
	}
	return ErrNoMatchingBranch
}

func (e *Encoder) writeEnum(s Schema, datum any) error {
	switch v := datum.(type) {
	case string:
		idx := s.SymbolIndex(v)
		if idx < 0 {
			return ErrUnknownEnumSymbol
		}
		return writeInt(e.stream, e.codec, int32(idx))
	case int:
		return writeInt(e.stream, e.codec, int32(v))
	default:
		return ErrDatumTypeMismatch
	}
}

func (e *Encoder) writeRecord(s Schema, datum any) error {
	rec, _ := asRecord(datum)
	for _, f := range s.Fields() {
		v, present := rec[f.Name()]
		if !present {
			if !f.HasDefault() {
				return ErrMissingDefault
			}
			materialized, err := materializeDefault(f)
			if err != nil {
				return err
			}
			v = materialized
		}
		if err := e.writeValue(f.Type(), v); err != nil {
			return err
		}
	}
	return nil
}

func asBytes(datum any) []byte {
	switch v := datum.(type) {
	case []byte:
		return v
	case Fixed:
		return v
	default:
		return nil
	}
}
