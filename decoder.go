package avro

// Decoder is the schema-directed recursive reader (spec.md §4.6). Like
// Encoder it latches its first error and turns every later call into a
// no-op, the same sticky-error discipline the teacher's Reader used.
type Decoder struct {
	stream Stream
	writer Schema
	reader Schema
	codec  LongCodec
	err    error
}

// NewDecoder creates a Decoder bound to stream, interpreting bytes shaped
// by writerSchema and materializing them according to readerSchema. A nil
// readerSchema defaults to writerSchema, the no-resolution case.
func NewDecoder(stream Stream, writerSchema, readerSchema Schema) (*Decoder, error) {
	return NewDecoderWithLongCodec(stream, writerSchema, readerSchema, nativeLongCodec{})
}

// NewDecoderWithLongCodec is NewDecoder with an explicit LongCodec.
func NewDecoderWithLongCodec(stream Stream, writerSchema, readerSchema Schema, codec LongCodec) (*Decoder, error) {
	if stream == nil {
		return nil, ErrNilStream
	}
	if writerSchema == nil {
		return nil, ErrNilSchema
	}
	if err := checkPlatform(); err != nil {
		return nil, err
	}
	if readerSchema == nil {
		readerSchema = writerSchema
	}
	return &Decoder{stream: stream, writer: writerSchema, reader: readerSchema, codec: codec}, nil
}

// Err returns the first error this Decoder latched, if any.
func (d *Decoder) Err() error {
	return d.err
}

// Read decodes one datum written under the writer schema, resolved into
// the shape the reader schema expects.
func (d *Decoder) Read() (any, error) {
	if d.err != nil {
		return nil, d.err
	}
	v, err := d.resolve(d.writer, d.reader)
	d.err = err
	return v, err
}

// Skip consumes one datum written under the writer schema without
// materializing it, advancing the stream exactly as far as Read would.
func (d *Decoder) Skip() error {
	if d.err != nil {
		return d.err
	}
	d.err = d.skip(d.writer)
	return d.err
}

// resolve performs the three-step dispatch: a compatibility gate, then
// reader-union absorption when the reader offers a union but the writer
// does not, then the writer-driven read itself.
func (d *Decoder) resolve(writer, reader Schema) (any, error) {
	if !Compatible(writer, reader) {
		return nil, ErrSchemaIncompatible
	}
	if reader.Kind() == KindUnion && writer.Kind() != KindUnion {
		for _, branch := range reader.Branches() {
			if Compatible(writer, branch) {
				return d.resolveBody(writer, branch)
			}
		}
		return nil, ErrUnresolvedUnion
	}
	return d.resolveBody(writer, reader)
}

func (d *Decoder) resolveBody(writer, reader Schema) (any, error) {
	switch writer.Kind() {
	case KindNull:
		return nil, nil
	case KindBoolean:
		return readBoolean(d.stream)
	case KindInt:
		n, err := readInt(d.stream, d.codec)
		if err != nil {
			return nil, err
		}
		return promote(int64(n), reader.Kind()), nil
	case KindLong:
		n, err := readLong(d.stream, d.codec)
		if err != nil {
			return nil, err
		}
		return promote(n, reader.Kind()), nil
	case KindFloat:
		v, err := readFloat(d.stream)
		if err != nil {
			return nil, err
		}
		if reader.Kind() == KindDouble {
			return float64(v), nil
		}
		return v, nil
	case KindDouble:
		return readDouble(d.stream)
	case KindString:
		return readString(d.stream, d.codec)
	case KindBytes:
		if writer.LogicalType() == "decimal" {
			return d.readDecimalBytes(writer)
		}
		return readBytes(d.stream, d.codec)
	case KindFixed:
		if writer.LogicalType() == "decimal" {
			return d.readDecimalFixed(writer)
		}
		b, err := d.stream.Read(writer.Size())
		if err != nil {
			return nil, err
		}
		return Fixed(b), nil
	case KindArray:
		return d.readArray(writer, reader)
	case KindMap:
		return d.readMap(writer, reader)
	case KindUnion:
		return d.readUnion(writer, reader)
	case KindEnum:
		return d.readEnum(writer, reader)
	case KindRecord, KindError, KindRequest:
		return d.readRecord(writer, reader)
	default:
		return nil, ErrUnknownSchemaKind
	}
}

// promote widens a writer-side integer value to the numeric type the
// reader declared, following the promotion chain int -> long -> float ->
// double. readerKind equal to the writer's own kind (int or long) is the
// common, no-op case.
func promote(n int64, readerKind SchemaKind) any {
	switch readerKind {
	case KindFloat:
		return float32(n)
	case KindDouble:
		return float64(n)
	case KindLong:
		return n
	default:
		return int32(n)
	}
}

func (d *Decoder) readDecimalBytes(writer Schema) (any, error) {
	b, err := readBytes(d.stream, d.codec)
	if err != nil {
		return nil, err
	}
	_, scale := decimalAttrs(writer)
	return Decimal{Unscaled: decodeDecimalBytes(b), Scale: scale}, nil
}

func (d *Decoder) readDecimalFixed(writer Schema) (any, error) {
	b, err := d.stream.Read(writer.Size())
	if err != nil {
		return nil, err
	}
	_, scale := decimalAttrs(writer)
	return Decimal{Unscaled: decodeDecimalBytes(b), Scale: scale}, nil
}

func (d *Decoder) readArray(writer, reader Schema) (any, error) {
	readerElem := writer.Element()
	if reader.Kind() == KindArray {
		readerElem = reader.Element()
	}
	items := make([]any, 0)
	err := readBlocks(d.stream, d.codec, func() error {
		v, err := d.resolve(writer.Element(), readerElem)
		if err != nil {
			return err
		}
		items = append(items, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (d *Decoder) readMap(writer, reader Schema) (any, error) {
	readerVal := writer.ValueType()
	if reader.Kind() == KindMap {
		readerVal = reader.ValueType()
	}
	m := make(map[string]any)
	err := readBlocks(d.stream, d.codec, func() error {
		k, err := readString(d.stream, d.codec)
		if err != nil {
			return err
		}
		v, err := d.resolve(writer.ValueType(), readerVal)
		if err != nil {
			return err
		}
		m[k] = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (d *Decoder) readUnion(writer, reader Schema) (any, error) {
	idx, err := readLong(d.stream, d.codec)
	if err != nil {
		return nil, err
	}
	if idx < 0 || int(idx) >= len(writer.Branches()) {
		return nil, ErrNoMatchingBranch
	}
	branch := writer.BranchAt(int(idx))
	v, err := d.resolve(branch, reader)
	if err != nil {
		return nil, err
	}
	return Union{Index: int(idx), Value: v}, nil
}

func (d *Decoder) readEnum(writer, reader Schema) (any, error) {
	idx, err := readInt(d.stream, d.codec)
	if err != nil {
		return "", err
	}
	if idx < 0 || int(idx) >= len(writer.Symbols()) {
		return "", ErrUnknownEnumSymbol
	}
	sym := writer.SymbolAt(int(idx))
	if reader.Kind() == KindEnum && !reader.HasSymbol(sym) {
		return "", ErrUnknownEnumSymbol
	}
	return sym, nil
}

func (d *Decoder) readRecord(writer, reader Schema) (any, error) {
	out := make(Record, len(writer.Fields()))
	readerFields := reader.FieldsByName()
	seen := make(map[string]bool, len(writer.Fields()))
	for _, wf := range writer.Fields() {
		if rf, ok := readerFields[wf.Name()]; ok {
			v, err := d.resolve(wf.Type(), rf.Type())
			if err != nil {
				return nil, err
			}
			out[wf.Name()] = v
			seen[wf.Name()] = true
			continue
		}
		if err := d.skip(wf.Type()); err != nil {
			return nil, err
		}
	}
	for _, rf := range reader.Fields() {
		if seen[rf.Name()] {
			continue
		}
		if !rf.HasDefault() {
			return nil, ErrMissingDefault
		}
		v, err := materializeDefault(rf)
		if err != nil {
			return nil, err
		}
		out[rf.Name()] = v
	}
	return out, nil
}

// skip advances the stream past one datum of schema s without building a
// value, used both for Decoder.Skip and for writer-only record fields
// that the reader schema does not declare.
func (d *Decoder) skip(s Schema) error {
	switch s.Kind() {
	case KindNull:
		return nil
	case KindBoolean:
		_, err := d.stream.Read(1)
		return err
	case KindInt, KindLong, KindEnum:
		_, err := readLong(d.stream, d.codec)
		return err
	case KindFloat:
		_, err := d.stream.Read(4)
		return err
	case KindDouble:
		_, err := d.stream.Read(8)
		return err
	case KindString, KindBytes:
		_, err := readBytes(d.stream, d.codec)
		return err
	case KindFixed:
		_, err := d.stream.Read(s.Size())
		return err
	case KindArray:
		return skipBlocks(d.stream, d.codec, func() error {
			return d.skip(s.Element())
		})
	case KindMap:
		return skipBlocks(d.stream, d.codec, func() error {
			if _, err := readString(d.stream, d.codec); err != nil {
				return err
			}
			return d.skip(s.ValueType())
		})
	case KindUnion:
		idx, err := readLong(d.stream, d.codec)
		if err != nil {
			return err
		}
		if idx < 0 || int(idx) >= len(s.Branches()) {
			return ErrNoMatchingBranch
		}
		return d.skip(s.BranchAt(int(idx)))
	case KindRecord, KindError, KindRequest:
		for _, f := range s.Fields() {
			if err := d.skip(f.Type()); err != nil {
				return err
			}
		}
		return nil
	default:
		return ErrUnknownSchemaKind
	}
}
