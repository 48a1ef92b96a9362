package avro

// schema is the concrete, programmatically-built Schema this package
// supplies so the codec (and its tests) have something to encode against
// without requiring a schema-parsing library, which spec.md keeps
// explicitly out of scope. It is intentionally the narrowest structure
// that satisfies every Schema method — not a JSON schema representation.
type schema struct {
	kind SchemaKind

	// named kinds: enum, fixed, record, error, request
	fullname string

	// array / map
	element   Schema
	valueType Schema

	// union
	branches []Schema

	// enum
	symbols   []string
	symbolIdx map[string]int

	// fixed
	size int

	// record / error / request
	fields       []Field
	fieldsByName map[string]Field

	// logical type (bytes/fixed decimal)
	logicalType string
	extraAttrs  map[string]any

	attrs map[string]any
}

var _ Schema = (*schema)(nil)

func (s *schema) Kind() SchemaKind                { return s.kind }
func (s *schema) Element() Schema                 { return s.element }
func (s *schema) ValueType() Schema               { return s.valueType }
func (s *schema) Branches() []Schema              { return s.branches }
func (s *schema) BranchAt(i int) Schema           { return s.branches[i] }
func (s *schema) Symbols() []string               { return s.symbols }
func (s *schema) SymbolAt(i int) string           { return s.symbols[i] }
func (s *schema) Size() int                       { return s.size }
func (s *schema) Fields() []Field                 { return s.fields }
func (s *schema) FieldsByName() map[string]Field  { return s.fieldsByName }
func (s *schema) LogicalType() string             { return s.logicalType }

func (s *schema) ExtraAttrs() map[string]any {
	return s.extraAttrs
}

func (s *schema) SymbolIndex(name string) int {
	if i, ok := s.symbolIdx[name]; ok {
		return i
	}
	return -1
}

func (s *schema) HasSymbol(name string) bool {
	_, ok := s.symbolIdx[name]
	return ok
}

func (s *schema) Attribute(name string) (any, bool) {
	v, ok := s.attrs[name]
	return v, ok
}

func (s *schema) Fullname() string {
	if s.fullname != "" {
		return s.fullname
	}
	return s.kind.String()
}

func (s *schema) IsValidDatum(datum any) bool {
	return validateDatum(s, datum)
}

// field is the concrete Field implementation paired with schema.
type field struct {
	name         string
	typ          Schema
	hasDefault   bool
	defaultValue any
}

var _ Field = (*field)(nil)

func (f *field) Name() string      { return f.name }
func (f *field) Type() Schema      { return f.typ }
func (f *field) HasDefault() bool  { return f.hasDefault }
func (f *field) DefaultValue() any { return f.defaultValue }

// --- Constructors ---

func primitiveSchema(kind SchemaKind) Schema {
	return &schema{kind: kind}
}

func NewNullSchema() Schema    { return primitiveSchema(KindNull) }
func NewBooleanSchema() Schema { return primitiveSchema(KindBoolean) }
func NewIntSchema() Schema     { return primitiveSchema(KindInt) }
func NewLongSchema() Schema    { return primitiveSchema(KindLong) }
func NewFloatSchema() Schema   { return primitiveSchema(KindFloat) }
func NewDoubleSchema() Schema  { return primitiveSchema(KindDouble) }
func NewStringSchema() Schema  { return primitiveSchema(KindString) }
func NewBytesSchema() Schema   { return primitiveSchema(KindBytes) }

// NewDecimalSchema returns a bytes schema annotated with the decimal
// logical type, precision (required) and scale. Both are stored as given:
// the format's default scale of 0 is passed explicitly, and a negative
// scale is not mapped to it.
func NewDecimalSchema(precision, scale int) Schema {
	return &schema{
		kind:        KindBytes,
		logicalType: "decimal",
		extraAttrs: map[string]any{
			"precision": precision,
			"scale":     scale,
		},
	}
}

// NewDecimalFixedSchema is NewDecimalSchema over a fixed-size field
// instead of a length-prefixed bytes field.
func NewDecimalFixedSchema(name string, size, precision, scale int) Schema {
	return &schema{
		kind:        KindFixed,
		fullname:    name,
		size:        size,
		logicalType: "decimal",
		extraAttrs: map[string]any{
			"precision": precision,
			"scale":     scale,
		},
	}
}

func NewArraySchema(element Schema) Schema {
	return &schema{kind: KindArray, element: element}
}

func NewMapSchema(valueType Schema) Schema {
	return &schema{kind: KindMap, valueType: valueType}
}

func NewUnionSchema(branches ...Schema) Schema {
	return &schema{kind: KindUnion, branches: branches}
}

func NewEnumSchema(name string, symbols ...string) Schema {
	idx := make(map[string]int, len(symbols))
	for i, sym := range symbols {
		idx[sym] = i
	}
	return &schema{kind: KindEnum, fullname: name, symbols: symbols, symbolIdx: idx}
}

func NewFixedSchema(name string, size int) Schema {
	return &schema{kind: KindFixed, fullname: name, size: size}
}

func newNamedRecord(kind SchemaKind, name string, fields ...Field) Schema {
	byName := make(map[string]Field, len(fields))
	for _, f := range fields {
		byName[f.Name()] = f
	}
	return &schema{kind: kind, fullname: name, fields: fields, fieldsByName: byName}
}

func NewRecordSchema(name string, fields ...Field) Schema {
	return newNamedRecord(KindRecord, name, fields...)
}

func NewErrorSchema(name string, fields ...Field) Schema {
	return newNamedRecord(KindError, name, fields...)
}

func NewRequestSchema(name string, fields ...Field) Schema {
	return newNamedRecord(KindRequest, name, fields...)
}

// NewField declares a field with no default value.
func NewField(name string, typ Schema) Field {
	return &field{name: name, typ: typ}
}

// NewFieldWithDefault declares a field whose declared default is used
// when a writer omits it (encode side) or a reader's record names it but
// the writer's does not (decode side).
func NewFieldWithDefault(name string, typ Schema, def any) Field {
	return &field{name: name, typ: typ, hasDefault: true, defaultValue: def}
}
