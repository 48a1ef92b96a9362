package avro

// SchemaKind tags the closed set of schema shapes the format recognizes.
type SchemaKind int

const (
	KindNull SchemaKind = iota
	KindBoolean
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindString
	KindBytes
	KindArray
	KindMap
	KindUnion
	KindEnum
	KindFixed
	KindRecord
	KindError   // treated as a record for every encode/decode purpose
	KindRequest // treated as a record for every encode/decode purpose
)

func (k SchemaKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindUnion:
		return "union"
	case KindEnum:
		return "enum"
	case KindFixed:
		return "fixed"
	case KindRecord:
		return "record"
	case KindError:
		return "error"
	case KindRequest:
		return "request"
	default:
		return "unknown"
	}
}

// isRecordLike reports whether a kind follows record encode/decode rules.
func (k SchemaKind) isRecordLike() bool {
	return k == KindRecord || k == KindError || k == KindRequest
}

// Field is one named member of a record, error, or request schema.
type Field interface {
	Name() string
	Type() Schema
	HasDefault() bool
	DefaultValue() any
}

// Schema is the external, consumed description of a datum's shape. This
// package only reads from a Schema; it never mutates one, and a Schema is
// expected to be immutable and safely shared across any number of
// Encoders and Decoders for its entire lifetime (see SPEC_FULL.md §3).
type Schema interface {
	Kind() SchemaKind

	// Element returns the element schema of an array schema.
	Element() Schema
	// ValueType returns the value schema of a map schema (keys are always
	// strings and have no schema of their own).
	ValueType() Schema

	// Branches returns every alternative of a union schema, in declared
	// order.
	Branches() []Schema
	// BranchAt returns the i'th union branch.
	BranchAt(i int) Schema

	// Symbols returns an enum schema's declared symbols, in declared order.
	Symbols() []string
	// SymbolAt returns the enum symbol at index i.
	SymbolAt(i int) string
	// SymbolIndex returns the declared index of name, or -1 if undeclared.
	SymbolIndex(name string) int
	// HasSymbol reports whether name is one of the enum's declared symbols.
	HasSymbol(name string) bool

	// Size returns a fixed schema's declared byte size.
	Size() int

	// Fields returns a record/error/request schema's fields, in declared
	// (and therefore wire) order.
	Fields() []Field
	// FieldsByName returns the same fields indexed by name.
	FieldsByName() map[string]Field

	// LogicalType returns the schema's logical type name ("decimal" is the
	// only one this codec recognizes), or "" if none is declared.
	LogicalType() string
	// ExtraAttrs returns logical-type attributes such as "precision" and
	// "scale".
	ExtraAttrs() map[string]any

	// Attribute returns an arbitrary named schema attribute. Compatible
	// does not consult it; it compares kinds, fullnames and fixed sizes.
	Attribute(name string) (any, bool)
	// Fullname returns the schema's namespace-qualified name. Only
	// meaningful for enum/fixed/record/error schemas; unnamed kinds return
	// their kind's string form.
	Fullname() string

	// IsValidDatum reports whether datum conforms to this schema. The
	// schema type in this package answers it with the same check Validate
	// performs; the validator recurses through its own check and does not
	// call IsValidDatum.
	IsValidDatum(datum any) bool
}
