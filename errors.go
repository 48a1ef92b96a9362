package avro

import "errors"

var (
	// ErrNilStream indicates that NewEncoder/NewDecoder was called with a nil
	// Stream, or NewStream with a nil value.
	ErrNilStream = errors.New("avro: NewEncoder/NewDecoder called with a nil Stream")

	// ErrNilSchema indicates that a schema argument required to be non-nil was nil.
	ErrNilSchema = errors.New("avro: schema must not be nil")

	// ErrDatumTypeMismatch indicates a value does not conform to the writer's
	// schema at write time.
	ErrDatumTypeMismatch = errors.New("avro: datum does not conform to writer schema")

	// ErrSchemaIncompatible indicates the writer/reader schema pair fails the
	// compatibility matrix.
	ErrSchemaIncompatible = errors.New("avro: writer and reader schemas are incompatible")

	// ErrDecimalOutOfRange names the decimal failures: |unscaled| >=
	// 10^precision, a missing precision, or non-numeric decimal input.
	// Encoder.Write checks decimals during validation and reports a datum
	// failing any of these as ErrDatumTypeMismatch; ErrDecimalOutOfRange
	// itself is returned only by the decimal scaling step, for an input of
	// an unsupported type.
	ErrDecimalOutOfRange = errors.New("avro: decimal value out of range for precision")

	// ErrUnknownSchemaKind indicates a schema tag outside the closed set of
	// recognized kinds.
	ErrUnknownSchemaKind = errors.New("avro: unknown schema kind")

	// ErrMissingDefault indicates the reader declares a field absent from the
	// writer's schema, with no default value to fall back on.
	ErrMissingDefault = errors.New("avro: reader field has no writer value and no default")

	// ErrNoMatchingBranch indicates no union branch accepted a datum being
	// written, or no writer branch index could be resolved while reading.
	ErrNoMatchingBranch = errors.New("avro: no union branch accepts this datum")

	// ErrUnresolvedUnion indicates the reader's schema is a union with no
	// branch compatible with the writer's schema.
	ErrUnresolvedUnion = errors.New("avro: no reader union branch is compatible with writer schema")

	// ErrUnknownEnumSymbol indicates an enum value a schema does not declare:
	// on read, a writer's symbol that the reader's enum schema lacks or a
	// symbol index outside the writer's enum; on write, a symbol the
	// writer's enum lacks.
	ErrUnknownEnumSymbol = errors.New("avro: writer enum symbol not declared by reader schema")

	// ErrInvalidUTF8 indicates a string field's bytes are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("avro: string value is not valid UTF-8")

	// ErrInvalidFixedSize indicates a fixed datum's length does not equal the
	// schema's declared size.
	ErrInvalidFixedSize = errors.New("avro: fixed datum length does not match schema size")

	// ErrInvalidWhence indicates an unsupported whence parameter was passed to
	// Stream.Seek, or a negative length to Stream.Read.
	ErrInvalidWhence = errors.New("avro: unsupported whence value")

	// ErrUnsupportedNegativeSeek indicates a backward seek was attempted on a
	// forward-only stream, or a seek to before the start of a MemoryStream.
	ErrUnsupportedNegativeSeek = errors.New("avro: unsupported negative seek on a forward-only stream")

	// ErrTruncatedStream indicates length data that cannot be valid: a
	// varint whose tenth byte still has its continuation bit set, or a
	// negative bytes/string length. A stream that ends early is reported by
	// the stream itself (io.ErrUnexpectedEOF for the streams in this
	// package).
	ErrTruncatedStream = errors.New("avro: stream ended before expected data was read")

	// ErrStreamNotReadable indicates Read was called on a Stream built over
	// an underlying value with no io.Reader.
	ErrStreamNotReadable = errors.New("avro: stream has no underlying reader")

	// ErrStreamNotWritable indicates Write was called on a Stream built over
	// an underlying value with no io.Writer.
	ErrStreamNotWritable = errors.New("avro: stream has no underlying writer")

	// ErrPlatformEndianness is raised at encoder/decoder construction when the
	// host's native byte order cannot be reconciled with the little-endian
	// wire format used for floats and doubles.
	ErrPlatformEndianness = errors.New("avro: host float/double byte order is incompatible with the wire format")
)
