package avro

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// writeNull emits the null primitive: zero bytes on the wire.
func writeNull(_ Stream) error {
	return nil
}

// writeBoolean emits the boolean primitive as a single byte, 0x01 for
// true, 0x00 for false.
func writeBoolean(s Stream, v bool) error {
	if v {
		return s.Write([]byte{0x01})
	}
	return s.Write([]byte{0x00})
}

// readBoolean reads a single boolean byte. Per the format, any byte other
// than the canonical 0x00/0x01 is implementation-undefined on read; this
// implementation treats the value as true iff the byte equals 0x01,
// matching the spec's stated fallback.
func readBoolean(s Stream) (bool, error) {
	b, err := s.Read(1)
	if err != nil {
		return false, err
	}
	return b[0] == 0x01, nil
}

// writeLong emits n as a zig-zag varint through the active LongCodec.
func writeLong(s Stream, codec LongCodec, n int64) error {
	return s.Write(codec.EncodeLong(n))
}

// readLong reads a zig-zag varint through the active LongCodec, pulling
// one byte at a time from the stream.
func readLong(s Stream, codec LongCodec) (int64, error) {
	return codec.DecodeLong(func() (byte, error) {
		b, err := s.Read(1)
		if err != nil {
			return 0, err
		}
		return b[0], nil
	})
}

// writeInt emits n as a long; the int/long distinction is enforced by the
// validator (int is a long constrained to the signed 32-bit range), not by
// the wire encoding, which is identical for both.
func writeInt(s Stream, codec LongCodec, n int32) error {
	return writeLong(s, codec, int64(n))
}

func readInt(s Stream, codec LongCodec) (int32, error) {
	n, err := readLong(s, codec)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}

// writeFloat emits v as 4 little-endian bytes, IEEE-754 binary32.
func writeFloat(s Stream, v float32) error {
	scratch := getScratch()
	defer putScratch(scratch)
	*scratch = append(*scratch, 0, 0, 0, 0)
	binary.LittleEndian.PutUint32(*scratch, math.Float32bits(v))
	return s.Write(*scratch)
}

func readFloat(s Stream) (float32, error) {
	b, err := s.Read(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

// writeDouble emits v as 8 little-endian bytes, IEEE-754 binary64.
func writeDouble(s Stream, v float64) error {
	scratch := getScratch()
	defer putScratch(scratch)
	*scratch = append(*scratch, 0, 0, 0, 0, 0, 0, 0, 0)
	binary.LittleEndian.PutUint64(*scratch, math.Float64bits(v))
	return s.Write(*scratch)
}

func readDouble(s Stream) (float64, error) {
	b, err := s.Read(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// writeBytes emits a long length prefix followed by the raw bytes.
func writeBytes(s Stream, codec LongCodec, b []byte) error {
	if err := writeLong(s, codec, int64(len(b))); err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	return s.Write(b)
}

func readBytes(s Stream, codec LongCodec) ([]byte, error) {
	n, err := readLong(s, codec)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, ErrTruncatedStream
	}
	if n == 0 {
		return []byte{}, nil
	}
	return s.Read(int(n))
}

// writeString emits a long length prefix followed by the string's UTF-8
// bytes, identical framing to writeBytes.
func writeString(s Stream, codec LongCodec, str string) error {
	if !utf8.ValidString(str) {
		return ErrInvalidUTF8
	}
	return writeBytes(s, codec, []byte(str))
}

func readString(s Stream, codec LongCodec) (string, error) {
	b, err := readBytes(s, codec)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}
