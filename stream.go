package avro

import "io"

// Stream is the byte-stream I/O abstraction the codec reads from and writes
// to. It is an external collaborator: this package never owns a Stream's
// lifetime, only borrows it for the duration of a single Encoder or Decoder
// operation. Whence values for Seek follow io.SeekStart/io.SeekCurrent/
// io.SeekEnd; implementations must support at least io.SeekCurrent, which is
// all the skip path (see Decoder.Skip) requires.
type Stream interface {
	// Read returns exactly n bytes, or an error if the stream ends first.
	Read(n int) ([]byte, error)
	// Write appends p to the stream.
	Write(p []byte) error
	// Seek moves the stream's cursor and returns the new absolute offset.
	Seek(offset int64, whence int) (int64, error)
	// Tell returns the stream's current absolute offset.
	Tell() (int64, error)
}

// MemoryStream is a Stream backed by an in-memory byte slice. A single
// cursor serves both Read and Write, so writing and then seeking back to
// read what was written is the normal way to round-trip a datum in tests,
// mirroring how the teacher's BytesReader/BytesWriter each track one cursor
// over a fixed buffer, merged here into one buffer that can also grow.
type MemoryStream struct {
	buf []byte
	pos int
}

var _ Stream = (*MemoryStream)(nil)

// NewMemoryStream creates a MemoryStream. initial, if non-nil, seeds the
// buffer's content with the cursor positioned at its start, so a stream
// built from previously-written bytes can be read back immediately.
func NewMemoryStream(initial []byte) *MemoryStream {
	buf := make([]byte, len(initial))
	copy(buf, initial)
	return &MemoryStream{buf: buf}
}

// Read implements Stream.
func (s *MemoryStream) Read(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrInvalidWhence
	}
	if n == 0 {
		return nil, nil
	}
	if s.pos+n > len(s.buf) {
		return nil, io.ErrUnexpectedEOF
	}
	out := make([]byte, n)
	copy(out, s.buf[s.pos:s.pos+n])
	s.pos += n
	return out, nil
}

// Write implements Stream. Writing past the end of the buffer grows it;
// writing within the buffer (after a Seek) overwrites in place, matching
// the semantics of a random-access file rather than an append-only log.
func (s *MemoryStream) Write(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	need := s.pos + len(p)
	if need > len(s.buf) {
		grown := make([]byte, need)
		copy(grown, s.buf)
		s.buf = grown
	}
	copy(s.buf[s.pos:need], p)
	s.pos = need
	return nil
}

// Seek implements Stream.
func (s *MemoryStream) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(s.pos) + offset
	case io.SeekEnd:
		abs = int64(len(s.buf)) + offset
	default:
		return int64(s.pos), ErrInvalidWhence
	}
	if abs < 0 {
		return int64(s.pos), ErrUnsupportedNegativeSeek
	}
	s.pos = int(abs)
	return abs, nil
}

// Tell implements Stream.
func (s *MemoryStream) Tell() (int64, error) {
	return int64(s.pos), nil
}

// Bytes returns the stream's full backing buffer, regardless of the
// cursor's current position. Tests use this to inspect what an Encoder
// produced.
func (s *MemoryStream) Bytes() []byte {
	return s.buf
}

// Reset rewinds the cursor to the start without discarding buffered
// content, letting a stream written once be read back from the beginning.
func (s *MemoryStream) Reset() {
	s.pos = 0
}
