package avro

import (
	"bufio"
	"io"
)

// ioStream adapts an arbitrary io.Reader/io.Writer/io.Seeker combination to
// the Stream interface. It buffers reads through a bufio.Reader (read
// operations during decode are almost all single-byte or few-byte, as with
// varint continuation bytes, so unbuffered reads would be costly) but
// writes straight through, since Stream has no Flush method to guarantee a
// buffered writer is ever drained.
type ioStream struct {
	r      *bufio.Reader
	w      io.Writer
	seeker io.Seeker // non-nil when the underlying reader is natively seekable
	fwd    *forwardSeek
	pos    int64
}

var _ Stream = (*ioStream)(nil)

// NewStream adapts rw to a Stream. rw must implement io.Reader, io.Writer,
// or both; a value implementing only one side yields a Stream whose
// opposite operation returns ErrStreamNotReadable/ErrStreamNotWritable. If
// rw also implements io.Seeker, Seek uses it directly; otherwise Seek
// emulates forward movement by discarding bytes (see forwardSeek) and
// fails on any attempt to move backward.
func NewStream(rw any) (Stream, error) {
	if rw == nil {
		return nil, ErrNilStream
	}

	s := &ioStream{}
	if r, ok := rw.(io.Reader); ok {
		s.r = bufio.NewReader(r)
		if sk, ok := rw.(io.Seeker); ok {
			s.seeker = sk
		} else {
			s.fwd = newForwardSeek(s.r)
		}
	}
	if w, ok := rw.(io.Writer); ok {
		s.w = w
	}
	if s.r == nil && s.w == nil {
		return nil, ErrStreamNotReadable
	}
	return s, nil
}

// Read implements Stream.
func (s *ioStream) Read(n int) ([]byte, error) {
	if s.r == nil {
		return nil, ErrStreamNotReadable
	}
	if n < 0 {
		return nil, ErrInvalidWhence
	}
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	read, err := io.ReadFull(s.r, buf)
	s.pos += int64(read)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf, nil
}

// Write implements Stream.
func (s *ioStream) Write(p []byte) error {
	if s.w == nil {
		return ErrStreamNotWritable
	}
	if len(p) == 0 {
		return nil
	}
	n, err := s.w.Write(p)
	s.pos += int64(n)
	return err
}

// Seek implements Stream.
func (s *ioStream) Seek(offset int64, whence int) (int64, error) {
	if s.r == nil {
		return s.pos, ErrStreamNotReadable
	}

	if s.seeker != nil {
		// The underlying reader is natively seekable, but it is wrapped in a
		// bufio.Reader that buffers ahead of the seeker's real position; any
		// buffered-but-unconsumed bytes must be accounted for.
		var target int64
		switch whence {
		case io.SeekCurrent:
			target = s.pos + offset
		case io.SeekStart, io.SeekEnd:
			cur, err := s.seeker.Seek(0, io.SeekCurrent)
			if err != nil {
				return s.pos, err
			}
			buffered := s.r.Buffered()
			target = cur - int64(buffered)
			if whence == io.SeekStart {
				target = offset
			} else {
				end, err := s.seeker.Seek(0, io.SeekEnd)
				if err != nil {
					return s.pos, err
				}
				if _, err := s.seeker.Seek(cur, io.SeekStart); err != nil {
					return s.pos, err
				}
				target = end + offset
			}
		default:
			return s.pos, ErrInvalidWhence
		}

		if target >= s.pos && target-s.pos <= int64(s.r.Buffered()) {
			// Target falls inside what's already buffered: discard without
			// touching the underlying seeker.
			if _, err := s.r.Discard(int(target - s.pos)); err != nil {
				return s.pos, err
			}
			s.pos = target
			return s.pos, nil
		}

		if _, err := s.seeker.Seek(target, io.SeekStart); err != nil {
			return s.pos, err
		}
		s.r.Reset(readerAt(s.seeker))
		s.pos = target
		return s.pos, nil
	}

	// No native seeker: only forward movement from the current position is
	// possible, realized by discarding bytes.
	var forward int64
	switch whence {
	case io.SeekCurrent:
		forward = offset
	case io.SeekStart:
		forward = offset - s.pos
	default:
		return s.pos, ErrInvalidWhence
	}
	if forward < 0 {
		return s.pos, ErrUnsupportedNegativeSeek
	}
	n, err := s.fwd.discard(forward)
	s.pos += n
	return s.pos, err
}

// Tell implements Stream.
func (s *ioStream) Tell() (int64, error) {
	return s.pos, nil
}

// readerAt narrows a io.Seeker back to the io.Reader it was asserted from;
// NewStream only constructs a seeker-backed ioStream from a value that was
// already known to implement both.
func readerAt(s io.Seeker) io.Reader {
	return s.(io.Reader)
}

// forwardSeek emulates forward-only seeking over a stream with no native
// io.Seeker, by reading and discarding bytes.
type forwardSeek struct {
	r io.Reader
}

func newForwardSeek(r io.Reader) *forwardSeek {
	return &forwardSeek{r: r}
}

func (f *forwardSeek) discard(n int64) (int64, error) {
	if n == 0 {
		return 0, nil
	}
	written, err := io.CopyN(io.Discard, f.r, n)
	return written, err
}
