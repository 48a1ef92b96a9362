package avro

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MemoryStreamTestSuite struct {
	suite.Suite
}

func (s *MemoryStreamTestSuite) TestWriteGrowsAndReadBack() {
	m := NewMemoryStream(nil)
	require.NoError(s.T(), m.Write([]byte("hello")))
	m.Reset()
	got, err := m.Read(5)
	s.Require().NoError(err)
	s.Assert().Equal([]byte("hello"), got)
}

func (s *MemoryStreamTestSuite) TestSeekAndOverwrite() {
	m := NewMemoryStream([]byte("aaaaa"))
	_, err := m.Seek(2, io.SeekStart)
	s.Require().NoError(err)
	s.Require().NoError(m.Write([]byte("bb")))
	s.Assert().Equal([]byte("aabba"), m.Bytes())
}

func (s *MemoryStreamTestSuite) TestReadPastEndFails() {
	m := NewMemoryStream([]byte("ab"))
	_, err := m.Read(3)
	s.Assert().ErrorIs(err, io.ErrUnexpectedEOF)
}

func (s *MemoryStreamTestSuite) TestNegativeSeekRejected() {
	m := NewMemoryStream([]byte("ab"))
	_, err := m.Seek(-1, io.SeekStart)
	s.Assert().ErrorIs(err, ErrUnsupportedNegativeSeek)
}

func TestMemoryStream(t *testing.T) {
	suite.Run(t, new(MemoryStreamTestSuite))
}

func TestIoStreamOverSeekableBuffer(t *testing.T) {
	buf := bytes.NewReader([]byte("0123456789"))
	stream, err := NewStream(buf)
	require.NoError(t, err)

	b, err := stream.Read(4)
	require.NoError(t, err)
	assert.Equal(t, []byte("0123"), b)

	_, err = stream.Seek(2, io.SeekStart)
	require.NoError(t, err)

	b, err = stream.Read(3)
	require.NoError(t, err)
	assert.Equal(t, []byte("234"), b)
}

func TestIoStreamWriteOnly(t *testing.T) {
	var buf bytes.Buffer
	stream, err := NewStream(onlyWriter{&buf})
	require.NoError(t, err)
	require.NoError(t, stream.Write([]byte("hi")))
	assert.Equal(t, "hi", buf.String())

	_, err = stream.Read(1)
	assert.ErrorIs(t, err, ErrStreamNotReadable)
}

func TestIoStreamForwardOnlySeek(t *testing.T) {
	r := bytes.NewReader([]byte("abcdef"))
	stream, err := NewStream(io.Reader(onlyReader{r}))
	require.NoError(t, err)

	_, err = stream.Seek(2, io.SeekCurrent)
	require.NoError(t, err)
	b, err := stream.Read(2)
	require.NoError(t, err)
	assert.Equal(t, []byte("cd"), b)

	_, err = stream.Seek(-1, io.SeekCurrent)
	assert.ErrorIs(t, err, ErrUnsupportedNegativeSeek)
}

// onlyReader hides bytes.Reader's Seek method so NewStream falls back to
// forward-only emulation.
type onlyReader struct {
	r io.Reader
}

func (o onlyReader) Read(p []byte) (int, error) {
	return o.r.Read(p)
}

// onlyWriter hides bytes.Buffer's Read method so NewStream builds a
// write-only Stream.
type onlyWriter struct {
	w io.Writer
}

func (o onlyWriter) Write(p []byte) (int, error) {
	return o.w.Write(p)
}
