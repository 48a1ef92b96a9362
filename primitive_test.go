package avro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
)

type PrimitiveTestSuite struct {
	suite.Suite
	codec LongCodec
}

func (s *PrimitiveTestSuite) SetupTest() {
	s.codec = nativeLongCodec{}
}

func (s *PrimitiveTestSuite) TestBooleanRoundTrip() {
	for _, v := range []bool{true, false} {
		stream := NewMemoryStream(nil)
		s.Require().NoError(writeBoolean(stream, v))
		stream.Reset()
		got, err := readBoolean(stream)
		s.Require().NoError(err)
		s.Assert().Equal(v, got)
	}
}

func (s *PrimitiveTestSuite) TestLongRoundTrip() {
	for _, v := range []int64{
		0, 1, -1, 123456789, -987654321,
		math.MinInt32, math.MaxInt32,
		math.MinInt64, math.MaxInt64,
	} {
		stream := NewMemoryStream(nil)
		s.Require().NoError(writeLong(stream, s.codec, v))
		stream.Reset()
		got, err := readLong(stream, s.codec)
		s.Require().NoError(err)
		s.Assert().Equal(v, got, "v=%d", v)
	}
}

func (s *PrimitiveTestSuite) TestIntRoundTripBoundaries() {
	for _, v := range []int32{0, math.MinInt32, math.MaxInt32} {
		stream := NewMemoryStream(nil)
		s.Require().NoError(writeInt(stream, s.codec, v))
		stream.Reset()
		got, err := readInt(stream, s.codec)
		s.Require().NoError(err)
		s.Assert().Equal(v, got, "v=%d", v)
	}
}

func (s *PrimitiveTestSuite) TestFloatDoubleRoundTrip() {
	stream := NewMemoryStream(nil)
	s.Require().NoError(writeFloat(stream, 3.25))
	s.Require().NoError(writeDouble(stream, -6.5))
	stream.Reset()

	f, err := readFloat(stream)
	s.Require().NoError(err)
	s.Assert().Equal(float32(3.25), f)

	d, err := readDouble(stream)
	s.Require().NoError(err)
	s.Assert().Equal(-6.5, d)
}

func (s *PrimitiveTestSuite) TestFloatBoundaryValues() {
	// +0, -0, +Inf, -Inf, max, smallest subnormal.
	values := []float32{
		0,
		math.Float32frombits(0x80000000),
		float32(math.Inf(1)),
		float32(math.Inf(-1)),
		math.MaxFloat32,
		math.SmallestNonzeroFloat32,
	}
	for _, v := range values {
		stream := NewMemoryStream(nil)
		s.Require().NoError(writeFloat(stream, v))
		stream.Reset()
		got, err := readFloat(stream)
		s.Require().NoError(err)
		s.Assert().Equal(math.Float32bits(v), math.Float32bits(got), "v=%v", v)
	}
}

func (s *PrimitiveTestSuite) TestFloatNaNRoundTrip() {
	stream := NewMemoryStream(nil)
	s.Require().NoError(writeFloat(stream, float32(math.NaN())))
	stream.Reset()
	got, err := readFloat(stream)
	s.Require().NoError(err)
	s.Assert().True(math.IsNaN(float64(got)))
}

func (s *PrimitiveTestSuite) TestDoubleBoundaryValues() {
	for _, v := range []float64{0, math.Float64frombits(0x8000000000000000), math.Inf(1), math.Inf(-1), math.MaxFloat64, math.SmallestNonzeroFloat64} { // +0, -0, +Inf, -Inf, max, subnormal
		stream := NewMemoryStream(nil)
		s.Require().NoError(writeDouble(stream, v))
		stream.Reset()
		got, err := readDouble(stream)
		s.Require().NoError(err)
		s.Assert().Equal(math.Float64bits(v), math.Float64bits(got), "v=%v", v)
	}
}

func (s *PrimitiveTestSuite) TestDoubleNaNRoundTrip() {
	stream := NewMemoryStream(nil)
	s.Require().NoError(writeDouble(stream, math.NaN()))
	stream.Reset()
	got, err := readDouble(stream)
	s.Require().NoError(err)
	s.Assert().True(math.IsNaN(got))
}

func (s *PrimitiveTestSuite) TestBytesRoundTrip() {
	stream := NewMemoryStream(nil)
	s.Require().NoError(writeBytes(stream, s.codec, []byte{1, 2, 3}))
	stream.Reset()
	got, err := readBytes(stream, s.codec)
	s.Require().NoError(err)
	s.Assert().Equal([]byte{1, 2, 3}, got)
}

func (s *PrimitiveTestSuite) TestEmptyBytesRoundTrip() {
	stream := NewMemoryStream(nil)
	s.Require().NoError(writeBytes(stream, s.codec, []byte{}))
	stream.Reset()
	got, err := readBytes(stream, s.codec)
	s.Require().NoError(err)
	s.Assert().Equal([]byte{}, got)
}

func (s *PrimitiveTestSuite) TestStringRoundTrip() {
	stream := NewMemoryStream(nil)
	s.Require().NoError(writeString(stream, s.codec, "hello, world"))
	stream.Reset()
	got, err := readString(stream, s.codec)
	s.Require().NoError(err)
	s.Assert().Equal("hello, world", got)
}

func (s *PrimitiveTestSuite) TestEmptyStringRoundTrip() {
	stream := NewMemoryStream(nil)
	s.Require().NoError(writeString(stream, s.codec, ""))
	stream.Reset()
	got, err := readString(stream, s.codec)
	s.Require().NoError(err)
	s.Assert().Equal("", got)
}

func (s *PrimitiveTestSuite) TestInvalidUTF8Rejected() {
	stream := NewMemoryStream(nil)
	err := writeString(stream, s.codec, string([]byte{0xff, 0xfe}))
	s.Assert().ErrorIs(err, ErrInvalidUTF8)
}

func TestPrimitive(t *testing.T) {
	suite.Run(t, new(PrimitiveTestSuite))
}
