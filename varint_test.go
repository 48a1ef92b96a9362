package avro

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type VarintTestSuite struct {
	suite.Suite
}

func (s *VarintTestSuite) TestZigZagRoundTrip() {
	cases := []int64{0, 1, -1, 2, -2, 63, -64, 64, -65, 1 << 40, -(1 << 40), 1<<63 - 1, -1 << 63}
	for _, n := range cases {
		s.Assert().Equal(n, zigZagDecode(zigZagEncode(n)), "n=%d", n)
	}
}

func (s *VarintTestSuite) TestCanonicity() {
	// Single-byte range: values whose zig-zag magnitude fits in 7 bits.
	for n := int64(-64); n <= 63; n++ {
		s.Assert().Equal(1, longByteLen(n), "n=%d", n)
	}
	// 64 zig-zags to 128, the first value needing a second byte.
	s.Assert().Equal(2, longByteLen(64))
	s.Assert().Equal(2, longByteLen(-65))
}

func (s *VarintTestSuite) TestEncodeDecodeRoundTrip() {
	for _, n := range []int64{0, 1, -1, 1000000, -1000000, 1 << 62, -(1 << 62)} {
		encoded := encodeLong(n)
		i := 0
		decoded, err := decodeLongFrom(func() (byte, error) {
			b := encoded[i]
			i++
			return b, nil
		})
		s.Require().NoError(err)
		s.Assert().Equal(n, decoded)
		s.Assert().Equal(len(encoded), i)
	}
}

func (s *VarintTestSuite) TestDecodeTruncated() {
	_, err := decodeLongFrom(func() (byte, error) {
		return 0, io.ErrUnexpectedEOF
	})
	s.Assert().ErrorIs(err, io.ErrUnexpectedEOF)
}

func (s *VarintTestSuite) TestDecodeOverlong() {
	calls := 0
	_, err := decodeLongFrom(func() (byte, error) {
		calls++
		if calls > 11 {
			return 0, io.ErrUnexpectedEOF
		}
		return 0x80, nil // continuation bit always set, never terminates legitimately
	})
	s.Assert().ErrorIs(err, ErrTruncatedStream)
}

func TestVarint(t *testing.T) {
	suite.Run(t, new(VarintTestSuite))
}

func TestBigIntLongCodecMatchesNative(t *testing.T) {
	native := nativeLongCodec{}
	big := BigIntLongCodec{}
	for _, n := range []int64{0, 1, -1, 42, -42, 1 << 40, -(1 << 40), 1<<63 - 1, -1 << 63} {
		assert.Equal(t, native.EncodeLong(n), big.EncodeLong(n), "n=%d", n)

		encoded := native.EncodeLong(n)
		i := 0
		decoded, err := big.DecodeLong(func() (byte, error) {
			b := encoded[i]
			i++
			return b, nil
		})
		assert.NoError(t, err)
		assert.Equal(t, n, decoded, "n=%d", n)
	}
}
