package avro

import "math/big"

// LongCodec is the pluggable backend behind every varint on the wire: every
// length prefix and every int/long field ultimately goes through one. The
// choice of backend is made once, at Encoder/Decoder construction (see
// NewEncoder, NewDecoder), and must not change between operations, so a
// stream written with one backend is always readable by another backend —
// wire output is defined to be bit-identical across backends.
type LongCodec interface {
	// EncodeLong returns the zig-zag varint encoding of n.
	EncodeLong(n int64) []byte
	// DecodeLong consumes bytes from next (typically a Stream's single-byte
	// Read) until a varint is complete, and returns the decoded value.
	DecodeLong(next func() (byte, error)) (int64, error)
}

// nativeLongCodec is the default LongCodec, operating directly on Go's
// native signed 64-bit integers.
type nativeLongCodec struct{}

func (nativeLongCodec) EncodeLong(n int64) []byte {
	return encodeLong(n)
}

func (nativeLongCodec) DecodeLong(next func() (byte, error)) (int64, error) {
	return decodeLongFrom(next)
}

// BigIntLongCodec is an alternate LongCodec that performs the zig-zag
// mapping and 7-bit grouping through math/big instead of native int64
// arithmetic. It exists for the platforms the design calls out as lacking
// a native signed 64-bit integer; on Go, which always has one, it is
// equivalent to the default and is offered mainly to exercise and prove
// the bit-identical-wire-output guarantee between backends. No
// arbitrary-precision pack dependency covers this niche, and the
// computation is a handful of shifts and masks, so the standard library's
// math/big is used directly rather than introducing a dependency to save
// a few lines (see DESIGN.md).
type BigIntLongCodec struct{}

var (
	bigOne        = big.NewInt(1)
	bigMaskSeven  = big.NewInt(0x7f)
	bigShiftSeven = uint(7)
)

func (BigIntLongCodec) EncodeLong(n int64) []byte {
	// zig-zag via big.Int: (n << 1) ^ (n >> 63), computed with big.Int so the
	// mapping never depends on a native 64-bit wraparound.
	signed := big.NewInt(n)
	doubled := new(big.Int).Lsh(signed, 1)
	if n < 0 {
		doubled.Sub(new(big.Int).Neg(doubled), bigOne)
	}
	u := doubled // u is now the non-negative zig-zag magnitude

	scratch := getScratch()
	defer putScratch(scratch)

	group := new(big.Int)
	if u.Sign() == 0 {
		*scratch = append(*scratch, 0)
	}
	for u.Sign() != 0 {
		group.And(u, bigMaskSeven)
		u.Rsh(u, bigShiftSeven)
		b := byte(group.Uint64())
		if u.Sign() != 0 {
			b |= 0x80
		}
		*scratch = append(*scratch, b)
	}
	out := make([]byte, len(*scratch))
	copy(out, *scratch)
	return out
}

func (BigIntLongCodec) DecodeLong(next func() (byte, error)) (int64, error) {
	u := new(big.Int)
	shift := uint(0)
	for {
		b, err := next()
		if err != nil {
			return 0, err
		}
		group := new(big.Int).Lsh(big.NewInt(int64(b&0x7f)), shift)
		u.Or(u, group)
		if b&0x80 == 0 {
			break
		}
		shift += 7
		if shift >= 70 {
			return 0, ErrTruncatedStream
		}
	}

	// un-zig-zag via big.Int: (u >> 1) ^ -(u & 1).
	half := new(big.Int).Rsh(u, 1)
	if u.Bit(0) == 1 {
		half.Add(half, bigOne)
		half.Neg(half)
	}
	return half.Int64(), nil
}
