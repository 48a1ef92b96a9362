package avro

// zigZagEncode maps a signed 64-bit integer to an unsigned magnitude via
// the standard zig-zag bijection, folding the sign into the low bit so
// small-magnitude negative numbers cost as few varint bytes as small
// positive ones.
func zigZagEncode(n int64) uint64 {
	return uint64(n<<1) ^ uint64(n>>63)
}

// zigZagDecode reverses zigZagEncode.
func zigZagDecode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// appendVarint appends the continuation-bit-framed 7-bit-group encoding of
// u to dst and returns the grown slice. Groups are emitted little-endian;
// every byte except the last has its continuation bit (0x80) set.
func appendVarint(dst []byte, u uint64) []byte {
	for u >= 0x80 {
		dst = append(dst, byte(u)|0x80)
		u >>= 7
	}
	return append(dst, byte(u))
}

// encodeLong encodes n as a zig-zag varint.
func encodeLong(n int64) []byte {
	scratch := getScratch()
	defer putScratch(scratch)
	*scratch = appendVarint(*scratch, zigZagEncode(n))
	out := make([]byte, len(*scratch))
	copy(out, *scratch)
	return out
}

// varintLen returns the number of bytes appendVarint would emit for u,
// without allocating.
func varintLen(u uint64) int {
	n := 1
	for u >= 0x80 {
		n++
		u >>= 7
	}
	return n
}

// longByteLen returns the wire length, in bytes, of n's zig-zag varint
// encoding. Used by the canonicity property: ceil((64-clz(zigzag(n)))/7),
// or 1 for zero.
func longByteLen(n int64) int {
	return varintLen(zigZagEncode(n))
}

// decodeLongFrom decodes one zig-zag varint, pulling bytes from next one at
// a time since a varint's own length isn't known up front (readLong feeds
// it Stream.Read(1) results).
func decodeLongFrom(next func() (byte, error)) (int64, error) {
	var u uint64
	var shift uint
	for {
		b, err := next()
		if err != nil {
			return 0, err
		}
		u |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			break
		}
		shift += 7
		if shift >= 70 {
			// A conforming zig-zag long never needs more than 10 continuation
			// groups (64 bits / 7 bits per group, rounded up); anything longer
			// indicates a corrupt or hostile stream rather than a legitimately
			// large value.
			return 0, ErrTruncatedStream
		}
	}
	return zigZagDecode(u), nil
}
