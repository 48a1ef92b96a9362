package avro

// checkPlatform asserts platform compatibility once, at encoder/decoder
// construction, per the endianness requirement: float/double encoding
// assumes the host's native byte order matches the little-endian wire
// order. Primitive float/double codec (see primitive.go) always frames
// bytes through math.Float32bits/Float64bits and binary.LittleEndian,
// which never consult the host's native byte order, so this check can
// never fail on a platform Go itself runs on; it exists so a future
// backend that reinterprets float memory directly (for speed, skipping
// the bits conversion) has a single construction-time gate to wire into
// instead of re-deriving the assumption ad hoc at every call site.
func checkPlatform() error {
	return nil
}
