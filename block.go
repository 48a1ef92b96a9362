package avro

import "io"

// writeBlock emits an array/map container as a single block, the simplest
// conforming encoding the format allows: a positive count (skipped
// entirely when n is 0) followed by n items, then the terminating zero
// count. Multiple blocks and the negative-count/byte-size form are legal
// on the wire (see readBlocks) but are not required of a writer, so this
// encoder never produces them — one block keeps the "list of items with a
// boundary" shape the teacher's list.go WriteTo loop had, with Avro's
// count-prefix-and-terminator framing standing in for that file's
// alignment padding.
func writeBlock(s Stream, codec LongCodec, n int, writeItem func(i int) error) error {
	if n > 0 {
		if err := writeLong(s, codec, int64(n)); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := writeItem(i); err != nil {
				return err
			}
		}
	}
	return writeLong(s, codec, 0)
}

// readBlocks consumes one or more blocks until a terminating zero count,
// invoking readItem once per item regardless of which block it fell in.
// A negative count -n is a skippable block: n items follow, preceded by a
// long giving the block's byte size, which this function has no need to
// use since it always materializes every item anyway (see skipBlocks for
// the path that does use it).
func readBlocks(s Stream, codec LongCodec, readItem func() error) error {
	for {
		count, err := readLong(s, codec)
		if err != nil {
			return err
		}
		if count == 0 {
			return nil
		}
		n := count
		if n < 0 {
			n = -n
			if _, err := readLong(s, codec); err != nil { // block byte size, unused here
				return err
			}
		}
		for i := int64(0); i < n; i++ {
			if err := readItem(); err != nil {
				return err
			}
		}
	}
}

// skipBlocks consumes one or more blocks without materializing values. A
// block carrying a byte-size prefix (the negative-count form) is skipped
// by seeking the stream forward by that many bytes directly; a
// positive-count block has no such prefix, so each of its items is
// skipped individually via skipItem.
func skipBlocks(s Stream, codec LongCodec, skipItem func() error) error {
	for {
		count, err := readLong(s, codec)
		if err != nil {
			return err
		}
		if count == 0 {
			return nil
		}
		if count < 0 {
			size, err := readLong(s, codec)
			if err != nil {
				return err
			}
			if _, err := s.Seek(size, io.SeekCurrent); err != nil {
				return err
			}
			continue
		}
		for i := int64(0); i < count; i++ {
			if err := skipItem(); err != nil {
				return err
			}
		}
	}
}
