package bytebuf

// Increment adds one to b read as a big-endian unsigned integer. The carry
// ripples from the last byte toward the first; a carry out of the first byte
// is dropped, so the width never changes and all 0xFF wraps to all zero.
func (b *Buffer) Increment() *Buffer {
	for i := b.Len() - 1; i >= 0; i-- {
		b.data[i]++
		if b.data[i] != 0x00 {
			break
		}
	}
	return b
}

// Decrement subtracts one from b read as a big-endian unsigned integer. An
// all-zero buffer wraps to all 0xFF.
func (b *Buffer) Decrement() *Buffer {
	for i := b.Len() - 1; i >= 0; i-- {
		b.data[i]--
		if b.data[i] != 0xFF {
			break
		}
	}
	return b
}
