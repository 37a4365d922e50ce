package bytebuf

import "encoding/binary"

// U16 interprets b as a big-endian unsigned integer of at most 2 bytes.
func (b *Buffer) U16() (uint16, error) {
	v, err := b.bigEndian(2, "U16")
	return uint16(v), err
}

// U32 interprets b as a big-endian unsigned integer of at most 4 bytes.
// For example the buffer "01 00 00" yields 65536.
func (b *Buffer) U32() (uint32, error) {
	v, err := b.bigEndian(4, "U32")
	return uint32(v), err
}

// U64 interprets b as a big-endian unsigned integer of at most 8 bytes.
func (b *Buffer) U64() (uint64, error) {
	return b.bigEndian(8, "U64")
}

// bigEndian zero-extends b on the left to 8 bytes.
func (b *Buffer) bigEndian(width int, name string) (uint64, error) {
	data := b.raw()
	if len(data) > width {
		return 0, rangeOverflow("%d bytes do not fit %s (max %d)", len(data), name, width)
	}
	var wide [8]byte
	copy(wide[8-len(data):], data)
	return binary.BigEndian.Uint64(wide[:]), nil
}

// Slice returns a copy of count bytes starting at offset.
func (b *Buffer) Slice(offset, count int) (*Buffer, error) {
	n := b.Len()
	if offset < 0 || count < 0 || count > n || offset > n-count {
		return nil, outOfBounds("slice [%d:+%d] outside buffer of %d bytes", offset, count, n)
	}
	return FromBytes(b.raw()[offset : offset+count]), nil
}

// First returns a copy of the leading count bytes.
func (b *Buffer) First(count int) (*Buffer, error) {
	if count < 0 || count > b.Len() {
		return nil, outOfBounds("first %d bytes of buffer of %d bytes", count, b.Len())
	}
	return FromBytes(b.raw()[:count]), nil
}

// Last returns a copy of the trailing count bytes.
func (b *Buffer) Last(count int) (*Buffer, error) {
	n := b.Len()
	if count < 0 || count > n {
		return nil, outOfBounds("last %d bytes of buffer of %d bytes", count, n)
	}
	return FromBytes(b.raw()[n-count:]), nil
}

// Bit numbering is per byte: 0 is the least significant bit, 7 the most.

func (b *Buffer) checkBit(index, bitNum int) error {
	if bitNum < 0 || bitNum > 7 {
		return invalidArgument("bit number %d outside [0,7]", bitNum)
	}
	if index < 0 || index >= b.Len() {
		return outOfBounds("index %d outside buffer of %d bytes", index, b.Len())
	}
	return nil
}

// Bit reports whether bit bitNum of byte index is set.
func (b *Buffer) Bit(index, bitNum int) (bool, error) {
	if err := b.checkBit(index, bitNum); err != nil {
		return false, err
	}
	return b.data[index]&(1<<bitNum) != 0, nil
}

func (b *Buffer) SetBit(index, bitNum int) error {
	if err := b.checkBit(index, bitNum); err != nil {
		return err
	}
	b.data[index] |= 1 << bitNum
	return nil
}

func (b *Buffer) ResetBit(index, bitNum int) error {
	if err := b.checkBit(index, bitNum); err != nil {
		return err
	}
	b.data[index] &^= 1 << bitNum
	return nil
}

// WriteBit sets or resets bit bitNum of byte index according to value.
func (b *Buffer) WriteBit(index, bitNum int, value bool) error {
	if value {
		return b.SetBit(index, bitNum)
	}
	return b.ResetBit(index, bitNum)
}
