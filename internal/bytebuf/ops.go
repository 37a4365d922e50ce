package bytebuf

// Concat returns a new buffer holding a followed by b.
func Concat(a, b *Buffer) *Buffer {
	data := make([]byte, 0, a.Len()+b.Len())
	data = append(data, a.raw()...)
	data = append(data, b.raw()...)
	return &Buffer{data: data}
}

// ConcatByte returns a new buffer holding b followed by v.
func ConcatByte(b *Buffer, v byte) *Buffer {
	data := make([]byte, 0, b.Len()+1)
	data = append(data, b.raw()...)
	return &Buffer{data: append(data, v)}
}

// PrefixByte returns a new buffer holding v followed by b.
func PrefixByte(v byte, b *Buffer) *Buffer {
	data := make([]byte, 0, 1+b.Len())
	data = append(data, v)
	return &Buffer{data: append(data, b.raw()...)}
}

// Xor combines equal-length buffers byte by byte.
func Xor(a, b *Buffer) (*Buffer, error) {
	return combine("^", a, b, func(x, y byte) byte { return x ^ y })
}

// Or combines equal-length buffers byte by byte.
func Or(a, b *Buffer) (*Buffer, error) {
	return combine("|", a, b, func(x, y byte) byte { return x | y })
}

// And combines equal-length buffers byte by byte.
func And(a, b *Buffer) (*Buffer, error) {
	return combine("&", a, b, func(x, y byte) byte { return x & y })
}

func combine(op string, a, b *Buffer, fn func(x, y byte) byte) (*Buffer, error) {
	left, right := a.raw(), b.raw()
	if len(left) != len(right) {
		return nil, invalidArgument("operand sizes differ in '%s': %d and %d bytes", op, len(left), len(right))
	}
	out := make([]byte, len(left))
	for i := range left {
		out[i] = fn(left[i], right[i])
	}
	return &Buffer{data: out}, nil
}
