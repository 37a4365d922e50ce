package bytebuf

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"
	"slices"
	"sync"
)

// Buffer is an owned byte sequence. The zero value is an empty buffer.
type Buffer struct {
	data []byte
}

// New returns a buffer of count copies of value. count must not be negative.
func New(count int, value byte) *Buffer {
	return &Buffer{data: bytes.Repeat([]byte{value}, count)}
}

// FromBytes copies b into a new buffer.
func FromBytes(b []byte) *Buffer {
	return &Buffer{data: bytes.Clone(nonNil(b))}
}

var (
	randMu     sync.Mutex
	randSource io.Reader = rand.Reader
)

// SetRandSource replaces the reader used by Random and Randomize and returns
// the previous one. A nil reader restores crypto/rand.
func SetRandSource(r io.Reader) io.Reader {
	randMu.Lock()
	defer randMu.Unlock()
	prev := randSource
	if r == nil {
		r = rand.Reader
	}
	randSource = r
	return prev
}

func readRandom(count int) ([]byte, error) {
	if count < 0 {
		return nil, invalidArgument("negative random length %d", count)
	}
	data := make([]byte, count)
	randMu.Lock()
	src := randSource
	randMu.Unlock()
	if _, err := io.ReadFull(src, data); err != nil {
		return nil, fmt.Errorf("bytebuf: read random bytes: %w", err)
	}
	return data, nil
}

// Random returns a buffer of count uniformly drawn bytes.
func Random(count int) (*Buffer, error) {
	data, err := readRandom(count)
	if err != nil {
		return nil, err
	}
	return &Buffer{data: data}, nil
}

// Randomize replaces the contents of b with count random bytes. On error b is
// left unchanged.
func (b *Buffer) Randomize(count int) (*Buffer, error) {
	data, err := readRandom(count)
	if err != nil {
		return b, err
	}
	b.data = data
	return b, nil
}

func (b *Buffer) raw() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

func nonNil(p []byte) []byte {
	if p == nil {
		return []byte{}
	}
	return p
}

func (b *Buffer) Len() int {
	return len(b.raw())
}

func (b *Buffer) Cap() int {
	return cap(b.raw())
}

func (b *Buffer) IsEmpty() bool {
	return b.Len() == 0
}

// Grow reserves room for n more bytes without changing the length.
func (b *Buffer) Grow(n int) {
	if n > 0 {
		b.data = slices.Grow(b.data, n)
	}
}

// Bytes returns a copy of the contents.
func (b *Buffer) Bytes() []byte {
	return bytes.Clone(nonNil(b.raw()))
}

// At returns the byte at index i.
func (b *Buffer) At(i int) (byte, error) {
	if i < 0 || i >= b.Len() {
		return 0, outOfBounds("index %d outside buffer of %d bytes", i, b.Len())
	}
	return b.data[i], nil
}

func (b *Buffer) Clone() *Buffer {
	return FromBytes(b.raw())
}

// Append adds the contents of other to the end of b.
func (b *Buffer) Append(other *Buffer) *Buffer {
	b.data = append(b.data, other.raw()...)
	return b
}

// AppendByte adds v to the end of b.
func (b *Buffer) AppendByte(v byte) *Buffer {
	b.data = append(b.data, v)
	return b
}

// Equal reports whether b and other hold the same bytes. A nil buffer equals
// an empty one.
func (b *Buffer) Equal(other *Buffer) bool {
	return bytes.Equal(b.raw(), other.raw())
}
