package bytebuf

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/danmuck/binctl/internal/testutil/testlog"
)

func TestNewFillsValue(t *testing.T) {
	testlog.Start(t)

	if b := New(0, 0x34); b.Len() != 0 || !b.IsEmpty() {
		t.Fatalf("expected empty buffer, got %d bytes", b.Len())
	}
	b := New(3, 0x34)
	if !bytes.Equal(b.Bytes(), []byte{0x34, 0x34, 0x34}) {
		t.Fatalf("unexpected fill: %x", b.Bytes())
	}
	if !New(2, 0).Equal(FromBytes([]byte{0, 0})) {
		t.Fatalf("expected zero fill")
	}
}

func TestFromBytesDoesNotAlias(t *testing.T) {
	testlog.Start(t)

	src := []byte{1, 2, 3}
	b := FromBytes(src)
	src[0] = 0xFF
	if v, _ := b.At(0); v != 1 {
		t.Fatalf("buffer aliases source slice")
	}
	out := b.Bytes()
	out[1] = 0xFF
	if v, _ := b.At(1); v != 2 {
		t.Fatalf("Bytes result aliases buffer")
	}
	if FromBytes(nil).Bytes() == nil {
		t.Fatalf("expected non-nil empty slice")
	}
}

func TestAtBounds(t *testing.T) {
	testlog.Start(t)

	b := FromBytes([]byte{9})
	if v, err := b.At(0); err != nil || v != 9 {
		t.Fatalf("unexpected at(0): %d %v", v, err)
	}
	for _, i := range []int{-1, 1} {
		if _, err := b.At(i); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("at(%d): expected ErrOutOfBounds, got %v", i, err)
		}
	}
}

func TestAppendMutatesAndChains(t *testing.T) {
	testlog.Start(t)

	b := mustHex(t, "01")
	got := b.Append(mustHex(t, "02 03")).AppendByte(0x04).Append(nil).Append(New(0, 0))
	if got != b {
		t.Fatalf("expected append to return receiver")
	}
	if !b.Equal(mustHex(t, "01 02 03 04")) {
		t.Fatalf("unexpected contents: %s", b)
	}

	var zero Buffer
	zero.AppendByte(0xAA)
	if zero.Len() != 1 {
		t.Fatalf("expected zero value to accept appends")
	}
}

func TestEquality(t *testing.T) {
	testlog.Start(t)

	var nilBuf *Buffer
	cases := []struct {
		a, b *Buffer
		want bool
	}{
		{mustHex(t, "01 02"), mustHex(t, "0102"), true},
		{mustHex(t, "01 02"), mustHex(t, "01 03"), false},
		{mustHex(t, "01"), mustHex(t, "01 00"), false},
		{New(0, 0), mustHex(t, ""), true},
		{nilBuf, New(0, 0), true},
	}
	for i, tc := range cases {
		if got := tc.a.Equal(tc.b); got != tc.want {
			t.Fatalf("case %d: got %v want %v", i, got, tc.want)
		}
	}
}

func TestConcatVariantsDoNotMutate(t *testing.T) {
	testlog.Start(t)

	a := mustHex(t, "01 02")
	b := mustHex(t, "03")
	if got := Concat(a, b); !got.Equal(mustHex(t, "01 02 03")) {
		t.Fatalf("unexpected concat: %s", got)
	}
	if got := ConcatByte(a, 0xFF); !got.Equal(mustHex(t, "01 02 FF")) {
		t.Fatalf("unexpected concat byte: %s", got)
	}
	if got := PrefixByte(0xFF, a); !got.Equal(mustHex(t, "FF 01 02")) {
		t.Fatalf("unexpected prefix byte: %s", got)
	}
	if got := Concat(nil, New(0, 0)); got.Len() != 0 {
		t.Fatalf("expected empty concat")
	}
	if !a.Equal(mustHex(t, "01 02")) || !b.Equal(mustHex(t, "03")) {
		t.Fatalf("operands mutated: %s / %s", a, b)
	}
}

func TestBitwiseOperators(t *testing.T) {
	testlog.Start(t)

	a := mustHex(t, "FF00")
	b := mustHex(t, "0FF0")
	cases := []struct {
		name string
		fn   func(a, b *Buffer) (*Buffer, error)
		want string
	}{
		{"xor", Xor, "F0F0"},
		{"or", Or, "FFF0"},
		{"and", And, "0F00"},
	}
	for _, tc := range cases {
		got, err := tc.fn(a, b)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if !got.Equal(mustHex(t, tc.want)) {
			t.Fatalf("%s: got %s want %s", tc.name, got, tc.want)
		}
		if _, err := tc.fn(mustHex(t, "0102"), mustHex(t, "010203")); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("%s: expected ErrInvalidArgument, got %v", tc.name, err)
		}
		empty, err := tc.fn(New(0, 0), nil)
		if err != nil || empty.Len() != 0 {
			t.Fatalf("%s: expected empty result for empty operands, got %v", tc.name, err)
		}
	}
}

func TestIntegerView(t *testing.T) {
	testlog.Start(t)

	if v, err := mustHex(t, "01 00 00").U32(); err != nil || v != 65536 {
		t.Fatalf("unexpected u32: %d %v", v, err)
	}
	if v, err := New(0, 0).U64(); err != nil || v != 0 {
		t.Fatalf("unexpected empty u64: %d %v", v, err)
	}
	if v, err := mustHex(t, "AB").U16(); err != nil || v != 0xAB {
		t.Fatalf("unexpected u16: %#x %v", v, err)
	}
	if v, err := mustHex(t, "12 34").U16(); err != nil || v != 0x1234 {
		t.Fatalf("unexpected u16: %#x %v", v, err)
	}
	if v, err := mustHex(t, "01 02 03 04 05 06 07 08").U64(); err != nil || v != 0x0102030405060708 {
		t.Fatalf("unexpected u64: %#x %v", v, err)
	}
	if v, err := mustHex(t, "FF FF FF FF").U32(); err != nil || v != 0xFFFFFFFF {
		t.Fatalf("unexpected u32: %#x %v", v, err)
	}

	if _, err := mustHex(t, "01 02 03").U16(); !errors.Is(err, ErrRangeOverflow) {
		t.Fatalf("u16: expected ErrRangeOverflow, got %v", err)
	}
	if _, err := New(5, 0).U32(); !errors.Is(err, ErrRangeOverflow) {
		t.Fatalf("u32: expected ErrRangeOverflow, got %v", err)
	}
	if _, err := New(9, 0).U64(); !errors.Is(err, ErrRangeOverflow) {
		t.Fatalf("u64: expected ErrRangeOverflow, got %v", err)
	}
}

func TestSliceBounds(t *testing.T) {
	testlog.Start(t)

	b := mustHex(t, "00 11 22 33")
	got, err := b.Slice(1, 3)
	if err != nil {
		t.Fatalf("slice tail: %v", err)
	}
	if !got.Equal(mustHex(t, "11 22 33")) {
		t.Fatalf("unexpected tail: %s", got)
	}
	if got, err := b.Slice(4, 0); err != nil || got.Len() != 0 {
		t.Fatalf("expected empty slice at end, got %v", err)
	}
	for _, tc := range [][2]int{{1, 4}, {5, 0}, {-1, 1}, {0, -1}, {2, int(^uint(0) >> 1)}} {
		if _, err := b.Slice(tc[0], tc[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("slice(%d, %d): expected ErrOutOfBounds, got %v", tc[0], tc[1], err)
		}
	}

	got.AppendByte(0x44)
	if b.Len() != 4 {
		t.Fatalf("slice aliases source")
	}
}

func TestFirstLast(t *testing.T) {
	testlog.Start(t)

	b := mustHex(t, "00 11 22 33")
	if got, err := b.First(2); err != nil || !got.Equal(mustHex(t, "00 11")) {
		t.Fatalf("unexpected first: %s %v", got, err)
	}
	if got, err := b.Last(2); err != nil || !got.Equal(mustHex(t, "22 33")) {
		t.Fatalf("unexpected last: %s %v", got, err)
	}
	if got, err := b.Last(4); err != nil || !got.Equal(b) {
		t.Fatalf("unexpected full last: %s %v", got, err)
	}
	if got, err := New(0, 0).First(0); err != nil || got.Len() != 0 {
		t.Fatalf("expected empty first of empty buffer: %v", err)
	}
	if _, err := b.First(5); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("first: expected ErrOutOfBounds, got %v", err)
	}
	if _, err := b.Last(5); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("last: expected ErrOutOfBounds, got %v", err)
	}
}

func TestBitAccess(t *testing.T) {
	testlog.Start(t)

	b := New(1, 0)
	if err := b.SetBit(0, 3); err != nil {
		t.Fatalf("set bit: %v", err)
	}
	for bit := 0; bit < 8; bit++ {
		got, err := b.Bit(0, bit)
		if err != nil {
			t.Fatalf("get bit %d: %v", bit, err)
		}
		if got != (bit == 3) {
			t.Fatalf("bit %d: got %v", bit, got)
		}
	}
	if v, _ := b.At(0); v != 0x08 {
		t.Fatalf("expected little-endian bit numbering, got %#x", v)
	}
	if err := b.ResetBit(0, 3); err != nil {
		t.Fatalf("reset bit: %v", err)
	}
	if got, _ := b.Bit(0, 3); got {
		t.Fatalf("expected bit cleared")
	}

	if err := b.WriteBit(0, 7, true); err != nil {
		t.Fatalf("write bit: %v", err)
	}
	if v, _ := b.At(0); v != 0x80 {
		t.Fatalf("unexpected byte after write: %#x", v)
	}
	if err := b.WriteBit(0, 7, false); err != nil {
		t.Fatalf("write bit: %v", err)
	}
	if v, _ := b.At(0); v != 0x00 {
		t.Fatalf("unexpected byte after clear: %#x", v)
	}
}

func TestBitAccessRejectsBadArguments(t *testing.T) {
	testlog.Start(t)

	b := mustHex(t, "FF")
	for _, bit := range []int{-1, 8} {
		if _, err := b.Bit(0, bit); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("bit %d: expected ErrInvalidArgument, got %v", bit, err)
		}
		if err := b.ResetBit(0, bit); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("reset %d: expected ErrInvalidArgument, got %v", bit, err)
		}
	}
	for _, idx := range []int{-1, 1} {
		if _, err := b.Bit(idx, 0); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("index %d: expected ErrOutOfBounds, got %v", idx, err)
		}
		if err := b.WriteBit(idx, 0, false); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("write %d: expected ErrOutOfBounds, got %v", idx, err)
		}
	}
	if err := New(0, 0).SetBit(0, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("empty: expected ErrOutOfBounds, got %v", err)
	}
	if !b.Equal(mustHex(t, "FF")) {
		t.Fatalf("failed bit calls must not mutate: %s", b)
	}
}

type fixedReader struct {
	next byte
}

func (r *fixedReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.next
		r.next++
	}
	return len(p), nil
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestRandomUsesSource(t *testing.T) {
	testlog.Start(t)

	prev := SetRandSource(&fixedReader{next: 0xFE})
	defer SetRandSource(prev)

	b, err := Random(3)
	if err != nil {
		t.Fatalf("random: %v", err)
	}
	if !b.Equal(mustHex(t, "FE FF 00")) {
		t.Fatalf("unexpected random bytes: %s", b)
	}

	got, err := b.Randomize(2)
	if err != nil || got != b {
		t.Fatalf("randomize: %v", err)
	}
	if !b.Equal(mustHex(t, "01 02")) {
		t.Fatalf("unexpected randomized bytes: %s", b)
	}

	if _, err := Random(-1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for negative count, got %v", err)
	}

	SetRandSource(failingReader{})
	if _, err := b.Randomize(4); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected source error, got %v", err)
	}
	if !b.Equal(mustHex(t, "01 02")) {
		t.Fatalf("failed randomize must not mutate: %s", b)
	}
}

func TestCloneAndGrow(t *testing.T) {
	testlog.Start(t)

	b := mustHex(t, "01 02")
	c := b.Clone()
	c.Increment()
	if !b.Equal(mustHex(t, "01 02")) {
		t.Fatalf("clone aliases source")
	}
	b.Grow(64)
	if b.Len() != 2 || b.Cap() < 66 {
		t.Fatalf("unexpected grow result: len=%d cap=%d", b.Len(), b.Cap())
	}
}
