package bytebuf

import (
	"iter"
	"slices"
	"strings"
	"unicode"
	"unicode/utf16"
)

const (
	upperDigits = "0123456789ABCDEF"
	lowerDigits = "0123456789abcdef"
)

// HexFormat controls Hex output. An interval of zero or less disables that
// separator. When several intervals match the same byte position the newline
// wins over two spaces, which wins over one space.
type HexFormat struct {
	OneSpaceEvery  int
	TwoSpacesEvery int
	NewlineEvery   int
	LineIndent     int
	Uppercase      bool
}

// MaxLineIndent bounds HexFormat.LineIndent.
const MaxLineIndent = 1024

// Validate rejects negative intervals and indents outside [0, MaxLineIndent].
func (f HexFormat) Validate() error {
	switch {
	case f.OneSpaceEvery < 0:
		return invalidArgument("one space interval %d is negative", f.OneSpaceEvery)
	case f.TwoSpacesEvery < 0:
		return invalidArgument("two spaces interval %d is negative", f.TwoSpacesEvery)
	case f.NewlineEvery < 0:
		return invalidArgument("newline interval %d is negative", f.NewlineEvery)
	case f.LineIndent < 0 || f.LineIndent > MaxLineIndent:
		return invalidArgument("line indent %d outside [0,%d]", f.LineIndent, MaxLineIndent)
	}
	return nil
}

// DefaultHexFormat renders uppercase digits with one space between bytes.
func DefaultHexFormat() HexFormat {
	return HexFormat{OneSpaceEvery: 1, Uppercase: true}
}

// CompactHexFormat renders uppercase digits with no separators.
func CompactHexFormat() HexFormat {
	return HexFormat{Uppercase: true}
}

// FromHex parses text such as "12 9F F0" or "53edc01a". Hex digits of either
// case may be separated by any Unicode whitespace; anything else, or an odd
// number of digits, fails with ErrInvalidArgument.
func FromHex(text string) (*Buffer, error) {
	return parseHex(len(text)/2, func(yield func(rune) bool) {
		for _, r := range text {
			if !yield(r) {
				return
			}
		}
	})
}

// FromHexUTF16 parses UTF-16 encoded text with the same grammar as FromHex.
func FromHexUTF16(text []uint16) (*Buffer, error) {
	return parseHex(len(text)/2, slices.Values(utf16.Decode(text)))
}

func parseHex(sizeHint int, text iter.Seq[rune]) (*Buffer, error) {
	data := make([]byte, 0, sizeHint)
	var high byte
	pending := false
	pos := 0
	for r := range text {
		n, ok := nibble(r)
		switch {
		case ok && pending:
			data = append(data, high|n)
			pending = false
		case ok:
			high = n << 4
			pending = true
		case !unicode.IsSpace(r):
			return nil, invalidArgument("wrong symbol %q at position %d in hex string", r, pos)
		}
		pos++
	}
	if pending {
		return nil, invalidArgument("odd number of hex digits in hex string")
	}
	return &Buffer{data: data}, nil
}

func nibble(r rune) (byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), true
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 0x0A, true
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 0x0A, true
	}
	return 0, false
}

// Hex renders b as hex text. LineIndent spaces precede every line, the first
// included; the indent is clamped to [0, MaxLineIndent]. An empty buffer
// renders as "".
func (b *Buffer) Hex(f HexFormat) string {
	data := b.raw()
	if len(data) == 0 {
		return ""
	}
	digits := lowerDigits
	if f.Uppercase {
		digits = upperDigits
	}
	indent := strings.Repeat(" ", min(max(f.LineIndent, 0), MaxLineIndent))

	var sb strings.Builder
	sb.Grow(len(indent) + len(data)*3)
	sb.WriteString(indent)
	for i, v := range data {
		if i > 0 {
			switch {
			case every(i, f.NewlineEvery):
				sb.WriteByte('\n')
				sb.WriteString(indent)
			case every(i, f.TwoSpacesEvery):
				sb.WriteString("  ")
			case every(i, f.OneSpaceEvery):
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte(digits[v>>4])
		sb.WriteByte(digits[v&0x0F])
	}
	return sb.String()
}

func every(i, interval int) bool {
	return interval > 0 && i%interval == 0
}

// String renders b with DefaultHexFormat.
func (b *Buffer) String() string {
	return b.Hex(DefaultHexFormat())
}

// MarshalText renders b with CompactHexFormat.
func (b Buffer) MarshalText() ([]byte, error) {
	return []byte(b.Hex(CompactHexFormat())), nil
}

// UnmarshalText replaces the contents of b with the parsed hex text.
func (b *Buffer) UnmarshalText(text []byte) error {
	parsed, err := FromHex(string(text))
	if err != nil {
		return err
	}
	b.data = parsed.data
	return nil
}
