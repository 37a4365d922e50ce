package bytebuf

import (
	"errors"

	"github.com/danmuck/binctl/internal/fault"
)

var (
	ErrInvalidArgument = errors.New("bytebuf: invalid argument")
	ErrOutOfBounds     = errors.New("bytebuf: out of bounds")
	ErrRangeOverflow   = errors.New("bytebuf: range overflow")
)

func invalidArgument(format string, args ...any) error {
	return fault.Newf(ErrInvalidArgument, format, args...)
}

func outOfBounds(format string, args ...any) error {
	return fault.Newf(ErrOutOfBounds, format, args...)
}

func rangeOverflow(format string, args ...any) error {
	return fault.Newf(ErrRangeOverflow, format, args...)
}
