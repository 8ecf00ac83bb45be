package partial

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrArityMismatch is matched by every *ArityError.
	ErrArityMismatch = errors.New("arity mismatch")

	// ErrNotFunc is returned by Of when its argument
	// cannot be used as a Func.
	ErrNotFunc = errors.New("not a fixed-arity function")
)

// ArityError is returned when a Func is given a different number of
// arguments than it takes.
type ArityError struct {
	// Want holds the number of arguments the function takes.
	Want int
	// Got holds the number of arguments supplied.
	Got int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("arity mismatch: function takes %d argument%s, got %d", e.Want, plural(e.Want), e.Got)
}

// Is reports whether target is ErrArityMismatch.
func (e *ArityError) Is(target error) bool {
	return target == ErrArityMismatch
}

// ArgError is returned when an argument to a Func created by Of
// cannot be passed to the underlying function.
type ArgError struct {
	// Index holds the position of the argument, counting
	// any bound arguments.
	Index int
	Want  reflect.Type
	// Got is nil when the argument was nil.
	Got reflect.Type
}

func (e *ArgError) Error() string {
	got := "nil"
	if e.Got != nil {
		got = e.Got.String()
	}
	return fmt.Sprintf("argument %d: cannot use %s as %v", e.Index, got, e.Want)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
