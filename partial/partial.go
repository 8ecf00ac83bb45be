// Package partial implements partial application for functions whose
// arity is only known at runtime. A Func takes a fixed number of
// arguments as a []any; Call binds a prefix of those arguments and
// returns a Func that waits for the rest.
//
// Arity is checked at every call boundary: binding more arguments
// than a Func takes, or invoking it with the wrong number of arguments,
// fails with an *ArityError and the underlying function is not called.
//
// When the arity is known statically, the functions in the
// tuple/tuplefunc package are a better fit.
package partial

import (
	"github.com/rogpeppe/variadic/slice"
)

// Func represents a function of fixed arity. Func values are immutable
// and may be invoked concurrently, provided the underlying
// function allows it.
//
// The zero Func takes no arguments and returns nil.
type Func struct {
	arity int
	fn    func(args []any) (any, error)
}

// New returns a Func that takes exactly arity arguments
// and calls fn with them. The args slice passed to fn
// is never retained by the Func, so fn may keep or modify it.
//
// New panics if arity is negative or fn is nil.
func New(arity int, fn func(args []any) (any, error)) Func {
	if arity < 0 {
		panic("partial: negative arity")
	}
	if fn == nil {
		panic("partial: nil function")
	}
	return Func{
		arity: arity,
		fn:    fn,
	}
}

// Arity returns the number of arguments that must be passed to Invoke.
func (f Func) Arity() int {
	return f.arity
}

// Invoke calls the function with the given arguments, preceded
// by any arguments bound with Call, and returns its result.
// The underlying function is called exactly once, unless
// len(args) != f.Arity(), in which case an *ArityError is
// returned and nothing is called.
func (f Func) Invoke(args ...any) (any, error) {
	if len(args) != f.arity {
		return nil, &ArityError{
			Want: f.arity,
			Got:  len(args),
		}
	}
	return f.call(slice.Spread(args))
}

func (f Func) call(args []any) (any, error) {
	if f.fn == nil {
		return nil, nil
	}
	return f.fn(args)
}

// Call returns a Func that calls f with the bound arguments
// followed by the arguments it is invoked with. The returned
// Func takes f.Arity()-len(bound) arguments; it can be passed
// to Call again to bind more of them.
//
// If more arguments are bound than f takes, Call returns an
// *ArityError.
func Call(f Func, bound ...any) (Func, error) {
	if len(bound) > f.arity {
		return Func{}, &ArityError{
			Want: f.arity,
			Got:  len(bound),
		}
	}
	if len(bound) == 0 {
		return f, nil
	}
	head := slice.Spread(bound)
	return Func{
		arity: f.arity - len(head),
		fn: func(tail []any) (any, error) {
			return f.call(slice.Concat(head, tail))
		},
	}, nil
}

// CallFunc is a shorthand for calling Of followed by Call.
func CallFunc(fn any, bound ...any) (Func, error) {
	f, err := Of(fn)
	if err != nil {
		return Func{}, err
	}
	return Call(f, bound...)
}
