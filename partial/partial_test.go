package partial_test

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/rogpeppe/variadic/partial"
)

func join(x string, y int, z bool) string {
	return x + fmt.Sprint(y) + fmt.Sprint(z)
}

func TestCallScenario(t *testing.T) {
	c := qt.New(t)
	f, err := partial.CallFunc(join, "hello")
	c.Assert(err, qt.IsNil)
	c.Assert(f.Arity(), qt.Equals, 2)
	got, err := f.Invoke(100, true)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, "hello100true")
}

var callTests = []struct {
	testName string
	bound    []any
	args     []any
}{{
	testName: "NoneBound",
	args:     []any{"hello", 100, true},
}, {
	testName: "OneBound",
	bound:    []any{"hello"},
	args:     []any{100, true},
}, {
	testName: "TwoBound",
	bound:    []any{"hello", 100},
	args:     []any{true},
}, {
	testName: "AllBound",
	bound:    []any{"hello", 100, true},
}}

func TestCall(t *testing.T) {
	c := qt.New(t)
	target, err := partial.Of(join)
	c.Assert(err, qt.IsNil)
	for _, test := range callTests {
		c.Run(test.testName, func(c *qt.C) {
			f, err := partial.Call(target, test.bound...)
			c.Assert(err, qt.IsNil)
			c.Assert(f.Arity(), qt.Equals, 3-len(test.bound))
			got, err := f.Invoke(test.args...)
			c.Assert(err, qt.IsNil)
			c.Assert(got, qt.Equals, "hello100true")
		})
	}
}

func TestStagedCall(t *testing.T) {
	c := qt.New(t)
	var calls [][]any
	target := partial.New(4, func(args []any) (any, error) {
		calls = append(calls, args)
		return len(calls), nil
	})
	f1, err := partial.Call(target, "a")
	c.Assert(err, qt.IsNil)
	f2, err := partial.Call(f1, "b", "c")
	c.Assert(err, qt.IsNil)
	c.Assert(f2.Arity(), qt.Equals, 1)
	c.Assert(calls, qt.HasLen, 0)

	got, err := f2.Invoke("d")
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, 1)
	c.Assert(calls, qt.DeepEquals, [][]any{{"a", "b", "c", "d"}})

	// f1 is unaffected by the further binding.
	got, err = f1.Invoke("x", "y", "z")
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, 2)
	c.Assert(calls[1], qt.DeepEquals, []any{"a", "x", "y", "z"})
}

func TestBoundArgumentsAreCopied(t *testing.T) {
	c := qt.New(t)
	target := partial.New(2, func(args []any) (any, error) {
		return fmt.Sprint(args...), nil
	})
	bound := []any{"first"}
	f, err := partial.Call(target, bound...)
	c.Assert(err, qt.IsNil)
	bound[0] = "changed"
	got, err := f.Invoke("second")
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, "firstsecond")
}

func TestInvokeArityMismatch(t *testing.T) {
	c := qt.New(t)
	called := false
	target := partial.New(3, func(args []any) (any, error) {
		called = true
		return nil, nil
	})
	f, err := partial.Call(target, 1)
	c.Assert(err, qt.IsNil)

	for _, args := range [][]any{nil, {2}, {2, 3, 4}} {
		_, err := f.Invoke(args...)
		c.Assert(err, qt.ErrorIs, partial.ErrArityMismatch)
		var aerr *partial.ArityError
		c.Assert(errors.As(err, &aerr), qt.IsTrue)
		c.Assert(aerr.Want, qt.Equals, 2)
		c.Assert(aerr.Got, qt.Equals, len(args))
	}
	c.Assert(called, qt.IsFalse)
}

func TestCallTooManyBound(t *testing.T) {
	c := qt.New(t)
	target := partial.New(1, func(args []any) (any, error) {
		return args[0], nil
	})
	_, err := partial.Call(target, 1, 2)
	c.Assert(err, qt.ErrorMatches, `arity mismatch: function takes 1 argument, got 2`)
	c.Assert(err, qt.ErrorIs, partial.ErrArityMismatch)
}

func TestZeroFunc(t *testing.T) {
	c := qt.New(t)
	var f partial.Func
	c.Assert(f.Arity(), qt.Equals, 0)
	got, err := f.Invoke()
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.IsNil)
	_, err = f.Invoke(1)
	c.Assert(err, qt.ErrorIs, partial.ErrArityMismatch)
}

func TestNewPanics(t *testing.T) {
	c := qt.New(t)
	c.Assert(func() {
		partial.New(-1, func([]any) (any, error) { return nil, nil })
	}, qt.PanicMatches, `partial: negative arity`)
	c.Assert(func() {
		partial.New(0, nil)
	}, qt.PanicMatches, `partial: nil function`)
}

var ofErrorTests = []struct {
	testName    string
	fn          any
	expectError string
}{{
	testName:    "NotFunc",
	fn:          42,
	expectError: `not a fixed-arity function: int`,
}, {
	testName:    "NilFunc",
	fn:          (func())(nil),
	expectError: `not a fixed-arity function: func\(\)`,
}, {
	testName:    "Variadic",
	fn:          fmt.Sprint,
	expectError: `not a fixed-arity function: func\(\.\.\.interface \{\}\) string is variadic`,
}, {
	testName:    "TooManyResults",
	fn:          func() (int, int) { return 0, 0 },
	expectError: `not a fixed-arity function: func\(\) \(int, int\) has unsupported results`,
}, {
	testName:    "SecondResultNotError",
	fn:          func() (int, string) { return 0, "" },
	expectError: `.* has unsupported results`,
}}

func TestOfErrors(t *testing.T) {
	c := qt.New(t)
	for _, test := range ofErrorTests {
		c.Run(test.testName, func(c *qt.C) {
			_, err := partial.Of(test.fn)
			c.Assert(err, qt.ErrorIs, partial.ErrNotFunc)
			c.Assert(err, qt.ErrorMatches, test.expectError)
		})
	}
}

func TestOfResults(t *testing.T) {
	c := qt.New(t)
	errBad := errors.New("bad")

	f, err := partial.Of(func() {})
	c.Assert(err, qt.IsNil)
	got, err := f.Invoke()
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.IsNil)

	f, err = partial.Of(func(fail bool) error {
		if fail {
			return errBad
		}
		return nil
	})
	c.Assert(err, qt.IsNil)
	_, err = f.Invoke(false)
	c.Assert(err, qt.IsNil)
	_, err = f.Invoke(true)
	c.Assert(err, qt.Equals, errBad)

	f, err = partial.Of(strings.Index)
	c.Assert(err, qt.IsNil)
	c.Assert(f.Arity(), qt.Equals, 2)

	f, err = partial.Of(func(s string) (int, error) {
		if s == "" {
			return 0, errBad
		}
		return len(s), nil
	})
	c.Assert(err, qt.IsNil)
	got, err = f.Invoke("abc")
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, 3)
	_, err = f.Invoke("")
	c.Assert(err, qt.Equals, errBad)
}

func TestOfArgErrors(t *testing.T) {
	c := qt.New(t)
	f, err := partial.CallFunc(join, "hello")
	c.Assert(err, qt.IsNil)

	_, err = f.Invoke("100", true)
	var aerr *partial.ArgError
	c.Assert(errors.As(err, &aerr), qt.IsTrue)
	c.Assert(aerr.Index, qt.Equals, 1)
	c.Assert(aerr.Want, qt.Equals, reflect.TypeOf((*int)(nil)).Elem())
	c.Assert(err, qt.ErrorMatches, `argument 1: cannot use string as int`)

	_, err = f.Invoke(100, nil)
	c.Assert(err, qt.ErrorMatches, `argument 2: cannot use nil as bool`)
}

func TestOfNilArguments(t *testing.T) {
	c := qt.New(t)
	f, err := partial.Of(func(p *int, e error, m map[string]int) bool {
		return p == nil && e == nil && m == nil
	})
	c.Assert(err, qt.IsNil)
	got, err := f.Invoke(nil, nil, nil)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, true)
}

func TestOfInterfaceParameter(t *testing.T) {
	c := qt.New(t)
	f, err := partial.CallFunc(fmt.Sprintf, "%v-%v")
	c.Assert(err, qt.ErrorIs, partial.ErrNotFunc)

	f, err = partial.CallFunc(func(s fmt.Stringer) string {
		return s.String()
	})
	c.Assert(err, qt.IsNil)
	got, err := f.Invoke(reflect.TypeOf((*int)(nil)).Elem())
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, "int")
}
