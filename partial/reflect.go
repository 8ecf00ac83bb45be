package partial

import (
	"fmt"
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Of returns a Func that calls fn, which must be a non-variadic
// function. The arity of the Func is the number of parameters of fn.
//
// The function may return no values, a single value, an error, or
// a value and an error. When fn returns only an error, the result
// of Invoke is nil.
//
// Each argument passed to Invoke must be assignable to the corresponding
// parameter; a nil argument is accepted for a parameter of pointer,
// interface, map, slice, channel or function type. Otherwise Invoke
// returns an *ArgError without calling fn.
func Of(fn any) (Func, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return Func{}, fmt.Errorf("%w: %T", ErrNotFunc, fn)
	}
	t := v.Type()
	if t.IsVariadic() {
		return Func{}, fmt.Errorf("%w: %v is variadic", ErrNotFunc, t)
	}
	switch {
	case t.NumOut() <= 1:
	case t.NumOut() == 2 && t.Out(1) == errorType:
	default:
		return Func{}, fmt.Errorf("%w: %v has unsupported results", ErrNotFunc, t)
	}
	return New(t.NumIn(), func(args []any) (any, error) {
		in := make([]reflect.Value, len(args))
		for i, arg := range args {
			pt := t.In(i)
			if arg == nil {
				if !nilable(pt) {
					return nil, &ArgError{
						Index: i,
						Want:  pt,
					}
				}
				in[i] = reflect.Zero(pt)
				continue
			}
			av := reflect.ValueOf(arg)
			if !av.Type().AssignableTo(pt) {
				return nil, &ArgError{
					Index: i,
					Want:  pt,
					Got:   av.Type(),
				}
			}
			in[i] = av
		}
		return results(t, v.Call(in))
	}), nil
}

func results(t reflect.Type, out []reflect.Value) (any, error) {
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		if t.Out(0) == errorType {
			err, _ := out[0].Interface().(error)
			return nil, err
		}
		return out[0].Interface(), nil
	}
	err, _ := out[1].Interface().(error)
	return out[0].Interface(), err
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	}
	return false
}
