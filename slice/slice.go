// Package slice holds operations on sequences represented as
// ordinary Go slices. None of the functions mutate their arguments
// and none of the results share memory with an argument, so a result
// can be appended to or modified without affecting the caller's data.
//
// A heterogeneous sequence is just a []any; see Of.
package slice

// Of returns its arguments as a heterogeneous sequence.
func Of(vs ...any) []any {
	return Concat[[]any](nil, vs)
}

// Head returns the first element of s.
// It reports false if s is empty.
func Head[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var z E
		return z, false
	}
	return s[0], true
}

// Tail returns all the elements of s except the first,
// in their original order.
//
// The tail of an empty sequence is empty (not nil), so
// len(Tail(s)) == max(len(s)-1, 0) always holds.
func Tail[S ~[]E, E any](s S) S {
	if len(s) == 0 {
		return S{}
	}
	return Concat[S](nil, s[1:])
}

// Concat returns a new sequence holding all the elements of a
// followed by all the elements of b.
func Concat[S ~[]E, E any](a, b S) S {
	return Spread(a, b)
}

// Spread concatenates any number of sequences, in order.
// It's the dynamic counterpart of a tuple type with
// a fixed-length prefix followed by an unbounded run:
//
//	Spread(S{"str1", "str2"}, S{1, 2, 3}, S{true, nil})
//
// The result is never nil.
func Spread[S ~[]E, E any](parts ...S) S {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	r := make(S, 0, n)
	for _, p := range parts {
		r = append(r, p...)
	}
	return r
}
