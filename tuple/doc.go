// Package tuple provides a collection of generic struct types
// that hold a specific number of values, T0 through T6,
// together with functions that take the tail of a tuple
// or concatenate two tuples while keeping track of the
// type of every element.
//
// For sequences whose length is only known at runtime,
// see the slice package; the Values method on each tuple
// type converts to that form.
//
// See the tuple/tuplefunc package for a way to convert between
// multiple-argument functions and their single-argument equivalents.
package tuple

//go:generate go run generate.go
