// Package tuplefunc provides partial application of ordinary Go
// functions, and conversions between multiple-argument functions
// and their single-argument equivalents that take a tuple.
//
// Because the arity of every function here is fixed by its type,
// passing too few or too many arguments is a compile-time error.
// For functions whose arity is only known at runtime, see the
// partial package.
//
// The names of the binding functions match the following regular expression:
//
// 	BindT?_[0-9]+_[0-9]+
//
// The first number is the number of arguments bound; the second
// is the number of arguments taken by the original function.
// So, for example:
//
// 	Bind_1_3
//
// converts from (for some types A0, A1, A2 and R)
//
// 	func(A0, A1, A2) R
//
// to:
//
// 	func(A1, A2) R
//
// by fixing the value of the first argument. The BindT variants
// take the bound prefix as a single tuple value instead, so
//
// 	BindT_2_3(f, tuple.Mk2(a0, a1))
//
// is equivalent to Bind_2_3(f, a0, a1).
//
// Binding can be staged: the result of Bind_1_3 can itself be
// passed to Bind_1_2, and so on, and the final call invokes
// the original function exactly once.
//
// ToA_N and FromA_N convert between
//
// 	func(A0, ..., AN-1) R
//
// and
//
// 	func(tuple.TN[A0, ..., AN-1]) R
package tuplefunc

//go:generate go run generate.go
