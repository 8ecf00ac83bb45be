//go:build ignore

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

// maxN holds the largest arity generated.
const maxN = 4

type bindInfo struct {
	K, N int
}

func main() {
	var binds []bindInfo
	for n := 0; n <= maxN; n++ {
		for k := 0; k <= n; k++ {
			binds = append(binds, bindInfo{k, n})
		}
	}
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, map[string]any{
		"Sizes": seq(0, maxN+1),
		"Binds": binds,
	})
	if err != nil {
		log.Fatal(err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("cannot format generated code: %v\n%s", err, buf.Bytes())
	}
	if err := os.WriteFile("tuplefunc_gen.go", out, 0o666); err != nil {
		log.Fatal(err)
	}
}

func seq(from, to int) []int {
	var r []int
	for i := from; i < to; i++ {
		r = append(r, i)
	}
	return r
}

// list returns prefix<i> for all i in [from, to), comma-separated.
func list(prefix string, from, to int) string {
	var s []string
	for i := from; i < to; i++ {
		s = append(s, fmt.Sprintf("%s%d", prefix, i))
	}
	return strings.Join(s, ", ")
}

// params returns a parameter list declaring a<i> of type A<i>
// for all i in [from, to).
func params(from, to int) string {
	var s []string
	for i := from; i < to; i++ {
		s = append(s, fmt.Sprintf("a%d A%d", i, i))
	}
	return strings.Join(s, ", ")
}

// tparams returns the type parameter list for a function of n arguments.
func tparams(n int) string {
	return "[" + strings.TrimPrefix(list("A", 0, n)+", R any]", ", ")
}

// tupleType returns the tuple type holding A<i> for i in [0, n).
func tupleType(n int) string {
	if n == 0 {
		return "tuple.T0"
	}
	return fmt.Sprintf("tuple.T%d[%s]", n, list("A", 0, n))
}

var tmpl = template.Must(template.New("").Funcs(template.FuncMap{
	"seq":       seq,
	"list":      list,
	"params":    params,
	"tparams":   tparams,
	"tupleType": tupleType,
}).Parse(`// Code generated by generate.go; DO NOT EDIT.

package tuplefunc

import "github.com/rogpeppe/variadic/tuple"
{{range .Binds}}
// Bind_{{.K}}_{{.N}} returns f with its first {{.K}} argument{{if ne .K 1}}s{{end}} fixed.
func Bind_{{.K}}_{{.N}}{{tparams .N}}(f func({{list "A" 0 .N}}) R{{if .K}}, {{params 0 .K}}{{end}}) func({{list "A" .K .N}}) R {
	return func({{params .K .N}}) R {
		return f({{list "a" 0 .N}})
	}
}

// BindT_{{.K}}_{{.N}} is like Bind_{{.K}}_{{.N}} except that the bound arguments are held in a tuple.
func BindT_{{.K}}_{{.N}}{{tparams .N}}(f func({{list "A" 0 .N}}) R, head {{tupleType .K}}) func({{list "A" .K .N}}) R {
	return Bind_{{.K}}_{{.N}}(f{{range $i := .K | seq 0}}, head.A{{$i}}{{end}})
}
{{end}}
{{- range $n := .Sizes}}
// ToA_{{$n}} converts f to a function that takes its arguments as a single tuple.
func ToA_{{$n}}{{tparams $n}}(f func({{list "A" 0 $n}}) R) func({{tupleType $n}}) R {
	return func(t {{tupleType $n}}) R {
		return f({{list "t.A" 0 $n}})
	}
}

// FromA_{{$n}} is the inverse of ToA_{{$n}}.
func FromA_{{$n}}{{tparams $n}}(f func({{tupleType $n}}) R) func({{list "A" 0 $n}}) R {
	return func({{params 0 $n}}) R {
		return f({{tupleType $n}}{ {{- list "a" 0 $n -}} })
	}
}
{{end}}`))
