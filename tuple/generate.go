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

// maxN holds the largest tuple size generated.
const maxN = 6

type concatInfo struct {
	M, N int
}

func main() {
	var concats []concatInfo
	for m := 0; m <= maxN; m++ {
		for n := 0; m+n <= maxN; n++ {
			concats = append(concats, concatInfo{m, n})
		}
	}
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, map[string]any{
		"Sizes":   seq(0, maxN+1),
		"Concats": concats,
	})
	if err != nil {
		log.Fatal(err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("cannot format generated code: %v\n%s", err, buf.Bytes())
	}
	if err := os.WriteFile("tuple_gen.go", out, 0o666); err != nil {
		log.Fatal(err)
	}
}

// seq returns the integers in [from, to).
func seq(from, to int) []int {
	var r []int
	for i := from; i < to; i++ {
		r = append(r, i)
	}
	return r
}

// tparams returns the type parameter list declaring n parameters,
// or the empty string when n is zero.
func tparams(n int) string {
	if n == 0 {
		return ""
	}
	return "[" + names("A", 0, n) + " any]"
}

// typ returns the tuple type of size n whose type arguments
// start at A<from>.
func typ(n, from int) string {
	if n == 0 {
		return "T0"
	}
	return fmt.Sprintf("T%d[%s]", n, names("A", from, n))
}

func names(prefix string, from, n int) string {
	var s []string
	for i := from; i < from+n; i++ {
		s = append(s, fmt.Sprintf("%s%d", prefix, i))
	}
	return strings.Join(s, ", ")
}

var tmpl = template.Must(template.New("").Funcs(template.FuncMap{
	"seq":     seq,
	"tparams": tparams,
	"typ":     typ,
	"add":     func(a, b int) int { return a + b },
	"sub":     func(a, b int) int { return a - b },
}).Parse(`// Code generated by generate.go; DO NOT EDIT.

package tuple
{{range $n := .Sizes}}
// T{{$n}} holds {{$n}} value{{if ne $n 1}}s{{end}}.
{{- if eq $n 0}}
type T0 struct{}
{{- else}}
type T{{$n}}{{tparams $n}} struct {
{{- range $i := seq 0 $n}}
	A{{$i}} A{{$i}}
{{- end}}
}
{{- end}}

// Mk{{$n}} returns a T{{$n}} holding the given values.
func Mk{{$n}}{{tparams $n}}({{range $i := seq 0 $n}}a{{$i}} A{{$i}}, {{end}}) {{typ $n 0}} {
	return {{typ $n 0}}{ {{- range $i := seq 0 $n}}a{{$i}}, {{end -}} }
}

// Len returns the number of values in the tuple.
func ({{typ $n 0}}) Len() int {
	return {{$n}}
}

// Values returns the values in the tuple as a sequence.
func (t {{typ $n 0}}) Values() []any {
	return []any{ {{- range $i := seq 0 $n}}t.A{{$i}}, {{end -}} }
}
{{- if gt $n 0}}

// Tail{{$n}} returns all but the first value of t.
func Tail{{$n}}{{tparams $n}}(t {{typ $n 0}}) {{typ (sub $n 1) 1}} {
	return {{typ (sub $n 1) 1}}{ {{- range $i := seq 1 $n}}t.A{{$i}}, {{end -}} }
}
{{- end}}
{{end}}
{{- range .Concats}}
// Concat_{{.M}}_{{.N}} returns the values of a followed by the values of b.
func Concat_{{.M}}_{{.N}}{{tparams (add .M .N)}}(a {{typ .M 0}}, b {{typ .N .M}}) {{typ (add .M .N) 0}} {
	return {{typ (add .M .N) 0}}{ {{- range $i := seq 0 .M}}a.A{{$i}}, {{end}}{{range $i := seq 0 .N}}b.A{{$i}}, {{end -}} }
}
{{end}}`))
