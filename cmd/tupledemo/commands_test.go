package main

import (
	"bytes"
	"testing"

	"github.com/go-quicktest/qt"
)

var commandTests = []struct {
	testName    string
	args        []string
	expectOut   string
	expectError string
}{{
	testName:  "Tail",
	args:      []string{"tail", "1", "2", "3", "4"},
	expectOut: "[2 3 4]\n",
}, {
	testName:  "TailEmpty",
	args:      []string{"tail"},
	expectOut: "[]\n",
}, {
	testName:  "Concat",
	args:      []string{"concat", "--with", "hello,world", "1", "2", "3", "4"},
	expectOut: "[1 2 3 4 hello world]\n",
}, {
	testName:  "ConcatNothing",
	args:      []string{"concat"},
	expectOut: "[]\n",
}, {
	testName:  "Spread",
	args:      []string{"spread", "str1,str2", "1,2,3,true,false,4"},
	expectOut: "[str1 str2 1 2 3 true false 4]\n",
}, {
	testName:  "PartialOne",
	args:      []string{"partial", "hello", "100", "true"},
	expectOut: "hello100true\n",
}, {
	testName:  "PartialAll",
	args:      []string{"partial", "--bind", "3", "hello", "100", "true"},
	expectOut: "hello100true\n",
}, {
	testName:    "PartialTooFewArguments",
	args:        []string{"partial", "--bind", "1", "hello", "100"},
	expectError: `cannot call function: arity mismatch: function takes 2 arguments, got 1`,
}, {
	testName:    "PartialTooManyBound",
	args:        []string{"partial", "--bind", "4", "a", "b", "c", "d"},
	expectError: `cannot bind arguments: arity mismatch: function takes 3 arguments, got 4`,
}, {
	testName:    "PartialBindOutOfRange",
	args:        []string{"partial", "--bind", "2", "a"},
	expectError: `cannot bind 2 of 1 arguments`,
}}

func TestCommands(t *testing.T) {
	for _, test := range commandTests {
		t.Run(test.testName, func(t *testing.T) {
			var out bytes.Buffer
			cmd := newRootCmd()
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs(test.args)
			err := cmd.Execute()
			if test.expectError != "" {
				qt.Assert(t, qt.ErrorMatches(err, test.expectError))
				return
			}
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(out.String(), test.expectOut))
		})
	}
}

func TestParseValues(t *testing.T) {
	got := parseValues([]string{"1", "2.5", "true", "null", "hello", `"quoted"`})
	qt.Assert(t, qt.DeepEquals(got, []any{1.0, 2.5, true, nil, "hello", "quoted"}))
}
