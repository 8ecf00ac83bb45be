package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rogpeppe/variadic/partial"
	"github.com/rogpeppe/variadic/slice"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tupledemo",
		Short: "Demonstrate tail, concat and partial application",
		Long: `tupledemo applies sequence operations to its arguments and prints the result.

Usage:
  tupledemo tail 1 2 3 4                  Drop the first value
  tupledemo concat --with hello,world 1 2  Append values
  tupledemo spread str1,str2 1,2,true     Concatenate comma-separated groups
  tupledemo partial --bind 1 hello 100 true
                                          Partially apply x+String(y)+String(z)`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.AddCommand(
		newTailCmd(),
		newConcatCmd(),
		newSpreadCmd(),
		newPartialCmd(),
	)
	return rootCmd
}

func newTailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tail [value...]",
		Short: "Print all values except the first",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), slice.Tail(parseValues(args)))
			return nil
		},
	}
}

func newConcatCmd() *cobra.Command {
	var with []string
	cmd := &cobra.Command{
		Use:   "concat [value...]",
		Short: "Print the values followed by the values given with --with",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), slice.Concat(parseValues(args), parseValues(with)))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&with, "with", nil, "Comma-separated values to append")
	return cmd
}

func newSpreadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spread [group...]",
		Short: "Print the concatenation of comma-separated groups of values",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groups := make([][]any, len(args))
			for i, arg := range args {
				if arg != "" {
					groups[i] = parseValues(strings.Split(arg, ","))
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), slice.Spread(groups...))
			return nil
		},
	}
}

func newPartialCmd() *cobra.Command {
	var bind int
	cmd := &cobra.Command{
		Use:   "partial [--bind n] x y z",
		Short: "Bind the first n arguments of x+String(y)+String(z), then call it with the rest",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if bind < 0 || bind > len(args) {
				return fmt.Errorf("cannot bind %d of %d arguments", bind, len(args))
			}
			values := parseValues(args)
			f, err := partial.Call(joinFunc, values[:bind]...)
			if err != nil {
				return fmt.Errorf("cannot bind arguments: %v", err)
			}
			result, err := f.Invoke(values[bind:]...)
			if err != nil {
				return fmt.Errorf("cannot call function: %v", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().IntVar(&bind, "bind", 1, "Number of leading arguments to bind")
	return cmd
}

// joinFunc takes three arguments and returns their
// concatenated string forms.
var joinFunc = partial.New(3, func(args []any) (any, error) {
	var sb strings.Builder
	for _, arg := range args {
		fmt.Fprint(&sb, arg)
	}
	return sb.String(), nil
})

// parseValues decodes each argument as a JSON value,
// falling back to the argument itself as a string.
func parseValues(args []string) []any {
	values := make([]any, len(args))
	for i, arg := range args {
		var v any
		if err := json.Unmarshal([]byte(arg), &v); err != nil {
			v = arg
		}
		values[i] = v
	}
	return values
}
