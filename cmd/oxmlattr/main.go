package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jacoelho/oxml"
	oxmlerrors "github.com/jacoelho/oxml/errors"
)

var errUnknownType = errors.New("unknown simple type")

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return 0
	}
	if v, ok := oxmlerrors.AsValidation(err); ok {
		if writeErr := writeln(stderr, v.Error()); writeErr != nil {
			return 1
		}
		return 1
	}
	if errors.Is(err, errUnknownType) {
		if writeErr := writef(stderr, "error: %v\n", err); writeErr != nil {
			return 1
		}
		return 1
	}
	if writeErr := writef(stderr, "error: %v\n", err); writeErr != nil {
		return 1
	}
	return 2
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "oxmlattr",
		Short:         "Convert presentation attribute values between XML text and typed values",
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.AddCommand(newTypesCmd(), newParseCmd(), newFormatCmd())
	return root
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the supported simple types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range oxml.Names() {
				c, _ := oxml.Lookup(name)
				if err := writef(cmd.OutOrStdout(), "%s\t%s\n", name, c.Kind()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newParseCmd() *cobra.Command {
	var validate bool
	cmd := &cobra.Command{
		Use:   "parse <type> <raw>",
		Short: "Parse attribute text into a typed value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := lookup(args[0])
			if err != nil {
				return err
			}
			v, err := c.FromXMLValue(args[1])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[1], err)
			}
			if validate {
				if err := c.Validate(v); err != nil {
					return err
				}
			}
			return writef(cmd.OutOrStdout(), "%v\n", v)
		},
	}
	cmd.Flags().BoolVar(&validate, "validate", false, "also validate the parsed value")
	return cmd
}

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <type> <value>",
		Short: "Validate a value and format it as attribute text",
		Long: "Validate a value and format it as attribute text.\n\n" +
			"Integer-family types take a decimal integer value.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := lookup(args[0])
			if err != nil {
				return err
			}
			var v any = args[1]
			if c.Kind() == oxml.KindInteger {
				n, err := strconv.ParseInt(args[1], 10, 64)
				if err != nil {
					return &oxmlerrors.Validation{
						Code:    string(oxmlerrors.ErrTypeMismatch),
						Type:    c.Name(),
						Message: "value must be an integer",
						Actual:  strconv.Quote(args[1]),
					}
				}
				v = n
			}
			s, err := c.ToXML(v)
			if err != nil {
				return err
			}
			return writeln(cmd.OutOrStdout(), s)
		},
	}
}

func lookup(name string) (oxml.Converter, error) {
	c, ok := oxml.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errUnknownType, name)
	}
	return c, nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
