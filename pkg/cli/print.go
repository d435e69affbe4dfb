package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// printResult outputs a single operation result.
//
// Contract: in json and yaml modes ONLY the encoding of data is written to
// stdout. textFn is called only in text mode.
func printResult(cmd *cobra.Command, data any, textFn func(w io.Writer) error) error {
	return printer(cmd).Print(data, textFn)
}

// printLine outputs a single string result; structured modes wrap it as
// {key: value}.
func printLine(cmd *cobra.Command, key, value string) error {
	return printResult(cmd, map[string]string{key: value}, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, value)
		return err
	})
}

// printBool is printLine for predicates.
func printBool(cmd *cobra.Command, key string, value bool) error {
	return printResult(cmd, map[string]bool{key: value}, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, value)
		return err
	})
}
