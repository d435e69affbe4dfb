package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/winterwell/wwutils/pkg/cli/internal/flags"
	"github.com/winterwell/wwutils/pkg/cli/internal/output"
	"github.com/winterwell/wwutils/pkg/query"
	"github.com/winterwell/wwutils/pkg/util"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Decode and encode URL query strings",
}

var queryDecodeCmd = &cobra.Command{
	Use:   "decode [query]",
	Short: "Decode a query string such as a=1&b=x%20y",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := inputArg(cmd, args)
		if err != nil {
			return err
		}
		params, err := query.Decode(s)
		if err != nil {
			return err
		}
		return printParams(cmd, params)
	},
}

var queryEncodeCmd = &cobra.Command{
	Use:   "encode key=value...",
	Short: "Encode key=value pairs as a query string",
	Example: `  wwutils query encode a=1 "q=hello world"
  a=1&q=hello%20world`,
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := flags.KeyValues(args)
		if err != nil {
			return err
		}
		return printLine(cmd, "query", query.Encode(params))
	},
}

var queryVarsCmd = &cobra.Command{
	Use:   "vars [url]",
	Short: "Decode the query part of a URL",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rawURL, err := inputArg(cmd, args)
		if err != nil {
			return err
		}
		params, err := query.ParseURLVars(rawURL)
		if err != nil {
			return err
		}
		return printParams(cmd, params)
	},
}

// printParams writes decoded parameters as a sorted two-column table.
func printParams(cmd *cobra.Command, params map[string]string) error {
	return printResult(cmd, params, func(w io.Writer) error {
		tw := output.Table(w)
		for _, row := range mapRows(params) {
			fmt.Fprintf(tw, "%s\n", row)
		}
		return tw.Flush()
	})
}

// mapRows renders params as tab-separated "key\tvalue" rows in key order.
func mapRows(params map[string]string) []string {
	return util.MapKV(params, func(k, v string) string { return k + "\t" + v })
}

func init() {
	queryCmd.AddCommand(queryDecodeCmd, queryEncodeCmd, queryVarsCmd)
	rootCmd.AddCommand(queryCmd)
}
