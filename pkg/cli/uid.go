package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/winterwell/wwutils/pkg/id"
)

var uidCount int

var uidCmd = &cobra.Command{
	Use:   "uid",
	Short: "Generate random UUIDs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if uidCount < 1 {
			return fmt.Errorf("--count must be at least 1, got %d", uidCount)
		}
		uids := make([]string, uidCount)
		for i := range uids {
			uids[i] = id.UID()
		}
		return printResult(cmd, uids, func(w io.Writer) error {
			for _, u := range uids {
				fmt.Fprintln(w, u)
			}
			return nil
		})
	},
}

var uidCheckCmd = &cobra.Command{
	Use:   "check <uid>",
	Short: "Report whether text is a UUID in the form uid generates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printBool(cmd, "uid", id.IsUID(args[0]))
	},
}

func init() {
	uidCmd.Flags().IntVarP(&uidCount, "count", "n", 1, "Number of UUIDs to generate")
	uidCmd.AddCommand(uidCheckCmd)
	rootCmd.AddCommand(uidCmd)
}
