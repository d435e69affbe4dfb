package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/winterwell/wwutils/pkg/truthy"
)

var yessyRaw bool

// YessyOutput reports how a value classifies.
type YessyOutput struct {
	Kind   string `json:"kind" yaml:"kind"`
	Is     bool   `json:"is" yaml:"is"`
	Truthy bool   `json:"truthy" yaml:"truthy"`
	Yessy  bool   `json:"yessy" yaml:"yessy"`
}

var yessyCmd = &cobra.Command{
	Use:   "yessy [value]",
	Short: "Report whether a value is truthy and non-empty",
	Long: `Report whether a value is truthy and non-empty.

The value is read as JSON, so 0, false, null, "", [], [0] and {} are all
not yessy while [1] and {"a":null} are. Text that is not JSON, or any text with
--raw, is treated as a string.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := inputArg(cmd, args)
		if err != nil {
			return err
		}
		var v any = s
		if !yessyRaw {
			var parsed any
			if err := json.Unmarshal([]byte(s), &parsed); err == nil {
				v = parsed
			}
		}

		val := truthy.Of(v)
		out := YessyOutput{
			Kind:   val.Kind().String(),
			Is:     truthy.Is(v),
			Truthy: val.Truthy(),
			Yessy:  val.Yessy(),
		}
		log.Debug("classified value", "kind", out.Kind)
		return printResult(cmd, out, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, out.Yessy)
			return err
		})
	},
}

func init() {
	yessyCmd.Flags().BoolVar(&yessyRaw, "raw", false, "Treat the value as a string instead of JSON")
	rootCmd.AddCommand(yessyCmd)
}
