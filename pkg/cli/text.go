package cli

import (
	"github.com/spf13/cobra"
	"github.com/winterwell/wwutils/pkg/cli/internal/output"
	"github.com/winterwell/wwutils/pkg/util"
)

var ellipsizeLength int

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Small string helpers",
}

var textTitleCmd = &cobra.Command{
	Use:   "title [text]",
	Short: "Upper-case the first letter and lower-case the rest",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := inputArg(cmd, args)
		if err != nil {
			return err
		}
		return printLine(cmd, "text", util.ToTitleCase(s))
	},
}

var textEllipsizeCmd = &cobra.Command{
	Use:   "ellipsize [text]",
	Short: "Truncate long text with an ellipsis",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := inputArg(cmd, args)
		if err != nil {
			return err
		}
		length := cfg.Ellipsize
		if cmd.Flags().Changed("length") {
			length = ellipsizeLength
			if length < 1 {
				output.Warn(cmd.ErrOrStderr(), "--length %d is not positive; using %d", length, util.DefaultEllipsizeLength)
			}
		}
		return printLine(cmd, "text", util.Ellipsize(s, length))
	},
}

var textEmailCmd = &cobra.Command{
	Use:   "email <address>",
	Short: "Report whether text looks like an email address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printBool(cmd, "email", util.IsEmail(args[0]))
	},
}

var textHostCmd = &cobra.Command{
	Use:   "host <url>",
	Short: "Print the host of a URL without a leading www.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLine(cmd, "host", util.GetHost(args[0]))
	},
}

var textEndsWithCmd = &cobra.Command{
	Use:   "endswith <text> <ending>",
	Short: "Report whether text ends with ending",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printBool(cmd, "endsWith", util.EndsWith(args[0], args[1]))
	},
}

var textPickCmd = &cobra.Command{
	Use:   "pick <item>...",
	Short: "Print one of the arguments at random",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, _ := util.RandomPick(args)
		return printLine(cmd, "item", item)
	},
}

func init() {
	textEllipsizeCmd.Flags().IntVarP(&ellipsizeLength, "length", "n", 0, "Maximum length in characters (default from config)")

	textCmd.AddCommand(textTitleCmd, textEllipsizeCmd, textEmailCmd, textHostCmd, textEndsWithCmd, textPickCmd)
	rootCmd.AddCommand(textCmd)
}
