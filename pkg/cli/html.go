package cli

import (
	"github.com/spf13/cobra"
	"github.com/winterwell/wwutils/pkg/cli/internal/flags"
	"github.com/winterwell/wwutils/pkg/sanitize"
)

var htmlTags flags.StringSlice

var htmlCmd = &cobra.Command{
	Use:   "html",
	Short: "Escape, clean and decode HTML",
	Long: `Escape, clean and decode HTML.

Each command reads its argument, or stdin when given "-" or nothing.
clean and sanitise keep the tags named with --tag, or the permittedTags
from configuration when no --tag is given.`,
}

// htmlFunc builds a subcommand that maps its input through fn.
func htmlFunc(use, short string, fn func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [text]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := inputArg(cmd, args)
			if err != nil {
				return err
			}
			return printLine(cmd, "html", fn(s))
		},
	}
}

// permittedTags prefers --tag over configuration.
func permittedTags() []string {
	if len(htmlTags) > 0 {
		return htmlTags
	}
	return cfg.PermittedTags
}

func init() {
	htmlClean := htmlFunc("clean", "Strip all tags except permitted ones", func(s string) string {
		return sanitize.Clean(s, permittedTags()...)
	})
	htmlSanitise := htmlFunc("sanitise", "Escape all tags except permitted ones", func(s string) string {
		return sanitize.SanitiseHTML(s, permittedTags()...)
	})
	for _, c := range []*cobra.Command{htmlClean, htmlSanitise} {
		c.Flags().Var(&htmlTags, "tag", "Tag to keep, e.g. b (repeatable)")
	}

	htmlCmd.AddCommand(
		htmlFunc("attr", "Escape text for a quoted attribute value", sanitize.Attr),
		htmlFunc("encode", "Escape &, <, > and \"", sanitize.EncodeEntities),
		htmlFunc("decode", "Drop tags and decode entities", sanitize.DecodeEntities),
		htmlFunc("plain", "Strip all tags", sanitize.Plain),
		htmlClean,
		htmlSanitise,
	)
	rootCmd.AddCommand(htmlCmd)
}
