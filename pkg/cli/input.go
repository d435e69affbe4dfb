package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// inputArg returns args[0], or stdin when there is no argument or it is
// "-". One trailing newline is dropped from stdin.
func inputArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", ErrNoInput
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}
