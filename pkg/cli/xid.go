package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/winterwell/wwutils/pkg/xid"
)

var xidCmd = &cobra.Command{
	Use:   "xid",
	Short: "Work with \"id@service\" external identifiers",
	Long: `An XId joins an identifier and the service that issued it with the
last "@": winterstein@twitter, daniel@winterwell.com@email.`,
}

var xidParseCmd = &cobra.Command{
	Use:   "parse <xid>",
	Short: "Split an XId into id and service",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := xid.Parse(args[0])
		if err != nil {
			return err
		}
		return printResult(cmd, x, func(w io.Writer) error {
			fmt.Fprintf(w, "id\t%s\nservice\t%s\n", x.ID, x.Service)
			return nil
		})
	},
}

var xidIDCmd = &cobra.Command{
	Use:   "id <xid>",
	Short: "Print the id part of an XId",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := xid.ID(args[0])
		if err != nil {
			return err
		}
		return printLine(cmd, "id", id)
	},
}

var xidServiceCmd = &cobra.Command{
	Use:   "service <xid>",
	Short: "Print the service part of an XId",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := xid.Service(args[0])
		if err != nil {
			return err
		}
		return printLine(cmd, "service", service)
	},
}

var xidJoinJSON bool

var xidJoinCmd = &cobra.Command{
	Use:   "join <id> <service>",
	Short: "Build an XId from an id and a service",
	Long: `Build an XId from an id and a service.

With --json each argument is read as a JSON value, as it would arrive in a
decoded document. Both must be strings.`,
	Example: `  wwutils xid join --json '"bob"' '"youtube"'
  bob@youtube`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		values := []any{args[0], args[1]}
		if xidJoinJSON {
			for i, arg := range args {
				if err := json.Unmarshal([]byte(arg), &values[i]); err != nil {
					return fmt.Errorf("argument %d is not JSON: %w", i+1, err)
				}
			}
		}
		x, err := xid.FromValues(values[0], values[1])
		if err != nil {
			return err
		}
		return printLine(cmd, "xid", x)
	},
}

var xidDewartCmd = &cobra.Command{
	Use:   "dewart <xid>",
	Short: "Strip the service and any type prefix for display",
	Example: `  wwutils xid dewart p_bob@youtube
  bob`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLine(cmd, "name", xid.Dewart(args[0]))
	},
}

var xidPrettyCmd = &cobra.Command{
	Use:   "pretty <xid>",
	Short: "Format an XId for display, e.g. @winterstein for Twitter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLine(cmd, "name", xid.PrettyName(args[0]))
	},
}

func init() {
	xidJoinCmd.Flags().BoolVar(&xidJoinJSON, "json", false, "Read arguments as JSON values")
	xidCmd.AddCommand(xidParseCmd, xidIDCmd, xidServiceCmd, xidJoinCmd, xidDewartCmd, xidPrettyCmd)
	rootCmd.AddCommand(xidCmd)
}
