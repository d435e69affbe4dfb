package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/winterwell/wwutils/pkg/cli/internal/flags"
	"github.com/winterwell/wwutils/pkg/cli/internal/output"
	"github.com/winterwell/wwutils/pkg/hashroute"
)

var (
	hashParams    flags.StringSlice
	hashCurrent   string
	hashClearPath bool
	hashPreview   bool
)

// HashChange is the result of hash modify and hash set.
type HashChange struct {
	Hash   string                 `json:"hash" yaml:"hash"`
	Pushed bool                   `json:"pushed" yaml:"pushed"`
	Event  *hashroute.ChangeEvent `json:"event,omitempty" yaml:"event,omitempty"`
}

var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Parse, build and modify hash-fragment routes",
	Long: `A hash route such as #publisher/myblog?tab=stats holds a path
(["publisher", "myblog"]) and params ({"tab": "stats"}).

modify and set run against an in-memory history positioned at --base-url
with the hash given by --current, and report the change event a browser
listener would receive.`,
}

var hashParseCmd = &cobra.Command{
	Use:   "parse [hash]",
	Short: "Parse a hash into path and params",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := inputArg(cmd, args)
		if err != nil {
			return err
		}
		route, err := hashroute.Parse(hash)
		if err != nil {
			return err
		}
		return printRoute(cmd, route)
	},
}

var hashBuildCmd = &cobra.Command{
	Use:   "build [segment...]",
	Short: "Build a hash from path segments and --param key=value",
	Example: `  wwutils hash build publisher "my blog" -p tab=stats
  #publisher/my%20blog?tab=stats`,
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := flags.KeyValues(hashParams)
		if err != nil {
			return err
		}
		return printLine(cmd, "hash", hashroute.Serialize(args, params))
	},
}

var hashModifyCmd = &cobra.Command{
	Use:   "modify [segment...]",
	Short: "Merge a new path and params into the current hash",
	Long: `Merge a new path and params into the current hash.

Segments replace the current path; without segments the path is kept
unless --clear-path is given. Params are written over the current params
one by one, so others survive.`,
	Example: `  wwutils hash modify --current "#foo?a=1" -p b=2
  #foo?a=1&b=2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := flags.KeyValues(hashParams)
		if err != nil {
			return err
		}
		var path []string
		switch {
		case hashClearPath && len(args) > 0:
			return errors.New("--clear-path cannot be combined with path segments")
		case hashClearPath:
			path = []string{}
		case len(args) > 0:
			path = args
		}

		router, history := newRouter()
		if hashPreview {
			hash, err := router.Preview(path, params)
			if err != nil {
				return err
			}
			return printChange(cmd, HashChange{Hash: hash})
		}
		return runPush(cmd, history, func() error { return router.Modify(path, params) })
	},
}

var hashSetCmd = &cobra.Command{
	Use:   "set <text>",
	Short: "Replace the whole hash with text, escaped as one component",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		router, history := newRouter()
		return runPush(cmd, history, func() error { return router.SetHash(args[0]) })
	},
}

func newRouter() (*hashroute.Router, *hashroute.MemoryHistory) {
	history := hashroute.NewMemoryHistory(cfg.BaseURL, hashCurrent)
	return hashroute.NewRouter(history, hashroute.WithLogger(log)), history
}

// runPush performs push and reports the resulting hash and change event.
func runPush(cmd *cobra.Command, history *hashroute.MemoryHistory, push func() error) error {
	var event *hashroute.ChangeEvent
	unsubscribe := history.Subscribe(func(e hashroute.ChangeEvent) { event = &e })
	defer unsubscribe()

	if err := push(); err != nil {
		return err
	}
	return printChange(cmd, HashChange{Hash: history.Read(), Pushed: true, Event: event})
}

func printChange(cmd *cobra.Command, change HashChange) error {
	return printResult(cmd, change, func(w io.Writer) error {
		fmt.Fprintln(w, change.Hash)
		if change.Event != nil {
			fmt.Fprintf(w, "hashchange: %s -> %s\n", change.Event.OldURL, change.Event.NewURL)
		}
		return nil
	})
}

func printRoute(cmd *cobra.Command, route hashroute.Route) error {
	return printResult(cmd, route, func(w io.Writer) error {
		path, err := json.Marshal(route.Path)
		if err != nil {
			return err
		}
		tw := output.Table(w)
		fmt.Fprintf(tw, "path\t%s\n", path)
		rows := mapRows(route.Params)
		for _, row := range rows {
			fmt.Fprintf(tw, "param\t%s\n", row)
		}
		return tw.Flush()
	})
}

func init() {
	for _, c := range []*cobra.Command{hashBuildCmd, hashModifyCmd} {
		c.Flags().VarP(&hashParams, "param", "p", "Parameter as key=value (repeatable)")
	}
	for _, c := range []*cobra.Command{hashModifyCmd, hashSetCmd} {
		c.Flags().StringVar(&hashCurrent, "current", "", "Current hash, e.g. \"#foo?a=1\"")
	}
	hashModifyCmd.Flags().BoolVar(&hashClearPath, "clear-path", false, "Replace the path with an empty one")
	hashModifyCmd.Flags().BoolVar(&hashPreview, "preview", false, "Print the new hash without pushing it")

	hashCmd.AddCommand(hashParseCmd, hashBuildCmd, hashModifyCmd, hashSetCmd)
	rootCmd.AddCommand(hashCmd)
}
