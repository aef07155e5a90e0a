// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version, set via ldflags
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Typically called by main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRootCommand builds the kmatch command tree. Results go to the command's
// output writer; logs go to logOut.
func NewRootCommand(logOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "kmatch",
		Short:        "kmatch pairs trackers with detections by maximum total affinity",
		Long:         `kmatch solves maximum-weight bipartite matching problems with the Kuhn–Munkres potential method and prints the resulting assignment.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logOut, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("kmatch %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newBenchCmd())

	return root
}

// Execute runs the CLI with the given arguments.
func Execute(ctx context.Context, args []string, out, logOut io.Writer) error {
	root := NewRootCommand(logOut)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(logOut)

	return root.ExecuteContext(ctx)
}
