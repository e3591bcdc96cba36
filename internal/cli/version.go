package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		// Version needs no config, logger or store.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			v, c, d := info.Version, info.Commit, info.Date
			if v == "" || v == "dev" {
				v = "development"
			}
			if c == "" || c == "none" {
				c = "local-build"
			}
			if d == "" || d == "unknown" {
				d = "local-build"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "shortcuts %s (%s) built on %s\n", v, c, d)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
