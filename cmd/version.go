package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Release metadata, injected via -ldflags by the release workflow.
// Source builds report "(devel)" and no commit.
var (
	version = "(devel)"
	commit  = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		out := "learnloop " + version
		if commit != "" {
			out += " (" + shortRev(commit) + ")"
		}
		fmt.Println(out, runtime.GOOS+"/"+runtime.GOARCH)
	},
}

// shortRev trims a full commit hash for display.
func shortRev(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
