package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "weft-demo",
		Short: "Demo server for the Weft tree reconciler",
		Long: `weft-demo runs a small server that publishes a continuously
mutating tree over a websocket patch stream.

Each page load receives a rendered HTML snapshot; connected clients
then receive sequenced binary patch frames as the tree changes. The
feed cycles through the list mutations the differ optimizes for
(appends, prepends, removals, reversals, shuffles), which makes it a
convenient target for watching the reconcile metrics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
