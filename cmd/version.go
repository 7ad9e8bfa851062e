package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by the release pipeline via -ldflags; source builds
// report "(devel)".
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("parlo %s\n", version)
	},
}
