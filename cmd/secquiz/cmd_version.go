package secquiz

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/secquiz/secquiz/pkg/version"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version of secquiz",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("secquiz %s\n", version.String())
	},
}
