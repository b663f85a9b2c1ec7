package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of git-rsync",
	Long:  "Print the version number of git-rsync",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("git-rsync version:", rootCmd.Version)
	},
}
