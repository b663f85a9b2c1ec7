package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gitrsync/git-rsync/rsync"
)

var downloadCmd = &cobra.Command{
	Use:   "download <name> [pathspec...]",
	Short: "Fetch files from a registered target into the work tree",
	Long:  "Fetch files from a registered target into the work tree. Without a pathspec the whole remote tree is fetched; with one, only the matching files are.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		transferRun(rsync.Download, cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(downloadCmd)
	transferFlags(downloadCmd)
}
