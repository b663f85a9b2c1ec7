package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gitrsync/git-rsync/rsync"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <name> [pathspec...]",
	Short: "Send working tree files to a registered target",
	Long:  "Send working tree files to a registered target. Without a pathspec the whole work tree is sent; with one, only the matching files are.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		transferRun(rsync.Upload, cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
	transferFlags(uploadCmd)
}
