package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitrsync/git-rsync/gitconfig"
	"github.com/gitrsync/git-rsync/utils"
)

var addCmd = &cobra.Command{
	Use:   "add <name> <url>",
	Short: "Register a named rsync target",
	Long:  "Register a named rsync target, the URL in host:path form. The remote is stored in git configuration under rsync.<name>.url.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		name, url := args[0], args[1]

		if err := newRegistry().Add(name, url); err != nil {
			if errors.Is(err, gitconfig.ErrDuplicateName) {
				utils.LogError("Remote already exists, remove it first", name)
			} else {
				utils.LogError("Unable to add remote", err.Error())
			}
			os.Exit(1)
		}
		utils.LogDebugInfo("Remote added", name+" -> "+url)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
