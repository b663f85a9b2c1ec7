package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/gitrsync/git-rsync/gitconfig"
	"github.com/gitrsync/git-rsync/utils"
)

var forceRemove bool

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Delete a registered rsync target",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]

		if !forceRemove {
			confirm := false
			prompt := &survey.Confirm{
				Message: fmt.Sprintf("Remove remote %s?", name),
			}
			if err := survey.AskOne(prompt, &confirm); err != nil || !confirm {
				utils.LogProcessStep("Not removing remote", name)
				return
			}
		}

		if err := newRegistry().Remove(name); err != nil {
			if errors.Is(err, gitconfig.ErrRemoteNotFound) {
				utils.LogError("No such remote", name)
			} else {
				utils.LogError("Unable to remove remote", err.Error())
			}
			os.Exit(1)
		}
		utils.LogDebugInfo("Remote removed", name)
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().BoolVar(&forceRemove, "force", false, "remove without asking for confirmation")
}
