package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitrsync/git-rsync/gitconfig"
	"github.com/gitrsync/git-rsync/utils"
)

// Names longer than this no longer widen the column.
const maxNameColumn = 20

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered rsync targets",
	Run: func(cmd *cobra.Command, args []string) {
		remotes, err := newRegistry().List()
		if err != nil {
			utils.LogError("Unable to list remotes", err.Error())
			os.Exit(1)
		}
		for _, line := range formatRemotes(remotes) {
			fmt.Println(line)
		}
	},
}

// formatRemotes renders remotes as aligned "name  url" lines.
func formatRemotes(remotes []gitconfig.Remote) []string {
	column := 0
	for _, remote := range remotes {
		if len(remote.Name) > column {
			column = len(remote.Name)
		}
	}
	if column > maxNameColumn {
		column = maxNameColumn
	}

	lines := make([]string, 0, len(remotes))
	for _, remote := range remotes {
		padding := ""
		if pad := column - len(remote.Name); pad > 0 {
			padding = strings.Repeat(" ", pad)
		}
		lines = append(lines, remote.Name+padding+"  "+remote.URL)
	}
	return lines
}

func init() {
	rootCmd.AddCommand(listCmd)
}
