package gitconfig

import (
	"fmt"
	"strings"

	"github.com/gitrsync/git-rsync/utils"
)

func revParse(gitPath string, runner utils.CommandRunner, option string) (string, error) {
	if gitPath == "" {
		gitPath = "git"
	}
	out, code, err := runner.Run(gitPath, []string{"rev-parse", option}, utils.RunOptions{})
	if err != nil {
		return "", err
	}
	if code != 0 {
		return "", fmt.Errorf("git rev-parse %s exited with code %d", option, code)
	}
	return strings.TrimRight(out, "\r\n"), nil
}

// ShowPrefix returns the path of the current directory relative to the
// repository root, with a trailing slash, or "" at the root.
func ShowPrefix(gitPath string, runner utils.CommandRunner) (string, error) {
	return revParse(gitPath, runner, "--show-prefix")
}

// ShowToplevel returns the absolute path of the repository root.
func ShowToplevel(gitPath string, runner utils.CommandRunner) (string, error) {
	return revParse(gitPath, runner, "--show-toplevel")
}
