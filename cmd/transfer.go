package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gitrsync/git-rsync/gitconfig"
	"github.com/gitrsync/git-rsync/pathspec"
	"github.com/gitrsync/git-rsync/rsync"
	"github.com/gitrsync/git-rsync/utils"
)

var dryRun bool
var includeGitDir bool

func transferFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "show what would be transferred without transferring")
	cmd.Flags().BoolVar(&includeGitDir, "include-git-dir", false, "transfer the .git directory too")
}

// rsyncConfig resolves the rsync settings, file values overriding defaults.
func rsyncConfig() rsync.Config {
	cfg := rsync.DefaultConfig()
	if raw := viper.Get("rsync"); raw != nil {
		_ = mapstructure.Decode(raw, &cfg)
	}
	if cfg.Path == "" {
		cfg.Path = "rsync"
	}
	if len(cfg.Flags) == 0 {
		cfg.Flags = []string{"-azP"}
	}
	return cfg
}

// transferRun is the shared body of upload and download: resolve the remote,
// translate the pathspec into rsync filters, run rsync from the right
// directory and exit with rsync's own exit code.
func transferRun(direction rsync.Direction, cmd *cobra.Command, args []string) {
	name := args[0]
	patterns := args[1:]

	utils.SetShowSpinner(!noColor)

	registry := newRegistry()
	url, err := registry.Resolve(name)
	if err != nil {
		if errors.Is(err, gitconfig.ErrRemoteNotFound) {
			utils.LogError("No such remote", name)
		} else {
			utils.LogError("Unable to resolve remote", err.Error())
		}
		os.Exit(1)
	}

	prefix := ""
	var filters []string
	if len(patterns) > 0 {
		showPrefix, err := gitconfig.ShowPrefix(gitPath(), runner)
		if err != nil {
			utils.LogError("Not inside a git work tree", err.Error())
			os.Exit(1)
		}

		ps, err := pathspec.Parse(patterns)
		if err != nil {
			utils.LogError("Invalid pathspec", err.Error())
			os.Exit(1)
		}
		translation, err := pathspec.Translate(showPrefix, ps)
		if err != nil {
			utils.LogError("Unable to translate pathspec", err.Error())
			os.Exit(1)
		}
		filters = translation.Filters
		prefix = translation.CommonPrefix
		utils.LogDebugInfo("Filter rules", filters)
	}

	toplevel, err := gitconfig.ShowToplevel(gitPath(), runner)
	if err != nil {
		utils.LogError("Not inside a git work tree", err.Error())
		os.Exit(1)
	}

	transfer := rsync.Transfer{
		Direction:     direction,
		RemoteURL:     url,
		Prefix:        prefix,
		Filters:       filters,
		WorkingDir:    filepath.Join(toplevel, prefix),
		DryRun:        dryRun,
		Verbosity:     verboseLevel,
		IncludeGitDir: includeGitDir,
	}

	cfg := rsyncConfig()
	code, err := rsync.Run(runner, transfer, cfg)
	if err != nil {
		if errors.Is(err, rsync.ErrToolNotFound) {
			utils.LogError("rsync not found on this system", cfg.Path)
		} else {
			utils.LogError("Transfer failed", err.Error())
		}
		os.Exit(1)
	}
	if code != 0 {
		utils.LogError("rsync exited non-zero", code)
		if code < 0 {
			code = 1
		}
		os.Exit(code)
	}
}
