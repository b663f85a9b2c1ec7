// Package rsync builds and runs the rsync command line for a transfer. The
// actual file transfer, transport and authentication are rsync's problem -
// this package only assembles arguments, feeds filter rules on stdin and
// hands back rsync's exit code untouched.
package rsync

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/gitrsync/git-rsync/utils"
)

// ErrToolNotFound is reported when the rsync binary cannot be found on the
// system at all.
var ErrToolNotFound = errors.New("rsync binary not found")

// Direction says which side of the transfer is local.
type Direction int

const (
	Upload Direction = iota
	Download
)

func (d Direction) String() string {
	if d == Download {
		return "download"
	}
	return "upload"
}

// Config is the rsync invocation settings, normally populated from the
// tool's configuration file.
type Config struct {
	// Path of the rsync binary.
	Path string `json:"path" mapstructure:"path"`
	// Flags always passed first.
	Flags []string `json:"flags" mapstructure:"flags"`
}

// DefaultConfig matches plain `rsync -azP`: archive, compress, progress.
func DefaultConfig() Config {
	return Config{
		Path:  "rsync",
		Flags: []string{"-azP"},
	}
}

// Transfer describes one upload or download against a resolved remote.
type Transfer struct {
	Direction Direction
	// RemoteURL is the remote's host:path target.
	RemoteURL string
	// Prefix is the directory under both roots the transfer starts at,
	// usually the pathspec's common prefix.
	Prefix string
	// Filters are merge-format filter lines fed to rsync on stdin.
	Filters []string
	// WorkingDir is where rsync runs, the local counterpart of Prefix.
	WorkingDir string

	DryRun        bool
	Verbosity     int
	IncludeGitDir bool
}

// remotePath joins the remote URL with the transfer prefix.
func (t Transfer) remotePath() string {
	if t.Prefix == "" {
		return t.RemoteURL
	}
	return strings.TrimSuffix(t.RemoteURL, "/") + "/" + t.Prefix
}

// Args assembles the full argument vector, without the binary itself.
// Filter ordering is significant: rsync applies the first matching rule.
func (t Transfer) Args(cfg Config) []string {
	args := append([]string{}, cfg.Flags...)

	if t.DryRun {
		args = append(args, "-n")
	}
	if t.Verbosity > 0 {
		args = append(args, "-"+strings.Repeat("v", t.Verbosity))
	}
	if !t.IncludeGitDir {
		args = append(args, "--exclude=.git/")
	}
	if len(t.Filters) > 0 {
		args = append(args, "--filter=merge -")
	}

	remote := t.remotePath()
	if t.Direction == Upload {
		args = append(args, ".", remote)
	} else {
		source := "./"
		if remote != "" {
			source = remote + "/"
		}
		args = append(args, source, ".")
	}
	return args
}

// Run executes the transfer and returns rsync's exit code verbatim. The
// child inherits our stdio so progress output lands on the terminal.
func Run(runner utils.CommandRunner, t Transfer, cfg Config) (int, error) {
	path := cfg.Path
	if path == "" {
		path = "rsync"
	}

	args := t.Args(cfg)
	utils.LogDebugInfo("rsync invocation", append([]string{path}, args...))

	opts := utils.RunOptions{
		Dir:     t.WorkingDir,
		Stdin:   strings.Join(t.Filters, "\n"),
		Forward: true,
	}
	_, code, err := runner.Run(path, args, opts)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return -1, ErrToolNotFound
		}
		return -1, err
	}
	return code, nil
}
