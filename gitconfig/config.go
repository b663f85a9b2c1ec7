// Package gitconfig reads and writes the tool's persisted state through the
// git binary. Remotes live in git configuration under the "rsync" section, so
// the registry survives in the repository's own .git/config and behaves like
// any other git setting.
package gitconfig

import (
	"fmt"
	"strings"

	"github.com/gitrsync/git-rsync/utils"
)

// git config exits 1 when a key or pattern has no match, and 128 when asked
// to remove a section that does not exist.
const (
	exitNoMatch   = 1
	exitNoSection = 128
)

// Configuration wraps the `git config` subcommand. An alternate config file
// can be selected, otherwise git's usual local/global lookup applies.
type Configuration struct {
	gitPath string
	file    string
	runner  utils.CommandRunner
}

func NewConfiguration(gitPath string, file string, runner utils.CommandRunner) *Configuration {
	if gitPath == "" {
		gitPath = "git"
	}
	return &Configuration{gitPath: gitPath, file: file, runner: runner}
}

func (c *Configuration) baseArgs() []string {
	args := []string{"config"}
	if c.file != "" {
		args = append(args, "--file", c.file)
	}
	return args
}

// Get returns the value for key, and whether the key was present at all.
func (c *Configuration) Get(key string) (string, bool, error) {
	args := append(c.baseArgs(), "--get", key)
	out, code, err := c.runner.Run(c.gitPath, args, utils.RunOptions{})
	if err != nil {
		return "", false, err
	}
	switch code {
	case 0:
		return strings.TrimRight(out, "\r\n"), true, nil
	case exitNoMatch:
		return "", false, nil
	default:
		return "", false, fmt.Errorf("git config --get %s exited with code %d", key, code)
	}
}

// Entry is a single key/value pair from the configuration.
type Entry struct {
	Key   string
	Value string
}

// GetRegexp returns all entries whose key matches pattern, in the order git
// reports them.
func (c *Configuration) GetRegexp(pattern string) ([]Entry, error) {
	args := append(c.baseArgs(), "--get-regexp", pattern)
	out, code, err := c.runner.Run(c.gitPath, args, utils.RunOptions{})
	if err != nil {
		return nil, err
	}
	if code == exitNoMatch {
		return nil, nil
	}
	if code != 0 {
		return nil, fmt.Errorf("git config --get-regexp %s exited with code %d", pattern, code)
	}

	var entries []Entry
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		key, value, _ := strings.Cut(line, " ")
		entries = append(entries, Entry{Key: key, Value: value})
	}
	return entries, nil
}

// Set writes key to value, persisting it before returning.
func (c *Configuration) Set(key string, value string) error {
	args := append(c.baseArgs(), key, value)
	_, code, err := c.runner.Run(c.gitPath, args, utils.RunOptions{})
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("git config %s exited with code %d", key, code)
	}
	return nil
}

// RemoveSection deletes a whole configuration section. It reports false when
// the section did not exist.
func (c *Configuration) RemoveSection(section string) (bool, error) {
	args := append(c.baseArgs(), "--remove-section", section)
	_, code, err := c.runner.Run(c.gitPath, args, utils.RunOptions{})
	if err != nil {
		return false, err
	}
	switch code {
	case 0:
		return true, nil
	case exitNoMatch, exitNoSection:
		return false, nil
	default:
		return false, fmt.Errorf("git config --remove-section %s exited with code %d", section, code)
	}
}
