package utils

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
)

// RunOptions controls how a child process is run.
type RunOptions struct {
	// Dir is the working directory for the child, empty means inherit.
	Dir string
	// Stdin, when non-empty, is fed to the child on standard input.
	Stdin string
	// Forward connects the child's stdio straight to the terminal instead
	// of capturing it. Used for transfers so rsync's progress output is
	// visible as it happens.
	Forward bool
}

// CommandRunner runs a named binary with arguments and reports its captured
// stdout, its exit code and any error that prevented it from running at all.
// A non-zero exit from the child is not an error here - callers decide what
// each exit code means.
type CommandRunner interface {
	Run(name string, args []string, opts RunOptions) (string, int, error)
}

// ExecRunner runs commands with os/exec. This is the runner used everywhere
// outside of tests.
type ExecRunner struct{}

func (ExecRunner) Run(name string, args []string, opts RunOptions) (string, int, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = opts.Dir

	if opts.Stdin != "" {
		cmd.Stdin = strings.NewReader(opts.Stdin)
	}

	if opts.Forward {
		if opts.Stdin == "" {
			cmd.Stdin = os.Stdin
		}
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			if exitErr, ok := err.(*exec.ExitError); ok {
				return "", exitErr.ExitCode(), nil
			}
			return "", -1, err
		}
		return "", 0, nil
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return "", -1, err
	}
	ShowSpinner()
	defer HideSpinner()
	if err := cmd.Wait(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			LogDebugInfo("Command exited non-zero", strings.TrimSpace(stderr.String()))
			return stdout.String(), exitErr.ExitCode(), nil
		}
		return "", -1, err
	}
	return stdout.String(), 0, nil
}
