package rsync

import (
	"errors"
	"os/exec"
	"reflect"
	"testing"

	"github.com/gitrsync/git-rsync/utils"
)

type recordedRun struct {
	name string
	args []string
	opts utils.RunOptions
}

type fakeRunner struct {
	runs []recordedRun
	code int
	err  error
}

func (f *fakeRunner) Run(name string, args []string, opts utils.RunOptions) (string, int, error) {
	f.runs = append(f.runs, recordedRun{name: name, args: args, opts: opts})
	return "", f.code, f.err
}

func TestTransfer_Args(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name     string
		transfer Transfer
		want     []string
	}{
		{
			name: "Upload targets the remote",
			transfer: Transfer{
				Direction: Upload,
				RemoteURL: "example.com:proj",
			},
			want: []string{"-azP", "--exclude=.git/", ".", "example.com:proj"},
		},
		{
			name: "Upload with a prefix",
			transfer: Transfer{
				Direction: Upload,
				RemoteURL: "example.com:proj",
				Prefix:    "docs",
			},
			want: []string{"-azP", "--exclude=.git/", ".", "example.com:proj/docs"},
		},
		{
			name: "Download sources the remote with a trailing slash",
			transfer: Transfer{
				Direction: Download,
				RemoteURL: "example.com:proj",
			},
			want: []string{"-azP", "--exclude=.git/", "example.com:proj/", "."},
		},
		{
			name: "Dry run and verbosity",
			transfer: Transfer{
				Direction: Upload,
				RemoteURL: "example.com:proj",
				DryRun:    true,
				Verbosity: 2,
			},
			want: []string{"-azP", "-n", "-vv", "--exclude=.git/", ".", "example.com:proj"},
		},
		{
			name: "Filters enable the merge filter",
			transfer: Transfer{
				Direction: Upload,
				RemoteURL: "example.com:proj",
				Filters:   []string{"+ README.md", "- *"},
			},
			want: []string{"-azP", "--exclude=.git/", "--filter=merge -", ".", "example.com:proj"},
		},
		{
			name: "Git directory can be included",
			transfer: Transfer{
				Direction:     Upload,
				RemoteURL:     "example.com:proj",
				IncludeGitDir: true,
			},
			want: []string{"-azP", ".", "example.com:proj"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.transfer.Args(cfg)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Args() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRun_FeedsFiltersOnStdin(t *testing.T) {
	runner := &fakeRunner{}
	transfer := Transfer{
		Direction:  Upload,
		RemoteURL:  "example.com:proj",
		Filters:    []string{"+ README.md/***", "+ README.md", "- *"},
		WorkingDir: "/repo",
	}
	code, err := Run(runner, transfer, DefaultConfig())
	if err != nil {
		t.Fatalf("Run() unexpected error = %v", err)
	}
	if code != 0 {
		t.Errorf("Run() code = %d, want 0", code)
	}
	if len(runner.runs) != 1 {
		t.Fatalf("Run() made %d invocations, want 1", len(runner.runs))
	}
	run := runner.runs[0]
	if run.name != "rsync" {
		t.Errorf("Run() binary = %q, want rsync", run.name)
	}
	if run.opts.Stdin != "+ README.md/***\n+ README.md\n- *" {
		t.Errorf("Run() stdin = %q", run.opts.Stdin)
	}
	if run.opts.Dir != "/repo" {
		t.Errorf("Run() dir = %q, want /repo", run.opts.Dir)
	}
	if !run.opts.Forward {
		t.Errorf("Run() should forward stdio to the terminal")
	}
}

func TestRun_PropagatesExitCode(t *testing.T) {
	runner := &fakeRunner{code: 23}
	code, err := Run(runner, Transfer{Direction: Download, RemoteURL: "example.com:proj"}, DefaultConfig())
	if err != nil {
		t.Fatalf("Run() unexpected error = %v", err)
	}
	if code != 23 {
		t.Errorf("Run() code = %d, want 23 unchanged", code)
	}
}

func TestRun_ToolNotFound(t *testing.T) {
	runner := &fakeRunner{err: &exec.Error{Name: "rsync", Err: exec.ErrNotFound}}
	_, err := Run(runner, Transfer{Direction: Upload, RemoteURL: "example.com:proj"}, DefaultConfig())
	if !errors.Is(err, ErrToolNotFound) {
		t.Errorf("Run() error = %v, want ErrToolNotFound", err)
	}
}
