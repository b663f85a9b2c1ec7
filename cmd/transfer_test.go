package cmd

import (
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/gitrsync/git-rsync/rsync"
	"github.com/gitrsync/git-rsync/utils"
)

type recordedRun struct {
	name string
	args []string
	opts utils.RunOptions
}

type fakeRunner struct {
	results map[string]struct {
		stdout string
		code   int
	}
	runs []recordedRun
}

func (f *fakeRunner) Run(name string, args []string, opts utils.RunOptions) (string, int, error) {
	f.runs = append(f.runs, recordedRun{name: name, args: args, opts: opts})
	key := strings.Join(append([]string{name}, args...), " ")
	if res, ok := f.results[key]; ok {
		return res.stdout, res.code, nil
	}
	return "", 0, nil
}

func Test_rsyncConfig(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	if got := rsyncConfig(); !reflect.DeepEqual(got, rsync.DefaultConfig()) {
		t.Errorf("rsyncConfig() without settings = %v, want defaults", got)
	}

	viper.Set("rsync", map[string]interface{}{
		"path":  "/opt/bin/rsync",
		"flags": []string{"-a", "-z"},
	})
	got := rsyncConfig()
	if got.Path != "/opt/bin/rsync" {
		t.Errorf("rsyncConfig() path = %q, want /opt/bin/rsync", got.Path)
	}
	if want := []string{"-a", "-z"}; !reflect.DeepEqual(got.Flags, want) {
		t.Errorf("rsyncConfig() flags = %v, want %v", got.Flags, want)
	}
}

func Test_transferRun_Upload(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	fake := &fakeRunner{results: map[string]struct {
		stdout string
		code   int
	}{
		"git config --get rsync.host1.url": {stdout: "example.com:proj\n", code: 0},
		"git rev-parse --show-prefix":      {stdout: "\n", code: 0},
		"git rev-parse --show-toplevel":    {stdout: "/repo\n", code: 0},
	}}
	origRunner := runner
	runner = fake
	defer func() { runner = origRunner }()

	transferRun(rsync.Upload, uploadCmd, []string{"host1", "README.md"})

	last := fake.runs[len(fake.runs)-1]
	if last.name != "rsync" {
		t.Fatalf("transferRun() final child = %q, want rsync", last.name)
	}
	if last.args[len(last.args)-1] != "example.com:proj" {
		t.Errorf("transferRun() destination = %q, want example.com:proj", last.args[len(last.args)-1])
	}
	if last.args[len(last.args)-2] != "." {
		t.Errorf("transferRun() source = %q, want .", last.args[len(last.args)-2])
	}
	if !strings.Contains(last.opts.Stdin, "+ README.md") {
		t.Errorf("transferRun() filters on stdin = %q, want an include for README.md", last.opts.Stdin)
	}
	if last.opts.Dir != "/repo" {
		t.Errorf("transferRun() working dir = %q, want /repo", last.opts.Dir)
	}
}
