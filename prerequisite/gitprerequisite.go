package prerequisite

import (
	"os/exec"
	"strings"
)

// GitPrerequisite locates the git binary and reports whether we are inside a
// work tree, which transfers need for prefix resolution.
type GitPrerequisite struct{}

func (p *GitPrerequisite) GetName() string {
	return "git"
}

func (p *GitPrerequisite) GatherPrerequisites() ([]GatheredPrerequisite, error) {
	path, err := exec.LookPath("git")
	if err != nil {
		path = ""
	}

	insideWorkTree := ""
	if path != "" {
		out, err := exec.Command(path, "rev-parse", "--is-inside-work-tree").Output()
		if err == nil {
			insideWorkTree = strings.TrimSpace(string(out))
		}
	}

	return []GatheredPrerequisite{
		{
			Name:   "git_path",
			Value:  path,
			Status: statusFromString(path),
		},
		{
			Name:   "inside_work_tree",
			Value:  insideWorkTree,
			Status: statusFromString(insideWorkTree),
		},
	}, nil
}

func init() {
	RegisterPrerequisiteGatherer(&GitPrerequisite{})
}
