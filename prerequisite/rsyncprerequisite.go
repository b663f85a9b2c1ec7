package prerequisite

import (
	"os/exec"
)

// RsyncPrerequisite locates the rsync binary the transfers will delegate to.
type RsyncPrerequisite struct{}

func (p *RsyncPrerequisite) GetName() string {
	return "rsync"
}

func (p *RsyncPrerequisite) GatherPrerequisites() ([]GatheredPrerequisite, error) {
	path, err := exec.LookPath("rsync")
	if err != nil {
		path = ""
	}
	return []GatheredPrerequisite{
		{
			Name:   "rsync_path",
			Value:  path,
			Status: statusFromString(path),
		},
	}, nil
}

func init() {
	RegisterPrerequisiteGatherer(&RsyncPrerequisite{})
}
