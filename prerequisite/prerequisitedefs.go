// Package prerequisite gathers information about the tools git-rsync
// delegates to, so the config command can report whether a transfer would
// even be possible on this system.
package prerequisite

type GatheredPrerequisite struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Status int    `json:"status"`
}

type PrerequisiteGatherer interface {
	GetName() string
	GatherPrerequisites() ([]GatheredPrerequisite, error)
}

var prerequisiteGathererList []PrerequisiteGatherer

func RegisterPrerequisiteGatherer(gatherer PrerequisiteGatherer) {
	prerequisiteGathererList = append(prerequisiteGathererList, gatherer)
}

func GetPrerequisiteGatherers() []PrerequisiteGatherer {
	return prerequisiteGathererList
}

func statusFromString(value string) int {
	if value != "" {
		return 1
	}
	return 0
}
