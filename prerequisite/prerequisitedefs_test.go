package prerequisite

import (
	"testing"
)

type staticGatherer struct {
	name string
}

func (p staticGatherer) GetName() string {
	return p.name
}

func (p staticGatherer) GatherPrerequisites() ([]GatheredPrerequisite, error) {
	return []GatheredPrerequisite{}, nil
}

func TestRegisterPrerequisiteGatherer(t *testing.T) {
	before := len(GetPrerequisiteGatherers())
	RegisterPrerequisiteGatherer(staticGatherer{name: "static"})
	after := GetPrerequisiteGatherers()
	if len(after) != before+1 {
		t.Errorf("RegisterPrerequisiteGatherer() list length = %d, want %d", len(after), before+1)
	}
	if after[len(after)-1].GetName() != "static" {
		t.Errorf("RegisterPrerequisiteGatherer() last gatherer = %v, want static", after[len(after)-1].GetName())
	}
}

func Test_statusFromString(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "Present value", value: "/usr/bin/rsync", want: 1},
		{name: "Missing value", value: "", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusFromString(tt.value); got != tt.want {
				t.Errorf("statusFromString() = %v, want %v", got, tt.want)
			}
		})
	}
}
