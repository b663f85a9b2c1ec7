package cmd

import (
	"reflect"
	"testing"

	"github.com/gitrsync/git-rsync/gitconfig"
)

func Test_formatRemotes(t *testing.T) {
	tests := []struct {
		name    string
		remotes []gitconfig.Remote
		want    []string
	}{
		{
			name:    "No remotes",
			remotes: nil,
			want:    []string{},
		},
		{
			name: "Names are padded to align the URLs",
			remotes: []gitconfig.Remote{
				{Name: "host1", URL: "example.com:proj"},
				{Name: "backup-host", URL: "backup.example.com:archive"},
			},
			want: []string{
				"host1        example.com:proj",
				"backup-host  backup.example.com:archive",
			},
		},
		{
			name: "Very long names stop widening the column",
			remotes: []gitconfig.Remote{
				{Name: "a-name-well-over-twenty-characters", URL: "example.com:a"},
				{Name: "short", URL: "example.com:b"},
			},
			want: []string{
				"a-name-well-over-twenty-characters  example.com:a",
				"short                 example.com:b",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatRemotes(tt.remotes)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("formatRemotes() = %v, want %v", got, tt.want)
			}
		})
	}
}
