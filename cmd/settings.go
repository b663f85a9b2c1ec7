package cmd

import (
	"errors"
	"os"

	"gopkg.in/yaml.v2"
)

// Settings mirrors the .git-rsync.yml layout.
type Settings struct {
	Rsync struct {
		Path  string   `json:"path" yaml:"path"`
		Flags []string `json:"flags" yaml:"flags"`
	} `json:"rsync" yaml:"rsync"`
	Git struct {
		Path string `json:"path" yaml:"path"`
	} `json:"git" yaml:"git"`
	ShowDebug bool `json:"show-debug" yaml:"show-debug"`
}

// LoadSettings parses a settings file as written, without viper's defaults
// layered on top.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, errors.New("unable to parse settings yaml")
	}
	return settings, nil
}
