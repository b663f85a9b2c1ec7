package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gitrsync/git-rsync/prerequisite"
	"github.com/gitrsync/git-rsync/rsync"
	"github.com/gitrsync/git-rsync/utils"
)

type Configuration struct {
	Version            string                              `json:"version"`
	RsyncPrerequisite  []prerequisite.GatheredPrerequisite `json:"rsync-config"`
	GitPrerequisite    []prerequisite.GatheredPrerequisite `json:"git-config"`
	RsyncSettings      rsync.Config                        `json:"rsync-settings"`
	SettingsFileActive string                              `json:"settings-file-active"`
	SettingsFile       *Settings                           `json:"settings-file,omitempty"`
	RegistryFile       string                              `json:"registry-file"`
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the config that is being used by git-rsync",
	Run: func(cmd *cobra.Command, args []string) {
		PrintConfigOut()
	},
}

func PrintConfigOut() {
	var rsyncPrerequisites []prerequisite.GatheredPrerequisite
	var gitPrerequisites []prerequisite.GatheredPrerequisite

	for _, gatherer := range prerequisite.GetPrerequisiteGatherers() {
		gathered, err := gatherer.GatherPrerequisites()
		if err != nil {
			utils.LogWarning("Unable to gather prerequisite", err.Error())
			continue
		}
		switch gatherer.GetName() {
		case "rsync":
			rsyncPrerequisites = append(rsyncPrerequisites, gathered...)
		case "git":
			gitPrerequisites = append(gitPrerequisites, gathered...)
		}
	}

	var settingsFile *Settings
	if active := viper.ConfigFileUsed(); active != "" {
		if settings, err := LoadSettings(active); err == nil {
			settingsFile = &settings
		}
	}

	config := Configuration{
		Version:            rootCmd.Version,
		RsyncPrerequisite:  rsyncPrerequisites,
		GitPrerequisite:    gitPrerequisites,
		RsyncSettings:      rsyncConfig(),
		SettingsFileActive: viper.ConfigFileUsed(),
		SettingsFile:       settingsFile,
		RegistryFile:       registryFile,
	}
	configJSON, err := json.MarshalIndent(config, "", " ")
	if err != nil {
		utils.LogFatalError(err.Error(), nil)
	}
	fmt.Println(string(configJSON))
}
