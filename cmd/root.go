package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/gitrsync/git-rsync/gitconfig"
	"github.com/gitrsync/git-rsync/utils"
)

// runner is swapped for a fake in tests.
var runner utils.CommandRunner = utils.ExecRunner{}

// Overridden at build time via -ldflags.
var version = "dev"

var cfgFile string
var registryFile string
var verboseLevel int
var noColor bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "git-rsync",
	Short:   "Transfer working tree files over rsync using git pathspecs",
	Long:    `git-rsync keeps named rsync targets in git configuration and uploads or downloads working tree files against them, selecting files with git style pathspecs. The transfer itself is delegated to rsync.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default is .git-rsync.yml in the current or home directory)")
	rootCmd.PersistentFlags().StringVar(&registryFile, "file", "", "keep the remote registry in the given git config file instead of the repository config")
	rootCmd.PersistentFlags().CountVarP(&verboseLevel, "verbose", "v", "increase rsync verbosity, repeatable")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored log output")
	rootCmd.PersistentFlags().Bool("show-debug", false, "print debug information")
	viper.BindPFlag("show-debug", rootCmd.PersistentFlags().Lookup("show-debug"))
}

// initConfig reads in the settings file and ENV variables if set.
func initConfig() {
	viper.SetDefault("rsync.path", "rsync")
	viper.SetDefault("rsync.flags", []string{"-azP"})
	viper.SetDefault("git.path", "git")

	if cfgFile != "" {
		if !utils.FileExists(cfgFile) {
			utils.LogWarning("Settings file does not exist", cfgFile)
		}
		viper.SetConfigFile(cfgFile)
	} else {
		// Search the current directory first, then home.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.SetConfigName(".git-rsync")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a settings file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		utils.LogDebugInfo("Using settings file", viper.ConfigFileUsed())
	}

	utils.SetColour(!noColor)
}

func gitPath() string {
	return viper.GetString("git.path")
}

func newRegistry() *gitconfig.Registry {
	return gitconfig.NewRegistry(gitconfig.NewConfiguration(gitPath(), registryFile, runner))
}
