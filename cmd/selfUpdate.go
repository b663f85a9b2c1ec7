package cmd

import (
	"crypto"
	"fmt"
	"net/http"
	"os"

	"github.com/inconshreveable/go-update"
	"github.com/spf13/cobra"

	"github.com/gitrsync/git-rsync/utils"
)

const selfUpdateDownloadURL = "https://github.com/gitrsync/git-rsync/releases/latest/download/git-rsync"

// selfUpdateCmd represents the selfUpdate command
var selfUpdateCmd = &cobra.Command{
	Use:   "selfUpdate",
	Short: "Update this tool to the latest version",
	Long:  "Update this tool to the latest version.",
	Run: func(cmd *cobra.Command, args []string) {
		finalDLUrl, err := followRedirectsToActualFile(selfUpdateDownloadURL)
		if err != nil {
			utils.LogError("There was an error resolving the self-update url", err.Error())
			return
		}
		if err := doUpdate(finalDLUrl); err != nil {
			utils.LogError("Unable to apply update", err.Error())
			os.Exit(1)
		}
	},
}

func followRedirectsToActualFile(url string) (string, error) {
	resp, err := http.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	return resp.Request.URL.String(), nil
}

func doUpdate(url string) error {
	fmt.Printf("Downloading binary from %s\n", url)
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected response: %s", resp.Status)
	}

	executable, err := os.Executable()
	if err != nil {
		return err
	}

	fmt.Printf("Applying update...\n")
	return update.Apply(resp.Body, update.Options{
		TargetPath: executable,
		Hash:       crypto.SHA256,
	})
}

func init() {
	rootCmd.AddCommand(selfUpdateCmd)
}
