package utils

import (
	"sync"
	"time"

	spinner2 "github.com/briandowns/spinner"
)

// Wrapper around briandowns/spinner so longer running child processes with
// captured output still show activity on the terminal. Disabled by default
// and when output is not interactive.

var showSpinner bool
var spinnerMx sync.Mutex

var spin *spinner2.Spinner

func SetShowSpinner(s bool) {
	spinnerMx.Lock()
	defer spinnerMx.Unlock()
	showSpinner = s
}

func ShowSpinner() {
	spinnerMx.Lock()
	defer spinnerMx.Unlock()
	if !showSpinner {
		return
	}
	if spin != nil && spin.Active() {
		return
	}
	if spin == nil {
		spin = spinner2.New(spinner2.CharSets[9], 100*time.Millisecond)
	}
	spin.Start()
}

func HideSpinner() {
	spinnerMx.Lock()
	defer spinnerMx.Unlock()
	if spin != nil && spin.Active() {
		spin.Stop()
	}
	spin = nil
}
