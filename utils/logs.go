package utils

import (
	"encoding/json"
	"os"

	"github.com/spf13/viper"
	"github.com/withmandala/go-log"
)

var colour bool

func SetColour(c bool) {
	colour = c
}

func newLogger() *log.Logger {
	logger := log.New(os.Stderr)
	if colour {
		logger.WithColor()
	} else {
		logger.WithoutColor()
	}
	return logger
}

func LogProcessStep(message string, output interface{}) {
	if output == nil {
		newLogger().Info(message)
	} else {
		newLogger().Info(message, output)
	}
}

// LogDebugInfo only logs when the show-debug setting is active. Non-string
// output is rendered as indented JSON.
func LogDebugInfo(message string, output interface{}) {
	if debug := viper.Get("show-debug"); debug != true {
		return
	}
	logger := newLogger().WithDebug()
	switch out := output.(type) {
	case nil:
		logger.Debug(message)
	case string:
		logger.Debug(message, out)
	default:
		s, _ := json.MarshalIndent(out, "", "  ")
		logger.Debug(message, string(s))
	}
}

func LogWarning(message string, output interface{}) {
	if output == nil {
		newLogger().Warn(message)
	} else {
		newLogger().Warn(message, output)
	}
}

func LogError(message string, output interface{}) {
	if output == nil {
		newLogger().Error(message)
	} else {
		newLogger().Error(message, output)
	}
}

func LogFatalError(message string, output interface{}) {
	if output == nil {
		newLogger().Fatal(message)
	} else {
		newLogger().Fatal(message, output)
	}
}
