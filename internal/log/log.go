// Package log holds the logger shared by the modinv command.
package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger writes diagnostics to stderr; results never go through it.
var Logger = &logrus.Logger{
	Out:       os.Stderr,
	Hooks:     make(logrus.LevelHooks),
	Formatter: &logrus.TextFormatter{DisableTimestamp: true},
	Level:     logrus.InfoLevel,
	ExitFunc:  os.Exit,
}

// Verbosity selects how much the command reports besides its result.
type Verbosity int

const (
	Normal Verbosity = iota // info and above
	Debug                   // everything, including each iteration
	Quiet                   // warnings and errors only
	Silent                  // nothing
)

// SetVerbosity adjusts the level of Logger.
func SetVerbosity(v Verbosity) {
	switch v {
	case Debug:
		Logger.SetLevel(logrus.DebugLevel)
	case Quiet:
		Logger.SetLevel(logrus.WarnLevel)
	case Silent:
		Logger.SetLevel(logrus.PanicLevel)
	default:
		Logger.SetLevel(logrus.InfoLevel)
	}
}
