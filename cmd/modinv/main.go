package main

import (
	"os"

	"github.com/kbolino/modinv/internal/app"
	"github.com/kbolino/modinv/internal/log"
	"github.com/urfave/cli"
)

var version string

func init() {
	if version == "" {
		version = "unknown"
	}
}

func main() {
	a := app.New(os.Stdout)
	a.Version = version
	// ExitCoder errors have already been reported and set the exit status
	if err := a.Run(os.Args); err != nil {
		if _, ok := err.(cli.ExitCoder); !ok {
			log.Logger.Fatal(err)
		}
	}
}
