package main

import (
	"errors"
	"fmt"
	"os"
	"patient-viewer-service/internal/app/delivery/cli"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	rootCmd := cli.NewRootCommand(cli.BuildInfo{Version: Version, Tag: Tag}, cli.DefaultClientFactory, os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, cli.ErrViewFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
