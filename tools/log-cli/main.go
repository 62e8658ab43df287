package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Run with `go run ./tools/log-cli`

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "Carmen Log Toolbox",
		HelpName:  "logs",
		Usage:     "A set of utilities to encode, index and query EVM logs",
		Copyright: "(c) 2024 Fantom Foundation",
		Flags: []cli.Flag{
			&logLevelFlag,
		},
		Commands: []*cli.Command{
			&encodeCommand,
			&bloomCommand,
			&importCommand,
			&queryCommand,
		},
	}
}
