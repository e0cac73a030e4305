// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Codecarve Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "carve-cli"
	app.Usage = "deploy and verify content addressed artifacts"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "",
			Usage: "*carved host/IP and port, `HOST:PORT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "deploy",
			Usage:     "carve runtime bytecode into a permanent artifact",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "+bytecode file `FILE`",
				},
				cli.StringFlag{
					Name:  "code, b",
					Value: "",
					Usage: "+hex encoded bytecode `HEX`",
				},
			},
			Action: runDeploy,
		},
		{
			Name:      "address",
			Usage:     "predict the handle of bytecode without deploying",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "+bytecode file `FILE`",
				},
				cli.StringFlag{
					Name:  "code, b",
					Value: "",
					Usage: "+hex encoded bytecode `HEX`",
				},
			},
			Action: runAddress,
		},
		{
			Name:      "verify",
			Usage:     "check a stored artifact re-derives to its handle",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "handle, H",
					Value: "",
					Usage: "*artifact handle `HEX`",
				},
			},
			Action: runVerify,
		},
		{
			Name:   "info",
			Usage:  "display daemon status",
			Action: runInfo,
		},
	}

	// the connect check is deferred to the individual commands
	// so that help output works without a connection
	app.Before = func(c *cli.Context) error {
		app.Metadata = map[string]interface{}{
			"config": &metadata{
				connect: c.GlobalString("connect"),
				verbose: c.GlobalBool("verbose"),
				e:       app.ErrWriter,
				w:       app.Writer,
			},
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(os.Stderr, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
