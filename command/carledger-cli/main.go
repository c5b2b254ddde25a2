// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/carledger/command/carledger-cli/rpccalls"
	"github.com/bitmark-inc/carledger/util"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	defaultConnect = "127.0.0.1:2130"
)

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "carledger-cli"
	app.Usage = "command line client for carledgerd"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	idFlag := cli.StringFlag{
		Name:  "id, i",
		Value: "",
		Usage: "*record `ID`",
	}
	dataFlag := cli.StringFlag{
		Name:  "data, d",
		Value: "",
		Usage: "*JSON document `DATA`",
	}
	tradeFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "car, c",
			Value: "",
			Usage: "*car `ID`",
		},
		cli.StringFlag{
			Name:  "person, p",
			Value: "",
			Usage: "*buyer person `ID`",
		},
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: defaultConnect,
			Usage: " carledgerd RPC `HOST:PORT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "car",
			Usage: "car records",
			Subcommands: []cli.Command{
				{
					Name:      "request",
					Usage:     "request a car from a manufacturer",
					ArgsUsage: "\n   (* = required)",
					Flags:     []cli.Flag{idFlag, dataFlag},
					Action:    runCreate(rpccalls.Car),
				},
				{
					Name:      "manufacture",
					Usage:     "build a requested car",
					ArgsUsage: "\n   (* = required)",
					Flags:     []cli.Flag{idFlag},
					Action:    runManufacture,
				},
				{
					Name:      "read",
					Usage:     "show a car",
					ArgsUsage: "\n   (* = required)",
					Flags:     []cli.Flag{idFlag},
					Action:    runRead(rpccalls.Car),
				},
				{
					Name:      "update",
					Usage:     "replace the fields of a car",
					ArgsUsage: "\n   (* = required)",
					Flags:     []cli.Flag{idFlag, dataFlag},
					Action:    runUpdate(rpccalls.Car),
				},
				{
					Name:      "delete",
					Usage:     "remove a car",
					ArgsUsage: "\n   (* = required)",
					Flags:     []cli.Flag{idFlag},
					Action:    runDelete(rpccalls.Car),
				},
				{
					Name:   "list",
					Usage:  "list all cars",
					Action: runList(rpccalls.Car),
				},
				{
					Name:      "history",
					Usage:     "every modification of a car",
					ArgsUsage: "\n   (* = required)",
					Flags:     []cli.Flag{idFlag},
					Action:    runHistory(rpccalls.Car),
				},
			},
		},
		{
			Name:  "person",
			Usage: "person records",
			Subcommands: []cli.Command{
				{
					Name:      "create",
					Usage:     "register a person",
					ArgsUsage: "\n   (* = required)",
					Flags:     []cli.Flag{idFlag, dataFlag},
					Action:    runCreate(rpccalls.Person),
				},
				{
					Name:      "read",
					Usage:     "show a person",
					ArgsUsage: "\n   (* = required)",
					Flags:     []cli.Flag{idFlag},
					Action:    runRead(rpccalls.Person),
				},
				{
					Name:      "update",
					Usage:     "replace the fields of a person",
					ArgsUsage: "\n   (* = required)",
					Flags:     []cli.Flag{idFlag, dataFlag},
					Action:    runUpdate(rpccalls.Person),
				},
				{
					Name:      "delete",
					Usage:     "remove a person",
					ArgsUsage: "\n   (* = required)",
					Flags:     []cli.Flag{idFlag},
					Action:    runDelete(rpccalls.Person),
				},
				{
					Name:   "list",
					Usage:  "list all people",
					Action: runList(rpccalls.Person),
				},
				{
					Name:      "history",
					Usage:     "every modification of a person",
					ArgsUsage: "\n   (* = required)",
					Flags:     []cli.Flag{idFlag},
					Action:    runHistory(rpccalls.Person),
				},
				{
					Name:      "cars",
					Usage:     "cars owned by a person",
					ArgsUsage: "\n   (* = required)",
					Flags:     []cli.Flag{idFlag},
					Action:    runOwned,
				},
			},
		},
		{
			Name:      "buy",
			Usage:     "first sale of a manufactured car",
			ArgsUsage: "\n   (* = required)",
			Flags:     tradeFlags,
			Action:    runBuy,
		},
		{
			Name:      "transfer",
			Usage:     "transfer a sold car to another person",
			ArgsUsage: "\n   (* = required)",
			Flags:     tradeFlags,
			Action:    runTransfer,
		},
		{
			Name:   "info",
			Usage:  "display carledgerd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display carledger-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		if "version" == c.Args().Get(0) {
			return nil
		}

		connect, err := util.CanonicalIPandPort(c.GlobalString("connect"))
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			connect: connect,
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
