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
)

type metadata struct {
	database string
	base58   bool
	json     bool
	verbose  bool
	r        io.Reader
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := newApp(os.Stdin, os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(r io.Reader, w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avlmap-cli"
	app.Usage = "order key/value lines with an AVL tree"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e
	app.Metadata = make(map[string]interface{})

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "database, d",
			Value: "",
			Usage: " read entries from LevelDB `DIR` instead of a text file",
		},
		cli.BoolFlag{
			Name:  "base58, b",
			Usage: " keys are Base58 text, ordered by their decoded bytes",
		},
		cli.BoolFlag{
			Name:  "json, j",
			Usage: " print results as JSON",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "sort",
			Usage:     "print all entries in key order",
			ArgsUsage: "[FILE]",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "reverse, r",
					Usage: " descending order",
				},
				cli.BoolFlag{
					Name:  "last, l",
					Usage: " a repeated key keeps its last value instead of its first",
				},
			},
			Action: runSort,
		},
		{
			Name:      "range",
			Usage:     "print entries with keys in [from, to)",
			ArgsUsage: "[FILE]\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: "*first key `KEY` (inclusive)",
				},
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: " limit key `KEY` (exclusive) [end of data]",
				},
			},
			Action: runRange,
		},
		{
			Name:      "bounds",
			Usage:     "show the lower and upper bound of a key",
			ArgsUsage: "[FILE]\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*search key `KEY`",
				},
			},
			Action: runBounds,
		},
		{
			Name:      "get",
			Usage:     "print the value of a single key",
			ArgsUsage: "[FILE]\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*search key `KEY`",
				},
			},
			Action: runGet,
		},
		{
			Name:      "print",
			Usage:     "draw the tree structure",
			ArgsUsage: "[FILE]",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "keys-only, k",
					Usage: " omit values, balance and height",
				},
			},
			Action: runPrint,
		},
		{
			Name:      "save",
			Usage:     "store the entries in a LevelDB database",
			ArgsUsage: "[FILE]\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: "*LevelDB `DIR` to create or replace",
				},
			},
			Action: runSave,
		},
		{
			Name:  "version",
			Usage: "display avlmap-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		m := &metadata{
			database: c.GlobalString("database"),
			base58:   c.GlobalBool("base58"),
			json:     c.GlobalBool("json"),
			verbose:  c.GlobalBool("verbose"),
			r:        r,
			e:        c.App.ErrWriter,
			w:        c.App.Writer,
		}
		c.App.Metadata["config"] = m

		if m.verbose && "" != m.database {
			fmt.Fprintf(m.e, "database: %q\n", m.database)
		}
		return nil
	}

	return app
}
