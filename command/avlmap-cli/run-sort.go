// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runSort(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := m.readTree(c, c.Bool("last"))
	if nil != err {
		return err
	}

	out := m.newOutput()
	if c.Bool("reverse") {
		for r := tree.RBegin(); !r.IsEnd(); r = r.Next() {
			out.add(r.Key(), r.Value())
		}
	} else {
		for p := tree.Begin(); !p.IsEnd(); p = p.Next() {
			out.add(p.Key(), p.Value())
		}
	}
	return out.flush()
}
