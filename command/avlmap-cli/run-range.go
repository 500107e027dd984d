// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runRange(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	from, err := m.requiredKey(c, "from")
	if nil != err {
		return err
	}

	var to *key
	if s := c.String("to"); "" != s {
		k, err := m.parseKey(s)
		if nil != err {
			return err
		}
		to = &k
	}

	var tree *entryTree
	if "" != m.database {
		limit := ""
		if nil != to {
			limit = to.raw
		}
		tree, err = m.loadDatabase(from.raw, limit)
	} else {
		tree, err = m.readTree(c, false)
	}
	if nil != err {
		return err
	}

	last := tree.End()
	if nil != to {
		last = tree.LowerBound(*to)
	}

	out := m.newOutput()

	// an empty range when from is not before to
	if !last.IsEnd() && !keyLess(from, last.Key()) {
		return out.flush()
	}
	for p := tree.LowerBound(from); !p.Equal(last); p = p.Next() {
		out.add(p.Key(), p.Value())
	}
	return out.flush()
}
