// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	k, err := m.requiredKey(c, "key")
	if nil != err {
		return err
	}

	var value string
	if "" != m.database {
		value, err = m.lookupDatabase(k)
	} else {
		value, err = m.getFromInput(c, k)
	}
	if nil != err {
		return fmt.Errorf("%w: %s", err, k)
	}

	out := m.newOutput()
	out.add(k, value)
	return out.flush()
}

func (m *metadata) getFromInput(c *cli.Context, k key) (string, error) {
	tree, err := m.readTree(c, false)
	if nil != err {
		return "", err
	}
	return tree.At(k)
}
