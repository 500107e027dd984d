// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/storage"
)

func runSave(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	output := c.String("output")
	if "" == output {
		return ErrRequiredOutput
	}

	tree, err := m.readTree(c, false)
	if nil != err {
		return err
	}

	// the database holds raw key bytes
	raw := avl.NewOrdered[string, string]()
	tree.Ascend(func(k key, v string) bool {
		raw.Insert(k.raw, v)
		return true
	})

	s, err := storage.Open(output, false)
	if nil != err {
		return err
	}
	defer s.Close()

	n, err := s.Save(raw)
	if nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "saved: %d entries to: %q\n", n, output)
	}
	return nil
}
