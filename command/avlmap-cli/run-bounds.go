// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlmap/avl"
)

type boundsResult struct {
	Key        string `json:"key"`
	Count      int    `json:"count"`
	LowerBound string `json:"lower_bound"`
	UpperBound string `json:"upper_bound"`
}

// key of a position or "end"
func positionKey(p avl.Position[key, string]) string {
	if p.IsEnd() {
		return "end"
	}
	return p.Key().String()
}

func runBounds(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	k, err := m.requiredKey(c, "key")
	if nil != err {
		return err
	}

	tree, err := m.readTree(c, false)
	if nil != err {
		return err
	}

	lower, upper := tree.EqualRange(k)
	result := boundsResult{
		Key:        k.String(),
		Count:      tree.Count(k),
		LowerBound: positionKey(lower),
		UpperBound: positionKey(upper),
	}

	if m.json {
		return printJson(m.w, result)
	}
	fmt.Fprintf(m.w, "key: %s\ncount: %d\nlower bound: %s\nupper bound: %s\n",
		result.Key,
		result.Count,
		result.LowerBound,
		result.UpperBound,
	)
	return nil
}
