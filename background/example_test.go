// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/background"
)

type filler struct {
	tree *avl.Tree[int, string]
}

func Example() {

	proc := &filler{
		tree: avl.NewOrdered[int, string](),
	}

	// list of background processes to start
	processes := background.Processes{
		proc,
	}

	p := background.Start(processes, 3)
	time.Sleep(10 * time.Millisecond)
	p.Stop()

	fmt.Printf("size: %d\n", proc.tree.Size())
	// Output:
	// initialise
	// finalise
	// size: 3
}

func (state *filler) Run(args interface{}, shutdown <-chan struct{}) {

	limit := args.(int)
	fmt.Printf("initialise\n")

	for i := 0; i < limit; i += 1 {
		state.tree.Insert(i, fmt.Sprintf("item-%d", i))
	}

	<-shutdown

	fmt.Printf("finalise\n")
}
