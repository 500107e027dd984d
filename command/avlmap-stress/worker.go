// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"math/rand"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/counter"
	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/ratelimit"
	"github.com/bitmark-inc/logger"
)

// statistics shared by all workers
type statistics struct {
	inserts  counter.Counter
	deletes  counter.Counter
	lookups  counter.Counter
	ranges   counter.Counter
	rounds   counter.Counter
	failures counter.Counter
}

// worker - owns one tree and a plain map that mirrors it
type worker struct {
	id       int
	log      *logger.L
	tree     *avl.Tree[uint64, uint64]
	shadow   map[uint64]uint64
	rng      *rand.Rand
	keySpace uint64
	batch    int
	rounds   uint64
	limiter  *rate.Limiter
	stats    *statistics
}

func newWorker(id int, config *Configuration, limiter *rate.Limiter, stats *statistics) *worker {
	return &worker{
		id:       id,
		log:      logger.New(fmt.Sprintf("worker-%d", id)),
		tree:     avl.NewOrdered[uint64, uint64](),
		shadow:   make(map[uint64]uint64),
		rng:      rand.New(rand.NewSource(config.Seed + int64(id))),
		keySpace: config.KeySpace,
		batch:    config.BatchSize,
		rounds:   config.Rounds,
		limiter:  limiter,
		stats:    stats,
	}
}

// Run - background process loop
func (w *worker) Run(args interface{}, shutdown <-chan struct{}) {

	w.log.Info("starting…")
	defer w.log.Info("stopped")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-shutdown:
			cancel()
		case <-ctx.Done():
		}
	}()

loop:
	for n := uint64(0); 0 == w.rounds || n < w.rounds; n += 1 {

		select {
		case <-shutdown:
			break loop
		default:
		}

		if err := w.round(ctx); nil != err {
			if context.Canceled == err {
				break loop
			}
			w.stats.failures.Increment()
			w.log.Criticalf("round: %d  failed: %s", n, err)
			w.log.Flush()
			return
		}
		w.stats.rounds.Increment()
		w.log.Debugf("round: %d  size: %d  height: %d", n, w.tree.Size(), w.tree.Height())
	}
	w.log.Infof("final size: %d  height: %d", w.tree.Size(), w.tree.Height())
}

// pace a batch of operations, returns context.Canceled on shutdown
func (w *worker) wait(ctx context.Context) error {
	return ratelimit.LimitN(ctx, w.limiter, w.batch, maximumBatchSize)
}

// one round of random inserts, deletes and lookups followed by a
// complete structural check
func (w *worker) round(ctx context.Context) error {

	if err := w.wait(ctx); nil != err {
		return err
	}
	for i := 0; i < w.batch; i += 1 {
		key := w.randomKey()
		value := w.rng.Uint64()
		_, inserted := w.tree.Insert(key, value)
		_, present := w.shadow[key]
		if inserted == present {
			return fmt.Errorf("%w: insert key: %d  inserted: %v  previously present: %v", fault.ErrValueMismatch, key, inserted, present)
		}
		if inserted {
			w.shadow[key] = value
		}
	}
	w.stats.inserts.Add(uint64(w.batch))

	if err := w.wait(ctx); nil != err {
		return err
	}
	for i := 0; i < w.batch; i += 1 {
		key := w.randomKey()
		_, present := w.shadow[key]
		removed := w.tree.Delete(key)
		if present != (1 == removed) {
			return fmt.Errorf("%w: delete key: %d  removed: %d  present: %v", fault.ErrValueMismatch, key, removed, present)
		}
		delete(w.shadow, key)
	}
	w.stats.deletes.Add(uint64(w.batch))

	if err := w.wait(ctx); nil != err {
		return err
	}
	for i := 0; i < w.batch; i += 1 {
		key := w.randomKey()
		value, found := w.tree.Get(key)
		expected, present := w.shadow[key]
		if found != present || value != expected {
			return fmt.Errorf("%w: get key: %d  value: %d  expected: %d", fault.ErrValueMismatch, key, value, expected)
		}
	}
	w.stats.lookups.Add(uint64(w.batch))

	if err := w.eraseRange(); nil != err {
		return err
	}

	if err := w.tree.Check(); nil != err {
		return err
	}
	if w.tree.Size() != len(w.shadow) {
		return fmt.Errorf("%w: tree: %d  map: %d", fault.ErrCountMismatch, w.tree.Size(), len(w.shadow))
	}
	return nil
}

// occasionally remove a narrow range of keys so that whole subtrees
// disappear at once
func (w *worker) eraseRange() error {

	if 0 != w.rng.Intn(8) {
		return nil
	}

	span := w.keySpace / 100
	if 0 == span {
		span = 1
	}
	from := w.randomKey()
	to := from + span

	expected := 0
	for k := range w.shadow {
		if k >= from && k < to {
			expected += 1
		}
	}

	before := w.tree.Size()
	w.tree.EraseRange(w.tree.LowerBound(from), w.tree.LowerBound(to))
	if before-w.tree.Size() != expected {
		return fmt.Errorf("%w: erase range [%d, %d)  removed: %d  expected: %d", fault.ErrCountMismatch, from, to, before-w.tree.Size(), expected)
	}
	for k := range w.shadow {
		if k >= from && k < to {
			delete(w.shadow, k)
		}
	}
	w.stats.ranges.Increment()
	return nil
}

func (w *worker) randomKey() uint64 {
	return uint64(w.rng.Int63n(int64(w.keySpace)))
}
