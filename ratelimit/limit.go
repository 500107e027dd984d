// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - pace tree operations with a token bucket
package ratelimit

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avlmap/fault"
)

// New - create a limiter allowing perSecond operations with a burst
// of one second's worth
//
// zero or negative perSecond means unlimited
func New(perSecond float64) *rate.Limiter {
	limit, burst := limits(perSecond)
	return rate.NewLimiter(limit, burst)
}

// Adjust - change the rate of an existing limiter
func Adjust(limiter *rate.Limiter, perSecond float64) {
	limit, burst := limits(perSecond)
	limiter.SetBurst(burst)
	limiter.SetLimit(limit)
}

func limits(perSecond float64) (rate.Limit, int) {
	if perSecond <= 0 {
		return rate.Inf, 1
	}
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	return rate.Limit(perSecond), burst
}

// LimitN - wait until a batch of operations is allowed
//
// an invalid count is limited as a single operation and reported,
// cancelling ctx ends the wait with ctx.Err()
func LimitN(ctx context.Context, limiter *rate.Limiter, count int, maximumCount int) error {
	if count <= 0 || count > maximumCount {
		if err := wait(ctx, limiter, 1); nil != err {
			return err
		}
		return fault.ErrInvalidCount
	}

	// a batch larger than the burst can never be granted in one go
	if limiter.Limit() != rate.Inf && count > limiter.Burst() {
		count = limiter.Burst()
	}

	return wait(ctx, limiter, count)
}

func wait(ctx context.Context, limiter *rate.Limiter, count int) error {
	err := limiter.WaitN(ctx, count)
	if nil == err {
		return nil
	}
	if ctxErr := ctx.Err(); nil != ctxErr {
		return ctxErr
	}

	// the wait would outlast the context deadline or the burst was
	// lowered by a concurrent Adjust
	return fmt.Errorf("%w: %s", fault.ErrRateLimiting, err)
}
