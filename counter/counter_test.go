// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/carledger/counter"
)

func TestAcquireRelease(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.Acquire(2), "first slot refused")
	assert.True(t, c.Acquire(2), "second slot refused")
	assert.False(t, c.Acquire(2), "third slot granted")
	assert.Equal(t, uint64(2), c.Uint64(), "refused acquire changed count")

	c.Release()
	assert.Equal(t, uint64(1), c.Uint64(), "wrong count after release")
	assert.True(t, c.Acquire(2), "freed slot refused")
}

func TestConcurrentAcquire(t *testing.T) {
	var c counter.Counter
	var granted counter.Counter

	wg := sync.WaitGroup{}
	for i := 0; i < 50; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Acquire(10) {
				granted.Acquire(1000)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(10), granted.Uint64(), "wrong number of slots granted")
	assert.Equal(t, uint64(10), c.Uint64(), "wrong final count")
}
