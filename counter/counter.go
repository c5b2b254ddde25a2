// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - connection counting shared by the listener and
// the node status call
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned integer that can be changed from any goroutine
type Counter uint64

// Acquire - take one slot if fewer than maximum are in use
func (ic *Counter) Acquire(maximum uint64) bool {
	if atomic.AddUint64((*uint64)(ic), 1) <= maximum {
		return true
	}
	ic.Release()
	return false
}

// Release - give back a slot taken by Acquire
func (ic *Counter) Release() {
	atomic.AddUint64((*uint64)(ic), ^uint64(0))
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}
