// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"encoding/hex"
	"sync/atomic"
	"time"

	"golang.org/x/crypto/sha3"
)

// distinguishes transactions started in the same nanosecond
var txSequence uint64

// NewTxID - a unique transaction id: hex SHA3-256(timestamp ++ sequence)
func NewTxID(timestamp time.Time) string {
	buffer := make([]byte, 16)
	binary.BigEndian.PutUint64(buffer[:8], uint64(timestamp.UnixNano()))
	binary.BigEndian.PutUint64(buffer[8:], atomic.AddUint64(&txSequence, 1))
	digest := sha3.Sum256(buffer)
	return hex.EncodeToString(digest[:])
}
