// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - versioned key/value ledger
//
// The Ledger interface is all the asset managers need: point
// read/write/delete, an ordered range scan and the modification
// history of a single key.  It is satisfied by a Transaction on the
// LevelDB Database here and by the chaincode stub adapter.
//
// The database is split into a series of pools.  Each pool is defined
// by a prefix byte that is obtained from the prefix tag in the struct
// defining the available pools.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++    = concatenation of byte data
// 3. key   = the ledger key bytes, e.g. "CAR_1003"
// 4. count = big endian uint64 (8 bytes)
//
// State:
//
//   S ++ key                   - current value
//                                data: value bytes
//
// History:
//
//   H ++ key ++ 0x00 ++ count  - one entry for each committed write
//                                data: txId length(varint) ++ txId ++ timestamp(varint unix nanoseconds)
//                                      ++ delete flag(1 byte) ++ value bytes
//
// Versions:
//
//   N ++ key                   - number of history entries, used for read conflict detection
//                                data: count
//
// A transaction reads from a snapshot taken when it begins, buffers
// its writes and on commit checks that none of the keys it read have
// been changed by some other transaction committed in between.
package storage
