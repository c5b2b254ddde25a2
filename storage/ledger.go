// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

//go:generate mockgen -destination=mocks/ledger.go -package=mocks github.com/bitmark-inc/carledger/storage Ledger,Cursor,HistoryCursor

import (
	"time"
)

// Ledger - the key/value operations available inside one transaction
type Ledger interface {
	// Get returns nil when the key is absent
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error

	// RangeScan iterates keys in [startKey, endKey) in key order,
	// an empty endKey means no upper bound
	RangeScan(startKey string, endKey string) (Cursor, error)

	// HistoryScan iterates all modifications of key, oldest first
	HistoryScan(key string) (HistoryCursor, error)

	TxID() string
	Timestamp() time.Time
}

// Element - a key/value pair from a range scan
type Element struct {
	Key   string
	Value []byte
}

// Modification - one committed write to a key
type Modification struct {
	TxID      string
	Timestamp time.Time
	IsDelete  bool
	Value     []byte
}

// Cursor - iterator over a range scan
//
// Close must always be called, Err reports any failure that stopped Next
type Cursor interface {
	Next() bool
	Element() Element
	Err() error
	Close() error
}

// HistoryCursor - iterator over the modifications of a key
type HistoryCursor interface {
	Next() bool
	Modification() Modification
	Err() error
	Close() error
}

// Transactor - runs a function inside a transaction that is committed
// if the function succeeds
type Transactor interface {
	RunInTransaction(func(Ledger) error) error
}
