// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/carledger/fault"
)

// Transaction - a unit of work against a snapshot of the database
//
// point reads see the transaction's own pending writes, range and
// history scans see only the snapshot
type Transaction struct {
	sync.Mutex

	database  *Database
	txID      string
	timestamp time.Time
	snapshot  *leveldb.Snapshot
	writes    Cache
	order     []string
	reads     map[string]uint64
	closed    bool
}

// Begin - start a transaction
func (d *Database) Begin(txID string, timestamp time.Time) (*Transaction, error) {
	d.Lock()
	defer d.Unlock()

	if nil == d.db {
		return nil, fault.ErrNotInitialised
	}
	if "" == txID {
		return nil, fault.Detail(fault.ErrMissingParameters, "transaction id")
	}

	snapshot, err := d.db.GetSnapshot()
	if nil != err {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	return &Transaction{
		database:  d,
		txID:      txID,
		timestamp: timestamp,
		snapshot:  snapshot,
		writes:    newCache(),
		reads:     make(map[string]uint64),
	}, nil
}

// RunInTransaction - run a function in a new transaction, commit if
// it succeeds and abort if it fails or panics
func (d *Database) RunInTransaction(f func(Ledger) error) error {
	now := time.Now()
	tx, err := d.Begin(NewTxID(now), now)
	if nil != err {
		return err
	}
	defer tx.Abort() // no effect after commit

	err = f(tx)
	if nil != err {
		return err
	}
	return tx.Commit()
}

// TxID - identifier of this transaction
func (t *Transaction) TxID() string {
	return t.txID
}

// Timestamp - time this transaction was proposed
func (t *Transaction) Timestamp() time.Time {
	return t.timestamp
}

func validKey(key string) error {
	if "" == key || strings.ContainsRune(key, 0) {
		return fault.Detail(fault.ErrInvalidKey, "%q", key)
	}
	return nil
}

// Get - read a value, nil if absent
func (t *Transaction) Get(key string) ([]byte, error) {
	t.Lock()
	defer t.Unlock()

	if t.closed {
		return nil, fault.ErrTransactionClosed
	}
	if err := validKey(key); nil != err {
		return nil, err
	}

	if value, op, found := t.writes.Get(key); found {
		if dbDelete == op {
			return nil, nil
		}
		return copyBytes(value), nil
	}

	pool := t.database.pool
	k := []byte(key)

	value, err := pool.State.get(t.snapshot, k)
	if nil != err {
		return nil, err
	}

	if _, seen := t.reads[key]; !seen {
		version, _, err := pool.Versions.getN(t.snapshot, k)
		if nil != err {
			return nil, err
		}
		t.reads[key] = version
	}
	return value, nil
}

// Put - buffer a write, an empty value is a delete
func (t *Transaction) Put(key string, value []byte) error {
	if 0 == len(value) {
		return t.Delete(key)
	}
	return t.write(dbPut, key, copyBytes(value))
}

// Delete - buffer a delete
func (t *Transaction) Delete(key string) error {
	return t.write(dbDelete, key, nil)
}

func (t *Transaction) write(op int, key string, value []byte) error {
	t.Lock()
	defer t.Unlock()

	if t.closed {
		return fault.ErrTransactionClosed
	}
	if err := validKey(key); nil != err {
		return err
	}

	if _, _, found := t.writes.Get(key); !found {
		t.order = append(t.order, key)
	}
	t.writes.Set(op, key, value)
	return nil
}

// RangeScan - iterate the snapshot over [startKey, endKey)
func (t *Transaction) RangeScan(startKey string, endKey string) (Cursor, error) {
	t.Lock()
	defer t.Unlock()

	if t.closed {
		return nil, fault.ErrTransactionClosed
	}

	var limit []byte
	if "" != endKey {
		limit = []byte(endKey)
	}
	pool := t.database.pool.State
	return &stateCursor{
		pool: pool,
		iter: pool.iterator(t.snapshot, []byte(startKey), limit),
	}, nil
}

// HistoryScan - iterate all committed modifications of a key
func (t *Transaction) HistoryScan(key string) (HistoryCursor, error) {
	t.Lock()
	defer t.Unlock()

	if t.closed {
		return nil, fault.ErrTransactionClosed
	}
	if err := validKey(key); nil != err {
		return nil, err
	}

	start, limit := historyRange([]byte(key))
	return &historyCursor{
		iter: t.database.pool.History.iterator(t.snapshot, start, limit),
	}, nil
}

// Commit - apply all pending writes atomically
//
// fails with a conflict if any key read by this transaction was
// modified after the transaction began
func (t *Transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if t.closed {
		return fault.ErrTransactionClosed
	}
	defer t.release()

	d := t.database
	d.Lock()
	defer d.Unlock()

	if nil == d.db {
		return fault.ErrNotInitialised
	}

	pool := d.pool
	for key, version := range t.reads {
		current, _, err := pool.Versions.getN(d.db, []byte(key))
		if nil != err {
			return err
		}
		if current != version {
			d.log.Warnf("tx: %s  read conflict on: %q  version: %d  current: %d", t.txID, key, version, current)
			return fault.Detail(fault.ErrTransactionConflict, "key: %q", key)
		}
	}

	if 0 == len(t.order) {
		return nil
	}
	if d.readOnly {
		return fault.ErrReadOnly
	}

	batch := new(leveldb.Batch)
	for _, key := range t.order {
		value, op, _ := t.writes.Get(key)
		k := []byte(key)

		version, _, err := pool.Versions.getN(d.db, k)
		if nil != err {
			return err
		}

		m := Modification{
			TxID:      t.txID,
			Timestamp: t.timestamp,
			IsDelete:  dbDelete == op,
			Value:     value,
		}
		if m.IsDelete {
			pool.State.remove(batch, k)
		} else {
			pool.State.put(batch, k, value)
		}
		pool.History.put(batch, historyKey(k, version), packModification(m))
		pool.Versions.putN(batch, k, version+1)
	}

	err := d.db.Write(batch, nil)
	if nil != err {
		d.log.Criticalf("tx: %s  write error: %s", t.txID, err)
		return fmt.Errorf("commit: %w", err)
	}

	d.log.Debugf("tx: %s  committed: %d writes", t.txID, len(t.order))
	return nil
}

// Abort - discard the transaction, harmless if already closed
func (t *Transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	if t.closed {
		return
	}
	t.release()
	t.database.log.Debugf("tx: %s  aborted", t.txID)
}

func (t *Transaction) release() {
	t.closed = true
	t.snapshot.Release()
	t.writes.Clear()
	t.order = nil
	t.reads = nil
}

func copyBytes(b []byte) []byte {
	if nil == b {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
