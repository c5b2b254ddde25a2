// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/carledger/fault"
	"github.com/bitmark-inc/carledger/fixtures"
	"github.com/bitmark-inc/carledger/storage"
)

// test database file
const (
	databaseFileName = "test.leveldb"
)

func setupMemory(t *testing.T) *storage.Database {
	fixtures.SetupTestLogger()
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return db
}

func teardown(db *storage.Database) {
	db.Close()
	fixtures.TeardownTestLogger()
}

func begin(t *testing.T, db *storage.Database, txID string) *storage.Transaction {
	tx, err := db.Begin(txID, time.Now())
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	return tx
}

// a string data item
type stringElement struct {
	key   string
	value string
}

func put(t *testing.T, db *storage.Database, items ...stringElement) {
	err := db.RunInTransaction(func(l storage.Ledger) error {
		for _, item := range items {
			if err := l.Put(item.key, []byte(item.value)); nil != err {
				return err
			}
		}
		return nil
	})
	assert.Nil(t, err, "put error")
}

func scan(t *testing.T, l storage.Ledger, start string, end string) []stringElement {
	cursor, err := l.RangeScan(start, end)
	if nil != err {
		t.Fatalf("range scan error: %s", err)
	}
	defer cursor.Close()

	results := []stringElement{}
	for cursor.Next() {
		e := cursor.Element()
		results = append(results, stringElement{e.Key, string(e.Value)})
	}
	assert.Nil(t, cursor.Err(), "cursor error")
	return results
}

func TestGetPutDelete(t *testing.T) {
	db := setupMemory(t)
	defer teardown(db)

	tx := begin(t, db, "tx-1")
	value, err := tx.Get("CAR_1")
	assert.Nil(t, err, "get error")
	assert.Nil(t, value, "value of absent key")

	assert.Nil(t, tx.Put("CAR_1", []byte("one")), "put error")
	value, _ = tx.Get("CAR_1")
	assert.Equal(t, []byte("one"), value, "pending write not visible")

	assert.Nil(t, tx.Commit(), "commit error")

	tx = begin(t, db, "tx-2")
	value, _ = tx.Get("CAR_1")
	assert.Equal(t, []byte("one"), value, "committed write not visible")

	assert.Nil(t, tx.Delete("CAR_1"), "delete error")
	value, _ = tx.Get("CAR_1")
	assert.Nil(t, value, "pending delete not visible")
	assert.Nil(t, tx.Commit(), "commit error")

	tx = begin(t, db, "tx-3")
	defer tx.Abort()
	value, _ = tx.Get("CAR_1")
	assert.Nil(t, value, "committed delete not visible")
}

func TestEmptyPutIsDelete(t *testing.T) {
	db := setupMemory(t)
	defer teardown(db)

	put(t, db, stringElement{"K", "v"})
	put(t, db, stringElement{"K", ""})

	tx := begin(t, db, "tx-check")
	defer tx.Abort()
	value, _ := tx.Get("K")
	assert.Nil(t, value, "empty put did not delete")
}

func TestInvalidKey(t *testing.T) {
	db := setupMemory(t)
	defer teardown(db)

	tx := begin(t, db, "tx-1")
	defer tx.Abort()

	for _, key := range []string{"", "A\x00B"} {
		_, err := tx.Get(key)
		assert.True(t, errors.Is(err, fault.ErrInvalidKey), "get %q: wrong error: %v", key, err)
		err = tx.Put(key, []byte("v"))
		assert.True(t, errors.Is(err, fault.ErrInvalidKey), "put %q: wrong error: %v", key, err)
	}
}

func TestRangeScan(t *testing.T) {
	db := setupMemory(t)
	defer teardown(db)

	put(t, db,
		stringElement{"CAR_2", "two"},
		stringElement{"CAR_1", "one"},
		stringElement{"PERSON_1", "p-one"},
		stringElement{"CAR_3", "three"},
		stringElement{"CAR_X", "ex"},
	)

	tx := begin(t, db, "tx-scan")
	defer tx.Abort()

	expected := []stringElement{
		{"CAR_1", "one"},
		{"CAR_2", "two"},
		{"CAR_3", "three"},
	}
	assert.Equal(t, expected, scan(t, tx, "CAR_0", "CAR_9999999999999999"), "wrong car range")

	assert.Equal(t, []stringElement{{"CAR_2", "two"}}, scan(t, tx, "CAR_2", "CAR_3"), "range end not exclusive")

	all := scan(t, tx, "", "")
	assert.Equal(t, 5, len(all), "wrong full scan count")
	assert.Equal(t, "PERSON_1", all[4].key, "wrong last key")
}

func TestRangeScanSeesSnapshotOnly(t *testing.T) {
	db := setupMemory(t)
	defer teardown(db)

	put(t, db, stringElement{"CAR_1", "one"})

	tx := begin(t, db, "tx-1")
	defer tx.Abort()
	assert.Nil(t, tx.Put("CAR_2", []byte("two")), "put error")

	put(t, db, stringElement{"CAR_3", "three"})

	assert.Equal(t, []stringElement{{"CAR_1", "one"}}, scan(t, tx, "CAR_0", "CAR_9"), "scan left the snapshot")
}

func TestHistoryScan(t *testing.T) {
	db := setupMemory(t)
	defer teardown(db)

	ts1 := time.Unix(1556680830, 0)
	ts2 := ts1.Add(time.Minute)
	ts3 := ts2.Add(time.Minute)

	steps := []struct {
		txID  string
		ts    time.Time
		value string
	}{
		{"tx-1", ts1, "first"},
		{"tx-2", ts2, "second"},
		{"tx-3", ts3, ""},
	}
	for _, s := range steps {
		tx, err := db.Begin(s.txID, s.ts)
		assert.Nil(t, err, "begin error")
		assert.True(t, s.ts.Equal(tx.Timestamp()), "wrong transaction timestamp")
		if "" == s.value {
			assert.Nil(t, tx.Delete("CAR_1"), "delete error")
		} else {
			assert.Nil(t, tx.Put("CAR_1", []byte(s.value)), "put error")
		}
		// noise on a neighbouring key
		assert.Nil(t, tx.Put("CAR_10", []byte("other")), "put error")
		assert.Nil(t, tx.Commit(), "commit error")
	}

	tx := begin(t, db, "tx-read")
	defer tx.Abort()

	cursor, err := tx.HistoryScan("CAR_1")
	assert.Nil(t, err, "history scan error")

	history := []storage.Modification{}
	for cursor.Next() {
		history = append(history, cursor.Modification())
	}
	assert.Nil(t, cursor.Close(), "close error")

	assert.Equal(t, 3, len(history), "wrong history length")
	for i, s := range steps {
		assert.Equal(t, s.txID, history[i].TxID, "%d: wrong tx id", i)
		assert.True(t, s.ts.Equal(history[i].Timestamp), "%d: wrong timestamp", i)
		assert.Equal(t, "" == s.value, history[i].IsDelete, "%d: wrong delete flag", i)
		if "" != s.value {
			assert.Equal(t, []byte(s.value), history[i].Value, "%d: wrong value", i)
		}
	}
}

func TestAbortLeavesNoTrace(t *testing.T) {
	db := setupMemory(t)
	defer teardown(db)

	tx := begin(t, db, "tx-1")
	assert.Nil(t, tx.Put("CAR_1", []byte("one")), "put error")
	tx.Abort()
	tx.Abort()

	assert.Equal(t, fault.ErrTransactionClosed, tx.Commit(), "commit after abort")
	_, err := tx.Get("CAR_1")
	assert.Equal(t, fault.ErrTransactionClosed, err, "get after abort")

	tx = begin(t, db, "tx-2")
	defer tx.Abort()
	value, _ := tx.Get("CAR_1")
	assert.Nil(t, value, "aborted write visible")

	cursor, _ := tx.HistoryScan("CAR_1")
	assert.False(t, cursor.Next(), "aborted write in history")
	cursor.Close()
}

func TestRunInTransactionAborts(t *testing.T) {
	db := setupMemory(t)
	defer teardown(db)

	failure := errors.New("fail")
	err := db.RunInTransaction(func(l storage.Ledger) error {
		assert.NotEqual(t, "", l.TxID(), "missing tx id")
		_ = l.Put("CAR_1", []byte("one"))
		return failure
	})
	assert.Equal(t, failure, err, "wrong error")

	tx := begin(t, db, "tx-check")
	defer tx.Abort()
	value, _ := tx.Get("CAR_1")
	assert.Nil(t, value, "failed function committed")
}

func TestRunInTransactionPanics(t *testing.T) {
	db := setupMemory(t)
	defer teardown(db)

	var inner *storage.Transaction
	assert.Panics(t, func() {
		_ = db.RunInTransaction(func(l storage.Ledger) error {
			inner = l.(*storage.Transaction)
			_ = l.Put("CAR_1", []byte("one"))
			panic("fail")
		})
	}, "panic swallowed")

	assert.Equal(t, fault.ErrTransactionClosed, inner.Commit(), "transaction left open")

	tx := begin(t, db, "tx-check")
	defer tx.Abort()
	value, _ := tx.Get("CAR_1")
	assert.Nil(t, value, "panicking function committed")
}

func TestReadConflict(t *testing.T) {
	db := setupMemory(t)
	defer teardown(db)

	put(t, db, stringElement{"CAR_1", "one"})

	tx1 := begin(t, db, "tx-1")
	tx2 := begin(t, db, "tx-2")

	v1, _ := tx1.Get("CAR_1")
	v2, _ := tx2.Get("CAR_1")
	assert.Equal(t, v1, v2, "snapshots differ")

	assert.Nil(t, tx1.Put("CAR_1", []byte("by-1")), "put error")
	assert.Nil(t, tx2.Put("CAR_1", []byte("by-2")), "put error")

	assert.Nil(t, tx1.Commit(), "first commit error")
	err := tx2.Commit()
	assert.True(t, errors.Is(err, fault.ErrTransactionConflict), "wrong error: %v", err)

	tx := begin(t, db, "tx-check")
	defer tx.Abort()
	value, _ := tx.Get("CAR_1")
	assert.Equal(t, []byte("by-1"), value, "conflicting write applied")
}

func TestConflictOnAbsentKey(t *testing.T) {
	db := setupMemory(t)
	defer teardown(db)

	tx1 := begin(t, db, "tx-1")
	tx2 := begin(t, db, "tx-2")

	_, _ = tx1.Get("PERSON_1")
	_, _ = tx2.Get("PERSON_1")
	_ = tx1.Put("PERSON_1", []byte("a"))
	_ = tx2.Put("PERSON_1", []byte("b"))

	assert.Nil(t, tx1.Commit(), "first commit error")
	assert.True(t, errors.Is(tx2.Commit(), fault.ErrTransactionConflict), "second create not rejected")
}

func TestBlindWritesDoNotConflict(t *testing.T) {
	db := setupMemory(t)
	defer teardown(db)

	tx1 := begin(t, db, "tx-1")
	tx2 := begin(t, db, "tx-2")
	_ = tx1.Put("CAR_1", []byte("a"))
	_ = tx2.Put("CAR_2", []byte("b"))

	assert.Nil(t, tx1.Commit(), "first commit error")
	assert.Nil(t, tx2.Commit(), "second commit error")
}

func TestOnDisk(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	_ = os.RemoveAll(databaseFileName)
	defer os.RemoveAll(databaseFileName)

	db, err := storage.Open(databaseFileName, storage.ReadWrite)
	assert.Nil(t, err, "open error")
	put(t, db, stringElement{"PERSON_P1", "alice"})
	db.Close()

	_, err = db.Begin("tx-closed", time.Now())
	assert.Equal(t, fault.ErrNotInitialised, err, "begin on closed database")

	db, err = storage.Open(databaseFileName, storage.ReadOnly)
	assert.Nil(t, err, "reopen error")
	defer db.Close()

	tx := begin(t, db, "tx-read")
	value, _ := tx.Get("PERSON_P1")
	assert.Equal(t, []byte("alice"), value, "value lost on reopen")

	_ = tx.Put("PERSON_P2", []byte("bob"))
	assert.Equal(t, fault.ErrReadOnly, tx.Commit(), "read only database accepted write")
}

func TestOpenMissingReadOnly(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, err := storage.Open("no-such.leveldb", storage.ReadOnly)
	assert.NotNil(t, err, "opened missing database")
}

func TestNewTxID(t *testing.T) {
	now := time.Now()
	a := storage.NewTxID(now)
	b := storage.NewTxID(now)
	assert.Equal(t, 64, len(a), "wrong id length")
	assert.NotEqual(t, a, b, "ids repeat")
}
