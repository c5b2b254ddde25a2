// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package query - materialise range and history scans
package query

import (
	"time"

	"github.com/bitmark-inc/carledger/asset"
	"github.com/bitmark-inc/carledger/storage"
)

// Result - one record from a range scan
type Result struct {
	Key    string       `json:"Key"`
	Record asset.Record `json:"Record"`
}

// HistoryEntry - one modification of a key
type HistoryEntry struct {
	TxId      string       `json:"TxId"`
	Timestamp string       `json:"Timestamp"`
	IsDelete  bool         `json:"IsDelete"`
	Value     asset.Record `json:"Value"`
}

// Predicate - select records from a scan
type Predicate func(key string, record asset.Record) bool

// Scan - all non-empty records in [startKey, endKey) accepted by the
// predicate, in key order; a nil predicate accepts everything
func Scan(ledger storage.Ledger, startKey string, endKey string, predicate Predicate) (results []Result, err error) {
	cursor, err := ledger.RangeScan(startKey, endKey)
	if nil != err {
		return nil, err
	}
	defer func() {
		closeErr := cursor.Close()
		if nil == err && nil != closeErr {
			results = nil
			err = closeErr
		}
	}()

	results = make([]Result, 0)
	for cursor.Next() {
		e := cursor.Element()
		if 0 == len(e.Value) {
			continue
		}
		record := asset.Decode(e.Value)
		if nil != predicate && !predicate(e.Key, record) {
			continue
		}
		results = append(results, Result{
			Key:    e.Key,
			Record: record,
		})
	}
	if err := cursor.Err(); nil != err {
		return nil, err
	}
	return results, nil
}

// History - every modification of a key, oldest first
//
// deletes are included with an empty value
func History(ledger storage.Ledger, key string) (results []HistoryEntry, err error) {
	cursor, err := ledger.HistoryScan(key)
	if nil != err {
		return nil, err
	}
	defer func() {
		closeErr := cursor.Close()
		if nil == err && nil != closeErr {
			results = nil
			err = closeErr
		}
	}()

	results = make([]HistoryEntry, 0)
	for cursor.Next() {
		m := cursor.Modification()
		entry := HistoryEntry{
			TxId:      m.TxID,
			Timestamp: m.Timestamp.UTC().Format(time.RFC3339Nano),
			IsDelete:  m.IsDelete,
		}
		if !m.IsDelete {
			entry.Value = asset.Decode(m.Value)
		}
		results = append(results, entry)
	}
	if err := cursor.Err(); nil != err {
		return nil, err
	}
	return results, nil
}

// OwnedBy - accept decoded car records whose data.owner is the person
func OwnedBy(personID string) Predicate {
	return func(_ string, record asset.Record) bool {
		return "" != personID && personID == record.Owner()
	}
}
