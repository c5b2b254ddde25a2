// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincode

import (
	"fmt"
	"time"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/bitmark-inc/carledger/storage"
)

// Stub - the part of the Fabric chaincode stub used by the ledger
type Stub interface {
	GetState(key string) ([]byte, error)
	PutState(key string, value []byte) error
	DelState(key string) error
	GetStateByRange(startKey string, endKey string) (shim.StateQueryIteratorInterface, error)
	GetHistoryForKey(key string) (shim.HistoryQueryIteratorInterface, error)
	GetTxID() string
	GetTxTimestamp() (*timestamppb.Timestamp, error)
}

type stubLedger struct {
	stub      Stub
	timestamp time.Time
}

// NewLedger - wrap a transaction stub
func NewLedger(stub Stub) (storage.Ledger, error) {
	ts, err := stub.GetTxTimestamp()
	if nil != err {
		return nil, fmt.Errorf("transaction timestamp: %w", err)
	}
	return &stubLedger{
		stub:      stub,
		timestamp: ts.AsTime(),
	}, nil
}

func (l *stubLedger) Get(key string) ([]byte, error) {
	return l.stub.GetState(key)
}

// an empty value removes the key, the same as the local store
func (l *stubLedger) Put(key string, value []byte) error {
	if 0 == len(value) {
		return l.stub.DelState(key)
	}
	return l.stub.PutState(key, value)
}

func (l *stubLedger) Delete(key string) error {
	return l.stub.DelState(key)
}

func (l *stubLedger) RangeScan(startKey string, endKey string) (storage.Cursor, error) {
	iter, err := l.stub.GetStateByRange(startKey, endKey)
	if nil != err {
		return nil, err
	}
	return &stateCursor{iter: iter}, nil
}

func (l *stubLedger) HistoryScan(key string) (storage.HistoryCursor, error) {
	iter, err := l.stub.GetHistoryForKey(key)
	if nil != err {
		return nil, err
	}
	return &historyCursor{iter: iter}, nil
}

func (l *stubLedger) TxID() string {
	return l.stub.GetTxID()
}

func (l *stubLedger) Timestamp() time.Time {
	return l.timestamp
}

type stateCursor struct {
	iter    shim.StateQueryIteratorInterface
	current storage.Element
	err     error
}

func (c *stateCursor) Next() bool {
	if nil != c.err || !c.iter.HasNext() {
		return false
	}
	kv, err := c.iter.Next()
	if nil != err {
		c.err = err
		return false
	}
	c.current = storage.Element{
		Key:   kv.Key,
		Value: kv.Value,
	}
	return true
}

func (c *stateCursor) Element() storage.Element {
	return c.current
}

func (c *stateCursor) Err() error {
	return c.err
}

func (c *stateCursor) Close() error {
	err := c.iter.Close()
	if nil != c.err {
		return c.err
	}
	return err
}

type historyCursor struct {
	iter    shim.HistoryQueryIteratorInterface
	current storage.Modification
	err     error
}

func (c *historyCursor) Next() bool {
	if nil != c.err || !c.iter.HasNext() {
		return false
	}
	m, err := c.iter.Next()
	if nil != err {
		c.err = err
		return false
	}

	var ts time.Time
	if nil != m.Timestamp {
		ts = m.Timestamp.AsTime()
	}
	c.current = storage.Modification{
		TxID:      m.TxId,
		Timestamp: ts,
		IsDelete:  m.IsDelete,
		Value:     m.Value,
	}
	return true
}

func (c *historyCursor) Modification() storage.Modification {
	return c.current
}

func (c *historyCursor) Err() error {
	return c.err
}

func (c *historyCursor) Close() error {
	err := c.iter.Close()
	if nil != c.err {
		return c.err
	}
	return err
}
