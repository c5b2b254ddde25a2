// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincode_test

import (
	"errors"
	"sort"
	"time"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/hyperledger/fabric-protos-go/ledger/queryresult"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// in-memory stand in for the peer, only the calls used by the ledger
// are implemented; anything else panics on the nil embedded interface
type fakeStub struct {
	shim.ChaincodeStubInterface

	txID      string
	timestamp time.Time
	state     map[string][]byte
	history   map[string][]*queryresult.KeyModification

	failTimestamp bool
	failNext      bool
	closed        int
}

func newFakeStub() *fakeStub {
	return &fakeStub{
		state:   make(map[string][]byte),
		history: make(map[string][]*queryresult.KeyModification),
	}
}

// start a new transaction and return a context for contract calls
func (s *fakeStub) begin(txID string, ts time.Time) contractapi.TransactionContextInterface {
	s.txID = txID
	s.timestamp = ts
	ctx := new(contractapi.TransactionContext)
	ctx.SetStub(s)
	return ctx
}

func (s *fakeStub) GetTxID() string {
	return s.txID
}

func (s *fakeStub) GetTxTimestamp() (*timestamppb.Timestamp, error) {
	if s.failTimestamp {
		return nil, errors.New("no timestamp")
	}
	return timestamppb.New(s.timestamp), nil
}

func (s *fakeStub) GetState(key string) ([]byte, error) {
	return s.state[key], nil
}

func (s *fakeStub) PutState(key string, value []byte) error {
	s.state[key] = value
	s.history[key] = append(s.history[key], &queryresult.KeyModification{
		TxId:      s.txID,
		Value:     value,
		Timestamp: timestamppb.New(s.timestamp),
	})
	return nil
}

func (s *fakeStub) DelState(key string) error {
	delete(s.state, key)
	s.history[key] = append(s.history[key], &queryresult.KeyModification{
		TxId:      s.txID,
		Timestamp: timestamppb.New(s.timestamp),
		IsDelete:  true,
	})
	return nil
}

func (s *fakeStub) GetStateByRange(startKey string, endKey string) (shim.StateQueryIteratorInterface, error) {
	keys := make([]string, 0, len(s.state))
	for k := range s.state {
		if k >= startKey && ("" == endKey || k < endKey) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	items := make([]*queryresult.KV, len(keys))
	for i, k := range keys {
		items[i] = &queryresult.KV{Key: k, Value: s.state[k]}
	}
	return &fakeStateIterator{stub: s, items: items}, nil
}

func (s *fakeStub) GetHistoryForKey(key string) (shim.HistoryQueryIteratorInterface, error) {
	return &fakeHistoryIterator{stub: s, items: s.history[key]}, nil
}

type fakeStateIterator struct {
	stub  *fakeStub
	items []*queryresult.KV
}

func (i *fakeStateIterator) HasNext() bool {
	return 0 != len(i.items)
}

func (i *fakeStateIterator) Next() (*queryresult.KV, error) {
	if i.stub.failNext {
		return nil, errors.New("iterator failure")
	}
	item := i.items[0]
	i.items = i.items[1:]
	return item, nil
}

func (i *fakeStateIterator) Close() error {
	i.stub.closed += 1
	return nil
}

type fakeHistoryIterator struct {
	stub  *fakeStub
	items []*queryresult.KeyModification
}

func (i *fakeHistoryIterator) HasNext() bool {
	return 0 != len(i.items)
}

func (i *fakeHistoryIterator) Next() (*queryresult.KeyModification, error) {
	if i.stub.failNext {
		return nil, errors.New("iterator failure")
	}
	item := i.items[0]
	i.items = i.items[1:]
	return item, nil
}

func (i *fakeHistoryIterator) Close() error {
	i.stub.closed += 1
	return nil
}
