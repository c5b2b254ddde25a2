// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/carledger/asset"
	"github.com/bitmark-inc/carledger/query"
	"github.com/bitmark-inc/carledger/storage"
	"github.com/bitmark-inc/carledger/storage/mocks"
)

// expect a cursor that yields the given elements then stops
func expectElements(cursor *mocks.MockCursor, elements []storage.Element, err error) {
	calls := []*gomock.Call{}
	for _, e := range elements {
		calls = append(calls,
			cursor.EXPECT().Next().Return(true),
			cursor.EXPECT().Element().Return(e),
		)
	}
	calls = append(calls, cursor.EXPECT().Next().Return(false))
	gomock.InOrder(calls...)
	cursor.EXPECT().Err().Return(err).AnyTimes()
	cursor.EXPECT().Close().Return(nil).Times(1)
}

func TestScan(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ledger := mocks.NewMockLedger(ctl)
	cursor := mocks.NewMockCursor(ctl)

	ledger.EXPECT().RangeScan("CAR_0", "CAR_9999999999999999").Return(cursor, nil).Times(1)
	expectElements(cursor, []storage.Element{
		{Key: "CAR_1", Value: []byte(`{"data":{"owner":"P1"}}`)},
		{Key: "CAR_2", Value: []byte{}},
		{Key: "CAR_3", Value: []byte("not json")},
		{Key: "CAR_4", Value: []byte(`{"data":{"owner":"P2"}}`)},
	}, nil)

	results, err := query.Scan(ledger, "CAR_0", "CAR_9999999999999999", nil)
	assert.Nil(t, err, "scan error")
	assert.Equal(t, 3, len(results), "wrong result count")
	assert.Equal(t, "CAR_1", results[0].Key, "wrong first key")
	assert.True(t, results[1].Record.IsRaw(), "undecodable record not raw")
	assert.Equal(t, "not json", results[1].Record.Raw, "wrong raw text")

	buffer, err := json.Marshal(results)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t,
		`[{"Key":"CAR_1","Record":{"data":{"owner":"P1"}}},{"Key":"CAR_3","Record":"not json"},{"Key":"CAR_4","Record":{"data":{"owner":"P2"}}}]`,
		string(buffer),
		"wrong wire format",
	)
}

func TestScanOwnedBy(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ledger := mocks.NewMockLedger(ctl)
	cursor := mocks.NewMockCursor(ctl)

	ledger.EXPECT().RangeScan(gomock.Any(), gomock.Any()).Return(cursor, nil).Times(1)
	expectElements(cursor, []storage.Element{
		{Key: "CAR_1", Value: []byte(`{"data":{"owner":"P1"}}`)},
		{Key: "CAR_2", Value: []byte(`{"data":{}}`)},
		{Key: "CAR_3", Value: []byte(`P1`)},
		{Key: "CAR_4", Value: []byte(`{"data":{"owner":"P2"}}`)},
		{Key: "CAR_5", Value: []byte(`{"data":{"owner":"P1"}}`)},
	}, nil)

	results, err := query.Scan(ledger, "CAR_0", "CAR_9999999999999999", query.OwnedBy("P1"))
	assert.Nil(t, err, "scan error")
	assert.Equal(t, 2, len(results), "wrong result count")
	assert.Equal(t, "CAR_1", results[0].Key, "wrong first key")
	assert.Equal(t, "CAR_5", results[1].Key, "wrong second key")
}

func TestScanCursorError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ledger := mocks.NewMockLedger(ctl)
	cursor := mocks.NewMockCursor(ctl)

	failure := errors.New("iterator failed")
	ledger.EXPECT().RangeScan(gomock.Any(), gomock.Any()).Return(cursor, nil).Times(1)
	expectElements(cursor, []storage.Element{
		{Key: "CAR_1", Value: []byte(`{}`)},
	}, failure)

	results, err := query.Scan(ledger, "A", "B", nil)
	assert.Equal(t, failure, err, "wrong error")
	assert.Nil(t, results, "results on error")
}

func TestScanCloseError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ledger := mocks.NewMockLedger(ctl)
	cursor := mocks.NewMockCursor(ctl)

	failure := errors.New("close failed")
	ledger.EXPECT().RangeScan(gomock.Any(), gomock.Any()).Return(cursor, nil).Times(1)
	cursor.EXPECT().Next().Return(false).Times(1)
	cursor.EXPECT().Err().Return(nil).Times(1)
	cursor.EXPECT().Close().Return(failure).Times(1)

	results, err := query.Scan(ledger, "A", "B", nil)
	assert.Equal(t, failure, err, "wrong error")
	assert.Nil(t, results, "results on error")
}

func TestScanOpenError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ledger := mocks.NewMockLedger(ctl)
	failure := errors.New("no scan")
	ledger.EXPECT().RangeScan(gomock.Any(), gomock.Any()).Return(nil, failure).Times(1)

	_, err := query.Scan(ledger, "A", "B", nil)
	assert.Equal(t, failure, err, "wrong error")
}

func TestHistory(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ledger := mocks.NewMockLedger(ctl)
	cursor := mocks.NewMockHistoryCursor(ctl)

	ts := time.Date(2019, time.May, 1, 3, 20, 30, 0, time.UTC)
	modifications := []storage.Modification{
		{TxID: "tx-1", Timestamp: ts, Value: []byte(`{"data":{"lastStatus":"REQUESTED"}}`)},
		{TxID: "tx-2", Timestamp: ts.Add(time.Second), Value: []byte(`garbage`)},
		{TxID: "tx-3", Timestamp: ts.Add(2 * time.Second), IsDelete: true},
	}

	ledger.EXPECT().HistoryScan("CAR_1003").Return(cursor, nil).Times(1)
	calls := []*gomock.Call{}
	for _, m := range modifications {
		calls = append(calls,
			cursor.EXPECT().Next().Return(true),
			cursor.EXPECT().Modification().Return(m),
		)
	}
	calls = append(calls, cursor.EXPECT().Next().Return(false))
	gomock.InOrder(calls...)
	cursor.EXPECT().Err().Return(nil).AnyTimes()
	cursor.EXPECT().Close().Return(nil).Times(1)

	results, err := query.History(ledger, "CAR_1003")
	assert.Nil(t, err, "history error")
	assert.Equal(t, 3, len(results), "wrong history length")

	assert.Equal(t, "tx-1", results[0].TxId, "wrong tx id")
	assert.Equal(t, "2019-05-01T03:20:30Z", results[0].Timestamp, "wrong timestamp")
	assert.True(t, results[1].Value.IsRaw(), "garbage not raw")
	assert.True(t, results[2].IsDelete, "missing delete flag")
	assert.True(t, results[2].Value.IsEmpty(), "delete has value")

	buffer, err := json.Marshal(results[2])
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `{"TxId":"tx-3","Timestamp":"2019-05-01T03:20:32Z","IsDelete":true,"Value":null}`, string(buffer), "wrong wire format")
}

func TestOwnedBy(t *testing.T) {
	p := query.OwnedBy("P1")
	assert.True(t, p("CAR_1", asset.Decode([]byte(`{"data":{"owner":"P1"}}`))), "owner not matched")
	assert.False(t, p("CAR_1", asset.Decode([]byte(`{"data":{"owner":"P11"}}`))), "prefix matched")
	assert.False(t, p("CAR_1", asset.Decode([]byte(`P1`))), "raw record matched")

	assert.False(t, query.OwnedBy("")("CAR_1", asset.Decode([]byte(`{"data":{}}`))), "empty owner matched")
}
