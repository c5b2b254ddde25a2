// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/bitmark-inc/carledger/fault"
)

// key prefixes, one namespace per entity type
const (
	CarPrefix    = "CAR_"
	PersonPrefix = "PERSON_"
)

// bounds for a full namespace scan
const (
	rangeFirst = "0"
	rangeLast  = "9999999999999999"
)

// TimeLayout - format of the time field in a status change
const TimeLayout = "2006-01-02T15:04:05-07:00"

// Key - ledger key for an entity identifier
func Key(prefix string, id string) string {
	return prefix + id
}

// Range - start and end keys covering a whole namespace
func Range(prefix string) (string, string) {
	return prefix + rangeFirst, prefix + rangeLast
}

// FormatTime - convert a transaction timestamp for a history entry
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// Envelope - the stored form of every record
type Envelope struct {
	Data json.RawMessage `json:"data"`
}

// Wrap - place a JSON document inside an envelope
func Wrap(data []byte) ([]byte, error) {
	data = bytes.TrimSpace(data)
	if !json.Valid(data) {
		return nil, fault.ErrInvalidJSON
	}
	return json.Marshal(Envelope{Data: data})
}

// Unwrap - extract the data document from a stored envelope
func Unwrap(buffer []byte) (json.RawMessage, error) {
	var e Envelope
	if err := json.Unmarshal(buffer, &e); nil != err {
		return nil, fault.Detail(fault.ErrCorruptRecord, "%s", err)
	}
	return e.Data, nil
}

// Filled - the truthiness of a raw JSON value
//
// absent, null, false, zero and the empty string are not filled
func Filled(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if 0 == len(raw) {
		return false
	}
	switch raw[0] {
	case 'n', 'f':
		return false
	case '"':
		return `""` != string(raw)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var f float64
		if err := json.Unmarshal(raw, &f); nil != err {
			return false
		}
		return 0 != f
	}
	return true
}

// Fields - client supplied data as a JSON document
//
// clients may send the document itself or a string holding it
func Fields(raw json.RawMessage) []byte {
	raw = bytes.TrimSpace(raw)
	if 0 != len(raw) && '"' == raw[0] {
		var s string
		if err := json.Unmarshal(raw, &s); nil == err {
			return []byte(s)
		}
	}
	return raw
}
