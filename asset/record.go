// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"encoding/json"
)

// Record - a stored value as returned from a scan
//
// exactly one of Value (valid JSON) or Raw (anything else) is set,
// both are empty for a deleted entry in a history scan
type Record struct {
	Value json.RawMessage
	Raw   string
}

// Decode - decode with fallback to the raw text
func Decode(buffer []byte) Record {
	if 0 == len(buffer) {
		return Record{}
	}
	if json.Valid(buffer) {
		v := make(json.RawMessage, len(buffer))
		copy(v, buffer)
		return Record{Value: v}
	}
	return Record{Raw: string(buffer)}
}

// IsRaw - true if the value could not be decoded
func (r Record) IsRaw() bool {
	return nil == r.Value && "" != r.Raw
}

// IsEmpty - true for a tombstone
func (r Record) IsEmpty() bool {
	return nil == r.Value && "" == r.Raw
}

// Owner - the data.owner field of a decoded car envelope
//
// raw records, non-car records and unowned cars all give ""
func (r Record) Owner() string {
	if nil == r.Value {
		return ""
	}
	var e struct {
		Data struct {
			Owner interface{} `json:"owner"`
		} `json:"data"`
	}
	if err := json.Unmarshal(r.Value, &e); nil != err {
		return ""
	}
	if s, ok := e.Data.Owner.(string); ok {
		return s
	}
	return ""
}

// MarshalJSON - decoded values are emitted as is, raw values as a string
func (r Record) MarshalJSON() ([]byte, error) {
	switch {
	case nil != r.Value:
		return r.Value, nil
	case "" != r.Raw:
		return json.Marshal(r.Raw)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON - a JSON string becomes raw, anything else a value
//
// used by clients reading scan results; a string value stored as
// valid JSON comes back as raw text, which prints the same
func (r *Record) UnmarshalJSON(data []byte) error {
	*r = Record{}
	if isNull(data) {
		return nil
	}
	if '"' == data[0] {
		return json.Unmarshal(data, &r.Raw)
	}
	r.Value = append(json.RawMessage(nil), data...)
	return nil
}
