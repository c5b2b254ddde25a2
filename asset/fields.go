// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"bytes"
	"encoding/json"
)

// split a JSON object into its members, which can then be consumed
// one at a time leaving only the unknown members behind
type members map[string]json.RawMessage

func splitObject(data []byte) (members, error) {
	m := make(members)
	if err := json.Unmarshal(data, &m); nil != err {
		return nil, err
	}
	return m, nil
}

// remove a member without decoding it
func (m members) takeRaw(name string) json.RawMessage {
	raw, ok := m[name]
	if !ok {
		return nil
	}
	delete(m, name)
	return raw
}

func (m members) put(name string, v interface{}) error {
	buffer, err := json.Marshal(v)
	if nil != err {
		return err
	}
	m[name] = buffer
	return nil
}

// unknown members for the Extra field, nil when there are none
func (m members) rest() map[string]json.RawMessage {
	if 0 == len(m) {
		return nil
	}
	return m
}

func withExtra(extra map[string]json.RawMessage, size int) members {
	m := make(members, len(extra)+size)
	for k, v := range extra {
		m[k] = v
	}
	return m
}

func isNull(raw json.RawMessage) bool {
	return "null" == string(bytes.TrimSpace(raw))
}

// the string value of a member, empty for absent members and other types
func text(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); nil != err {
		return ""
	}
	return s
}
