// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"encoding/json"

	"github.com/bitmark-inc/carledger/fault"
)

// Person - the data section of a person record
type Person struct {
	Name   string
	Gender string
	Extra  map[string]json.RawMessage

	known members // name and gender exactly as decoded
}

// MarshalJSON - encode changed fields over the decoded members
func (p Person) MarshalJSON() ([]byte, error) {
	m := withExtra(p.Extra, 2)
	for name, raw := range p.known {
		m[name] = raw
	}
	if p.Name != text(p.known["name"]) {
		if err := m.put("name", p.Name); nil != err {
			return nil, err
		}
	}
	if p.Gender != text(p.known["gender"]) {
		if err := m.put("gender", p.Gender); nil != err {
			return nil, err
		}
	}
	return json.Marshal(map[string]json.RawMessage(m))
}

// UnmarshalJSON - decode views of name and gender, keep the rest in Extra
func (p *Person) UnmarshalJSON(data []byte) error {
	m, err := splitObject(data)
	if nil != err {
		return err
	}
	*p = Person{
		known: make(members, 2),
	}
	for _, name := range []string{"name", "gender"} {
		if raw := m.takeRaw(name); nil != raw {
			p.known[name] = raw
		}
	}
	p.Name = text(p.known["name"])
	p.Gender = text(p.known["gender"])
	p.Extra = m.rest()
	return nil
}

// Validate - required fields of a new person, checked in order
func (p *Person) Validate() error {
	if "" == p.Name && !Filled(p.known["name"]) {
		return fault.ErrNameRequired
	}
	if "" == p.Gender && !Filled(p.known["gender"]) {
		return fault.ErrGenderRequired
	}
	return nil
}

// ParsePerson - decode client supplied person fields
func ParsePerson(data []byte) (*Person, error) {
	p := &Person{}
	if err := json.Unmarshal(data, p); nil != err {
		return nil, fault.Detail(fault.ErrInvalidJSON, "%s", err)
	}
	return p, nil
}

// PackPerson - a person as a stored envelope
func PackPerson(p *Person) ([]byte, error) {
	data, err := json.Marshal(p)
	if nil != err {
		return nil, err
	}
	return json.Marshal(Envelope{Data: data})
}
