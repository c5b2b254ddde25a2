// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"encoding/json"

	"github.com/bitmark-inc/carledger/fault"
)

// Status - position of a car in its life cycle
type Status string

// car states and the history marker for an ownership change
const (
	Requested    Status = "REQUESTED"
	Manufactured Status = "MANUFACTURED"
	AfterSales   Status = "AFTER_SALES"
	ChangeOwner  Status = "CHANGE_OWNER"
)

// NewCarOwner - previous owner recorded on the first sale
const NewCarOwner = "NEW_CAR"

// StatusChange - one entry in the car history
type StatusChange struct {
	Status       Status `json:"status"`
	NewOwner     string `json:"newOwner,omitempty"`
	CurrentOwner string `json:"currentOwner,omitempty"`
	Time         string `json:"time"`
}

// the members of a car with a meaning to the ledger
var carMembers = []string{"manufacture", "year", "name", "lastStatus", "owner", "history"}

// Car - the data section of a car record
//
// the typed fields are views of the stored members, a member is only
// written back when its view changes so foreign types and empty
// strings survive a transition
type Car struct {
	Manufacture string
	Year        json.RawMessage // kept as given: 2019 and "2019" are both accepted
	Name        string
	LastStatus  Status
	Owner       string
	History     []StatusChange
	Extra       map[string]json.RawMessage

	known    members           // car members exactly as decoded
	loaded   carView           // views as decoded
	entries  []json.RawMessage // history entries as decoded
	replaced bool              // history restarted, entries are discarded
}

type carView struct {
	manufacture string
	name        string
	lastStatus  Status
	owner       string
}

// MarshalJSON - encode changed fields over the decoded members
func (c Car) MarshalJSON() ([]byte, error) {
	m := withExtra(c.Extra, len(carMembers))
	for name, raw := range c.known {
		m[name] = raw
	}

	texts := []struct {
		name   string
		value  string
		loaded string
	}{
		{"manufacture", c.Manufacture, c.loaded.manufacture},
		{"name", c.Name, c.loaded.name},
		{"lastStatus", string(c.LastStatus), string(c.loaded.lastStatus)},
		{"owner", c.Owner, c.loaded.owner},
	}
	for _, t := range texts {
		if t.value == t.loaded {
			continue
		}
		if err := m.put(t.name, t.value); nil != err {
			return nil, err
		}
	}
	if 0 != len(c.Year) {
		m["year"] = c.Year
	}

	switch {
	case c.replaced || len(c.History) < len(c.entries):
		if err := m.put("history", c.History); nil != err {
			return nil, err
		}
	case len(c.History) > len(c.entries):
		list := make([]json.RawMessage, 0, len(c.History))
		list = append(list, c.entries...)
		for _, change := range c.History[len(c.entries):] {
			buffer, err := json.Marshal(change)
			if nil != err {
				return nil, err
			}
			list = append(list, buffer)
		}
		if err := m.put("history", list); nil != err {
			return nil, err
		}
	}
	return json.Marshal(map[string]json.RawMessage(m))
}

// UnmarshalJSON - decode views of the known members, keep the rest in Extra
func (c *Car) UnmarshalJSON(data []byte) error {
	m, err := splitObject(data)
	if nil != err {
		return err
	}

	*c = Car{
		known: make(members, len(carMembers)),
	}
	for _, name := range carMembers {
		if raw := m.takeRaw(name); nil != raw {
			c.known[name] = raw
		}
	}

	c.Manufacture = text(c.known["manufacture"])
	c.Year = c.known["year"]
	c.Name = text(c.known["name"])
	c.LastStatus = Status(text(c.known["lastStatus"]))
	c.Owner = text(c.known["owner"])

	// a list is required to append to, checked by UnpackCar
	if raw, ok := c.known["history"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &c.entries); nil == err {
			c.History = make([]StatusChange, len(c.entries))
			for i, entry := range c.entries {
				// fields of other types are left empty
				_ = json.Unmarshal(entry, &c.History[i])
			}
		}
	}

	c.loaded = carView{
		manufacture: c.Manufacture,
		name:        c.Name,
		lastStatus:  c.LastStatus,
		owner:       c.Owner,
	}
	c.Extra = m.rest()
	return nil
}

// HasOwner - the owner member is truthy, whatever its type
func (c *Car) HasOwner() bool {
	if c.Owner != c.loaded.owner {
		return "" != c.Owner
	}
	return "" != c.Owner || Filled(c.known["owner"])
}

// OwnerText - the owner for messages, raw JSON for a non-string owner
func (c *Car) OwnerText() string {
	if "" != c.Owner || c.Owner != c.loaded.owner {
		return c.Owner
	}
	if raw, ok := c.known["owner"]; ok && Filled(raw) {
		return string(raw)
	}
	return ""
}

// Validate - required fields of a new car, checked in order
func (c *Car) Validate() error {
	if "" == c.Manufacture && !Filled(c.known["manufacture"]) {
		return fault.ErrManufactureRequired
	}
	if !Filled(c.Year) {
		return fault.ErrYearRequired
	}
	if "" == c.Name && !Filled(c.known["name"]) {
		return fault.ErrNameRequired
	}
	return nil
}

// Restart - replace any supplied history with a single change
func (c *Car) Restart(change StatusChange) {
	c.History = []StatusChange{change}
	c.replaced = true
}

// Append - record a status change
func (c *Car) Append(change StatusChange) {
	c.History = append(c.History, change)
}

// ParseCar - decode client supplied car fields
func ParseCar(data []byte) (*Car, error) {
	c := &Car{}
	if err := json.Unmarshal(data, c); nil != err {
		return nil, fault.Detail(fault.ErrInvalidJSON, "%s", err)
	}
	return c, nil
}

// PackCar - a car as a stored envelope
func PackCar(c *Car) ([]byte, error) {
	data, err := json.Marshal(c)
	if nil != err {
		return nil, err
	}
	return json.Marshal(Envelope{Data: data})
}

// UnpackCar - a car from a stored envelope
func UnpackCar(buffer []byte) (*Car, error) {
	data, err := Unwrap(buffer)
	if nil != err {
		return nil, err
	}
	c := &Car{}
	if err := json.Unmarshal(data, c); nil != err {
		return nil, fault.Detail(fault.ErrCorruptRecord, "%s", err)
	}
	if raw, ok := c.known["history"]; ok && !isNull(raw) && nil == c.entries {
		return nil, fault.Detail(fault.ErrCorruptRecord, "history is not a list: %s", raw)
	}
	return c, nil
}
