// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package entity - operations shared by every record type
//
// a manager holds no state between calls, each operation reads the
// ledger it is given, checks its preconditions and writes at most once
package entity

import (
	"encoding/json"

	"github.com/bitmark-inc/carledger/asset"
	"github.com/bitmark-inc/carledger/fault"
	"github.com/bitmark-inc/carledger/query"
	"github.com/bitmark-inc/carledger/storage"
	"github.com/bitmark-inc/logger"
)

// Namespace - key prefix and errors of one record type
type Namespace struct {
	Name     string
	Prefix   string
	NotFound error
	Exists   error
}

// Prepare - validate new record fields and build the stored value
type Prepare func(ledger storage.Ledger, fields []byte) ([]byte, error)

// Manager - generic record operations for a namespace
type Manager struct {
	log       *logger.L
	namespace Namespace
}

// New - create a manager
func New(log *logger.L, namespace Namespace) *Manager {
	return &Manager{
		log:       log,
		namespace: namespace,
	}
}

// Log - the manager's logging channel
func (m *Manager) Log() *logger.L {
	return m.log
}

// Key - ledger key of an identifier
func (m *Manager) Key(id string) string {
	return asset.Key(m.namespace.Prefix, id)
}

func (m *Manager) notFound(id string) error {
	return fault.Detail(m.namespace.NotFound, "%s %s", m.namespace.Name, id)
}

// Exists - true if a non-empty value is stored for the identifier
func (m *Manager) Exists(ledger storage.Ledger, id string) (bool, error) {
	value, err := ledger.Get(m.Key(id))
	if nil != err {
		return false, err
	}
	return 0 != len(value), nil
}

// Load - the stored value, fails if absent
func (m *Manager) Load(ledger storage.Ledger, id string) ([]byte, error) {
	value, err := ledger.Get(m.Key(id))
	if nil != err {
		return nil, err
	}
	if 0 == len(value) {
		return nil, m.notFound(id)
	}
	return value, nil
}

// Store - write a complete value
func (m *Manager) Store(ledger storage.Ledger, id string, value []byte) error {
	m.log.Debugf("tx: %s  put %s %s: %s", ledger.TxID(), m.namespace.Name, id, value)
	return ledger.Put(m.Key(id), value)
}

// Create - store a new record, fails if one is already present
func (m *Manager) Create(ledger storage.Ledger, id string, fields []byte, prepare Prepare) error {
	exists, err := m.Exists(ledger, id)
	if nil != err {
		return err
	}
	if exists {
		return fault.Detail(m.namespace.Exists, "%s %s", m.namespace.Name, id)
	}

	value, err := prepare(ledger, fields)
	if nil != err {
		return err
	}

	err = m.Store(ledger, id, value)
	if nil != err {
		return err
	}
	m.log.Infof("tx: %s  created %s %s", ledger.TxID(), m.namespace.Name, id)
	return nil
}

// Read - the stored envelope unchanged
func (m *Manager) Read(ledger storage.Ledger, id string) (json.RawMessage, error) {
	value, err := m.Load(ledger, id)
	if nil != err {
		return nil, err
	}
	if !json.Valid(value) {
		return nil, fault.Detail(fault.ErrCorruptRecord, "%s %s", m.namespace.Name, id)
	}
	return json.RawMessage(value), nil
}

// Update - replace the data of an existing record with new fields
func (m *Manager) Update(ledger storage.Ledger, id string, fields []byte) error {
	exists, err := m.Exists(ledger, id)
	if nil != err {
		return err
	}
	if !exists {
		return m.notFound(id)
	}

	value, err := asset.Wrap(fields)
	if nil != err {
		return err
	}

	err = m.Store(ledger, id, value)
	if nil != err {
		return err
	}
	m.log.Infof("tx: %s  updated %s %s", ledger.TxID(), m.namespace.Name, id)
	return nil
}

// Delete - remove an existing record
func (m *Manager) Delete(ledger storage.Ledger, id string) error {
	exists, err := m.Exists(ledger, id)
	if nil != err {
		return err
	}
	if !exists {
		return m.notFound(id)
	}

	err = ledger.Delete(m.Key(id))
	if nil != err {
		return err
	}
	m.log.Infof("tx: %s  deleted %s %s", ledger.TxID(), m.namespace.Name, id)
	return nil
}

// QueryAll - every record in the namespace in key order
func (m *Manager) QueryAll(ledger storage.Ledger) ([]query.Result, error) {
	start, end := asset.Range(m.namespace.Prefix)
	return query.Scan(ledger, start, end, nil)
}

// ReadHistory - all modifications of an existing record, oldest first
func (m *Manager) ReadHistory(ledger storage.Ledger, id string) ([]query.HistoryEntry, error) {
	exists, err := m.Exists(ledger, id)
	if nil != err {
		return nil, err
	}
	if !exists {
		return nil, m.notFound(id)
	}
	return query.History(ledger, m.Key(id))
}
