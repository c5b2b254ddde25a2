// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package person - person records
package person

import (
	"github.com/bitmark-inc/carledger/asset"
	"github.com/bitmark-inc/carledger/entity"
	"github.com/bitmark-inc/carledger/fault"
	"github.com/bitmark-inc/carledger/query"
	"github.com/bitmark-inc/carledger/storage"
	"github.com/bitmark-inc/logger"
)

// Namespace - person keys and errors
var Namespace = entity.Namespace{
	Name:     "person",
	Prefix:   asset.PersonPrefix,
	NotFound: fault.ErrPersonNotFound,
	Exists:   fault.ErrPersonAlreadyExists,
}

// Manager - person operations
type Manager struct {
	*entity.Manager
}

// New - create a person manager
func New() *Manager {
	return &Manager{
		Manager: entity.New(logger.New("person"), Namespace),
	}
}

// Create - store a new person, name and gender are required
func (m *Manager) Create(ledger storage.Ledger, id string, fields []byte) error {
	return m.Manager.Create(ledger, id, fields, prepare)
}

// the fields are stored exactly as given once they pass validation
func prepare(_ storage.Ledger, fields []byte) ([]byte, error) {
	p, err := asset.ParsePerson(fields)
	if nil != err {
		return nil, err
	}
	if err := p.Validate(); nil != err {
		return nil, err
	}
	return asset.Wrap(fields)
}

// ReadOwnedCars - every car whose owner is this person
func (m *Manager) ReadOwnedCars(ledger storage.Ledger, id string) ([]query.Result, error) {
	exists, err := m.Exists(ledger, id)
	if nil != err {
		return nil, err
	}
	if !exists {
		return nil, fault.Detail(fault.ErrPersonNotFound, "person %s", id)
	}

	start, end := asset.Range(asset.CarPrefix)
	return query.Scan(ledger, start, end, query.OwnedBy(id))
}
