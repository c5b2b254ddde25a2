// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package car - car records and the manufacturing step of their life cycle
//
//   request --> REQUESTED --manufacture--> MANUFACTURED --sale--> AFTER_SALES --transfer--> AFTER_SALES
//
// sale and transfer involve a person as well so they are in package trade
package car

import (
	"github.com/bitmark-inc/carledger/asset"
	"github.com/bitmark-inc/carledger/entity"
	"github.com/bitmark-inc/carledger/fault"
	"github.com/bitmark-inc/carledger/storage"
	"github.com/bitmark-inc/logger"
)

// Namespace - car keys and errors
var Namespace = entity.Namespace{
	Name:     "car",
	Prefix:   asset.CarPrefix,
	NotFound: fault.ErrCarNotFound,
	Exists:   fault.ErrCarAlreadyExists,
}

// Manager - car operations
type Manager struct {
	*entity.Manager
}

// New - create a car manager
func New() *Manager {
	return &Manager{
		Manager: entity.New(logger.New("car"), Namespace),
	}
}

// Request - create a new car in REQUESTED state
//
// manufacture, year and name are required, any other fields are kept
func (m *Manager) Request(ledger storage.Ledger, id string, fields []byte) error {
	return m.Create(ledger, id, fields, prepare)
}

func prepare(ledger storage.Ledger, fields []byte) ([]byte, error) {
	c, err := asset.ParseCar(fields)
	if nil != err {
		return nil, err
	}
	if err := c.Validate(); nil != err {
		return nil, err
	}

	c.LastStatus = asset.Requested
	c.Restart(asset.StatusChange{
		Status: asset.Requested,
		Time:   asset.FormatTime(ledger.Timestamp()),
	})
	return asset.PackCar(c)
}

// Get - decode an existing car
func (m *Manager) Get(ledger storage.Ledger, id string) (*asset.Car, error) {
	value, err := m.Load(ledger, id)
	if nil != err {
		return nil, err
	}
	c, err := asset.UnpackCar(value)
	if nil != err {
		m.Log().Errorf("car: %s  decode error: %s", id, err)
		return nil, err
	}
	return c, nil
}

// Put - encode and store a car
func (m *Manager) Put(ledger storage.Ledger, id string, c *asset.Car) error {
	value, err := asset.PackCar(c)
	if nil != err {
		return err
	}
	return m.Store(ledger, id, value)
}

// Manufacture - move a requested car to MANUFACTURED
func (m *Manager) Manufacture(ledger storage.Ledger, id string) error {
	c, err := m.Get(ledger, id)
	if nil != err {
		return err
	}

	switch c.LastStatus {
	case asset.Requested:
	case asset.Manufactured:
		return fault.Detail(fault.ErrCarAlreadyManufactured, "car %s", id)
	default:
		return fault.Detail(fault.ErrCarAlreadySold, "car %s belongs to person %s", id, c.OwnerText())
	}

	c.LastStatus = asset.Manufactured
	c.Append(asset.StatusChange{
		Status: asset.Manufactured,
		Time:   asset.FormatTime(ledger.Timestamp()),
	})

	err = m.Put(ledger, id, c)
	if nil != err {
		return err
	}
	m.Log().Infof("tx: %s  car: %s  manufactured", ledger.TxID(), id)
	return nil
}
