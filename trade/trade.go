// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package trade - changes of car ownership
//
// each operation reads the person and the car, validates and then
// writes only the car; the enclosing ledger transaction makes the
// read-check-write atomic
package trade

import (
	"github.com/bitmark-inc/carledger/asset"
	"github.com/bitmark-inc/carledger/car"
	"github.com/bitmark-inc/carledger/fault"
	"github.com/bitmark-inc/carledger/person"
	"github.com/bitmark-inc/carledger/storage"
	"github.com/bitmark-inc/logger"
)

// Manager - ownership operations
type Manager struct {
	log    *logger.L
	cars   *car.Manager
	people *person.Manager
}

// New - create a trade manager over the car and person managers
func New(cars *car.Manager, people *person.Manager) *Manager {
	return &Manager{
		log:    logger.New("trade"),
		cars:   cars,
		people: people,
	}
}

// load the buyer and the car, buyer first
func (m *Manager) load(ledger storage.Ledger, carID string, personID string) (*asset.Car, error) {
	exists, err := m.people.Exists(ledger, personID)
	if nil != err {
		return nil, err
	}
	if !exists {
		return nil, fault.Detail(fault.ErrPersonNotFound, "person %s", personID)
	}
	return m.cars.Get(ledger, carID)
}

// BuyNewCar - first sale of a manufactured car
func (m *Manager) BuyNewCar(ledger storage.Ledger, carID string, personID string) error {
	c, err := m.load(ledger, carID, personID)
	if nil != err {
		return err
	}

	if asset.Manufactured != c.LastStatus {
		return fault.Detail(fault.ErrCarNotForSale, "car %s status %s", carID, c.LastStatus)
	}
	if c.HasOwner() {
		return fault.Detail(fault.ErrCarAlreadyOwned, "car %s belongs to person %s", carID, c.OwnerText())
	}

	c.Owner = personID
	c.Append(asset.StatusChange{
		Status:       asset.ChangeOwner,
		NewOwner:     personID,
		CurrentOwner: asset.NewCarOwner,
		Time:         asset.FormatTime(ledger.Timestamp()),
	})
	c.LastStatus = asset.AfterSales

	err = m.cars.Put(ledger, carID, c)
	if nil != err {
		return err
	}
	m.log.Infof("tx: %s  car: %s  sold to: %s", ledger.TxID(), carID, personID)
	return nil
}

// TransferCar - move a car to a new owner
//
// an owned car may go to anyone but its owner, whatever its status;
// an unowned car must already be AFTER_SALES
func (m *Manager) TransferCar(ledger storage.Ledger, carID string, personID string) error {
	c, err := m.load(ledger, carID, personID)
	if nil != err {
		return err
	}

	if c.HasOwner() {
		if c.Owner == personID {
			return fault.Detail(fault.ErrCarSameOwner, "car %s person %s", carID, personID)
		}
	} else if asset.AfterSales != c.LastStatus {
		return fault.Detail(fault.ErrCarNotTransferable, "car %s status %s", carID, c.LastStatus)
	}

	previous := c.OwnerText()
	c.Append(asset.StatusChange{
		Status:       asset.ChangeOwner,
		NewOwner:     personID,
		CurrentOwner: previous,
		Time:         asset.FormatTime(ledger.Timestamp()),
	})
	c.LastStatus = asset.AfterSales
	c.Owner = personID

	err = m.cars.Put(ledger, carID, c)
	if nil != err {
		return err
	}
	m.log.Infof("tx: %s  car: %s  transferred from: %q to: %s", ledger.TxID(), carID, previous, personID)
	return nil
}
