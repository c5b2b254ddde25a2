// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincode

import (
	"encoding/json"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"

	"github.com/bitmark-inc/carledger/car"
	"github.com/bitmark-inc/carledger/person"
	"github.com/bitmark-inc/carledger/storage"
	"github.com/bitmark-inc/carledger/trade"
	"github.com/bitmark-inc/logger"
)

// Contracts - every contract of the chaincode sharing one set of managers
func Contracts() (*CarContract, *PersonContract, *TransactionContract) {
	log := logger.New("chaincode")

	cars := car.New()
	people := person.New()

	return &CarContract{log: log, cars: cars},
		&PersonContract{log: log, people: people},
		&TransactionContract{log: log, trade: trade.New(cars, people)}
}

// run f against the transaction's ledger, logging any rejection
func run(ctx contractapi.TransactionContextInterface, log *logger.L, name string, f func(storage.Ledger) error) error {
	ledger, err := NewLedger(ctx.GetStub())
	if nil != err {
		log.Errorf("%s: %s", name, err)
		return err
	}
	err = f(ledger)
	if nil != err {
		log.Warnf("tx: %s  %s rejected: %s", ledger.TxID(), name, err)
	}
	return err
}

// run f and return its result as JSON text
func read(ctx contractapi.TransactionContextInterface, log *logger.L, name string, f func(storage.Ledger) (interface{}, error)) (string, error) {
	var text []byte
	err := run(ctx, log, name, func(ledger storage.Ledger) error {
		result, err := f(ledger)
		if nil != err {
			return err
		}
		if raw, ok := result.(json.RawMessage); ok {
			text = raw
			return nil
		}
		text, err = json.Marshal(result)
		return err
	})
	if nil != err {
		return "", err
	}
	return string(text), nil
}

// CarContract - car records
type CarContract struct {
	contractapi.Contract
	log  *logger.L
	cars *car.Manager
}

// CarExists - true if the car is stored
func (c *CarContract) CarExists(ctx contractapi.TransactionContextInterface, carID string) (bool, error) {
	exists := false
	err := run(ctx, c.log, "CarExists", func(ledger storage.Ledger) error {
		var err error
		exists, err = c.cars.Exists(ledger, carID)
		return err
	})
	return exists, err
}

// RequestCar - create a car in REQUESTED state from a JSON document
func (c *CarContract) RequestCar(ctx contractapi.TransactionContextInterface, carID string, data string) error {
	return run(ctx, c.log, "RequestCar", func(ledger storage.Ledger) error {
		return c.cars.Request(ledger, carID, []byte(data))
	})
}

// MakeCar - manufacture a requested car
func (c *CarContract) MakeCar(ctx contractapi.TransactionContextInterface, carID string) error {
	return run(ctx, c.log, "MakeCar", func(ledger storage.Ledger) error {
		return c.cars.Manufacture(ledger, carID)
	})
}

// ReadCar - the stored car envelope
func (c *CarContract) ReadCar(ctx contractapi.TransactionContextInterface, carID string) (string, error) {
	return read(ctx, c.log, "ReadCar", func(ledger storage.Ledger) (interface{}, error) {
		return c.cars.Read(ledger, carID)
	})
}

// QueryAllCar - every car in key order
func (c *CarContract) QueryAllCar(ctx contractapi.TransactionContextInterface) (string, error) {
	return read(ctx, c.log, "QueryAllCar", func(ledger storage.Ledger) (interface{}, error) {
		return c.cars.QueryAll(ledger)
	})
}

// UpdateCar - replace the data of a car
func (c *CarContract) UpdateCar(ctx contractapi.TransactionContextInterface, carID string, data string) error {
	return run(ctx, c.log, "UpdateCar", func(ledger storage.Ledger) error {
		return c.cars.Update(ledger, carID, []byte(data))
	})
}

// DeleteCar - remove a car
func (c *CarContract) DeleteCar(ctx contractapi.TransactionContextInterface, carID string) error {
	return run(ctx, c.log, "DeleteCar", func(ledger storage.Ledger) error {
		return c.cars.Delete(ledger, carID)
	})
}

// ReadCarHistory - every modification of a car
func (c *CarContract) ReadCarHistory(ctx contractapi.TransactionContextInterface, carID string) (string, error) {
	return read(ctx, c.log, "ReadCarHistory", func(ledger storage.Ledger) (interface{}, error) {
		return c.cars.ReadHistory(ledger, carID)
	})
}

// PersonContract - person records
type PersonContract struct {
	contractapi.Contract
	log    *logger.L
	people *person.Manager
}

// PersonExists - true if the person is stored
func (p *PersonContract) PersonExists(ctx contractapi.TransactionContextInterface, personID string) (bool, error) {
	exists := false
	err := run(ctx, p.log, "PersonExists", func(ledger storage.Ledger) error {
		var err error
		exists, err = p.people.Exists(ledger, personID)
		return err
	})
	return exists, err
}

// CreatePerson - store a person from a JSON document
func (p *PersonContract) CreatePerson(ctx contractapi.TransactionContextInterface, personID string, data string) error {
	return run(ctx, p.log, "CreatePerson", func(ledger storage.Ledger) error {
		return p.people.Create(ledger, personID, []byte(data))
	})
}

// ReadPerson - the stored person envelope
func (p *PersonContract) ReadPerson(ctx contractapi.TransactionContextInterface, personID string) (string, error) {
	return read(ctx, p.log, "ReadPerson", func(ledger storage.Ledger) (interface{}, error) {
		return p.people.Read(ledger, personID)
	})
}

// QueryAllPerson - every person in key order
func (p *PersonContract) QueryAllPerson(ctx contractapi.TransactionContextInterface) (string, error) {
	return read(ctx, p.log, "QueryAllPerson", func(ledger storage.Ledger) (interface{}, error) {
		return p.people.QueryAll(ledger)
	})
}

// ReadPersonCar - every car owned by the person
func (p *PersonContract) ReadPersonCar(ctx contractapi.TransactionContextInterface, personID string) (string, error) {
	return read(ctx, p.log, "ReadPersonCar", func(ledger storage.Ledger) (interface{}, error) {
		return p.people.ReadOwnedCars(ledger, personID)
	})
}

// UpdatePerson - replace the data of a person
func (p *PersonContract) UpdatePerson(ctx contractapi.TransactionContextInterface, personID string, data string) error {
	return run(ctx, p.log, "UpdatePerson", func(ledger storage.Ledger) error {
		return p.people.Update(ledger, personID, []byte(data))
	})
}

// DeletePerson - remove a person
func (p *PersonContract) DeletePerson(ctx contractapi.TransactionContextInterface, personID string) error {
	return run(ctx, p.log, "DeletePerson", func(ledger storage.Ledger) error {
		return p.people.Delete(ledger, personID)
	})
}

// ReadPersonHistory - every modification of a person
func (p *PersonContract) ReadPersonHistory(ctx contractapi.TransactionContextInterface, personID string) (string, error) {
	return read(ctx, p.log, "ReadPersonHistory", func(ledger storage.Ledger) (interface{}, error) {
		return p.people.ReadHistory(ledger, personID)
	})
}

// TransactionContract - sales and transfers
type TransactionContract struct {
	contractapi.Contract
	log   *logger.L
	trade *trade.Manager
}

// BuyNewCar - first sale of a manufactured car
func (t *TransactionContract) BuyNewCar(ctx contractapi.TransactionContextInterface, carID string, personID string) error {
	return run(ctx, t.log, "BuyNewCar", func(ledger storage.Ledger) error {
		return t.trade.BuyNewCar(ledger, carID, personID)
	})
}

// TransferCar - move a sold car to another person
func (t *TransactionContract) TransferCar(ctx contractapi.TransactionContextInterface, carID string, personID string) error {
	return run(ctx, t.log, "TransferCar", func(ledger storage.Ledger) error {
		return t.trade.TransferCar(ledger, carID, personID)
	})
}
