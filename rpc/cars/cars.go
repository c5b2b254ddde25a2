// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cars

import (
	"encoding/json"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/carledger/asset"
	"github.com/bitmark-inc/carledger/car"
	"github.com/bitmark-inc/carledger/fault"
	"github.com/bitmark-inc/carledger/query"
	"github.com/bitmark-inc/carledger/rpc/ratelimit"
	"github.com/bitmark-inc/carledger/storage"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitCar = 200
	rateBurstCar = 100
)

// Car - type for RPC calls
type Car struct {
	Log     *logger.L
	Limiter *rate.Limiter
	DB      storage.Transactor
	manager *car.Manager
}

// New - create the car service
func New(log *logger.L, settings ratelimit.Settings, db storage.Transactor, manager *car.Manager) *Car {
	return &Car{
		Log:     log,
		Limiter: ratelimit.New(settings, rateLimitCar, rateBurstCar),
		DB:      db,
		manager: manager,
	}
}

// ---

// Arguments - identify a car
type Arguments struct {
	Id string `json:"id"`
}

// DataArguments - a car identifier and its fields
type DataArguments struct {
	Id   string          `json:"id"`
	Data json.RawMessage `json:"data"`
}

// Reply - transaction id of a change
type Reply struct {
	TxId string `json:"txId"`
}

// ListArguments - empty arguments for list request
type ListArguments struct{}

// ListReply - all cars in key order
type ListReply struct {
	Results []query.Result `json:"results"`
}

// HistoryReply - all modifications of a car
type HistoryReply struct {
	History []query.HistoryEntry `json:"history"`
}

// Request - create a new car
func (c *Car) Request(arguments *DataArguments, reply *Reply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Id {
		return fault.ErrMissingParameters
	}

	c.Log.Infof("request: %s", arguments.Id)
	return c.DB.RunInTransaction(func(ledger storage.Ledger) error {
		reply.TxId = ledger.TxID()
		return c.manager.Request(ledger, arguments.Id, asset.Fields(arguments.Data))
	})
}

// Manufacture - mark a requested car as built
func (c *Car) Manufacture(arguments *Arguments, reply *Reply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Id {
		return fault.ErrMissingParameters
	}

	c.Log.Infof("manufacture: %s", arguments.Id)
	return c.DB.RunInTransaction(func(ledger storage.Ledger) error {
		reply.TxId = ledger.TxID()
		return c.manager.Manufacture(ledger, arguments.Id)
	})
}

// Read - the stored envelope of a car
func (c *Car) Read(arguments *Arguments, reply *asset.Envelope) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Id {
		return fault.ErrMissingParameters
	}

	return c.DB.RunInTransaction(func(ledger storage.Ledger) error {
		envelope, err := c.manager.Read(ledger, arguments.Id)
		if nil != err {
			return err
		}
		return json.Unmarshal(envelope, reply)
	})
}

// Update - replace the fields of a car
func (c *Car) Update(arguments *DataArguments, reply *Reply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Id {
		return fault.ErrMissingParameters
	}

	c.Log.Infof("update: %s", arguments.Id)
	return c.DB.RunInTransaction(func(ledger storage.Ledger) error {
		reply.TxId = ledger.TxID()
		return c.manager.Update(ledger, arguments.Id, asset.Fields(arguments.Data))
	})
}

// Delete - remove a car
func (c *Car) Delete(arguments *Arguments, reply *Reply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Id {
		return fault.ErrMissingParameters
	}

	c.Log.Infof("delete: %s", arguments.Id)
	return c.DB.RunInTransaction(func(ledger storage.Ledger) error {
		reply.TxId = ledger.TxID()
		return c.manager.Delete(ledger, arguments.Id)
	})
}

// List - every car
func (c *Car) List(_ *ListArguments, reply *ListReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	return c.DB.RunInTransaction(func(ledger storage.Ledger) error {
		results, err := c.manager.QueryAll(ledger)
		reply.Results = results
		return err
	})
}

// History - every modification of a car
func (c *Car) History(arguments *Arguments, reply *HistoryReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Id {
		return fault.ErrMissingParameters
	}

	return c.DB.RunInTransaction(func(ledger storage.Ledger) error {
		history, err := c.manager.ReadHistory(ledger, arguments.Id)
		reply.History = history
		return err
	})
}
