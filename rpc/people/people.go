// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package people

import (
	"encoding/json"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/carledger/asset"
	"github.com/bitmark-inc/carledger/fault"
	"github.com/bitmark-inc/carledger/person"
	"github.com/bitmark-inc/carledger/query"
	"github.com/bitmark-inc/carledger/rpc/ratelimit"
	"github.com/bitmark-inc/carledger/storage"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitPerson = 200
	rateBurstPerson = 100
)

// Person - type for RPC calls
type Person struct {
	Log     *logger.L
	Limiter *rate.Limiter
	DB      storage.Transactor
	manager *person.Manager
}

// New - create the person service
func New(log *logger.L, settings ratelimit.Settings, db storage.Transactor, manager *person.Manager) *Person {
	return &Person{
		Log:     log,
		Limiter: ratelimit.New(settings, rateLimitPerson, rateBurstPerson),
		DB:      db,
		manager: manager,
	}
}

// ---

// Arguments - identify a person
type Arguments struct {
	Id string `json:"id"`
}

// DataArguments - a person identifier and their fields
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

// ListReply - records in key order
type ListReply struct {
	Results []query.Result `json:"results"`
}

// HistoryReply - all modifications of a person
type HistoryReply struct {
	History []query.HistoryEntry `json:"history"`
}

func (p *Person) change(arguments *DataArguments, reply *Reply, f func(storage.Ledger, string, []byte) error) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Id {
		return fault.ErrMissingParameters
	}

	return p.DB.RunInTransaction(func(ledger storage.Ledger) error {
		reply.TxId = ledger.TxID()
		return f(ledger, arguments.Id, asset.Fields(arguments.Data))
	})
}

// Create - store a new person
func (p *Person) Create(arguments *DataArguments, reply *Reply) error {
	return p.change(arguments, reply, p.manager.Create)
}

// Update - replace the fields of a person
func (p *Person) Update(arguments *DataArguments, reply *Reply) error {
	return p.change(arguments, reply, p.manager.Update)
}

// Read - the stored envelope of a person
func (p *Person) Read(arguments *Arguments, reply *asset.Envelope) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Id {
		return fault.ErrMissingParameters
	}

	return p.DB.RunInTransaction(func(ledger storage.Ledger) error {
		envelope, err := p.manager.Read(ledger, arguments.Id)
		if nil != err {
			return err
		}
		return json.Unmarshal(envelope, reply)
	})
}

// Delete - remove a person
func (p *Person) Delete(arguments *Arguments, reply *Reply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Id {
		return fault.ErrMissingParameters
	}

	p.Log.Infof("delete: %s", arguments.Id)
	return p.DB.RunInTransaction(func(ledger storage.Ledger) error {
		reply.TxId = ledger.TxID()
		return p.manager.Delete(ledger, arguments.Id)
	})
}

// List - every person
func (p *Person) List(_ *ListArguments, reply *ListReply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	return p.DB.RunInTransaction(func(ledger storage.Ledger) error {
		results, err := p.manager.QueryAll(ledger)
		reply.Results = results
		return err
	})
}

// History - every modification of a person
func (p *Person) History(arguments *Arguments, reply *HistoryReply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Id {
		return fault.ErrMissingParameters
	}

	return p.DB.RunInTransaction(func(ledger storage.Ledger) error {
		history, err := p.manager.ReadHistory(ledger, arguments.Id)
		reply.History = history
		return err
	})
}

// Cars - the cars owned by a person
func (p *Person) Cars(arguments *Arguments, reply *ListReply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Id {
		return fault.ErrMissingParameters
	}

	return p.DB.RunInTransaction(func(ledger storage.Ledger) error {
		results, err := p.manager.ReadOwnedCars(ledger, arguments.Id)
		reply.Results = results
		return err
	})
}
