// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/carledger/fault"
	"github.com/bitmark-inc/carledger/rpc/ratelimit"
	"github.com/bitmark-inc/carledger/storage"
	"github.com/bitmark-inc/carledger/trade"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitTransaction = 200
	rateBurstTransaction = 100
)

// Transaction - an RPC entry for car ownership changes
type Transaction struct {
	Log     *logger.L
	Limiter *rate.Limiter
	DB      storage.Transactor
	trade   *trade.Manager
}

// TradeArguments - arguments for a sale or transfer
type TradeArguments struct {
	CarId    string `json:"carId"`
	PersonId string `json:"personId"`
}

// TradeReply - results from a sale or transfer
type TradeReply struct {
	TxId string `json:"txId"`
}

// New - create the transaction service
func New(log *logger.L, settings ratelimit.Settings, db storage.Transactor, manager *trade.Manager) *Transaction {
	return &Transaction{
		Log:     log,
		Limiter: ratelimit.New(settings, rateLimitTransaction, rateBurstTransaction),
		DB:      db,
		trade:   manager,
	}
}

func (t *Transaction) run(arguments *TradeArguments, reply *TradeReply, f func(storage.Ledger, string, string) error) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.CarId || "" == arguments.PersonId {
		return fault.ErrMissingParameters
	}

	err := t.DB.RunInTransaction(func(ledger storage.Ledger) error {
		reply.TxId = ledger.TxID()
		return f(ledger, arguments.CarId, arguments.PersonId)
	})
	if nil != err {
		t.Log.Warnf("car: %s  person: %s  rejected: %s", arguments.CarId, arguments.PersonId, err)
	}
	return err
}

// BuyNewCar - first sale of a manufactured car
func (t *Transaction) BuyNewCar(arguments *TradeArguments, reply *TradeReply) error {
	return t.run(arguments, reply, t.trade.BuyNewCar)
}

// TransferCar - move a car to a new owner
func (t *Transaction) TransferCar(arguments *TradeArguments, reply *TradeReply) error {
	return t.run(arguments, reply, t.trade.TransferCar)
}
