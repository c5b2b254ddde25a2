// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/carledger/car"
	"github.com/bitmark-inc/carledger/counter"
	"github.com/bitmark-inc/carledger/person"
	"github.com/bitmark-inc/carledger/rpc/cars"
	"github.com/bitmark-inc/carledger/rpc/node"
	"github.com/bitmark-inc/carledger/rpc/people"
	"github.com/bitmark-inc/carledger/rpc/ratelimit"
	"github.com/bitmark-inc/carledger/rpc/transaction"
	"github.com/bitmark-inc/carledger/storage"
	"github.com/bitmark-inc/carledger/trade"
	"github.com/bitmark-inc/logger"
)

// Services - the registered RPC services
type Services struct {
	Car         *cars.Car
	Person      *people.Person
	Transaction *transaction.Transaction
	Node        *node.Node
}

// Create - an RPC server with all services registered
func Create(log *logger.L, version string, settings ratelimit.Settings, db storage.Transactor, rpcCount *counter.Counter) (*rpc.Server, *Services) {

	start := time.Now().UTC()

	carManager := car.New()
	personManager := person.New()
	tradeManager := trade.New(carManager, personManager)

	s := &Services{
		Car:         cars.New(log, settings, db, carManager),
		Person:      people.New(log, settings, db, personManager),
		Transaction: transaction.New(log, settings, db, tradeManager),
		Node:        node.New(log, settings, start, version, rpcCount),
	}

	server := rpc.NewServer()

	_ = server.Register(s.Car)
	_ = server.Register(s.Person)
	_ = server.Register(s.Transaction)
	_ = server.Register(s.Node)

	return server, s
}

// SetRateLimit - change the rate of every service, zero keeps the current rate
func (s *Services) SetRateLimit(limit float64) {
	if limit <= 0 {
		return
	}
	for _, l := range []*rate.Limiter{
		s.Car.Limiter,
		s.Person.Limiter,
		s.Transaction.Limiter,
		s.Node.Limiter,
	} {
		l.SetLimit(rate.Limit(limit))
	}
}
