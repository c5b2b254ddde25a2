// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"encoding/json"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/carledger/counter"
	"github.com/bitmark-inc/carledger/fault"
	"github.com/bitmark-inc/carledger/fixtures"
	"github.com/bitmark-inc/carledger/rpc/cars"
	"github.com/bitmark-inc/carledger/rpc/node"
	"github.com/bitmark-inc/carledger/rpc/people"
	"github.com/bitmark-inc/carledger/rpc/ratelimit"
	"github.com/bitmark-inc/carledger/rpc/server"
	"github.com/bitmark-inc/carledger/rpc/transaction"
	"github.com/bitmark-inc/carledger/storage"
	"github.com/bitmark-inc/logger"
)

var (
	address  string
	services *server.Services
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()

	db, err := storage.OpenMemory()
	if nil != err {
		panic(err)
	}

	var rpcCount counter.Counter
	s, svc := server.Create(
		logger.New(fixtures.LogCategory),
		"0.1-test",
		ratelimit.Settings{},
		db,
		&rpcCount,
	)
	services = svc

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if nil != err {
		panic(err)
	}
	address = l.Addr().String()

	go func() {
		for {
			conn, err := l.Accept()
			if nil != err {
				return
			}
			go s.ServeCodec(jsonrpc.NewServerCodec(conn))
		}
	}()

	rc := m.Run()

	_ = l.Close()
	db.Close()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func dial(t *testing.T) *rpc.Client {
	client, err := jsonrpc.Dial("tcp", address)
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	return client
}

func TestTradeScenario(t *testing.T) {
	client := dial(t)
	defer client.Close()

	var reply people.Reply
	for _, id := range []string{"71", "72"} {
		err := client.Call("Person.Create", &people.DataArguments{
			Id:   id,
			Data: json.RawMessage(`{"name":"Somchai","gender":"male"}`),
		}, &reply)
		assert.Nil(t, err, "Person.Create")
		assert.NotEqual(t, "", reply.TxId, "empty txId")
	}

	var carReply cars.Reply
	err := client.Call("Car.Request", &cars.DataArguments{
		Id:   "7003",
		Data: json.RawMessage(`"{\"manufacture\":\"TOYOTA\",\"year\":2019,\"name\":\"INNOVA\"}"`),
	}, &carReply)
	assert.Nil(t, err, "Car.Request")

	var trade transaction.TradeReply
	err = client.Call("Transaction.BuyNewCar", &transaction.TradeArguments{CarId: "7003", PersonId: "71"}, &trade)
	assert.NotNil(t, err, "sold before manufacture")
	assert.Contains(t, err.Error(), fault.ErrCarNotForSale.Error(), "wrong error")

	err = client.Call("Car.Manufacture", &cars.Arguments{Id: "7003"}, &carReply)
	assert.Nil(t, err, "Car.Manufacture")

	err = client.Call("Transaction.BuyNewCar", &transaction.TradeArguments{CarId: "7003", PersonId: "71"}, &trade)
	assert.Nil(t, err, "Transaction.BuyNewCar")

	err = client.Call("Transaction.TransferCar", &transaction.TradeArguments{CarId: "7003", PersonId: "71"}, &trade)
	assert.NotNil(t, err, "transfer to same owner")
	assert.Contains(t, err.Error(), fault.ErrCarSameOwner.Error(), "wrong error")

	err = client.Call("Transaction.TransferCar", &transaction.TradeArguments{CarId: "7003", PersonId: "72"}, &trade)
	assert.Nil(t, err, "Transaction.TransferCar")

	var owned people.ListReply
	err = client.Call("Person.Cars", &people.Arguments{Id: "72"}, &owned)
	assert.Nil(t, err, "Person.Cars")
	assert.Equal(t, 1, len(owned.Results), "owned count")
	if 1 == len(owned.Results) {
		assert.Equal(t, "CAR_7003", owned.Results[0].Key, "wrong key")
	}

	var history cars.HistoryReply
	err = client.Call("Car.History", &cars.Arguments{Id: "7003"}, &history)
	assert.Nil(t, err, "Car.History")
	assert.Equal(t, 4, len(history.History), "history length")
}

func TestCarReadMissing(t *testing.T) {
	client := dial(t)
	defer client.Close()

	var reply json.RawMessage
	err := client.Call("Car.Read", &cars.Arguments{Id: "9999"}, &reply)
	assert.NotNil(t, err, "wrong Car.Read")
	assert.Contains(t, err.Error(), fault.ErrCarNotFound.Error(), "wrong error")
}

func TestCarRequestMissingParameters(t *testing.T) {
	client := dial(t)
	defer client.Close()

	var reply cars.Reply
	err := client.Call("Car.Request", &cars.DataArguments{}, &reply)
	assert.NotNil(t, err, "wrong Car.Request")
	assert.Equal(t, fault.ErrMissingParameters.Error(), err.Error(), "wrong error")
}

func TestPersonCreateInvalid(t *testing.T) {
	client := dial(t)
	defer client.Close()

	var reply people.Reply
	err := client.Call("Person.Create", &people.DataArguments{
		Id:   "80",
		Data: json.RawMessage(`{"gender":"female"}`),
	}, &reply)
	assert.NotNil(t, err, "wrong Person.Create")
	assert.Contains(t, err.Error(), fault.ErrNameRequired.Error(), "wrong error")
}

func TestNodeInfo(t *testing.T) {
	client := dial(t)
	defer client.Close()

	var reply node.InfoReply
	err := client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, "0.1-test", reply.Version, "wrong version")
	assert.NotEqual(t, "", reply.Uptime, "empty uptime")
}

func TestSetRateLimit(t *testing.T) {
	before := services.Car.Limiter.Limit()

	services.SetRateLimit(0)
	assert.Equal(t, before, services.Car.Limiter.Limit(), "zero changed rate")

	services.SetRateLimit(1000)
	assert.Equal(t, float64(1000), float64(services.Node.Limiter.Limit()), "wrong node rate")
	assert.Equal(t, float64(1000), float64(services.Transaction.Limiter.Limit()), "wrong transaction rate")
}
