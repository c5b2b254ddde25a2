// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"net"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/carledger/command/carledger-cli/rpccalls"
	"github.com/bitmark-inc/carledger/counter"
	"github.com/bitmark-inc/carledger/fault"
	"github.com/bitmark-inc/carledger/fixtures"
	"github.com/bitmark-inc/carledger/rpc/ratelimit"
	"github.com/bitmark-inc/carledger/rpc/server"
	"github.com/bitmark-inc/carledger/storage"
	"github.com/bitmark-inc/logger"
)

var address string

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()

	db, err := storage.OpenMemory()
	if nil != err {
		panic(err)
	}

	var rpcCount counter.Counter
	s, _ := server.Create(logger.New(fixtures.LogCategory), "0.2-test", ratelimit.Settings{}, db, &rpcCount)

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

func newClient(t *testing.T, verbose bool) (*rpccalls.Client, *bytes.Buffer) {
	var out bytes.Buffer
	client, err := rpccalls.NewClient(address, verbose, &out)
	if nil != err {
		t.Fatalf("connect error: %s", err)
	}
	return client, &out
}

func TestCarLifecycle(t *testing.T) {
	client, _ := newClient(t, false)
	defer client.Close()

	txID, err := client.Create(rpccalls.Person, "41", `{"name":"Malee","gender":"female"}`)
	assert.Nil(t, err, "create person")
	assert.NotEqual(t, "", txID, "empty txId")

	_, err = client.Create(rpccalls.Car, "4001", `{"manufacture":"HONDA","year":2020,"name":"CIVIC"}`)
	assert.Nil(t, err, "request car")

	_, err = client.Manufacture("4001")
	assert.Nil(t, err, "manufacture")

	_, err = client.BuyNewCar("4001", "41")
	assert.Nil(t, err, "buy")

	_, err = client.TransferCar("4001", "41")
	assert.NotNil(t, err, "same owner transfer")
	assert.Contains(t, err.Error(), fault.ErrCarSameOwner.Error(), "wrong error")

	owned, err := client.OwnedCars("41")
	assert.Nil(t, err, "owned cars")
	assert.Equal(t, 1, len(owned.Results), "owned count")

	envelope, err := client.Read(rpccalls.Car, "4001")
	assert.Nil(t, err, "read car")
	assert.Contains(t, string(envelope.Data), `"owner":"41"`, "wrong owner")

	history, err := client.History(rpccalls.Car, "4001")
	assert.Nil(t, err, "car history")
	assert.Equal(t, 3, len(history.History), "history length")

	list, err := client.List(rpccalls.Person)
	assert.Nil(t, err, "list people")
	assert.Equal(t, 1, len(list.Results), "people count")

	_, err = client.Update(rpccalls.Person, "41", `{"name":"Malee S.","gender":"female"}`)
	assert.Nil(t, err, "update person")

	_, err = client.Delete(rpccalls.Person, "41")
	assert.Nil(t, err, "delete person")

	_, err = client.Read(rpccalls.Person, "41")
	assert.NotNil(t, err, "read deleted person")
	assert.Contains(t, err.Error(), fault.ErrPersonNotFound.Error(), "wrong error")
}

func TestCreateInvalidJSON(t *testing.T) {
	client, _ := newClient(t, false)
	defer client.Close()

	_, err := client.Create(rpccalls.Car, "4002", `{"manufacture":`)
	assert.Equal(t, fault.ErrInvalidJSON, err, "wrong error")
}

func TestVerboseOutput(t *testing.T) {
	client, out := newClient(t, true)
	defer client.Close()

	reply, err := client.Info()
	assert.Nil(t, err, "info")
	assert.Equal(t, "0.2-test", reply.Version, "wrong version")
	assert.Contains(t, out.String(), "Node.Info Request:", "missing request")
	assert.Contains(t, out.String(), "Node.Info Reply:", "missing reply")
}

func TestNewClientRefused(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if nil != err {
		t.Fatalf("listen error: %s", err)
	}
	closed := l.Addr().String()
	_ = l.Close()

	_, err = rpccalls.NewClient(closed, false, &bytes.Buffer{})
	assert.NotNil(t, err, "connected to closed port")
}
