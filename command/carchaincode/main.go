// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// carchaincode - the car ledger contracts for a Fabric peer
//
// launched by the peer, or run as an external chaincode service when
// CHAINCODE_SERVER_ADDRESS and CHAINCODE_ID are set
package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"

	"github.com/bitmark-inc/carledger/chaincode"
	"github.com/bitmark-inc/carledger/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// environment settings
const (
	envLogDirectory = "CARLEDGER_LOG_DIRECTORY"
	envLogLevel     = "CARLEDGER_LOG_LEVEL"
	envAddress      = "CHAINCODE_SERVER_ADDRESS"
	envID           = "CHAINCODE_ID"
)

func main() {
	defer exitwithstatus.Handler()

	logging := logger.Configuration{
		Directory: getenv(envLogDirectory, os.TempDir()),
		File:      "carchaincode.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: getenv(envLogLevel, "info"),
		},
	}
	if err := logger.Initialise(logging); nil != err {
		exitwithstatus.Message("logger setup failed with error: %s", err)
	}
	defer logger.Finalise()

	log := logger.New("main")
	defer log.Info("finished")
	log.Infof("starting carchaincode version: %s", version)

	if err := fault.Initialise(); nil != err {
		log.Criticalf("fault initialise error: %s", err)
		exitwithstatus.Message("fault initialise error: %s", err)
	}
	defer fault.Finalise()

	cc, err := contractapi.NewChaincode(chaincode.Contracts())
	if nil != err {
		log.Criticalf("create chaincode error: %s", err)
		exitwithstatus.Message("create chaincode error: %s", err)
	}
	cc.Info.Title = "carledger"
	cc.Info.Version = version

	address := os.Getenv(envAddress)
	if "" == address {
		err = cc.Start()
	} else {
		log.Infof("chaincode service: %s on: %s", os.Getenv(envID), address)
		server := &shim.ChaincodeServer{
			CCID:    os.Getenv(envID),
			Address: address,
			CC:      cc,
			TLSProps: shim.TLSProperties{
				Disabled: true,
			},
		}
		err = server.Start()
	}
	if nil != err {
		log.Criticalf("chaincode terminated: %s", err)
		exitwithstatus.Message("chaincode terminated: %s", err)
	}
}

func getenv(name string, value string) string {
	if s := os.Getenv(name); "" != s {
		return s
	}
	return value
}
