// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/carledger/command/carledger-cli/rpccalls"
)

func runBuy(c *cli.Context) error {
	carID, personID, err := tradeParameters(c)
	if nil != err {
		return err
	}
	return withClient(c, func(m *metadata, client *rpccalls.Client) error {
		txID, err := client.BuyNewCar(carID, personID)
		if nil != err {
			return err
		}
		return printJson(m.w, txReply{TxId: txID})
	})
}

func runTransfer(c *cli.Context) error {
	carID, personID, err := tradeParameters(c)
	if nil != err {
		return err
	}
	return withClient(c, func(m *metadata, client *rpccalls.Client) error {
		txID, err := client.TransferCar(carID, personID)
		if nil != err {
			return err
		}
		return printJson(m.w, txReply{TxId: txID})
	})
}

func tradeParameters(c *cli.Context) (string, string, error) {
	carID, err := checkID(c.String("car"))
	if nil != err {
		return "", "", err
	}
	personID, err := checkID(c.String("person"))
	if nil != err {
		return "", "", err
	}
	return carID, personID, nil
}

func runInfo(c *cli.Context) error {
	return withClient(c, func(m *metadata, client *rpccalls.Client) error {
		reply, err := client.Info()
		if nil != err {
			return err
		}
		return printJson(m.w, reply)
	})
}
