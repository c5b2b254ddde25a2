// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/carledger/command/carledger-cli/rpccalls"
)

type txReply struct {
	TxId string `json:"txId"`
}

func runCreate(service rpccalls.Service) cli.ActionFunc {
	return func(c *cli.Context) error {
		id, err := checkID(c.String("id"))
		if nil != err {
			return err
		}
		data, err := checkData(c.String("data"))
		if nil != err {
			return err
		}
		return withClient(c, func(m *metadata, client *rpccalls.Client) error {
			txID, err := client.Create(service, id, data)
			if nil != err {
				return err
			}
			return printJson(m.w, txReply{TxId: txID})
		})
	}
}

func runUpdate(service rpccalls.Service) cli.ActionFunc {
	return func(c *cli.Context) error {
		id, err := checkID(c.String("id"))
		if nil != err {
			return err
		}
		data, err := checkData(c.String("data"))
		if nil != err {
			return err
		}
		return withClient(c, func(m *metadata, client *rpccalls.Client) error {
			txID, err := client.Update(service, id, data)
			if nil != err {
				return err
			}
			return printJson(m.w, txReply{TxId: txID})
		})
	}
}

func runRead(service rpccalls.Service) cli.ActionFunc {
	return func(c *cli.Context) error {
		id, err := checkID(c.String("id"))
		if nil != err {
			return err
		}
		return withClient(c, func(m *metadata, client *rpccalls.Client) error {
			envelope, err := client.Read(service, id)
			if nil != err {
				return err
			}
			return printJson(m.w, envelope)
		})
	}
}

func runDelete(service rpccalls.Service) cli.ActionFunc {
	return func(c *cli.Context) error {
		id, err := checkID(c.String("id"))
		if nil != err {
			return err
		}
		return withClient(c, func(m *metadata, client *rpccalls.Client) error {
			txID, err := client.Delete(service, id)
			if nil != err {
				return err
			}
			return printJson(m.w, txReply{TxId: txID})
		})
	}
}

func runList(service rpccalls.Service) cli.ActionFunc {
	return func(c *cli.Context) error {
		return withClient(c, func(m *metadata, client *rpccalls.Client) error {
			reply, err := client.List(service)
			if nil != err {
				return err
			}
			return printJson(m.w, reply)
		})
	}
}

func runHistory(service rpccalls.Service) cli.ActionFunc {
	return func(c *cli.Context) error {
		id, err := checkID(c.String("id"))
		if nil != err {
			return err
		}
		return withClient(c, func(m *metadata, client *rpccalls.Client) error {
			reply, err := client.History(service, id)
			if nil != err {
				return err
			}
			return printJson(m.w, reply)
		})
	}
}

func runManufacture(c *cli.Context) error {
	id, err := checkID(c.String("id"))
	if nil != err {
		return err
	}
	return withClient(c, func(m *metadata, client *rpccalls.Client) error {
		txID, err := client.Manufacture(id)
		if nil != err {
			return err
		}
		return printJson(m.w, txReply{TxId: txID})
	})
}

func runOwned(c *cli.Context) error {
	id, err := checkID(c.String("id"))
	if nil != err {
		return err
	}
	return withClient(c, func(m *metadata, client *rpccalls.Client) error {
		reply, err := client.OwnedCars(id)
		if nil != err {
			return err
		}
		return printJson(m.w, reply)
	})
}
