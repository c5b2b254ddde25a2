// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/carledger/command/carledger-cli/rpccalls"
)

func checkID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if "" == id {
		return "", ErrRequiredID
	}
	return id, nil
}

func checkData(data string) (string, error) {
	data = strings.TrimSpace(data)
	if "" == data {
		return "", ErrRequiredData
	}
	return data, nil
}

// open a connection for one command
func withClient(c *cli.Context, f func(*metadata, *rpccalls.Client) error) error {
	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	return f(m, client)
}

func printJson(handle io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}
	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
