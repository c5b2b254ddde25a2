// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - typed JSON RPC calls to carledgerd
package rpccalls

import (
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"
)

const (
	dialTimeout = 10 * time.Second
)

// Client - an open connection to carledgerd
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer
}

// NewClient - connect to carledgerd
func NewClient(connect string, verbose bool, handle io.Writer) (*Client, error) {

	conn, err := net.DialTimeout("tcp", connect, dialTimeout)
	if err != nil {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the carledgerd connection
func (client *Client) Close() {
	client.client.Close()
}

// call with the request and response shown in verbose mode
func (client *Client) call(method string, arguments interface{}, reply interface{}) error {
	client.printJson(method+" Request", arguments)

	if err := client.client.Call(method, arguments, reply); nil != err {
		return err
	}

	client.printJson(method+" Reply", reply)
	return nil
}
