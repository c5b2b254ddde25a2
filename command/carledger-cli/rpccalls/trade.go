// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/carledger/rpc/node"
	"github.com/bitmark-inc/carledger/rpc/transaction"
)

// BuyNewCar - first sale of a manufactured car
func (client *Client) BuyNewCar(carID string, personID string) (string, error) {
	var reply transaction.TradeReply
	err := client.call("Transaction.BuyNewCar", &transaction.TradeArguments{CarId: carID, PersonId: personID}, &reply)
	return reply.TxId, err
}

// TransferCar - move a sold car to another person
func (client *Client) TransferCar(carID string, personID string) (string, error) {
	var reply transaction.TradeReply
	err := client.call("Transaction.TransferCar", &transaction.TradeArguments{CarId: carID, PersonId: personID}, &reply)
	return reply.TxId, err
}

// Info - daemon version and status
func (client *Client) Info() (*node.InfoReply, error) {
	var reply node.InfoReply
	err := client.call("Node.Info", &node.InfoArguments{}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
