// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"

	"github.com/bitmark-inc/carledger/asset"
	"github.com/bitmark-inc/carledger/fault"
	"github.com/bitmark-inc/carledger/rpc/cars"
	"github.com/bitmark-inc/carledger/rpc/people"
)

// Service - the RPC service of a record type
type Service string

// the record services
const (
	Car    Service = "Car"
	Person Service = "Person"
)

// create method per service, the remaining methods share names
var createMethod = map[Service]string{
	Car:    "Request",
	Person: "Create",
}

// check document text locally before it is sent
func dataArgument(data string) (json.RawMessage, error) {
	if !json.Valid([]byte(data)) {
		return nil, fault.ErrInvalidJSON
	}
	return json.RawMessage(data), nil
}

// Create - request a new car or create a person
func (client *Client) Create(service Service, id string, data string) (string, error) {
	raw, err := dataArgument(data)
	if nil != err {
		return "", err
	}
	var reply cars.Reply
	err = client.call(string(service)+"."+createMethod[service], &cars.DataArguments{Id: id, Data: raw}, &reply)
	return reply.TxId, err
}

// Update - replace the data of a record
func (client *Client) Update(service Service, id string, data string) (string, error) {
	raw, err := dataArgument(data)
	if nil != err {
		return "", err
	}
	var reply cars.Reply
	err = client.call(string(service)+".Update", &cars.DataArguments{Id: id, Data: raw}, &reply)
	return reply.TxId, err
}

// Read - the stored envelope of a record
func (client *Client) Read(service Service, id string) (*asset.Envelope, error) {
	var reply asset.Envelope
	err := client.call(string(service)+".Read", &cars.Arguments{Id: id}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Delete - remove a record
func (client *Client) Delete(service Service, id string) (string, error) {
	var reply cars.Reply
	err := client.call(string(service)+".Delete", &cars.Arguments{Id: id}, &reply)
	return reply.TxId, err
}

// List - all records of a service
func (client *Client) List(service Service) (*cars.ListReply, error) {
	var reply cars.ListReply
	err := client.call(string(service)+".List", &cars.ListArguments{}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// History - all modifications of a record
func (client *Client) History(service Service, id string) (*cars.HistoryReply, error) {
	var reply cars.HistoryReply
	err := client.call(string(service)+".History", &cars.Arguments{Id: id}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Manufacture - build a requested car
func (client *Client) Manufacture(id string) (string, error) {
	var reply cars.Reply
	err := client.call("Car.Manufacture", &cars.Arguments{Id: id}, &reply)
	return reply.TxId, err
}

// OwnedCars - cars belonging to a person
func (client *Client) OwnedCars(personID string) (*people.ListReply, error) {
	var reply people.ListReply
	err := client.call("Person.Cars", &people.Arguments{Id: personID}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
