// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincode - the car ledger as Hyperledger Fabric contracts
//
// the contracts hold no state, every call wraps the transaction stub
// as a storage.Ledger and hands it to the same managers used by the
// daemon.  Reads return JSON text, any error rejects the transaction.
package chaincode
