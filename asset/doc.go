// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - record encoding for the ledger
//
// every stored value is an envelope: {"data": <fields>}
//
// the car and person records are typed, but any field not known to
// the type is carried through a decode/encode cycle unchanged so a
// status transition never drops data written by a full replace.
//
// values read back from a range or history scan may not be JSON at
// all, these decode to a raw string record instead of failing.
package asset
