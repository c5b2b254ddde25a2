// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// carledger-cli - send car and person commands to a carledgerd node
//
// e.g.
//   carledger-cli person create -i 71 -d '{"name":"Somchai","gender":"male"}'
//   carledger-cli car request -i 7003 -d '{"manufacture":"TOYOTA","year":2019,"name":"INNOVA"}'
//   carledger-cli car manufacture -i 7003
//   carledger-cli buy -c 7003 -p 71
package main
