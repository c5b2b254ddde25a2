// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"time"

	"github.com/bitmark-inc/carledger/fault"
)

const (
	flagWrite  = 0x00
	flagDelete = 0x01
)

// key ++ 0x00 ++ count
func historyKey(key []byte, count uint64) []byte {
	buffer := make([]byte, len(key)+1+8)
	copy(buffer, key)
	buffer[len(key)] = 0x00
	binary.BigEndian.PutUint64(buffer[len(key)+1:], count)
	return buffer
}

// bounds of all history entries for a key
func historyRange(key []byte) ([]byte, []byte) {
	start := make([]byte, len(key)+1)
	copy(start, key)
	start[len(key)] = 0x00

	limit := make([]byte, len(key)+1)
	copy(limit, key)
	limit[len(key)] = 0x01
	return start, limit
}

// pack a modification for the history pool
func packModification(m Modification) []byte {
	buffer := make([]byte, 0, 2*binary.MaxVarintLen64+len(m.TxID)+1+len(m.Value))

	scratch := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(scratch, uint64(len(m.TxID)))
	buffer = append(buffer, scratch[:n]...)
	buffer = append(buffer, m.TxID...)

	n = binary.PutUvarint(scratch, uint64(m.Timestamp.UnixNano()))
	buffer = append(buffer, scratch[:n]...)

	if m.IsDelete {
		buffer = append(buffer, flagDelete)
	} else {
		buffer = append(buffer, flagWrite)
		buffer = append(buffer, m.Value...)
	}
	return buffer
}

// unpack a history pool record
func unpackModification(buffer []byte) (Modification, error) {
	m := Modification{}

	length, n := binary.Uvarint(buffer)
	if n <= 0 || uint64(len(buffer)-n) < length {
		return m, fault.Detail(fault.ErrCorruptRecord, "history transaction id")
	}
	buffer = buffer[n:]
	m.TxID = string(buffer[:length])
	buffer = buffer[length:]

	nanoseconds, n := binary.Uvarint(buffer)
	if n <= 0 || len(buffer) == n {
		return m, fault.Detail(fault.ErrCorruptRecord, "history timestamp")
	}
	m.Timestamp = time.Unix(0, int64(nanoseconds))
	buffer = buffer[n:]

	switch buffer[0] {
	case flagDelete:
		m.IsDelete = true
	case flagWrite:
		m.Value = make([]byte, len(buffer)-1)
		copy(m.Value, buffer[1:])
	default:
		return m, fault.Detail(fault.ErrCorruptRecord, "history flag: %02x", buffer[0])
	}
	return m, nil
}
