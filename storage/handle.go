// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_iterator "github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/carledger/fault"
)

// PoolHandle - one prefixed section of the database
type PoolHandle struct {
	prefix byte
	limit  []byte
}

// read access shared by the database and its snapshots
type reader interface {
	Get(key []byte, ro *ldb_opt.ReadOptions) ([]byte, error)
	NewIterator(slice *ldb_util.Range, ro *ldb_opt.ReadOptions) ldb_iterator.Iterator
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// read a value for a given key, nil if not found
func (p *PoolHandle) get(r reader, key []byte) ([]byte, error) {
	value, err := r.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	if nil != err {
		return nil, err
	}
	return value, nil
}

// read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
func (p *PoolHandle) getN(r reader, key []byte) (uint64, bool, error) {
	buffer, err := p.get(r, key)
	if nil != err {
		return 0, false, err
	}
	if nil == buffer {
		return 0, false, nil
	}
	if len(buffer) < 8 {
		return 0, false, fault.Detail(fault.ErrCorruptRecord, "truncated count for: %q", key)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true, nil
}

// store a key/value bytes pair in a batch
func (p *PoolHandle) put(batch *leveldb.Batch, key []byte, value []byte) {
	batch.Put(p.prefixKey(key), value)
}

// store an uint64 as an 8 byte big endian value in a batch
func (p *PoolHandle) putN(batch *leveldb.Batch, key []byte, n uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	batch.Put(p.prefixKey(key), buffer)
}

// remove a key in a batch
func (p *PoolHandle) remove(batch *leveldb.Batch, key []byte) {
	batch.Delete(p.prefixKey(key))
}

// the key range [start, limit) inside this pool
//
// a nil start is the beginning of the pool and a nil limit is its end
func (p *PoolHandle) keyRange(start []byte, limit []byte) *ldb_util.Range {
	r := &ldb_util.Range{
		Start: p.prefixKey(start), // Start of key range, included in the range
		Limit: p.limit,            // Limit of key range, excluded from the range
	}
	if nil != limit {
		r.Limit = p.prefixKey(limit)
	}
	return r
}

// iterate over part of the pool
func (p *PoolHandle) iterator(r reader, start []byte, limit []byte) ldb_iterator.Iterator {
	return r.NewIterator(p.keyRange(start, limit), nil)
}

// remove the pool prefix from an iterator key and copy it
func (p *PoolHandle) stripKey(key []byte) []byte {
	dataKey := make([]byte, len(key)-1)
	copy(dataKey, key[1:])
	return dataKey
}
