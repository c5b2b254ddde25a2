// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	ldb_iterator "github.com/syndtr/goleveldb/leveldb/iterator"
)

// range scan over the state pool
type stateCursor struct {
	pool    *PoolHandle
	iter    ldb_iterator.Iterator
	current Element
}

func (c *stateCursor) Next() bool {
	if !c.iter.Next() {
		return false
	}

	// contents of the returned slice must not be modified, and are
	// only valid until the next call to Next
	value := c.iter.Value()
	dataValue := make([]byte, len(value))
	copy(dataValue, value)

	c.current = Element{
		Key:   string(c.pool.stripKey(c.iter.Key())),
		Value: dataValue,
	}
	return true
}

func (c *stateCursor) Element() Element {
	return c.current
}

func (c *stateCursor) Err() error {
	return c.iter.Error()
}

func (c *stateCursor) Close() error {
	c.iter.Release()
	return c.iter.Error()
}

// scan over the history entries of a single key
type historyCursor struct {
	iter    ldb_iterator.Iterator
	current Modification
	err     error
}

func (c *historyCursor) Next() bool {
	if nil != c.err || !c.iter.Next() {
		return false
	}
	m, err := unpackModification(c.iter.Value())
	if nil != err {
		c.err = err
		return false
	}
	c.current = m
	return true
}

func (c *historyCursor) Modification() Modification {
	return c.current
}

func (c *historyCursor) Err() error {
	if nil != c.err {
		return c.err
	}
	return c.iter.Error()
}

func (c *historyCursor) Close() error {
	c.iter.Release()
	return c.Err()
}
