// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/artregistry/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	pool     *PoolHandle
	maxRange ldb_util.Range
}

// NewFetchCursor - initialise a cursor to the whole pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		maxRange: ldb_util.Range{
			Start: []byte{p.prefix}, // Start of key range, included in the range
			Limit: p.limit,          // Limit of key range, excluded from the range
		},
	}
}

// Prefix - restrict the cursor to keys starting with the given bytes
func (cursor *FetchCursor) Prefix(key []byte) *FetchCursor {
	cursor.maxRange = *ldb_util.BytesPrefix(cursor.pool.prefixKey(key))
	return cursor
}

// Fetch - return up to count elements
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.Map(func(key []byte, value []byte) error {
		results = append(results, Element{
			Key:   key,
			Value: value,
		})
		if len(results) >= count {
			return errStopIteration
		}
		return nil
	})
	if errStopIteration == err {
		err = nil
	}
	return results, err
}

// Map - run a function on all elements in the range
//
// the key passed to f has the pool prefix stripped; both slices are
// copies and may be retained
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.ErrInvalidCursor
	}

	database := cursor.pool.database
	database.RLock()
	defer database.RUnlock()

	if nil == database.db {
		return nil
	}

	iter := database.db.NewIterator(&cursor.maxRange, nil)

	var err error
iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		err = f(dataKey, dataValue)
		if nil != err {
			break iterating
		}
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}
	return err
}

const errStopIteration = fault.ProcessError("stop iteration")
