// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk data stores
//
// maintain separate pools of a number of elements in key->value form
//
// Each Database is one LevelDB store split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct that the owner of the database binds, so
// the notary and every party vault declare their own layout.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. txId         = transaction digest as 32 byte SHA3-256(canonical JSON)
// 4. ref          = txId ++ output index (big endian uint32)
// 5. record id    = 16 byte UUID
// 6. count        = successive index value as big endian uint64 (8 bytes)
//
// Writes that must land together go through a Transaction, which
// buffers them in a leveldb batch and serves reads of pending writes
// from a cache until Commit.
package storage
