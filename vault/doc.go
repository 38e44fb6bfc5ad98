// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package vault - one party's view of the ledger
//
// A vault stores every notarised transaction the party took part in or
// was sent as an observer, and answers the Query interface used by the
// flows.  Collectible versions are kept as an append-only chain per
// record id; the live version is the last unconsumed one.
//
// Storage layout:
//
//	T ++ txId                  - notarised transactions
//	                             data: JSON signed transaction
//	U ++ ref                   - unconsumed states
//	                             data: JSON item
//	C ++ ref                   - consumed states
//	                             data: txId of the consuming transaction
//	R ++ record id             - live collectible version
//	                             data: ref
//	V ++ record id ++ count    - every collectible version, oldest first
//	                             data: ref
//	W ++ record id             - number of versions
//	                             data: count
//	O ++ record id             - live ownership token
//	                             data: ref
//	H ++ holder ++ currency ++ 0x00 ++ ref
//	                           - unconsumed payment tokens
//	                             data: amount (big endian uint64)
package vault
