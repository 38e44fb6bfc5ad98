// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package notary - the double-spend authority
//
// Flows only depend on the Authority interface.  Service is the
// leveldb backed implementation: a single mutex orders all
// notarisations, so of two transactions consuming the same input the
// first to commit its batch wins and the second receives a
// ConflictError naming the spent input.
//
// An ownership token only comes into existence in the transaction that
// creates its record, and payment tokens are only stamped when minted
// by the settlement issuer given to New.
//
// Storage layout (see storage package notes):
//
//	P ++ ref                   - every output of a stamped transaction
//	                             data: SHA3-256 of the canonical item
//	S ++ ref                   - consumed outputs
//	                             data: txId of the consuming transaction
//	T ++ txId                  - stamps issued
//	                             data: JSON stamp
//	R ++ record id             - collectibles created
//	                             data: txId of the create
//	I ++ record id             - ownership tokens issued
//	                             data: txId of the create
//	N ++ "sequence"            - last stamp sequence number
//	                             data: count
package notary
