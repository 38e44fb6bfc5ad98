// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the states a transaction consumes and produces
//
// A Collectible describes one unique item and its commercial terms.
// Ownership of that item is a separate Ownership token pointing at the
// record id, so a change of holder never revises the description.
// Payment tokens are fungible units of a settlement currency.
//
// States are never edited in place: an update consumes the old state
// and produces a new one in the same transaction.
package record
