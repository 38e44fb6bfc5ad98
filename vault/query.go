// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"github.com/google/uuid"

	"github.com/bitmark-inc/artregistry/account"
	"github.com/bitmark-inc/artregistry/record"
	"github.com/bitmark-inc/artregistry/transaction"
)

//go:generate mockgen -source=query.go -destination=../mocks/query.go -package=mocks

// Query - read only access to the states a party knows about
type Query interface {
	FindLiveRecordById(id uuid.UUID) (record.StateAndRef, error)
	FindOwnershipToken(recordId uuid.UUID) (record.StateAndRef, error)
	FindSpendableTokens(holder *account.Account, currency string) ([]record.StateAndRef, error)
}

// Store - queries plus recording of notarised transactions
type Store interface {
	Query
	Record(stx *transaction.Signed) error
}
