// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notary

import (
	"context"

	"github.com/bitmark-inc/artregistry/transaction"
)

//go:generate mockgen -source=notary.go -destination=../mocks/authority.go -package=mocks

// Authority - attests that a transaction's inputs were unspent
//
// Notarise either stamps the whole transaction or rejects it, never
// part of it.  A *fault.ConflictError names inputs already consumed;
// fault.ErrAuthorityUnavailable is the only error worth retrying.
type Authority interface {
	Notarise(ctx context.Context, stx *transaction.Signed) (*transaction.Stamp, error)
}
