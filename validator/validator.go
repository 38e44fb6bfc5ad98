// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package validator

import (
	"strings"

	"github.com/google/uuid"

	"github.com/bitmark-inc/artregistry/fault"
	"github.com/bitmark-inc/artregistry/record"
	"github.com/bitmark-inc/artregistry/transaction"
)

// Verify - run the rules for the declared command
//
// an update is checked against the input it consumes; a counterparty
// holding its own copy of the prior version should call ValidateUpdate
func Verify(tx *transaction.Transaction) error {
	if 0 == len(tx.Signers) {
		return fault.ErrNoSigners
	}
	switch tx.Command {
	case transaction.CreateCommand:
		return ValidateCreate(tx)
	case transaction.UpdateCommand:
		return ValidateUpdate(nil, tx)
	case transaction.IssueCommand:
		return ValidateIssue(tx)
	case transaction.MoveCommand:
		return ValidateMove(tx)
	default:
		return fault.ErrUnknownCommand
	}
}

// ValidateCreate - exactly one new, well formed collectible signed by
// its creator and co-attestor, followed by its single ownership token
// issued to and held by the creator
func ValidateCreate(tx *transaction.Transaction) error {
	if 0 != len(tx.Inputs) {
		return fault.ErrInputsNotAllowed
	}
	if 0 == len(tx.Outputs) || record.CollectibleKind != tx.Outputs[0].Kind() {
		return fault.ErrExpectedOneOutput
	}
	collectibles := tx.OutputsOf(record.CollectibleKind)
	ownerships := tx.OutputsOf(record.OwnershipKind)
	if len(collectibles)+len(ownerships) != len(tx.Outputs) {
		return fault.ErrUnexpectedState
	}
	if 1 != len(collectibles) {
		return fault.ErrExpectedOneOutput
	}
	if 1 != len(ownerships) {
		return fault.ErrExpectedOneOwnershipOut
	}

	c := collectibles[0].Collectible
	err := checkCollectible(c)
	if nil != err {
		return err
	}

	o := ownerships[0].Ownership
	err = checkOwnership(o)
	if nil != err {
		return err
	}
	switch {
	case o.RecordId != c.Id:
		return fault.ErrOwnershipRecordMismatch
	case !o.Issuer.Equal(c.Creator):
		return fault.ErrIssuerNotCreator
	case !o.Holder.Equal(c.Creator):
		return fault.ErrOwnershipNotCreator
	}

	if !tx.IsSigner(c.Creator) {
		return fault.ErrCreatorNotSigner
	}
	if !tx.IsSigner(c.CoAttestor) {
		return fault.ErrCoAttestorNotSigner
	}
	return nil
}

// ValidateUpdate - one collectible version superseded by the next
//
// prior is the caller's own copy of the version being consumed; if nil
// the consumed input is taken as the prior version
func ValidateUpdate(prior *record.Collectible, tx *transaction.Transaction) error {
	if 1 != len(tx.Inputs) {
		return fault.ErrExpectedOneInput
	}
	if record.CollectibleKind != tx.Inputs[0].Item.Kind() {
		return fault.ErrExpectedOneInput
	}
	if 1 != len(tx.Outputs) {
		return fault.ErrExpectedOneOutput
	}
	if record.CollectibleKind != tx.Outputs[0].Kind() {
		return fault.ErrExpectedOneOutput
	}

	in := tx.Inputs[0].Item.Collectible
	out := tx.Outputs[0].Collectible
	if nil != prior && !prior.Equal(in) {
		return fault.ErrInputMismatch
	}

	switch {
	case in.Id != out.Id:
		return fault.ErrIdChanged
	case in.Name != out.Name:
		return fault.ErrNameChanged
	case !in.Creator.Equal(out.Creator):
		return fault.ErrCreatorChanged
	case !in.CoAttestor.Equal(out.CoAttestor):
		return fault.ErrCoAttestorChanged
	case in.MediaURL != out.MediaURL:
		return fault.ErrURLChanged
	case in.Precision != out.Precision:
		return fault.ErrPrecisionChanged
	}

	err := checkCollectible(out)
	if nil != err {
		return err
	}

	for _, maintainer := range in.Maintainers {
		if !tx.IsSigner(maintainer) {
			return fault.ErrMaintainerNotSigner
		}
	}
	return nil
}

// the creation constraints, which also hold for every later version
func checkCollectible(c *record.Collectible) error {
	switch {
	case uuid.Nil == c.Id:
		return fault.ErrIdMissing
	case isBlank(c.Name):
		return fault.ErrNameEmpty
	case 0 == c.Price.Quantity:
		return fault.ErrPriceNotPositive
	case isBlank(c.Price.Currency):
		return fault.ErrCurrencyEmpty
	case isBlank(c.MediaURL):
		return fault.ErrURLEmpty
	case nil == c.Creator:
		return fault.ErrCreatorMissing
	case nil == c.CoAttestor:
		return fault.ErrCoAttestorMissing
	case 0 == len(c.Maintainers):
		return fault.ErrMaintainersEmpty
	case c.Precision < 0:
		return fault.ErrPrecisionInvalid
	}
	return nil
}

func isBlank(s string) bool {
	return "" == strings.TrimSpace(s)
}
