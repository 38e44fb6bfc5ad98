// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package validator

import (
	"encoding/hex"
	"math/bits"

	"github.com/google/uuid"

	"github.com/bitmark-inc/artregistry/fault"
	"github.com/bitmark-inc/artregistry/record"
	"github.com/bitmark-inc/artregistry/transaction"
)

// ValidateIssue - mint payment tokens with the issuer's signature
//
// ownership tokens are never issued on their own; each one is produced
// by the transaction that creates its record
func ValidateIssue(tx *transaction.Transaction) error {
	if 0 != len(tx.Inputs) {
		return fault.ErrInputsNotAllowed
	}
	if 0 == len(tx.Outputs) {
		return fault.ErrNoOutputs
	}
	if 0 != len(tx.OutputsOf(record.OwnershipKind)) {
		return fault.ErrOwnershipNotIssuable
	}

	payments := tx.OutputsOf(record.PaymentKind)
	if len(payments) != len(tx.Outputs) {
		return fault.ErrUnexpectedState
	}
	for _, item := range payments {
		p := item.Payment
		err := checkPayment(p)
		if nil != err {
			return err
		}
		if !tx.IsSigner(p.Issuer) {
			return fault.ErrIssuerNotSigner
		}
	}
	return nil
}

// ValidateMove - transfer one ownership token, optionally settled by
// payment tokens in the same transaction
//
// payments are conserved per currency and issuer, and every holder of
// a consumed token must sign
func ValidateMove(tx *transaction.Transaction) error {
	if 0 != len(tx.InputsOf(record.CollectibleKind)) || 0 != len(tx.OutputsOf(record.CollectibleKind)) {
		return fault.ErrUnexpectedState
	}
	for _, in := range tx.Inputs {
		if record.NullKind == in.Item.Kind() {
			return fault.ErrUnexpectedState
		}
	}
	for _, out := range tx.Outputs {
		if record.NullKind == out.Kind() {
			return fault.ErrUnexpectedState
		}
	}

	ownershipIn := tx.InputsOf(record.OwnershipKind)
	if 1 != len(ownershipIn) {
		return fault.ErrExpectedOneOwnershipInput
	}
	ownershipOut := tx.OutputsOf(record.OwnershipKind)
	if 1 != len(ownershipOut) {
		return fault.ErrExpectedOneOwnershipOut
	}

	in := ownershipIn[0].Item.Ownership
	out := ownershipOut[0].Ownership
	err := checkOwnership(out)
	if nil != err {
		return err
	}
	switch {
	case in.TokenId != out.TokenId:
		return fault.ErrTokenIdChanged
	case in.RecordId != out.RecordId:
		return fault.ErrRecordRefChanged
	case !in.Issuer.Equal(out.Issuer):
		return fault.ErrIssuerChanged
	case in.Holder.Equal(out.Holder):
		return fault.ErrHolderUnchanged
	}

	balance := make(map[string]uint64)
	for _, sr := range tx.InputsOf(record.PaymentKind) {
		p := sr.Item.Payment
		err := checkPayment(p)
		if nil != err {
			return err
		}
		key := paymentKey(p)
		sum, carry := bits.Add64(balance[key], p.Amount, 0)
		if 0 != carry {
			return fault.ErrPaymentNotConserved
		}
		balance[key] = sum
	}
	for _, item := range tx.OutputsOf(record.PaymentKind) {
		p := item.Payment
		err := checkPayment(p)
		if nil != err {
			return err
		}
		key := paymentKey(p)
		if balance[key] < p.Amount {
			return fault.ErrPaymentNotConserved
		}
		balance[key] -= p.Amount
	}
	for _, remaining := range balance {
		if 0 != remaining {
			return fault.ErrPaymentNotConserved
		}
	}

	for _, sr := range tx.Inputs {
		for _, holder := range sr.Item.Participants() {
			if !tx.IsSigner(holder) {
				return fault.ErrHolderNotSigner
			}
		}
	}
	return nil
}

func checkOwnership(o *record.Ownership) error {
	switch {
	case uuid.Nil == o.TokenId:
		return fault.ErrTokenIdMissing
	case uuid.Nil == o.RecordId:
		return fault.ErrIdMissing
	case nil == o.Holder:
		return fault.ErrHolderMissing
	case nil == o.Issuer:
		return fault.ErrIssuerMissing
	}
	return nil
}

func checkPayment(p *record.Payment) error {
	switch {
	case 0 == p.Amount:
		return fault.ErrAmountNotPositive
	case isBlank(p.Currency):
		return fault.ErrCurrencyEmpty
	case nil == p.Issuer:
		return fault.ErrIssuerMissing
	case nil == p.Holder:
		return fault.ErrHolderMissing
	}
	return nil
}

// fungible only within one currency from one issuer
func paymentKey(p *record.Payment) string {
	return p.Currency + "/" + hex.EncodeToString(p.Issuer.PublicKey)
}
