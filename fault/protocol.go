// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError - a violated record rule, naming the field and the rule
//
// values are comparable so sentinels can be tested with ==
type ValidationError struct {
	Field string
	Rule  string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Rule
}

// validation rules - keep in alphabetic order
var (
	ErrAmountNotPositive         = ValidationError{Field: "amount", Rule: "payment amount must be positive"}
	ErrCoAttestorChanged         = ValidationError{Field: "coAttestor", Rule: "art registry cannot be updated"}
	ErrCoAttestorMissing         = ValidationError{Field: "coAttestor", Rule: "co-attestor is required"}
	ErrCoAttestorNotSigner       = ValidationError{Field: "signers", Rule: "co-attestor must sign"}
	ErrCreatorChanged            = ValidationError{Field: "creator", Rule: "artist cannot be updated"}
	ErrCreatorMissing            = ValidationError{Field: "creator", Rule: "creator is required"}
	ErrCreatorNotSigner          = ValidationError{Field: "signers", Rule: "creator must sign"}
	ErrCurrencyEmpty             = ValidationError{Field: "currency", Rule: "currency cannot be empty"}
	ErrExpectedOneInput          = ValidationError{Field: "inputs", Rule: "expected exactly one collectible input"}
	ErrExpectedOneOutput         = ValidationError{Field: "outputs", Rule: "expected exactly one collectible output"}
	ErrExpectedOneOwnershipInput = ValidationError{Field: "inputs", Rule: "expected exactly one ownership token input"}
	ErrExpectedOneOwnershipOut   = ValidationError{Field: "outputs", Rule: "expected exactly one ownership token output"}
	ErrHolderMissing             = ValidationError{Field: "holder", Rule: "holder is required"}
	ErrHolderNotSigner           = ValidationError{Field: "signers", Rule: "every input holder must sign"}
	ErrHolderUnchanged           = ValidationError{Field: "holder", Rule: "ownership move must change the holder"}
	ErrIdChanged                 = ValidationError{Field: "id", Rule: "input and output must share the record id"}
	ErrIdMissing                 = ValidationError{Field: "id", Rule: "record id is required"}
	ErrInputsNotAllowed          = ValidationError{Field: "inputs", Rule: "issuance cannot consume inputs"}
	ErrIssuerChanged             = ValidationError{Field: "issuer", Rule: "ownership token issuer cannot change"}
	ErrIssuerMissing             = ValidationError{Field: "issuer", Rule: "issuer is required"}
	ErrIssuerNotCreator          = ValidationError{Field: "issuer", Rule: "ownership token must be issued by the creator"}
	ErrIssuerNotSigner           = ValidationError{Field: "signers", Rule: "issuer must sign"}
	ErrMaintainerNotSigner       = ValidationError{Field: "signers", Rule: "every prior maintainer must sign"}
	ErrMaintainersEmpty          = ValidationError{Field: "maintainers", Rule: "at least one maintainer is required"}
	ErrNameChanged               = ValidationError{Field: "name", Rule: "name cannot be updated"}
	ErrNameEmpty                 = ValidationError{Field: "name", Rule: "name cannot be empty"}
	ErrNoOutputs                 = ValidationError{Field: "outputs", Rule: "at least one output is required"}
	ErrNoSigners                 = ValidationError{Field: "signers", Rule: "at least one required signer is needed"}
	ErrOwnershipNotCreator       = ValidationError{Field: "holder", Rule: "first ownership token must be held by the creator"}
	ErrOwnershipNotIssuable      = ValidationError{Field: "outputs", Rule: "ownership token is only produced with its record"}
	ErrOwnershipRecordMismatch   = ValidationError{Field: "recordRef", Rule: "ownership token must name the created record"}
	ErrPaymentNotConserved       = ValidationError{Field: "amount", Rule: "payment inputs and outputs must balance"}
	ErrPrecisionInvalid          = ValidationError{Field: "precision", Rule: "precision cannot be negative"}
	ErrPrecisionChanged          = ValidationError{Field: "precision", Rule: "precision cannot be updated"}
	ErrPriceNotPositive          = ValidationError{Field: "price", Rule: "price cannot be zero or a negative value"}
	ErrRecordRefChanged          = ValidationError{Field: "recordRef", Rule: "ownership token must keep its record reference"}
	ErrTokenIdChanged            = ValidationError{Field: "tokenId", Rule: "ownership token id cannot change"}
	ErrTokenIdMissing            = ValidationError{Field: "tokenId", Rule: "ownership token id is required"}
	ErrUnexpectedState           = ValidationError{Field: "outputs", Rule: "state not allowed for this command"}
	ErrUnknownCommand            = ValidationError{Field: "command", Rule: "unknown command"}
	ErrURLChanged                = ValidationError{Field: "mediaUrl", Rule: "URL cannot be updated"}
	ErrURLEmpty                  = ValidationError{Field: "mediaUrl", Rule: "URL cannot be empty"}
)

// IsErrValidation - true if any error in the chain is a validation error
func IsErrValidation(e error) bool {
	var v ValidationError
	return errors.As(e, &v)
}

// CounterpartyRejection - a remote signer declined with a stated reason
type CounterpartyRejection struct {
	Party  string
	Reason RejectionError
}

func (e *CounterpartyRejection) Error() string {
	return fmt.Sprintf("rejected by %s: %s", e.Party, e.Reason)
}

func (e *CounterpartyRejection) Unwrap() error {
	return e.Reason
}

// IsErrCounterpartyRejection - true if a counterparty declined
func IsErrCounterpartyRejection(e error) bool {
	var r *CounterpartyRejection
	return errors.As(e, &r)
}

// InsufficientFunds - payment selection could not cover the price
type InsufficientFunds struct {
	Currency  string
	Required  uint64
	Available uint64
}

func (e *InsufficientFunds) Error() string {
	return fmt.Sprintf("insufficient funds: required %d %s  available: %d", e.Required, e.Currency, e.Available)
}

// IsErrInsufficientFunds - true if payment selection failed
func IsErrInsufficientFunds(e error) bool {
	var f *InsufficientFunds
	return errors.As(e, &f)
}

// ConflictError - notarisation found inputs consumed by another transaction
type ConflictError struct {
	Spent []string
}

func (e *ConflictError) Error() string {
	return "inputs already spent: " + strings.Join(e.Spent, ", ")
}

// IsErrConflict - true if notarisation detected a double spend
func IsErrConflict(e error) bool {
	var c *ConflictError
	return errors.As(e, &c)
}
