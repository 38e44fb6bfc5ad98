// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type AuthorisationError GenericError
type RejectionError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrAuthorityUnavailable    = ProcessError("double-spend authority unavailable")
	ErrCannotDecodeAccount     = InvalidError("cannot decode account")
	ErrConfigurationNotTable   = InvalidError("configuration must return a table")
	ErrDuplicateInput          = InvalidError("duplicate input")
	ErrDuplicateSigner         = InvalidError("duplicate signer")
	ErrInputMismatch           = InvalidError("input does not match the produced state")
	ErrInvalidCount            = InvalidError("invalid count")
	ErrInvalidCursor           = InvalidError("invalid cursor")
	ErrInvalidKeyLength        = InvalidError("invalid key length")
	ErrInvalidSignature        = InvalidError("invalid signature")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrInvalidStamp            = InvalidError("invalid notary stamp")
	ErrMissingSignature        = InvalidError("missing signature")
	ErrNotAuthorisedToInitiate = AuthorisationError("not authorised to initiate")
	ErrNotBuyer                = AuthorisationError("the buyer is the only party that is allowed to buy a collectible")
	ErrNotCreator              = AuthorisationError("the creator is the only party that is allowed to create a collectible")
	ErrNotDesignatedIssuer     = AuthorisationError("payment tokens are only issued by the settlement issuer")
	ErrNotInitialised          = NotFoundError("not initialised")
	ErrNotIssuer               = AuthorisationError("the issuer is the only party that is allowed to issue payment tokens")
	ErrNotMaintainer           = AuthorisationError("only a maintainer is allowed to update a collectible")
	ErrNotNotarised            = InvalidError("transaction is not notarised")
	ErrNotPublicKey            = InvalidError("not a public key")
	ErrNotPrivateKey           = InvalidError("not a private key")
	ErrNotRequiredSigner       = InvalidError("signature from a party that is not a required signer")
	ErrOwnershipAlreadyIssued  = ExistsError("ownership token already issued for record")
	ErrPartyExists             = ExistsError("party already joined")
	ErrPartyNotFound           = NotFoundError("party not found")
	ErrRecordExists            = ExistsError("record already exists")
	ErrRecordNotFound          = NotFoundError("record not found")
	ErrSessionClosed           = ProcessError("session closed")
	ErrSessionTimeout          = ProcessError("session timed out")
	ErrSignerNotFound          = NotFoundError("signer not found")
	ErrTokenNotFound           = NotFoundError("ownership token not found")
	ErrTransactionDone         = ProcessError("storage transaction already finished")
	ErrTransactionIdMismatch   = InvalidError("transaction id does not match its content")
	ErrTransactionNotFound     = NotFoundError("transaction not found")
	ErrUnexpectedMessage       = ProcessError("unexpected message")
	ErrUnknownFlow             = ProcessError("unknown flow")
	ErrUnknownInput            = NotFoundError("input was never produced")
	ErrWrongNotary             = InvalidError("transaction names a different notary")
	ErrWrongNetwork            = InvalidError("party is not on this network")
)

// reasons given by a counterparty that declines to sign
var (
	ErrCounterpartyNotCoAttestor = RejectionError("the registry is not the co-attestor of this record")
	ErrCreatorHasNotSigned       = RejectionError("the creator has not signed the proposal")
	ErrOwnershipMissing          = RejectionError("the collectible was not transferred to the buyer")
	ErrOwnershipNotHeld          = RejectionError("the ownership token consumed is not held by the seller")
	ErrOwnershipWrongHolder      = RejectionError("the collectible was transferred to an identity that is not the buyer")
	ErrPaymentAmountMismatch     = RejectionError("the amount paid is not the same as the price of the collectible")
	ErrPaymentMissing            = RejectionError("there was no payment sent to the seller")
	ErrPaymentWrongIssuer        = RejectionError("the payment was not issued by the settlement issuer")
	ErrPaymentWrongHolder        = RejectionError("the payment was sent to an entity that is not the owner of the collectible")
	ErrPriorVersionUnknown       = RejectionError("the prior version of the record is unknown or superseded")
	ErrProposalInvalid           = RejectionError("the proposal failed validation")
	ErrUnknownRecord             = RejectionError("the record is not known to the seller")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e AuthorisationError) Error() string { return string(e) }
func (e RejectionError) Error() string     { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrRejection(e error) bool     { _, ok := e.(RejectionError); return ok }
