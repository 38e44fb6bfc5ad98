// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/artregistry/account"
	"github.com/bitmark-inc/artregistry/fault"
	"github.com/bitmark-inc/artregistry/merkle"
	"github.com/bitmark-inc/artregistry/record"
)

// Signature - one party's signature over a transaction id
type Signature struct {
	Signer *account.Account  `json:"signer"`
	Value  account.Signature `json:"value"`
}

// Signed - a transaction together with its collected signatures
//
// Stamp is nil until the notary has accepted the transaction
type Signed struct {
	Id         merkle.Digest `json:"id"`
	Tx         *Transaction  `json:"tx"`
	Signatures []Signature   `json:"signatures"`
	Stamp      *Stamp        `json:"stamp,omitempty"`
}

// NewSigned - wrap a proposal, fixing its id
func NewSigned(tx *Transaction) (*Signed, error) {
	id, err := tx.Id()
	if nil != err {
		return nil, err
	}
	return &Signed{
		Id:         id,
		Tx:         tx,
		Signatures: []Signature{},
	}, nil
}

// Sign - add the signature of a required signer
//
// signing twice is harmless
func (s *Signed) Sign(key *account.PrivateKey) error {
	return s.AddSignature(Signature{
		Signer: key.Account(),
		Value:  key.Sign(s.Id[:]),
	})
}

// AddSignature - add a signature produced by a counterparty
func (s *Signed) AddSignature(signature Signature) error {
	if !s.Tx.IsSigner(signature.Signer) {
		return fault.ErrNotRequiredSigner
	}
	err := signature.Signer.CheckSignature(s.Id[:], signature.Value)
	if nil != err {
		return err
	}
	if s.HasSigned(signature.Signer) {
		return nil
	}
	s.Signatures = append(s.Signatures, signature)
	return nil
}

// HasSigned - true if the account's signature is present
func (s *Signed) HasSigned(a *account.Account) bool {
	for _, signature := range s.Signatures {
		if signature.Signer.Equal(a) {
			return true
		}
	}
	return false
}

// SignatureOf - the signature of one signer
func (s *Signed) SignatureOf(a *account.Account) (Signature, error) {
	for _, signature := range s.Signatures {
		if signature.Signer.Equal(a) {
			return signature, nil
		}
	}
	return Signature{}, fault.ErrSignerNotFound
}

// MissingSigners - required signers that have not yet signed
func (s *Signed) MissingSigners() []*account.Account {
	missing := make([]*account.Account, 0, len(s.Tx.Signers))
	for _, signer := range s.Tx.Signers {
		if !s.HasSigned(signer) {
			missing = append(missing, signer)
		}
	}
	return missing
}

// Verify - the id matches the content and every signature present is valid
func (s *Signed) Verify() error {
	if nil == s.Tx {
		return fault.ErrTransactionIdMismatch
	}
	id, err := s.Tx.Id()
	if nil != err {
		return err
	}
	if id != s.Id {
		return fault.ErrTransactionIdMismatch
	}

	seen := make([]*account.Account, 0, len(s.Signatures))
	for _, signature := range s.Signatures {
		if account.Contains(seen, signature.Signer) {
			return fault.ErrDuplicateSigner
		}
		seen = append(seen, signature.Signer)

		if !s.Tx.IsSigner(signature.Signer) {
			return fault.ErrNotRequiredSigner
		}
		err := signature.Signer.CheckSignature(s.Id[:], signature.Value)
		if nil != err {
			return err
		}
	}
	return nil
}

// Complete - verified and signed by every required signer
func (s *Signed) Complete() error {
	err := s.Verify()
	if nil != err {
		return err
	}
	if 0 != len(s.MissingSigners()) {
		return fault.ErrMissingSignature
	}
	return nil
}

// OutputRef - reference to one produced state
func (s *Signed) OutputRef(index int) record.Ref {
	return record.Ref{
		TxId:  s.Id,
		Index: uint32(index),
	}
}

// Produced - every output paired with its reference
func (s *Signed) Produced() []record.StateAndRef {
	produced := make([]record.StateAndRef, len(s.Tx.Outputs))
	for i, item := range s.Tx.Outputs {
		produced[i] = record.StateAndRef{
			Ref:  s.OutputRef(i),
			Item: item,
		}
	}
	return produced
}

// VerifyStamp - notarised by the expected authority
func (s *Signed) VerifyStamp(notary *account.Account) error {
	if nil == s.Stamp {
		return fault.ErrNotNotarised
	}
	if s.Stamp.TxId != s.Id {
		return fault.ErrInvalidStamp
	}
	return s.Stamp.Verify(notary)
}
