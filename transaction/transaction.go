// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/oklog/ulid/v2"

	"github.com/bitmark-inc/artregistry/account"
	"github.com/bitmark-inc/artregistry/merkle"
	"github.com/bitmark-inc/artregistry/record"
)

// Packed - canonical bytes of a transaction
type Packed []byte

// Transaction - a proposed bundle of consumed and produced states
type Transaction struct {
	Command   Command              `json:"command"`
	Reference ulid.ULID            `json:"reference"` // distinguishes otherwise identical proposals
	Notary    string               `json:"notary"`    // name of the authority that must stamp it
	Inputs    []record.StateAndRef `json:"inputs"`
	Outputs   []record.Item        `json:"outputs"`
	Signers   []*account.Account   `json:"signers"`
}

// Pack - RFC 8785 canonical JSON
func (tx *Transaction) Pack() (Packed, error) {
	return record.Canonical(tx)
}

// MakeId - the transaction id of packed bytes
func (packed Packed) MakeId() merkle.Digest {
	return merkle.NewDigest(packed)
}

// Id - digest of the packed form
func (tx *Transaction) Id() (merkle.Digest, error) {
	packed, err := tx.Pack()
	if nil != err {
		return merkle.Digest{}, err
	}
	return packed.MakeId(), nil
}

// IsSigner - true if the account is a required signer
func (tx *Transaction) IsSigner(a *account.Account) bool {
	return account.Contains(tx.Signers, a)
}

// InputsOf - consumed states of one kind
func (tx *Transaction) InputsOf(kind record.Kind) []record.StateAndRef {
	found := make([]record.StateAndRef, 0, len(tx.Inputs))
	for _, in := range tx.Inputs {
		if kind == in.Item.Kind() {
			found = append(found, in)
		}
	}
	return found
}

// OutputsOf - produced states of one kind
func (tx *Transaction) OutputsOf(kind record.Kind) []record.Item {
	found := make([]record.Item, 0, len(tx.Outputs))
	for _, out := range tx.Outputs {
		if kind == out.Kind() {
			found = append(found, out)
		}
	}
	return found
}
