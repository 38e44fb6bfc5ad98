// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/bitmark-inc/artregistry/account"
	"github.com/bitmark-inc/artregistry/fault"
	"github.com/bitmark-inc/artregistry/record"
)

// Builder - assembles a proposal, remembering the first error
type Builder struct {
	tx  Transaction
	err error
}

// NewBuilder - start a proposal for one command
func NewBuilder(command Command, notary string) *Builder {
	return &Builder{
		tx: Transaction{
			Command:   command,
			Reference: ulid.MustNewDefault(time.Now()),
			Notary:    notary,
			Inputs:    []record.StateAndRef{},
			Outputs:   []record.Item{},
			Signers:   []*account.Account{},
		},
	}
}

// AddInput - consume a state
func (b *Builder) AddInput(in record.StateAndRef) *Builder {
	if nil != b.err {
		return b
	}
	for _, existing := range b.tx.Inputs {
		if existing.Ref == in.Ref {
			b.err = fault.ErrDuplicateInput
			return b
		}
	}
	b.tx.Inputs = append(b.tx.Inputs, in)
	return b
}

// AddOutput - produce a state
func (b *Builder) AddOutput(item record.Item) *Builder {
	if nil == b.err {
		b.tx.Outputs = append(b.tx.Outputs, item)
	}
	return b
}

// AddSigner - require a signature
func (b *Builder) AddSigner(signer *account.Account) *Builder {
	if nil != b.err {
		return b
	}
	if account.Contains(b.tx.Signers, signer) {
		b.err = fault.ErrDuplicateSigner
		return b
	}
	b.tx.Signers = append(b.tx.Signers, signer)
	return b
}

// Build - the finished proposal
func (b *Builder) Build() (*Transaction, error) {
	if nil != b.err {
		return nil, b.err
	}
	tx := b.tx
	return &tx, nil
}
