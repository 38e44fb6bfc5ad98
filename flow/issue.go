// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package flow

import (
	"context"

	"github.com/bitmark-inc/artregistry/account"
	"github.com/bitmark-inc/artregistry/fault"
	"github.com/bitmark-inc/artregistry/record"
	"github.com/bitmark-inc/artregistry/transaction"
	"github.com/bitmark-inc/artregistry/validator"
)

// IssuePayment - mint settlement tokens for a recipient
//
// only the issuer may call this; no counter-signature is needed but the
// notary still stamps the issue
func (n *Node) IssuePayment(ctx context.Context, amount uint64, currency string, recipient string) (*transaction.Signed, error) {
	self := n.key.Account()

	issuer, err := n.directory.Issuer()
	if nil != err || !issuer.Equal(self) {
		return nil, fault.ErrNotIssuer
	}
	holder, err := n.directory.ResolveParty(recipient)
	if nil != err {
		return nil, err
	}

	tx, err := transaction.NewBuilder(transaction.IssueCommand, n.directory.Roles().Notary).
		AddOutput(record.Item{
			Payment: &record.Payment{
				Amount:   amount,
				Currency: currency,
				Issuer:   self,
				Holder:   holder,
			},
		}).
		AddSigner(self).
		Build()
	if nil != err {
		return nil, err
	}

	stx, err := n.selfSigned(ctx, tx, validator.ValidateIssue)
	if nil != err {
		return nil, err
	}
	n.log.Infof("issued: %d %s  to: %s  tx: %s", amount, currency, holder, stx.Id)

	err = n.Distribute(ctx, []*account.Account{holder}, stx)
	if nil != err {
		n.log.Warnf("tx: %s  recipient not informed: %s", stx.Id, err)
	}
	return stx, nil
}

// validate, sign, notarise and record a transaction needing only this node's signature
func (n *Node) selfSigned(ctx context.Context, tx *transaction.Transaction, validate func(*transaction.Transaction) error) (*transaction.Signed, error) {
	err := validate(tx)
	if nil != err {
		return nil, err
	}
	stx, err := transaction.NewSigned(tx)
	if nil != err {
		return nil, err
	}
	err = stx.Sign(n.key)
	if nil != err {
		return nil, err
	}
	err = n.notarise(ctx, stx)
	if nil != err {
		return nil, err
	}
	err = n.store.Record(stx)
	if nil != err {
		return nil, err
	}
	return stx, nil
}
