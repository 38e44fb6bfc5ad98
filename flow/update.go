// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package flow

import (
	"context"

	"github.com/google/uuid"

	"github.com/bitmark-inc/artregistry/account"
	"github.com/bitmark-inc/artregistry/fault"
	"github.com/bitmark-inc/artregistry/record"
	"github.com/bitmark-inc/artregistry/session"
	"github.com/bitmark-inc/artregistry/transaction"
	"github.com/bitmark-inc/artregistry/validator"
)

// UpdateCollectible - supersede the live version of a record with a new price and maintainers
//
// the caller must be a maintainer of the live version and every other
// maintainer of it must co-sign
func (n *Node) UpdateCollectible(ctx context.Context, id uuid.UUID, price record.Amount, maintainers []string) (*transaction.Signed, error) {
	self := n.key.Account()

	live, err := n.store.FindLiveRecordById(id)
	if nil != err {
		return nil, err
	}
	prior := live.Item.Collectible
	if !account.Contains(prior.Maintainers, self) {
		return nil, fault.ErrNotMaintainer
	}

	next := make([]*account.Account, 0, len(maintainers))
	for _, name := range maintainers {
		a, err := n.directory.ResolveParty(name)
		if nil != err {
			return nil, err
		}
		next = append(next, a)
	}

	b := transaction.NewBuilder(transaction.UpdateCommand, n.directory.Roles().Notary).
		AddInput(live).
		AddOutput(record.Item{Collectible: prior.Supersede(price, next)})
	for _, maintainer := range prior.Maintainers {
		b.AddSigner(maintainer)
	}
	tx, err := b.Build()
	if nil != err {
		return nil, err
	}

	err = validator.ValidateUpdate(prior, tx)
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

	n.log.Infof("update: %s  price: %d %s  tx: %s", id, price.Quantity, price.Currency, stx.Id)

	sessions := make([]session.Session, 0, len(prior.Maintainers))
	defer func() {
		for _, s := range sessions {
			s.Close()
		}
	}()

	for _, maintainer := range prior.Maintainers {
		if maintainer.Equal(self) {
			continue
		}
		s, err := n.endpoint.Open(ctx, maintainer.Name, UpdateFlow)
		if nil != err {
			n.abort(sessions, stx, err)
			return nil, err
		}
		sessions = append(sessions, s)

		err = n.collectSignature(ctx, s, maintainer, stx)
		if nil != err {
			n.abort(sessions[:len(sessions)-1], stx, err)
			return nil, err
		}
	}

	err = n.notarise(ctx, stx)
	if nil != err {
		n.abort(sessions, stx, err)
		return nil, err
	}

	err = n.complete(ctx, sessions, stx)
	if nil != err {
		return nil, err
	}

	observers, err := n.directory.Observers()
	if nil != err {
		n.log.Warnf("tx: %s  observers: %s", stx.Id, err)
	}
	informed := append([]*account.Account{prior.CoAttestor, prior.Creator}, observers...)
	informed = append(informed, next...)
	recipients := make([]*account.Account, 0, len(informed))
	for _, a := range informed {
		if !account.Contains(prior.Maintainers, a) {
			recipients = append(recipients, a)
		}
	}
	err = n.Distribute(ctx, recipients, stx)
	if nil != err {
		n.log.Warnf("tx: %s  not all parties informed: %s", stx.Id, err)
	}

	return stx, nil
}

// responder for UpdateFlow: a maintainer's checks before signing
func (n *Node) approveUpdate(ctx context.Context, s session.Session) error {
	stx, err := n.receiveProposal(ctx, s)
	if nil != err {
		return err
	}

	consumed := stx.Tx.InputsOf(record.CollectibleKind)
	if 1 != len(consumed) {
		return n.reject(ctx, s, fault.ErrProposalInvalid, fault.ErrExpectedOneInput)
	}
	live, err := n.store.FindLiveRecordById(consumed[0].Item.Collectible.Id)
	if nil != err || live.Ref != consumed[0].Ref || !live.Item.Equal(consumed[0].Item) {
		return n.reject(ctx, s, fault.ErrPriorVersionUnknown, err)
	}

	prior := live.Item.Collectible
	err = validator.ValidateUpdate(prior, stx.Tx)
	if nil != err {
		return n.reject(ctx, s, fault.ErrProposalInvalid, err)
	}

	initiator, err := n.directory.ResolveParty(s.Counterparty())
	if nil != err || !stx.HasSigned(initiator) || !stx.Tx.IsSigner(n.key.Account()) {
		return n.reject(ctx, s, fault.ErrProposalInvalid, err)
	}

	n.log.Infof("approve update: %s  from: %s", prior.Id, initiator)
	return n.signAndAwait(ctx, s, stx)
}
