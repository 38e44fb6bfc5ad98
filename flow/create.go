// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package flow

import (
	"context"

	"github.com/bitmark-inc/artregistry/fault"
	"github.com/bitmark-inc/artregistry/record"
	"github.com/bitmark-inc/artregistry/session"
	"github.com/bitmark-inc/artregistry/transaction"
	"github.com/bitmark-inc/artregistry/validator"
)

// CreateCollectible - register a new collectible co-attested by the registry
//
// only the creator may call this.  The record and its single ownership
// token, held by the creator, are produced by one transaction, so either
// both exist or neither does.  The final transaction is sent to the
// observers as well as the registry.
func (n *Node) CreateCollectible(ctx context.Context, name string, price record.Amount, mediaURL string) (*transaction.Signed, error) {
	self := n.key.Account()

	creator, err := n.directory.Creator()
	if nil != err || !creator.Equal(self) {
		return nil, fault.ErrNotCreator
	}
	registry, err := n.directory.Registry()
	if nil != err {
		return nil, err
	}
	observers, err := n.directory.Observers()
	if nil != err {
		return nil, err
	}

	collectible := record.NewCollectible(name, price, mediaURL, self, registry)
	token := record.NewOwnership(collectible.Id, self, self)
	tx, err := transaction.NewBuilder(transaction.CreateCommand, n.directory.Roles().Notary).
		AddOutput(record.Item{Collectible: collectible}).
		AddOutput(record.Item{Ownership: token}).
		AddSigner(self).
		AddSigner(registry).
		Build()
	if nil != err {
		return nil, err
	}

	err = validator.ValidateCreate(tx)
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

	n.log.Infof("create: %s  record: %s  token: %s  tx: %s", name, collectible.Id, token.TokenId, stx.Id)

	s, err := n.endpoint.Open(ctx, registry.Name, CreateFlow)
	if nil != err {
		return nil, err
	}
	defer s.Close()

	err = n.collectSignature(ctx, s, registry, stx)
	if nil != err {
		return nil, err
	}

	err = n.notarise(ctx, stx)
	if nil != err {
		n.abort([]session.Session{s}, stx, err)
		return nil, err
	}

	err = n.complete(ctx, []session.Session{s}, stx)
	if nil != err {
		return nil, err
	}

	err = n.Distribute(ctx, observers, stx)
	if nil != err {
		n.log.Warnf("tx: %s  observers not all informed: %s", stx.Id, err)
	}

	return stx, nil
}

// responder for CreateFlow: the co-attestor's checks before signing
func (n *Node) attestCreation(ctx context.Context, s session.Session) error {
	stx, err := n.receiveProposal(ctx, s)
	if nil != err {
		return err
	}

	err = validator.ValidateCreate(stx.Tx)
	if nil != err {
		return n.reject(ctx, s, fault.ErrProposalInvalid, err)
	}

	collectible := stx.Tx.Outputs[0].Collectible
	if !collectible.CoAttestor.Equal(n.key.Account()) {
		return n.reject(ctx, s, fault.ErrCounterpartyNotCoAttestor, nil)
	}
	if collectible.Creator.Name != s.Counterparty() || !stx.HasSigned(collectible.Creator) {
		return n.reject(ctx, s, fault.ErrCreatorHasNotSigned, nil)
	}

	n.log.Infof("attest: %s  record: %s  creator: %s", collectible.Name, collectible.Id, collectible.Creator)
	return n.signAndAwait(ctx, s, stx)
}
