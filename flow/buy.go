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

// BuyCollectible - swap the ownership token of a record against its price
//
// only the buyer may call this.  Ownership and payment move in one
// transaction signed by buyer and seller, so either both happen or
// neither does.
func (n *Node) BuyCollectible(ctx context.Context, recordId uuid.UUID) (*transaction.Signed, error) {
	self := n.key.Account()

	buyer, err := n.directory.Buyer()
	if nil != err || !buyer.Equal(self) {
		return nil, fault.ErrNotBuyer
	}

	live, err := n.store.FindLiveRecordById(recordId)
	if nil != err {
		return nil, err
	}
	token, err := n.store.FindOwnershipToken(recordId)
	if nil != err {
		return nil, err
	}
	collectible := live.Item.Collectible
	seller := token.Item.Ownership.Holder

	issuer, err := n.directory.Issuer()
	if nil != err {
		return nil, err
	}
	spendable, err := n.store.FindSpendableTokens(self, collectible.Price.Currency)
	if nil != err {
		return nil, err
	}
	inputs, outputs, err := selectPayment(spendable, collectible.Price, issuer, self, seller)
	if nil != err {
		n.log.Warnf("buy: %s  error: %s", recordId, err)
		return nil, err
	}

	b := transaction.NewBuilder(transaction.MoveCommand, n.directory.Roles().Notary).
		AddInput(token).
		AddOutput(record.Item{Ownership: token.Item.Ownership.MoveTo(self)})
	for _, in := range inputs {
		b.AddInput(in)
	}
	for _, out := range outputs {
		b.AddOutput(record.Item{Payment: out})
	}
	tx, err := b.AddSigner(self).AddSigner(seller).Build()
	if nil != err {
		return nil, err
	}

	err = validator.ValidateMove(tx)
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

	n.log.Infof("buy: %s  from: %s  price: %d %s  tx: %s", recordId, seller, collectible.Price.Quantity, collectible.Price.Currency, stx.Id)

	s, err := n.endpoint.Open(ctx, seller.Name, BuyFlow)
	if nil != err {
		return nil, err
	}
	defer s.Close()

	err = n.collectSignature(ctx, s, seller, stx)
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

	return stx, nil
}

// choose payment tokens of the settlement issuer covering price, in the
// order given
//
// the price goes to the seller and any excess returns to the buyer as
// change
func selectPayment(spendable []record.StateAndRef, price record.Amount, issuer *account.Account, buyer *account.Account, seller *account.Account) ([]record.StateAndRef, []*record.Payment, error) {
	inputs := make([]record.StateAndRef, 0, len(spendable))

	total := uint64(0)
	for _, in := range spendable {
		if total >= price.Quantity {
			break
		}
		payment := in.Item.Payment
		if nil == payment || payment.Currency != price.Currency || !payment.Holder.Equal(buyer) || !payment.Issuer.Equal(issuer) {
			continue
		}
		inputs = append(inputs, in)
		total += payment.Amount
	}

	if total < price.Quantity {
		return nil, nil, &fault.InsufficientFunds{
			Currency:  price.Currency,
			Required:  price.Quantity,
			Available: total,
		}
	}

	outputs := []*record.Payment{{
		Amount:   price.Quantity,
		Currency: price.Currency,
		Issuer:   issuer,
		Holder:   seller,
	}}
	if change := total - price.Quantity; change > 0 {
		outputs = append(outputs, &record.Payment{
			Amount:   change,
			Currency: price.Currency,
			Issuer:   issuer,
			Holder:   buyer,
		})
	}
	return inputs, outputs, nil
}

// responder for BuyFlow: the seller's checks before signing
func (n *Node) sellCollectible(ctx context.Context, s session.Session) error {
	self := n.key.Account()

	stx, err := n.receiveProposal(ctx, s)
	if nil != err {
		return err
	}
	buyer, err := n.directory.ResolveParty(s.Counterparty())
	if nil != err {
		return n.reject(ctx, s, fault.ErrProposalInvalid, err)
	}

	payments := stx.Tx.OutputsOf(record.PaymentKind)
	if 0 == len(payments) {
		return n.reject(ctx, s, fault.ErrPaymentMissing, nil)
	}
	ownerships := stx.Tx.OutputsOf(record.OwnershipKind)
	if 1 != len(ownerships) {
		return n.reject(ctx, s, fault.ErrOwnershipMissing, nil)
	}
	moved := ownerships[0].Ownership

	live, err := n.store.FindLiveRecordById(moved.RecordId)
	if nil != err {
		return n.reject(ctx, s, fault.ErrUnknownRecord, err)
	}
	price := live.Item.Collectible.Price

	issuer, err := n.directory.Issuer()
	if nil != err {
		return n.reject(ctx, s, fault.ErrProposalInvalid, err)
	}

	toSeller := false
	foreign := false
	paid := uint64(0)
	for _, item := range payments {
		if !item.Payment.Holder.Equal(self) {
			continue
		}
		toSeller = true
		if !item.Payment.Issuer.Equal(issuer) {
			foreign = true
			continue
		}
		if item.Payment.Currency == price.Currency {
			paid += item.Payment.Amount
		}
	}
	if !toSeller {
		return n.reject(ctx, s, fault.ErrPaymentWrongHolder, nil)
	}
	if foreign {
		return n.reject(ctx, s, fault.ErrPaymentWrongIssuer, nil)
	}
	if paid != price.Quantity {
		return n.reject(ctx, s, fault.ErrPaymentAmountMismatch, nil)
	}

	if !moved.Holder.Equal(buyer) {
		return n.reject(ctx, s, fault.ErrOwnershipWrongHolder, nil)
	}

	held, err := n.store.FindOwnershipToken(moved.RecordId)
	if nil != err || !held.Item.Ownership.Holder.Equal(self) {
		return n.reject(ctx, s, fault.ErrOwnershipNotHeld, err)
	}
	consumed := stx.Tx.InputsOf(record.OwnershipKind)
	if 1 != len(consumed) || consumed[0].Ref != held.Ref || !consumed[0].Item.Equal(held.Item) {
		return n.reject(ctx, s, fault.ErrOwnershipNotHeld, nil)
	}

	err = validator.ValidateMove(stx.Tx)
	if nil != err {
		return n.reject(ctx, s, fault.ErrProposalInvalid, err)
	}
	if !stx.HasSigned(buyer) {
		return n.reject(ctx, s, fault.ErrProposalInvalid, fault.ErrMissingSignature)
	}

	n.log.Infof("sell: %s  to: %s  price: %d %s", moved.RecordId, buyer, price.Quantity, price.Currency)
	return n.signAndAwait(ctx, s, stx)
}
