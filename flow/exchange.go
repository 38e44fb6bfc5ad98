// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package flow

import (
	"context"

	"github.com/bitmark-inc/artregistry/account"
	"github.com/bitmark-inc/artregistry/fault"
	"github.com/bitmark-inc/artregistry/merkle"
	"github.com/bitmark-inc/artregistry/session"
	"github.com/bitmark-inc/artregistry/transaction"
)

// message helpers shared by initiators and responders

func (n *Node) send(ctx context.Context, s session.Session, message session.Message) error {
	ctx, cancel := context.WithTimeout(ctx, n.config.SessionTimeout)
	defer cancel()
	return s.Send(ctx, message)
}

func (n *Node) receive(ctx context.Context, s session.Session) (session.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, n.config.SessionTimeout)
	defer cancel()
	return s.Receive(ctx)
}

// a responder waits for the initiator to notarise, which may include retries
func (n *Node) receiveFinal(ctx context.Context, s session.Session) (session.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, n.config.SessionTimeout+n.config.Retry.MaxElapsedTime)
	defer cancel()
	return s.Receive(ctx)
}

// send a proposal and add the counterparty's signature to it
func (n *Node) collectSignature(ctx context.Context, s session.Session, signer *account.Account, stx *transaction.Signed) error {
	err := n.send(ctx, s, session.Message{
		Kind:        session.ProposeMessage,
		Transaction: stx,
	})
	if nil != err {
		return err
	}

	reply, err := n.receive(ctx, s)
	if nil != err {
		return err
	}

	switch reply.Kind {
	case session.SignatureMessage:
		if nil == reply.Signature || !reply.Signature.Signer.Equal(signer) {
			return fault.ErrInvalidSignature
		}
		return stx.AddSignature(*reply.Signature)

	case session.RejectMessage:
		n.log.Warnf("tx: %s  rejected by: %s  reason: %s", stx.Id, s.Counterparty(), reply.Reason)
		return &fault.CounterpartyRejection{
			Party:  s.Counterparty(),
			Reason: fault.RejectionError(reply.Reason),
		}

	default:
		return fault.ErrUnexpectedMessage
	}
}

// tell counterparties that signed that the transaction will not be notarised
func (n *Node) abort(sessions []session.Session, stx *transaction.Signed, cause error) {
	ctx, cancel := context.WithTimeout(context.Background(), n.config.SessionTimeout)
	defer cancel()

	for _, s := range sessions {
		err := s.Send(ctx, session.Message{
			Kind:   session.AbortMessage,
			Reason: cause.Error(),
		})
		if nil != err {
			n.log.Warnf("tx: %s  abort to: %s  error: %s", stx.Id, s.Counterparty(), err)
		}
	}
}

// hand the notarised transaction to counterparties on their sessions
//
// a counterparty that can no longer be reached on its session is sent
// the transaction in a fresh one
func (n *Node) finalise(ctx context.Context, sessions []session.Session, stx *transaction.Signed) {
	for _, s := range sessions {
		err := n.send(ctx, s, session.Message{
			Kind:        session.FinalisedMessage,
			Transaction: stx,
		})
		if nil == err {
			err = n.awaitAck(ctx, s)
		}
		if nil != err {
			n.log.Warnf("tx: %s  finalise to: %s  error: %s  retrying", stx.Id, s.Counterparty(), err)
			err = n.deliver(ctx, s.Counterparty(), stx)
		}
		if nil != err {
			n.log.Errorf("tx: %s  not delivered to: %s  error: %s", stx.Id, s.Counterparty(), err)
		}
	}
}

// record a notarised transaction and hand it to the counterparties
//
// a stamped transaction is final, so counterparties are told even when
// the local record fails
func (n *Node) complete(ctx context.Context, sessions []session.Session, stx *transaction.Signed) error {
	err := n.store.Record(stx)
	if nil != err {
		n.log.Errorf("tx: %s  record error: %s", stx.Id, err)
	}
	n.finalise(ctx, sessions, stx)
	return err
}

func (n *Node) awaitAck(ctx context.Context, s session.Session) error {
	reply, err := n.receive(ctx, s)
	if nil != err {
		return err
	}
	switch reply.Kind {
	case session.AckMessage:
		return nil
	case session.RejectMessage:
		return &fault.CounterpartyRejection{
			Party:  s.Counterparty(),
			Reason: fault.RejectionError(reply.Reason),
		}
	default:
		return fault.ErrUnexpectedMessage
	}
}

// responder side: receive the proposal that opens a flow
func (n *Node) receiveProposal(ctx context.Context, s session.Session) (*transaction.Signed, error) {
	message, err := n.receive(ctx, s)
	if nil != err {
		return nil, err
	}
	if session.ProposeMessage != message.Kind || nil == message.Transaction || nil == message.Transaction.Tx {
		return nil, fault.ErrUnexpectedMessage
	}
	stx := message.Transaction
	err = stx.Verify()
	if nil != err {
		return nil, n.reject(ctx, s, fault.ErrProposalInvalid, err)
	}
	return stx, nil
}

// decline to sign; returns the reason as an error for the caller's log
func (n *Node) reject(ctx context.Context, s session.Session, reason fault.RejectionError, cause error) error {
	err := n.send(ctx, s, session.Message{
		Kind:   session.RejectMessage,
		Reason: reason.Error(),
	})
	if nil != err {
		n.log.Warnf("reject to: %s  error: %s", s.Counterparty(), err)
	}
	if nil != cause {
		n.log.Warnf("rejected: %s  cause: %s", reason, cause)
	}
	return reason
}

// responder side: sign, then wait for the stamped transaction or an abort
func (n *Node) signAndAwait(ctx context.Context, s session.Session, stx *transaction.Signed) error {
	err := stx.Sign(n.key)
	if nil != err {
		return err
	}
	signature, err := stx.SignatureOf(n.key.Account())
	if nil != err {
		return err
	}
	err = n.send(ctx, s, session.Message{
		Kind:      session.SignatureMessage,
		Signature: &signature,
	})
	if nil != err {
		return err
	}

	final, err := n.receiveFinal(ctx, s)
	if nil != err {
		return err
	}
	switch final.Kind {
	case session.AbortMessage:
		n.log.Infof("tx: %s  aborted by: %s  reason: %s", stx.Id, s.Counterparty(), final.Reason)
		return nil
	case session.FinalisedMessage:
		return n.recordFinalised(ctx, s, final.Transaction, stx.Id)
	default:
		return fault.ErrUnexpectedMessage
	}
}

// record a stamped transaction and acknowledge it
func (n *Node) recordFinalised(ctx context.Context, s session.Session, stx *transaction.Signed, expected merkle.Digest) error {
	if nil == stx || nil == stx.Tx || (!expected.IsZero() && stx.Id != expected) {
		return fault.ErrUnexpectedMessage
	}
	err := n.store.Record(stx)
	if nil != err {
		return n.reject(ctx, s, fault.ErrProposalInvalid, err)
	}
	return n.send(ctx, s, session.Message{Kind: session.AckMessage})
}
