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

// Distribute - send notarised transactions to parties
//
// every party receives them in order on a single session; this node is
// skipped and so is any party listed twice.  Returns the first delivery
// error after all deliveries have finished.
func (n *Node) Distribute(ctx context.Context, parties []*account.Account, transactions ...*transaction.Signed) error {
	self := n.key.Account()

	tasks := make([]func() error, 0, len(parties))
	seen := make([]*account.Account, 0, len(parties))
	for _, party := range parties {
		if nil == party || party.Equal(self) || account.Contains(seen, party) {
			continue
		}
		seen = append(seen, party)

		name := party.Name
		tasks = append(tasks, func() error {
			for _, stx := range transactions {
				err := n.deliver(ctx, name, stx)
				if nil != err {
					n.log.Warnf("tx: %s  distribute to: %s  error: %s", stx.Id, name, err)
					return err
				}
			}
			return nil
		})
	}

	var first error
	waits := make([]func() error, len(tasks))
	for i, task := range tasks {
		waits[i] = n.pool.SubmitErr(task).Wait
	}
	for _, wait := range waits {
		if err := wait(); nil != err && nil == first {
			first = err
		}
	}
	return first
}

// one final transaction in a fresh session
func (n *Node) deliver(ctx context.Context, party string, stx *transaction.Signed) error {
	ctx, cancel := context.WithTimeout(ctx, n.config.SessionTimeout)
	defer cancel()

	s, err := n.endpoint.Open(ctx, party, RecordFlow)
	if nil != err {
		return err
	}
	defer s.Close()

	err = s.Send(ctx, session.Message{
		Kind:        session.FinalisedMessage,
		Transaction: stx,
	})
	if nil != err {
		return err
	}
	return n.awaitAck(ctx, s)
}

// responder for RecordFlow
func (n *Node) recordFinal(ctx context.Context, s session.Session) error {
	message, err := n.receive(ctx, s)
	if nil != err {
		return err
	}
	if session.FinalisedMessage != message.Kind {
		return fault.ErrUnexpectedMessage
	}
	return n.recordFinalised(ctx, s, message.Transaction, merkle.Digest{})
}
