// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package session

import (
	"context"

	"github.com/bitmark-inc/artregistry/transaction"
)

//go:generate mockgen -source=session.go -destination=../mocks/session.go -package=mocks

// Kind - the protocol step a message carries
type Kind string

// message kinds
const (
	ProposeMessage   Kind = "propose"   // transaction to be signed
	SignatureMessage Kind = "signature" // counterparty signature
	RejectMessage    Kind = "reject"    // counterparty declines, with reason
	FinalisedMessage Kind = "finalised" // notarised transaction
	AckMessage       Kind = "ack"       // finalised transaction recorded
	AbortMessage     Kind = "abort"     // initiator gave up before notarisation
)

// Message - one step of a flow
type Message struct {
	Kind        Kind                   `json:"kind"`
	Transaction *transaction.Signed    `json:"transaction,omitempty"`
	Signature   *transaction.Signature `json:"signature,omitempty"`
	Reason      string                 `json:"reason,omitempty"`
}

// Session - an ordered conversation with one counterparty
type Session interface {
	Counterparty() string
	Flow() string
	Send(ctx context.Context, message Message) error
	Receive(ctx context.Context) (Message, error)
	Close()
}

// Endpoint - a party's attachment to the network
type Endpoint interface {
	Name() string
	Open(ctx context.Context, party string, flow string) (Session, error)
	Incoming() <-chan Session
}
