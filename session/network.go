// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/artregistry/fault"
)

// internal constants
const (
	queueSize    = 100 // messages buffered per direction
	incomingSize = 100 // sessions waiting to be accepted
)

// Network - in-process message transport
type Network struct {
	sync.RWMutex
	log       *logger.L
	endpoints map[string]*endpoint
}

type endpoint struct {
	network  *Network
	name     string
	incoming chan Session
}

// one direction of a conversation
type pipe struct {
	counterparty string
	flow         string
	in           <-chan []byte
	out          chan<- []byte
	closed       chan struct{}
	once         *sync.Once
	log          *logger.L
}

// NewNetwork - an empty network
func NewNetwork() *Network {
	log := logger.New("session")
	log.Info("starting…")
	return &Network{
		log:       log,
		endpoints: make(map[string]*endpoint),
	}
}

// Join - attach a party by its legal name
func (n *Network) Join(party string) (Endpoint, error) {
	n.Lock()
	defer n.Unlock()

	if _, ok := n.endpoints[party]; ok {
		return nil, fault.ErrPartyExists
	}
	e := &endpoint{
		network:  n,
		name:     party,
		incoming: make(chan Session, incomingSize),
	}
	n.endpoints[party] = e
	n.log.Debugf("joined: %s", party)
	return e, nil
}

// Leave - detach a party; sessions already open are unaffected
func (n *Network) Leave(party string) {
	n.Lock()
	delete(n.endpoints, party)
	n.Unlock()
	n.log.Debugf("left: %s", party)
}

func (e *endpoint) Name() string {
	return e.name
}

func (e *endpoint) Incoming() <-chan Session {
	return e.incoming
}

// Open - start a conversation; the counterparty receives its end on Incoming
func (e *endpoint) Open(ctx context.Context, party string, flow string) (Session, error) {
	e.network.RLock()
	peer, ok := e.network.endpoints[party]
	e.network.RUnlock()
	if !ok {
		return nil, fault.ErrPartyNotFound
	}

	forward := make(chan []byte, queueSize)
	reverse := make(chan []byte, queueSize)
	closed := make(chan struct{})
	once := &sync.Once{}

	local := &pipe{
		counterparty: party,
		flow:         flow,
		in:           reverse,
		out:          forward,
		closed:       closed,
		once:         once,
		log:          e.network.log,
	}
	remote := &pipe{
		counterparty: e.name,
		flow:         flow,
		in:           forward,
		out:          reverse,
		closed:       closed,
		once:         once,
		log:          e.network.log,
	}

	select {
	case peer.incoming <- remote:
	case <-ctx.Done():
		return nil, contextError(ctx)
	}
	e.network.log.Debugf("open: %s → %s  flow: %s", e.name, party, flow)
	return local, nil
}

func (p *pipe) Counterparty() string {
	return p.counterparty
}

func (p *pipe) Flow() string {
	return p.flow
}

// Send - queue a copy of the message for the counterparty
func (p *pipe) Send(ctx context.Context, message Message) error {
	packed, err := json.Marshal(message)
	if nil != err {
		return err
	}

	select {
	case <-p.closed:
		return fault.ErrSessionClosed
	default:
	}

	select {
	case p.out <- packed:
		p.log.Debugf("send: %s  to: %s", message.Kind, p.counterparty)
		return nil
	case <-p.closed:
		return fault.ErrSessionClosed
	case <-ctx.Done():
		return contextError(ctx)
	}
}

// Receive - the next message from the counterparty
//
// messages sent before the session was closed are still delivered
func (p *pipe) Receive(ctx context.Context) (Message, error) {
	select {
	case packed := <-p.in:
		return p.decode(packed)
	default:
	}

	select {
	case packed := <-p.in:
		return p.decode(packed)
	case <-p.closed:
		select {
		case packed := <-p.in:
			return p.decode(packed)
		default:
		}
		return Message{}, fault.ErrSessionClosed
	case <-ctx.Done():
		return Message{}, contextError(ctx)
	}
}

func (p *pipe) decode(packed []byte) (Message, error) {
	var message Message
	err := json.Unmarshal(packed, &message)
	if nil != err {
		return Message{}, err
	}
	p.log.Debugf("receive: %s  from: %s", message.Kind, p.counterparty)
	return message, nil
}

// Close - end the conversation for both sides
func (p *pipe) Close() {
	p.once.Do(func() {
		close(p.closed)
	})
}

// deadline expiry is the session timeout; cancellation is passed through
func contextError(ctx context.Context) error {
	if context.DeadlineExceeded == ctx.Err() {
		return fault.ErrSessionTimeout
	}
	return ctx.Err()
}
