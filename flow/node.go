// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package flow

import (
	"context"
	"sync"
	"time"

	"github.com/alitto/pond/v2"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/artregistry/account"
	"github.com/bitmark-inc/artregistry/fault"
	"github.com/bitmark-inc/artregistry/identity"
	"github.com/bitmark-inc/artregistry/notary"
	"github.com/bitmark-inc/artregistry/session"
	"github.com/bitmark-inc/artregistry/vault"
)

// flow names carried by a session
const (
	CreateFlow = "create-collectible"
	UpdateFlow = "update-collectible"
	BuyFlow    = "buy-collectible"
	RecordFlow = "record-transaction"
)

// RetryPolicy - exponential backoff while the notary is unavailable
type RetryPolicy struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	MaxRetries      uint64 // zero: bounded by MaxElapsedTime only
}

// Config - tunables of a node
type Config struct {
	SessionTimeout   time.Duration // bound on every wait for a counterparty
	Retry            RetryPolicy
	BroadcastWorkers int // concurrent deliveries of final transactions
}

// DefaultConfig - values used when the configuration leaves them unset
func DefaultConfig() Config {
	return Config{
		SessionTimeout: 30 * time.Second,
		Retry: RetryPolicy{
			InitialInterval: 100 * time.Millisecond,
			MaxInterval:     2 * time.Second,
			MaxElapsedTime:  30 * time.Second,
		},
		BroadcastWorkers: 4,
	}
}

// Node - one party taking part in the flows
type Node struct {
	log       *logger.L
	key       *account.PrivateKey
	directory *identity.Directory
	endpoint  session.Endpoint
	store     vault.Store
	authority notary.Authority
	config    Config
	pool      pond.Pool

	// responders in progress
	responders sync.WaitGroup
}

// New - a node for the party that owns key
func New(key *account.PrivateKey, directory *identity.Directory, endpoint session.Endpoint, store vault.Store, authority notary.Authority, config Config) *Node {
	if config.BroadcastWorkers <= 0 {
		config.BroadcastWorkers = DefaultConfig().BroadcastWorkers
	}
	if config.SessionTimeout <= 0 {
		config.SessionTimeout = DefaultConfig().SessionTimeout
	}

	log := logger.New("flow")
	log.Infof("starting… party: %s", key.Account())

	return &Node{
		log:       log,
		key:       key,
		directory: directory,
		endpoint:  endpoint,
		store:     store,
		authority: authority,
		config:    config,
		pool:      pond.NewPool(config.BroadcastWorkers),
	}
}

// Account - the party this node acts for
func (n *Node) Account() *account.Account {
	return n.key.Account()
}

// Close - wait for pending deliveries and release the worker pool
func (n *Node) Close() {
	n.pool.StopAndWait()
}

// Run - answer incoming sessions until shutdown
//
// satisfies background.Process
func (n *Node) Run(args interface{}, shutdown <-chan struct{}) {
	n.log.Info("responder starting…")

	ctx, cancel := context.WithCancel(context.Background())

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case s, ok := <-n.endpoint.Incoming():
			if !ok {
				break loop
			}
			n.responders.Add(1)
			go func() {
				defer n.responders.Done()
				n.respond(ctx, s)
			}()
		}
	}

	cancel()
	n.responders.Wait()
	n.log.Info("responder stopped")
}

// dispatch one incoming session on its flow name
func (n *Node) respond(ctx context.Context, s session.Session) {
	defer s.Close()

	var err error
	switch s.Flow() {
	case CreateFlow:
		err = n.attestCreation(ctx, s)
	case UpdateFlow:
		err = n.approveUpdate(ctx, s)
	case BuyFlow:
		err = n.sellCollectible(ctx, s)
	case RecordFlow:
		err = n.recordFinal(ctx, s)
	default:
		err = fault.ErrUnknownFlow
	}
	if nil != err {
		n.log.Warnf("flow: %s  from: %s  error: %s", s.Flow(), s.Counterparty(), err)
		return
	}
	n.log.Debugf("flow: %s  from: %s  done", s.Flow(), s.Counterparty())
}
