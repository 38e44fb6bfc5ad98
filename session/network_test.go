// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package session_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/artregistry/fault"
	"github.com/bitmark-inc/artregistry/session"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func pair(t *testing.T) (session.Session, session.Session) {
	network := session.NewNetwork()
	buyer, err := network.Join("Customer")
	assert.Nil(t, err, "join buyer")
	seller, err := network.Join("Artist")
	assert.Nil(t, err, "join seller")

	local, err := buyer.Open(context.Background(), "Artist", "buy")
	assert.Nil(t, err, "open")

	remote := <-seller.Incoming()
	return local, remote
}

func TestJoin(t *testing.T) {
	network := session.NewNetwork()
	e, err := network.Join("Artist")
	assert.Nil(t, err, "join")
	assert.Equal(t, "Artist", e.Name())

	_, err = network.Join("Artist")
	assert.Equal(t, fault.ErrPartyExists, err)

	_, err = e.Open(context.Background(), "Nobody", "buy")
	assert.Equal(t, fault.ErrPartyNotFound, err)

	network.Leave("Artist")
	_, err = network.Join("Artist")
	assert.Nil(t, err, "rejoin")
}

func TestOrderedDelivery(t *testing.T) {
	local, remote := pair(t)
	ctx := context.Background()

	assert.Equal(t, "Artist", local.Counterparty())
	assert.Equal(t, "Customer", remote.Counterparty())
	assert.Equal(t, "buy", remote.Flow())

	kinds := []session.Kind{session.ProposeMessage, session.AbortMessage, session.FinalisedMessage}
	for _, kind := range kinds {
		assert.Nil(t, local.Send(ctx, session.Message{Kind: kind}), "send")
	}
	for _, kind := range kinds {
		message, err := remote.Receive(ctx)
		assert.Nil(t, err, "receive")
		assert.Equal(t, kind, message.Kind, "out of order")
	}

	assert.Nil(t, remote.Send(ctx, session.Message{Kind: session.RejectMessage, Reason: "no"}), "reply")
	message, err := local.Receive(ctx)
	assert.Nil(t, err, "receive reply")
	assert.Equal(t, "no", message.Reason)
}

func TestCloseEndsBothSides(t *testing.T) {
	local, remote := pair(t)
	ctx := context.Background()

	assert.Nil(t, local.Send(ctx, session.Message{Kind: session.AbortMessage}), "send")
	local.Close()
	local.Close()

	// queued before close is still delivered
	message, err := remote.Receive(ctx)
	assert.Nil(t, err, "queued message lost")
	assert.Equal(t, session.AbortMessage, message.Kind)

	_, err = remote.Receive(ctx)
	assert.Equal(t, fault.ErrSessionClosed, err)
	assert.Equal(t, fault.ErrSessionClosed, remote.Send(ctx, session.Message{Kind: session.AckMessage}))
}

func TestReceiveTimeout(t *testing.T) {
	local, _ := pair(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := local.Receive(ctx)
	assert.Equal(t, fault.ErrSessionTimeout, err)

	cancelled, stop := context.WithCancel(context.Background())
	stop()
	_, err = local.Receive(cancelled)
	assert.Equal(t, context.Canceled, err)
}
