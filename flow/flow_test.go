// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package flow_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/artregistry/fault"
	"github.com/bitmark-inc/artregistry/flow"
	"github.com/bitmark-inc/artregistry/identity"
	"github.com/bitmark-inc/artregistry/mocks"
	"github.com/bitmark-inc/artregistry/notary"
	"github.com/bitmark-inc/artregistry/record"
	"github.com/bitmark-inc/artregistry/session"
	"github.com/bitmark-inc/artregistry/transaction"
)

var boredApe = record.Amount{Quantity: 1000, Currency: "CHF"}

func createBoredApe(t *testing.T, d *deployment) uuid.UUID {
	ctx, cancel := testContext()
	defer cancel()

	stx, err := d.node(artist).CreateCollectible(ctx, "Bored Ape", boredApe, "google.com")
	if !assert.Nil(t, err, "create") {
		t.FailNow()
	}
	return stx.Tx.Outputs[0].Collectible.Id
}

func fund(t *testing.T, d *deployment, amount uint64) *transaction.Signed {
	ctx, cancel := testContext()
	defer cancel()

	stx, err := d.node(bank).IssuePayment(ctx, amount, "CHF", buyer)
	if !assert.Nil(t, err, "issue payment") {
		t.FailNow()
	}
	return stx
}

func TestCreateBuyAndInsufficientFunds(t *testing.T) {
	d := newDeployment(t, nil)
	defer d.close()

	ctx, cancel := testContext()
	defer cancel()

	created, err := d.node(artist).CreateCollectible(ctx, "Bored Ape", boredApe, "google.com")
	assert.Nil(t, err, "create")
	assert.True(t, created.HasSigned(d.account(artist)), "creator did not sign")
	assert.True(t, created.HasSigned(d.account(registry)), "registry did not sign")
	assert.Nil(t, created.VerifyStamp(d.service.Account()), "stamp")

	id := created.Tx.Outputs[0].Collectible.Id
	for _, name := range []string{artist, registry, buyer} {
		live, err := d.vault(name).FindLiveRecordById(id)
		assert.Nil(t, err, "%s: live record", name)
		assert.Equal(t, "Bored Ape", live.Item.Collectible.Name, "%s: name", name)
		assert.Equal(t, boredApe, live.Item.Collectible.Price, "%s: price", name)
		assert.Equal(t, "google.com", live.Item.Collectible.MediaURL, "%s: url", name)
	}

	token, err := d.vault(buyer).FindOwnershipToken(id)
	assert.Nil(t, err, "buyer sees token")
	assert.Equal(t, d.account(artist), token.Item.Ownership.Holder, "initial holder")

	fund(t, d, 1000)
	balance, err := d.vault(buyer).Balance(d.account(buyer), "CHF")
	assert.Nil(t, err, "balance")
	assert.Equal(t, uint64(1000), balance, "funded balance")

	bought, err := d.node(buyer).BuyCollectible(ctx, id)
	assert.Nil(t, err, "buy")
	assert.True(t, bought.HasSigned(d.account(artist)), "seller did not sign")

	for _, name := range []string{artist, buyer} {
		token, err := d.vault(name).FindOwnershipToken(id)
		assert.Nil(t, err, "%s: token", name)
		assert.Equal(t, d.account(buyer), token.Item.Ownership.Holder, "%s: holder", name)
	}

	balance, err = d.vault(artist).Balance(d.account(artist), "CHF")
	assert.Nil(t, err, "seller balance")
	assert.Equal(t, uint64(1000), balance, "seller balance")

	balance, err = d.vault(buyer).Balance(d.account(buyer), "CHF")
	assert.Nil(t, err, "buyer balance")
	assert.Equal(t, uint64(0), balance, "buyer balance")

	// a second collectible the buyer cannot afford
	second := createBoredApe(t, d)
	fund(t, d, 1)

	_, err = d.node(buyer).BuyCollectible(ctx, second)
	assert.True(t, fault.IsErrInsufficientFunds(err), "wrong error: %v", err)

	token, err = d.vault(artist).FindOwnershipToken(second)
	assert.Nil(t, err, "token")
	assert.Equal(t, d.account(artist), token.Item.Ownership.Holder, "holder changed")
}

func TestBuyWithChange(t *testing.T) {
	d := newDeployment(t, nil)
	defer d.close()

	id := createBoredApe(t, d)
	fund(t, d, 600)
	fund(t, d, 300)
	fund(t, d, 250)

	ctx, cancel := testContext()
	defer cancel()

	bought, err := d.node(buyer).BuyCollectible(ctx, id)
	assert.Nil(t, err, "buy")
	assert.Equal(t, 4, len(bought.Tx.Inputs), "token and three payments")

	seller, err := d.vault(artist).Balance(d.account(artist), "CHF")
	assert.Nil(t, err, "seller balance")
	assert.Equal(t, uint64(1000), seller, "seller balance")

	change, err := d.vault(buyer).Balance(d.account(buyer), "CHF")
	assert.Nil(t, err, "buyer balance")
	assert.Equal(t, uint64(150), change, "change")
}

func TestOnlyRoleHoldersMayInitiate(t *testing.T) {
	d := newDeployment(t, nil)
	defer d.close()

	ctx, cancel := testContext()
	defer cancel()

	_, err := d.node(buyer).CreateCollectible(ctx, "Bored Ape", boredApe, "google.com")
	assert.Equal(t, fault.ErrNotCreator, err, "create by buyer")

	_, err = d.node(artist).BuyCollectible(ctx, uuid.New())
	assert.Equal(t, fault.ErrNotBuyer, err, "buy by creator")

	_, err = d.node(buyer).IssuePayment(ctx, 10, "CHF", buyer)
	assert.Equal(t, fault.ErrNotIssuer, err, "issue by buyer")

	id := createBoredApe(t, d)
	_, err = d.node(buyer).UpdateCollectible(ctx, id, boredApe, []string{buyer})
	assert.Equal(t, fault.ErrNotMaintainer, err, "update by buyer")
}

func TestCreateRejectsInvalidRecordBeforeNetwork(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	key := mustKey(t, artist)
	directory := identity.NewDirectory(identity.Roles{
		Creator:  artist,
		Registry: registry,
		Buyer:    buyer,
		Issuer:   bank,
		Notary:   notaryId,
	})
	for _, name := range []string{artist, registry, buyer} {
		_ = directory.Register(mustKey(t, name).Account())
	}

	// no calls expected on any collaborator
	endpoint := mocks.NewMockEndpoint(ctl)
	store := mocks.NewMockStore(ctl)
	authority := mocks.NewMockAuthority(ctl)

	node := flow.New(key, directory, endpoint, store, authority, testConfig())
	defer node.Close()

	tests := []struct {
		name  string
		price record.Amount
		url   string
		err   error
	}{
		{"", boredApe, "google.com", fault.ErrNameEmpty},
		{"   ", boredApe, "google.com", fault.ErrNameEmpty},
		{"Bored Ape", record.Amount{Quantity: 0, Currency: "CHF"}, "google.com", fault.ErrPriceNotPositive},
		{"Bored Ape", boredApe, "", fault.ErrURLEmpty},
		{"Bored Ape", boredApe, " ", fault.ErrURLEmpty},
	}

	for i, test := range tests {
		_, err := node.CreateCollectible(context.Background(), test.name, test.price, test.url)
		assert.Equal(t, test.err, err, "%d: wrong error", i)
		assert.True(t, fault.IsErrValidation(err), "%d: not a validation error", i)
	}
}

func TestInsufficientFundsBeforeNetwork(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	seller := mustKey(t, artist).Account()
	key := mustKey(t, buyer)
	issuer := mustKey(t, bank).Account()
	directory := identity.NewDirectory(identity.Roles{
		Creator:  artist,
		Registry: registry,
		Buyer:    buyer,
		Issuer:   bank,
		Notary:   notaryId,
	})
	_ = directory.Register(key.Account())
	_ = directory.Register(issuer)

	collectible := record.NewCollectible("Bored Ape", boredApe, "google.com", seller, mustKey(t, registry).Account())
	live := record.StateAndRef{
		Ref:  record.Ref{Index: 0},
		Item: record.Item{Collectible: collectible},
	}
	token := record.StateAndRef{
		Ref:  record.Ref{Index: 1},
		Item: record.Item{Ownership: record.NewOwnership(collectible.Id, seller, seller)},
	}
	funds := []record.StateAndRef{{
		Ref: record.Ref{Index: 2},
		Item: record.Item{Payment: &record.Payment{
			Amount:   5000,
			Currency: "CHF",
			Issuer:   key.Account(),
			Holder:   key.Account(),
		}},
	}, {
		Ref: record.Ref{Index: 3},
		Item: record.Item{Payment: &record.Payment{
			Amount:   1,
			Currency: "CHF",
			Issuer:   issuer,
			Holder:   key.Account(),
		}},
	}}

	store := mocks.NewMockStore(ctl)
	store.EXPECT().FindLiveRecordById(collectible.Id).Return(live, nil).Times(1)
	store.EXPECT().FindOwnershipToken(collectible.Id).Return(token, nil).Times(1)
	store.EXPECT().FindSpendableTokens(key.Account(), "CHF").Return(funds, nil).Times(1)

	// Open must not be called: no signature is requested from the seller
	endpoint := mocks.NewMockEndpoint(ctl)
	authority := mocks.NewMockAuthority(ctl)

	node := flow.New(key, directory, endpoint, store, authority, testConfig())
	defer node.Close()

	_, err := node.BuyCollectible(context.Background(), collectible.Id)

	var insufficient *fault.InsufficientFunds
	if assert.True(t, errors.As(err, &insufficient), "wrong error: %v", err) {
		assert.Equal(t, "CHF", insufficient.Currency, "currency")
		assert.Equal(t, uint64(1000), insufficient.Required, "required")
		assert.Equal(t, uint64(1), insufficient.Available, "available")
	}
}

func TestSellerRejectionReachesBuyer(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	seller := mustKey(t, artist).Account()
	key := mustKey(t, buyer)
	directory := identity.NewDirectory(identity.Roles{
		Creator:  artist,
		Registry: registry,
		Buyer:    buyer,
		Issuer:   bank,
		Notary:   notaryId,
	})
	_ = directory.Register(key.Account())
	_ = directory.Register(mustKey(t, bank).Account())

	collectible := record.NewCollectible("Bored Ape", boredApe, "google.com", seller, mustKey(t, registry).Account())
	token := record.StateAndRef{
		Ref:  record.Ref{Index: 1},
		Item: record.Item{Ownership: record.NewOwnership(collectible.Id, seller, seller)},
	}
	funds := []record.StateAndRef{{
		Ref: record.Ref{Index: 2},
		Item: record.Item{Payment: &record.Payment{
			Amount:   1000,
			Currency: "CHF",
			Issuer:   mustKey(t, bank).Account(),
			Holder:   key.Account(),
		}},
	}}

	store := mocks.NewMockStore(ctl)
	store.EXPECT().FindLiveRecordById(collectible.Id).Return(record.StateAndRef{Item: record.Item{Collectible: collectible}}, nil)
	store.EXPECT().FindOwnershipToken(collectible.Id).Return(token, nil)
	store.EXPECT().FindSpendableTokens(key.Account(), "CHF").Return(funds, nil)

	s := mocks.NewMockSession(ctl)
	s.EXPECT().Counterparty().Return(artist).AnyTimes()
	s.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, message session.Message) error {
			assert.Equal(t, session.ProposeMessage, message.Kind, "first message")
			assert.True(t, message.Transaction.HasSigned(key.Account()), "buyer signs first")
			return nil
		},
	).Times(1)
	s.EXPECT().Receive(gomock.Any()).Return(session.Message{
		Kind:   session.RejectMessage,
		Reason: fault.ErrPaymentAmountMismatch.Error(),
	}, nil).Times(1)
	s.EXPECT().Close().Times(1)

	endpoint := mocks.NewMockEndpoint(ctl)
	endpoint.EXPECT().Open(gomock.Any(), artist, flow.BuyFlow).Return(s, nil).Times(1)

	// a rejected proposal is never notarised
	authority := mocks.NewMockAuthority(ctl)

	node := flow.New(key, directory, endpoint, store, authority, testConfig())
	defer node.Close()

	_, err := node.BuyCollectible(context.Background(), collectible.Id)
	assert.True(t, fault.IsErrCounterpartyRejection(err), "wrong error: %v", err)
	assert.True(t, errors.Is(err, fault.ErrPaymentAmountMismatch), "reason lost: %v", err)

	var rejection *fault.CounterpartyRejection
	if assert.True(t, errors.As(err, &rejection), "not a rejection") {
		assert.Equal(t, artist, rejection.Party, "party")
	}
}

func TestSellerFinalisedWhenLocalRecordFails(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	sellerKey := mustKey(t, artist)
	seller := sellerKey.Account()
	key := mustKey(t, buyer)
	issuer := mustKey(t, bank).Account()
	directory := identity.NewDirectory(identity.Roles{
		Creator:  artist,
		Registry: registry,
		Buyer:    buyer,
		Issuer:   bank,
		Notary:   notaryId,
	})
	_ = directory.Register(key.Account())
	_ = directory.Register(issuer)

	collectible := record.NewCollectible("Bored Ape", boredApe, "google.com", seller, mustKey(t, registry).Account())
	token := record.StateAndRef{
		Ref:  record.Ref{Index: 1},
		Item: record.Item{Ownership: record.NewOwnership(collectible.Id, seller, seller)},
	}
	funds := []record.StateAndRef{{
		Ref: record.Ref{Index: 2},
		Item: record.Item{Payment: &record.Payment{
			Amount:   1000,
			Currency: "CHF",
			Issuer:   issuer,
			Holder:   key.Account(),
		}},
	}}

	diskFull := errors.New("disk full")

	store := mocks.NewMockStore(ctl)
	store.EXPECT().FindLiveRecordById(collectible.Id).Return(record.StateAndRef{Item: record.Item{Collectible: collectible}}, nil)
	store.EXPECT().FindOwnershipToken(collectible.Id).Return(token, nil)
	store.EXPECT().FindSpendableTokens(key.Account(), "CHF").Return(funds, nil)
	store.EXPECT().Record(gomock.Any()).Return(diskFull).Times(1)

	notaryKey := mustKey(t, notaryId)
	authority := mocks.NewMockAuthority(ctl)
	authority.EXPECT().Notarise(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, stx *transaction.Signed) (*transaction.Stamp, error) {
			return transaction.NewStamp(notaryKey, stx.Id, 1), nil
		},
	).Times(1)

	var proposed *transaction.Signed
	finalised := false

	s := mocks.NewMockSession(ctl)
	s.EXPECT().Counterparty().Return(artist).AnyTimes()
	s.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, message session.Message) error {
			switch message.Kind {
			case session.ProposeMessage:
				proposed = message.Transaction
			case session.FinalisedMessage:
				finalised = true
				assert.NotNil(t, message.Transaction.Stamp, "finalised without stamp")
			default:
				t.Errorf("unexpected message: %s", message.Kind)
			}
			return nil
		},
	).Times(2)
	gomock.InOrder(
		s.EXPECT().Receive(gomock.Any()).DoAndReturn(
			func(ctx context.Context) (session.Message, error) {
				return session.Message{
					Kind: session.SignatureMessage,
					Signature: &transaction.Signature{
						Signer: seller,
						Value:  sellerKey.Sign(proposed.Id[:]),
					},
				}, nil
			},
		),
		s.EXPECT().Receive(gomock.Any()).Return(session.Message{Kind: session.AckMessage}, nil),
	)
	s.EXPECT().Close().Times(1)

	endpoint := mocks.NewMockEndpoint(ctl)
	endpoint.EXPECT().Open(gomock.Any(), artist, flow.BuyFlow).Return(s, nil).Times(1)

	node := flow.New(key, directory, endpoint, store, authority, testConfig())
	defer node.Close()

	_, err := node.BuyCollectible(context.Background(), collectible.Id)
	assert.Equal(t, diskFull, err, "wrong error")
	assert.True(t, finalised, "seller was not sent the final transaction")
}

// holds notarisations until a number of them have arrived
type gatedAuthority struct {
	sync.Mutex
	authority notary.Authority
	waiting   int
	release   chan struct{}
}

func (g *gatedAuthority) arm(count int) {
	g.Lock()
	g.waiting = count
	g.release = make(chan struct{})
	g.Unlock()
}

func (g *gatedAuthority) Notarise(ctx context.Context, stx *transaction.Signed) (*transaction.Stamp, error) {
	g.Lock()
	release := g.release
	if nil != release {
		g.waiting -= 1
		if 0 == g.waiting {
			close(release)
			g.release = nil
		}
	}
	g.Unlock()

	if nil != release {
		select {
		case <-release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return g.authority.Notarise(ctx, stx)
}

func TestConcurrentBuyIsNotarisedOnce(t *testing.T) {
	gate := &gatedAuthority{}
	d := newDeployment(t, gate)
	defer d.close()
	gate.authority = d.service

	id := createBoredApe(t, d)
	fund(t, d, 1000)

	const attempts = 2
	gate.arm(attempts)

	ctx, cancel := testContext()
	defer cancel()

	results := make(chan error, attempts)
	for i := 0; i < attempts; i += 1 {
		go func() {
			_, err := d.node(buyer).BuyCollectible(ctx, id)
			results <- err
		}()
	}

	succeeded := 0
	conflicts := 0
	for i := 0; i < attempts; i += 1 {
		err := <-results
		switch {
		case nil == err:
			succeeded += 1
		case fault.IsErrConflict(err):
			conflicts += 1
		default:
			t.Errorf("unexpected error: %s", err)
		}
	}
	assert.Equal(t, 1, succeeded, "winners")
	assert.Equal(t, 1, conflicts, "conflicts")

	token, err := d.vault(artist).FindOwnershipToken(id)
	assert.Nil(t, err, "token")
	assert.Equal(t, d.account(buyer), token.Item.Ownership.Holder, "final holder")

	balance, err := d.vault(artist).Balance(d.account(artist), "CHF")
	assert.Nil(t, err, "seller balance")
	assert.Equal(t, uint64(1000), balance, "paid once")
}

func TestNotariseRetriesWhileUnavailable(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	authority := mocks.NewMockAuthority(ctl)
	d := newDeployment(t, authority)
	defer d.close()

	gomock.InOrder(
		authority.EXPECT().Notarise(gomock.Any(), gomock.Any()).Return(nil, fault.ErrAuthorityUnavailable).Times(2),
		authority.EXPECT().Notarise(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, stx *transaction.Signed) (*transaction.Stamp, error) {
				return d.service.Notarise(ctx, stx)
			},
		).Times(1),
	)

	stx := fund(t, d, 1000)
	assert.Nil(t, stx.VerifyStamp(d.service.Account()), "stamp")
}

func TestNotariseDoesNotRetryRefusal(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	authority := mocks.NewMockAuthority(ctl)
	d := newDeployment(t, authority)
	defer d.close()

	authority.EXPECT().Notarise(gomock.Any(), gomock.Any()).Return(nil, fault.ErrWrongNotary).Times(1)

	ctx, cancel := testContext()
	defer cancel()

	_, err := d.node(bank).IssuePayment(ctx, 1000, "CHF", buyer)
	assert.Equal(t, fault.ErrWrongNotary, err, "wrong error")

	balance, err := d.vault(buyer).Balance(d.account(buyer), "CHF")
	assert.Nil(t, err, "balance")
	assert.Equal(t, uint64(0), balance, "refused issue was recorded")
}

func TestCreateAbortedWhileNotaryUnavailable(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	authority := mocks.NewMockAuthority(ctl)
	d := newDeployment(t, authority)
	defer d.close()

	var proposed uuid.UUID
	authority.EXPECT().Notarise(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, stx *transaction.Signed) (*transaction.Stamp, error) {
			proposed = stx.Tx.Outputs[0].Collectible.Id
			return nil, fault.ErrAuthorityUnavailable
		},
	).MinTimes(1)

	ctx, cancel := testContext()
	defer cancel()

	created, err := d.node(artist).CreateCollectible(ctx, "Bored Ape", boredApe, "google.com")
	assert.Nil(t, created, "created")
	assert.Equal(t, fault.ErrAuthorityUnavailable, err, "wrong error")

	for _, name := range []string{artist, registry, buyer} {
		_, err := d.vault(name).FindLiveRecordById(proposed)
		assert.Equal(t, fault.ErrRecordNotFound, err, "%s: live record", name)
		_, err = d.vault(name).FindOwnershipToken(proposed)
		assert.Equal(t, fault.ErrTokenNotFound, err, "%s: ownership token", name)
	}
}

func TestCreateIsOneTransaction(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	authority := mocks.NewMockAuthority(ctl)
	d := newDeployment(t, authority)
	defer d.close()

	// a second notarisation would leave a record without its token
	authority.EXPECT().Notarise(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, stx *transaction.Signed) (*transaction.Stamp, error) {
			return d.service.Notarise(ctx, stx)
		},
	).Times(1)

	ctx, cancel := testContext()
	defer cancel()

	created, err := d.node(artist).CreateCollectible(ctx, "Bored Ape", boredApe, "google.com")
	if !assert.Nil(t, err, "create") {
		t.FailNow()
	}
	id := created.Tx.Outputs[0].Collectible.Id

	for _, name := range []string{artist, registry, buyer} {
		_, err := d.vault(name).FindLiveRecordById(id)
		assert.Nil(t, err, "%s: live record", name)

		token, err := d.vault(name).FindOwnershipToken(id)
		if assert.Nil(t, err, "%s: ownership token", name) {
			assert.Equal(t, created.Id, token.Ref.TxId, "%s: token produced elsewhere", name)
			assert.Equal(t, d.account(artist), token.Item.Ownership.Holder, "%s: holder", name)
			assert.Equal(t, d.account(artist), token.Item.Ownership.Issuer, "%s: issuer", name)
		}
	}
}

func TestUpdateCollectible(t *testing.T) {
	d := newDeployment(t, nil)
	defer d.close()

	id := createBoredApe(t, d)

	ctx, cancel := testContext()
	defer cancel()

	raised := record.Amount{Quantity: 2000, Currency: "CHF"}
	_, err := d.node(artist).UpdateCollectible(ctx, id, raised, []string{artist, registry})
	assert.Nil(t, err, "first update")

	// both maintainers must now sign
	lowered := record.Amount{Quantity: 1500, Currency: "CHF"}
	stx, err := d.node(registry).UpdateCollectible(ctx, id, lowered, []string{registry})
	assert.Nil(t, err, "second update")
	assert.True(t, stx.HasSigned(d.account(artist)), "artist did not sign")
	assert.True(t, stx.HasSigned(d.account(registry)), "registry did not sign")

	for _, name := range []string{artist, registry, buyer} {
		live, err := d.vault(name).FindLiveRecordById(id)
		assert.Nil(t, err, "%s: live", name)
		assert.Equal(t, lowered, live.Item.Collectible.Price, "%s: price", name)
	}

	history, err := d.vault(registry).History(id)
	assert.Nil(t, err, "history")
	if assert.Equal(t, 3, len(history), "versions") {
		assert.Equal(t, boredApe, history[0].Price, "first version")
		assert.Equal(t, raised, history[1].Price, "second version")
		assert.Equal(t, lowered, history[2].Price, "third version")
		for _, version := range history {
			assert.Equal(t, "Bored Ape", version.Name, "name changed")
			assert.Equal(t, "google.com", version.MediaURL, "url changed")
		}
	}

	// the artist is no longer a maintainer
	_, err = d.node(artist).UpdateCollectible(ctx, id, boredApe, []string{artist})
	assert.Equal(t, fault.ErrNotMaintainer, err, "update by former maintainer")
}
