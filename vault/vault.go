// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"encoding/binary"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/artregistry/account"
	"github.com/bitmark-inc/artregistry/fault"
	"github.com/bitmark-inc/artregistry/merkle"
	"github.com/bitmark-inc/artregistry/record"
	"github.com/bitmark-inc/artregistry/storage"
	"github.com/bitmark-inc/artregistry/transaction"
)

const (
	cacheExpiration = 5 * time.Minute
	cacheCleanup    = 10 * time.Minute
)

type pools struct {
	Transactions *storage.PoolHandle `prefix:"T"`
	Unconsumed   *storage.PoolHandle `prefix:"U"`
	Consumed     *storage.PoolHandle `prefix:"C"`
	Records      *storage.PoolHandle `prefix:"R"`
	Versions     *storage.PoolHandle `prefix:"V"`
	VersionCount *storage.PoolHandle `prefix:"W"`
	Ownership    *storage.PoolHandle `prefix:"O"`
	Payments     *storage.PoolHandle `prefix:"H"`
}

// Vault - leveldb backed store of one party
type Vault struct {
	sync.RWMutex
	log      *logger.L
	owner    *account.Account
	notary   *account.Account
	database *storage.Database
	pools    pools
	live     *cache.Cache // record id → live collectible StateAndRef
}

// New - a vault for owner that accepts transactions stamped by notary
func New(owner *account.Account, notary *account.Account, database *storage.Database) (*Vault, error) {
	log := logger.New("vault")
	log.Infof("starting… owner: %s", owner)

	v := &Vault{
		log:      log,
		owner:    owner,
		notary:   notary,
		database: database,
		live:     cache.New(cacheExpiration, cacheCleanup),
	}
	err := database.Bind(&v.pools)
	if nil != err {
		return nil, err
	}
	return v, nil
}

// Owner - the party this vault belongs to
func (v *Vault) Owner() *account.Account {
	return v.owner
}

// Record - store a notarised transaction
//
// recording the same transaction again has no effect
func (v *Vault) Record(stx *transaction.Signed) error {
	err := stx.Complete()
	if nil != err {
		return err
	}
	err = stx.VerifyStamp(v.notary)
	if nil != err {
		return err
	}

	packed, err := json.Marshal(stx)
	if nil != err {
		return err
	}

	v.Lock()
	defer v.Unlock()

	if v.pools.Transactions.Has(stx.Id[:]) {
		v.log.Debugf("already recorded: %s", stx.Id)
		return nil
	}

	trx := v.database.NewTransaction()
	trx.Put(v.pools.Transactions, stx.Id[:], packed)

	for _, in := range stx.Tx.Inputs {
		key := in.Ref.Bytes()
		trx.Delete(v.pools.Unconsumed, key)
		trx.Put(v.pools.Consumed, key, stx.Id[:])

		switch in.Item.Kind() {
		case record.CollectibleKind:
			id := in.Item.Collectible.Id
			v.live.Delete(id.String())
			if current := trx.Get(v.pools.Records, id[:]); nil != current && string(current) == string(key) {
				trx.Delete(v.pools.Records, id[:])
			}
		case record.OwnershipKind:
			id := in.Item.Ownership.RecordId
			if current := trx.Get(v.pools.Ownership, id[:]); nil != current && string(current) == string(key) {
				trx.Delete(v.pools.Ownership, id[:])
			}
		case record.PaymentKind:
			trx.Delete(v.pools.Payments, paymentKey(in.Item.Payment, in.Ref))
		}
	}

	for _, produced := range stx.Produced() {
		key := produced.Ref.Bytes()
		item, err := json.Marshal(produced.Item)
		if nil != err {
			trx.Abort()
			return err
		}
		trx.Put(v.pools.Unconsumed, key, item)

		switch produced.Item.Kind() {
		case record.CollectibleKind:
			id := produced.Item.Collectible.Id
			v.live.Delete(id.String())
			trx.Put(v.pools.Records, id[:], key)
			count, _ := trx.GetN(v.pools.VersionCount, id[:])
			trx.Put(v.pools.Versions, versionKey(id, count), key)
			trx.PutN(v.pools.VersionCount, id[:], count+1)
		case record.OwnershipKind:
			id := produced.Item.Ownership.RecordId
			trx.Put(v.pools.Ownership, id[:], key)
		case record.PaymentKind:
			amount := make([]byte, 8)
			binary.BigEndian.PutUint64(amount, produced.Item.Payment.Amount)
			trx.Put(v.pools.Payments, paymentKey(produced.Item.Payment, produced.Ref), amount)
		}
	}

	err = trx.Commit()
	if nil != err {
		v.log.Errorf("record: %s  error: %s", stx.Id, err)
		return err
	}

	v.log.Infof("recorded: %s  command: %s", stx.Id, stx.Tx.Command)
	return nil
}

// FindLiveRecordById - the latest unconsumed version of a collectible
func (v *Vault) FindLiveRecordById(id uuid.UUID) (record.StateAndRef, error) {
	if cached, found := v.live.Get(id.String()); found {
		return cached.(record.StateAndRef), nil
	}

	v.RLock()
	defer v.RUnlock()

	key := v.pools.Records.Get(id[:])
	if nil == key {
		return record.StateAndRef{}, fault.ErrRecordNotFound
	}
	state, err := v.unconsumed(key)
	if nil != err {
		return record.StateAndRef{}, fault.ErrRecordNotFound
	}
	v.live.Set(id.String(), state, cache.DefaultExpiration)
	return state, nil
}

// FindOwnershipToken - the unconsumed ownership token of a record
func (v *Vault) FindOwnershipToken(recordId uuid.UUID) (record.StateAndRef, error) {
	v.RLock()
	defer v.RUnlock()

	key := v.pools.Ownership.Get(recordId[:])
	if nil == key {
		return record.StateAndRef{}, fault.ErrTokenNotFound
	}
	state, err := v.unconsumed(key)
	if nil != err {
		return record.StateAndRef{}, fault.ErrTokenNotFound
	}
	return state, nil
}

// FindSpendableTokens - unconsumed payment tokens of a holder in one currency
func (v *Vault) FindSpendableTokens(holder *account.Account, currency string) ([]record.StateAndRef, error) {
	v.RLock()
	defer v.RUnlock()

	tokens := make([]record.StateAndRef, 0, 8)
	err := v.pools.Payments.NewFetchCursor().
		Prefix(holderPrefix(holder, currency)).
		Map(func(key []byte, value []byte) error {
			ref := key[len(key)-merkle.DigestLength-4:]
			state, err := v.unconsumed(ref)
			if nil != err {
				return err
			}
			if state.Item.Payment.Holder.Equal(holder) {
				tokens = append(tokens, state)
			}
			return nil
		})
	if nil != err {
		return nil, err
	}
	return tokens, nil
}

// Balance - total of the spendable tokens of a holder in one currency
func (v *Vault) Balance(holder *account.Account, currency string) (uint64, error) {
	tokens, err := v.FindSpendableTokens(holder, currency)
	if nil != err {
		return 0, err
	}
	total := uint64(0)
	for _, token := range tokens {
		total += token.Item.Payment.Amount
	}
	return total, nil
}

// History - every version of a collectible, oldest first
func (v *Vault) History(id uuid.UUID) ([]*record.Collectible, error) {
	v.RLock()
	defer v.RUnlock()

	versions := make([]*record.Collectible, 0, 4)
	err := v.pools.Versions.NewFetchCursor().
		Prefix(id[:]).
		Map(func(key []byte, value []byte) error {
			state, err := v.state(value)
			if nil != err {
				return err
			}
			versions = append(versions, state.Item.Collectible)
			return nil
		})
	if nil != err {
		return nil, err
	}
	if 0 == len(versions) {
		return nil, fault.ErrRecordNotFound
	}
	return versions, nil
}

// Transaction - a recorded transaction by id
func (v *Vault) Transaction(txId merkle.Digest) (*transaction.Signed, error) {
	v.RLock()
	defer v.RUnlock()

	packed := v.pools.Transactions.Get(txId[:])
	if nil == packed {
		return nil, fault.ErrTransactionNotFound
	}
	var stx transaction.Signed
	err := json.Unmarshal(packed, &stx)
	if nil != err {
		return nil, err
	}
	return &stx, nil
}

// IsConsumed - true if a recorded transaction consumed the state
func (v *Vault) IsConsumed(ref record.Ref) bool {
	return v.pools.Consumed.Has(ref.Bytes())
}

// ensure lock is held before calling
func (v *Vault) unconsumed(refBytes []byte) (record.StateAndRef, error) {
	item := v.pools.Unconsumed.Get(refBytes)
	if nil == item {
		return record.StateAndRef{}, fault.ErrRecordNotFound
	}
	return decodeState(refBytes, item)
}

// the state at a ref whether or not it has been consumed
// ensure lock is held before calling
func (v *Vault) state(refBytes []byte) (record.StateAndRef, error) {
	state, err := v.unconsumed(refBytes)
	if nil == err {
		return state, nil
	}

	ref, err := record.RefFromBytes(refBytes)
	if nil != err {
		return record.StateAndRef{}, err
	}
	packed := v.pools.Transactions.Get(ref.TxId[:])
	if nil == packed {
		return record.StateAndRef{}, fault.ErrTransactionNotFound
	}
	var stx transaction.Signed
	err = json.Unmarshal(packed, &stx)
	if nil != err {
		return record.StateAndRef{}, err
	}
	if int(ref.Index) >= len(stx.Tx.Outputs) {
		return record.StateAndRef{}, fault.ErrRecordNotFound
	}
	return record.StateAndRef{Ref: ref, Item: stx.Tx.Outputs[ref.Index]}, nil
}

func decodeState(refBytes []byte, packed []byte) (record.StateAndRef, error) {
	ref, err := record.RefFromBytes(refBytes)
	if nil != err {
		return record.StateAndRef{}, err
	}
	state := record.StateAndRef{Ref: ref}
	err = json.Unmarshal(packed, &state.Item)
	if nil != err {
		return record.StateAndRef{}, err
	}
	return state, nil
}

func versionKey(id uuid.UUID, count uint64) []byte {
	key := make([]byte, len(id)+8)
	copy(key, id[:])
	binary.BigEndian.PutUint64(key[len(id):], count)
	return key
}

func holderPrefix(holder *account.Account, currency string) []byte {
	key := make([]byte, 0, len(holder.PublicKey)+len(currency)+1)
	key = append(key, holder.PublicKey...)
	key = append(key, currency...)
	return append(key, 0x00)
}

func paymentKey(p *record.Payment, ref record.Ref) []byte {
	return append(holderPrefix(p.Holder, p.Currency), ref.Bytes()...)
}
