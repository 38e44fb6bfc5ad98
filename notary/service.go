// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notary

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/artregistry/account"
	"github.com/bitmark-inc/artregistry/fault"
	"github.com/bitmark-inc/artregistry/merkle"
	"github.com/bitmark-inc/artregistry/record"
	"github.com/bitmark-inc/artregistry/storage"
	"github.com/bitmark-inc/artregistry/transaction"
	"github.com/bitmark-inc/artregistry/validator"
)

var sequenceKey = []byte("sequence")

type pools struct {
	Produced *storage.PoolHandle `prefix:"P"`
	Spent    *storage.PoolHandle `prefix:"S"`
	Stamps   *storage.PoolHandle `prefix:"T"`
	Records  *storage.PoolHandle `prefix:"R"`
	Issued   *storage.PoolHandle `prefix:"I"`
	Counters *storage.PoolHandle `prefix:"N"`
}

// Service - leveldb backed authority
type Service struct {
	sync.Mutex
	log       *logger.L
	key       *account.PrivateKey
	issuer    *account.Account
	database  *storage.Database
	pools     pools
	limiter   *rate.Limiter
	suspended bool
}

// New - create a notary over its own database
//
// issuer is the only party whose payment tokens are stamped; limiter
// may be nil for unlimited admission
func New(key *account.PrivateKey, issuer *account.Account, database *storage.Database, limiter *rate.Limiter) (*Service, error) {
	log := logger.New("notary")
	log.Info("starting…")

	s := &Service{
		log:      log,
		key:      key,
		issuer:   issuer,
		database: database,
		limiter:  limiter,
	}
	err := database.Bind(&s.pools)
	if nil != err {
		return nil, err
	}
	return s, nil
}

// Account - identity that signs the stamps
func (s *Service) Account() *account.Account {
	return s.key.Account()
}

// Suspend - refuse notarisation with fault.ErrAuthorityUnavailable
func (s *Service) Suspend() {
	s.Lock()
	s.suspended = true
	s.Unlock()
	s.log.Warn("suspended")
}

// Resume - accept notarisation again
func (s *Service) Resume() {
	s.Lock()
	s.suspended = false
	s.Unlock()
	s.log.Info("resumed")
}

// Notarise - stamp a complete transaction whose inputs are all unspent
func (s *Service) Notarise(ctx context.Context, stx *transaction.Signed) (*transaction.Stamp, error) {

	if nil != s.limiter {
		err := s.limiter.Wait(ctx)
		if nil != err {
			if nil != ctx.Err() {
				return nil, ctx.Err()
			}
			return nil, fault.ErrAuthorityUnavailable
		}
	}

	err := stx.Complete()
	if nil != err {
		return nil, err
	}
	if stx.Tx.Notary != s.key.Account().Name {
		return nil, fault.ErrWrongNotary
	}
	err = validator.Verify(stx.Tx)
	if nil != err {
		return nil, err
	}

	// critical code - the single linearisation point
	s.Lock()
	defer s.Unlock()

	if s.suspended {
		return nil, fault.ErrAuthorityUnavailable
	}

	// same transaction again gets the same stamp
	if stamp, err := s.stamp(stx.Id); nil == err {
		s.log.Debugf("repeat: %s", stx.Id)
		return stamp, nil
	}

	err = s.checkInputs(stx)
	if nil != err {
		return nil, err
	}
	err = s.checkOutputs(stx)
	if nil != err {
		return nil, err
	}

	trx := s.database.NewTransaction()

	for _, in := range stx.Tx.Inputs {
		trx.Put(s.pools.Spent, in.Ref.Bytes(), stx.Id[:])
	}
	for _, produced := range stx.Produced() {
		hash, err := produced.Item.Hash()
		if nil != err {
			trx.Abort()
			return nil, err
		}
		trx.Put(s.pools.Produced, produced.Ref.Bytes(), hash[:])

		if transaction.CreateCommand != stx.Tx.Command {
			continue
		}
		switch produced.Item.Kind() {
		case record.CollectibleKind:
			id := produced.Item.Collectible.Id
			trx.Put(s.pools.Records, id[:], stx.Id[:])
		case record.OwnershipKind:
			id := produced.Item.Ownership.RecordId
			trx.Put(s.pools.Issued, id[:], stx.Id[:])
		}
	}

	sequence, _ := trx.GetN(s.pools.Counters, sequenceKey)
	sequence += 1
	trx.PutN(s.pools.Counters, sequenceKey, sequence)

	stamp := transaction.NewStamp(s.key, stx.Id, sequence)
	packed, err := json.Marshal(stamp)
	if nil != err {
		trx.Abort()
		return nil, err
	}
	trx.Put(s.pools.Stamps, stx.Id[:], packed)

	err = trx.Commit()
	if nil != err {
		s.log.Errorf("commit: %s  error: %s", stx.Id, err)
		return nil, err
	}

	s.log.Infof("stamped: %s  command: %s  sequence: %d", stx.Id, stx.Tx.Command, sequence)
	return stamp, nil
}

// every input must be an unspent output with exactly the produced content
// ensure lock is held before calling
func (s *Service) checkInputs(stx *transaction.Signed) error {
	spent := make([]string, 0, len(stx.Tx.Inputs))
	for _, in := range stx.Tx.Inputs {
		key := in.Ref.Bytes()
		produced := s.pools.Produced.Get(key)
		if nil == produced {
			return fault.ErrUnknownInput
		}
		hash, err := in.Item.Hash()
		if nil != err {
			return err
		}
		if !bytes.Equal(hash[:], produced) {
			return fault.ErrInputMismatch
		}
		if s.pools.Spent.Has(key) {
			spent = append(spent, in.Ref.String())
		}
	}
	if 0 != len(spent) {
		s.log.Warnf("conflict: %s  spent: %v", stx.Id, spent)
		return &fault.ConflictError{Spent: spent}
	}
	return nil
}

// one record per id, one ownership token per record, payments only
// from the settlement issuer
// ensure lock is held before calling
func (s *Service) checkOutputs(stx *transaction.Signed) error {
	for _, out := range stx.Tx.Outputs {
		switch out.Kind() {
		case record.CollectibleKind:
			id := out.Collectible.Id
			if transaction.CreateCommand == stx.Tx.Command && s.pools.Records.Has(id[:]) {
				return fault.ErrRecordExists
			}
		case record.OwnershipKind:
			id := out.Ownership.RecordId
			switch stx.Tx.Command {
			case transaction.CreateCommand:
				if s.pools.Issued.Has(id[:]) {
					return fault.ErrOwnershipAlreadyIssued
				}
			case transaction.MoveCommand:
				if !s.pools.Issued.Has(id[:]) {
					return fault.ErrRecordNotFound
				}
			default:
				return fault.ErrOwnershipNotIssuable
			}
		case record.PaymentKind:
			if transaction.IssueCommand == stx.Tx.Command && !out.Payment.Issuer.Equal(s.issuer) {
				s.log.Warnf("refused: %s  payment issuer: %s", stx.Id, out.Payment.Issuer)
				return fault.ErrNotDesignatedIssuer
			}
		}
	}
	return nil
}

// Stamp - the stamp previously issued for a transaction
func (s *Service) Stamp(txId merkle.Digest) (*transaction.Stamp, error) {
	s.Lock()
	defer s.Unlock()
	return s.stamp(txId)
}

// ensure lock is held before calling
func (s *Service) stamp(txId merkle.Digest) (*transaction.Stamp, error) {
	packed := s.pools.Stamps.Get(txId[:])
	if nil == packed {
		return nil, fault.ErrTransactionNotFound
	}
	var stamp transaction.Stamp
	err := json.Unmarshal(packed, &stamp)
	if nil != err {
		return nil, err
	}
	return &stamp, nil
}

// IsSpent - true if a stamped transaction consumed the output
func (s *Service) IsSpent(ref record.Ref) bool {
	return s.pools.Spent.Has(ref.Bytes())
}
