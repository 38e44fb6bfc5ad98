// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/binary"

	"github.com/bitmark-inc/artregistry/account"
	"github.com/bitmark-inc/artregistry/fault"
	"github.com/bitmark-inc/artregistry/merkle"
)

// Stamp - the notary's attestation that a transaction's inputs were unspent
type Stamp struct {
	TxId      merkle.Digest     `json:"txId"`
	Notary    *account.Account  `json:"notary"`
	Sequence  uint64            `json:"sequence,string"` // strictly increasing per notary
	Signature account.Signature `json:"signature"`
}

// NewStamp - sign a transaction id at a sequence number
func NewStamp(key *account.PrivateKey, txId merkle.Digest, sequence uint64) *Stamp {
	return &Stamp{
		TxId:      txId,
		Notary:    key.Account(),
		Sequence:  sequence,
		Signature: key.Sign(stampMessage(txId, sequence)),
	}
}

// Verify - issued by the given notary with a valid signature
func (stamp *Stamp) Verify(notary *account.Account) error {
	if !stamp.Notary.Equal(notary) {
		return fault.ErrInvalidStamp
	}
	err := notary.CheckSignature(stampMessage(stamp.TxId, stamp.Sequence), stamp.Signature)
	if nil != err {
		return fault.ErrInvalidStamp
	}
	return nil
}

func stampMessage(txId merkle.Digest, sequence uint64) []byte {
	message := make([]byte, merkle.DigestLength+8)
	copy(message, txId[:])
	binary.BigEndian.PutUint64(message[merkle.DigestLength:], sequence)
	return message
}
