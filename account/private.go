// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
	"io"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/artregistry/fault"
)

// PrivateKey - signing key of a party together with its public identity
type PrivateKey struct {
	account    *Account
	privateKey ed25519.PrivateKey
}

// NewPrivateKey - generate a fresh key pair for a named party
//
// random may be nil to use crypto/rand
func NewPrivateKey(name string, random io.Reader) (*PrivateKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(random)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		account: &Account{
			Name:      name,
			PublicKey: PublicKey(publicKey),
		},
		privateKey: privateKey,
	}, nil
}

// PrivateKeyFromSeed - deterministic key from a 32 byte hex seed
func PrivateKeyFromSeed(name string, hexSeed string) (*PrivateKey, error) {
	seed, err := hex.DecodeString(hexSeed)
	if nil != err {
		return nil, fault.ErrNotPrivateKey
	}
	if ed25519.SeedSize != len(seed) {
		return nil, fault.ErrInvalidKeyLength
	}
	privateKey := ed25519.NewKeyFromSeed(seed)
	return &PrivateKey{
		account: &Account{
			Name:      name,
			PublicKey: PublicKey(privateKey.Public().(ed25519.PublicKey)),
		},
		privateKey: privateKey,
	}, nil
}

// Account - the public identity for this key
func (privateKey *PrivateKey) Account() *Account {
	return privateKey.account
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.privateKey, message)
}
