// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/artregistry/fault"
)

// Account - the identity of a party: a legal name bound to an ed25519 key
type Account struct {
	Name      string    `json:"name"`
	PublicKey PublicKey `json:"publicKey"`
}

// PublicKey - raw ed25519 public key, hex in text form
type PublicKey []byte

// New - make an account from a name and public key
func New(name string, publicKey []byte) (*Account, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.ErrInvalidKeyLength
	}
	k := make(PublicKey, len(publicKey))
	copy(k, publicKey)
	return &Account{
		Name:      name,
		PublicKey: k,
	}, nil
}

// CheckSignature - verify a signature over a message
func (account *Account) CheckSignature(message []byte, signature Signature) error {
	if nil == account || ed25519.PublicKeySize != len(account.PublicKey) {
		return fault.ErrNotPublicKey
	}
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(account.PublicKey), message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// Equal - identity comparison: both name and key must match
//
// nil only equals nil
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other {
		return account == other
	}
	return account.Name == other.Name && bytes.Equal(account.PublicKey, other.PublicKey)
}

// String - the legal name, for logging
func (account *Account) String() string {
	if nil == account {
		return "<nil>"
	}
	return account.Name
}

// GoString - name and key for %#v
func (account *Account) GoString() string {
	if nil == account {
		return "<account:nil>"
	}
	return "<account:" + account.Name + ":" + hex.EncodeToString(account.PublicKey) + ">"
}

// Contains - true if the account is a member of the list
func Contains(list []*Account, account *Account) bool {
	for _, a := range list {
		if a.Equal(account) {
			return true
		}
	}
	return false
}

// SameSet - true if both lists hold the same accounts, ignoring order
func SameSet(a []*Account, b []*Account) bool {
	for _, x := range a {
		if !Contains(b, x) {
			return false
		}
	}
	for _, x := range b {
		if !Contains(a, x) {
			return false
		}
	}
	return true
}

// MarshalText - convert a public key to hex
func (publicKey PublicKey) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(publicKey))
	b := make([]byte, size)
	hex.Encode(b, publicKey)
	return b, nil
}

// UnmarshalText - convert hex to a public key
func (publicKey *PublicKey) UnmarshalText(s []byte) error {
	k := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(k, s)
	if nil != err {
		return err
	}
	if ed25519.PublicKeySize != byteCount {
		return fault.ErrInvalidKeyLength
	}
	*publicKey = k[:byteCount]
	return nil
}
