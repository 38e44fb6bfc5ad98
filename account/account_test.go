// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/artregistry/account"
	"github.com/bitmark-inc/artregistry/fault"
)

const (
	artistSeed   = "0101010101010101010101010101010101010101010101010101010101010101"
	registrySeed = "0202020202020202020202020202020202020202020202020202020202020202"
)

func TestSeedIsDeterministic(t *testing.T) {
	a, err := account.PrivateKeyFromSeed("Artist", artistSeed)
	assert.Nil(t, err, "seed error")
	b, err := account.PrivateKeyFromSeed("Artist", artistSeed)
	assert.Nil(t, err, "seed error")

	assert.True(t, a.Account().Equal(b.Account()), "same seed gave different accounts")

	_, err = account.PrivateKeyFromSeed("Artist", "0102")
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short seed accepted")

	_, err = account.PrivateKeyFromSeed("Artist", "not hex")
	assert.Equal(t, fault.ErrNotPrivateKey, err, "bad hex accepted")
}

func TestSignAndCheck(t *testing.T) {
	artist, _ := account.PrivateKeyFromSeed("Artist", artistSeed)
	registry, _ := account.PrivateKeyFromSeed("ArtRegistry", registrySeed)

	message := []byte("Bored Ape")
	signature := artist.Sign(message)

	assert.Nil(t, artist.Account().CheckSignature(message, signature), "valid signature rejected")
	assert.Equal(t, fault.ErrInvalidSignature, registry.Account().CheckSignature(message, signature), "wrong key accepted")
	assert.Equal(t, fault.ErrInvalidSignature, artist.Account().CheckSignature([]byte("other"), signature), "wrong message accepted")
	assert.Equal(t, fault.ErrInvalidSignature, artist.Account().CheckSignature(message, signature[:10]), "short signature accepted")
}

func TestEquality(t *testing.T) {
	artist, _ := account.PrivateKeyFromSeed("Artist", artistSeed)
	impostor, _ := account.PrivateKeyFromSeed("Artist", registrySeed)
	renamed, _ := account.PrivateKeyFromSeed("Someone", artistSeed)

	assert.False(t, artist.Account().Equal(impostor.Account()), "same name different key compared equal")
	assert.False(t, artist.Account().Equal(renamed.Account()), "same key different name compared equal")
	assert.False(t, artist.Account().Equal(nil), "nil compared equal")

	list := []*account.Account{impostor.Account(), artist.Account()}
	assert.True(t, account.Contains(list, artist.Account()), "member not found")
	assert.False(t, account.Contains(list, renamed.Account()), "non member found")
	assert.True(t, account.SameSet(list, []*account.Account{artist.Account(), impostor.Account()}), "order mattered")
	assert.False(t, account.SameSet(list, []*account.Account{artist.Account()}), "subset matched")
}

func TestJSON(t *testing.T) {
	artist, _ := account.PrivateKeyFromSeed("Artist", artistSeed)

	buffer, err := json.Marshal(artist.Account())
	assert.Nil(t, err, "marshal error")

	var a account.Account
	err = json.Unmarshal(buffer, &a)
	assert.Nil(t, err, "unmarshal error")
	assert.True(t, artist.Account().Equal(&a), "account changed over JSON")

	err = json.Unmarshal([]byte(`{"name":"x","publicKey":"0102"}`), &a)
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short key accepted")
}
