// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/artregistry/account"
	"github.com/bitmark-inc/artregistry/flow"
	"github.com/bitmark-inc/artregistry/identity"
	"github.com/bitmark-inc/artregistry/notary"
	"github.com/bitmark-inc/artregistry/session"
	"github.com/bitmark-inc/artregistry/storage"
	"github.com/bitmark-inc/artregistry/vault"
)

type party struct {
	key      *account.PrivateKey
	database *storage.Database
	vault    *vault.Vault
	node     *flow.Node
}

type deployment struct {
	directory *identity.Directory
	network   *session.Network
	database  *storage.Database
	notary    *notary.Service
	parties   map[string]*party
}

// every configured party except the notary runs a node
func initialise(configuration *Configuration) (*deployment, error) {
	d := &deployment{
		directory: identity.NewDirectory(configuration.roles()),
		network:   session.NewNetwork(),
		parties:   make(map[string]*party),
	}

	keys := make(map[string]*account.PrivateKey)
	for _, p := range configuration.Parties {
		key, err := account.PrivateKeyFromSeed(p.Name, p.Seed)
		if nil != err {
			return nil, err
		}
		err = d.directory.Register(key.Account())
		if nil != err {
			return nil, err
		}
		keys[p.Name] = key
	}

	notaryKey := keys[configuration.Roles.Notary]
	issuer, err := d.directory.Issuer()
	if nil != err {
		return nil, err
	}

	d.database, err = openDatabase(configuration, "notary")
	if nil != err {
		return nil, err
	}
	limiter := rate.NewLimiter(rate.Limit(configuration.Notary.RateLimit), configuration.Notary.Burst)
	d.notary, err = notary.New(notaryKey, issuer, d.database, limiter)
	if nil != err {
		d.finalise()
		return nil, err
	}

	for _, p := range configuration.Parties {
		if p.Name == configuration.Roles.Notary {
			continue
		}
		key := keys[p.Name]

		database, err := openDatabase(configuration, p.Name)
		if nil != err {
			d.finalise()
			return nil, err
		}
		v, err := vault.New(key.Account(), notaryKey.Account(), database)
		if nil != err {
			database.Close()
			d.finalise()
			return nil, err
		}
		endpoint, err := d.network.Join(p.Name)
		if nil != err {
			database.Close()
			d.finalise()
			return nil, err
		}

		d.parties[p.Name] = &party{
			key:      key,
			database: database,
			vault:    v,
			node:     flow.New(key, d.directory, endpoint, v, d.notary, configuration.flow),
		}
	}
	return d, nil
}

func openDatabase(configuration *Configuration, name string) (*storage.Database, error) {
	if configuration.Database.Memory {
		return storage.OpenMemory()
	}
	return storage.Open(filepath.Join(configuration.Database.Directory, name+".leveldb"), false)
}

func (d *deployment) finalise() {
	for name, p := range d.parties {
		p.node.Close()
		p.database.Close()
		d.network.Leave(name)
	}
	if nil != d.database {
		d.database.Close()
	}
}

func (d *deployment) party(name string) *party {
	return d.parties[name]
}
