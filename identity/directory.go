// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identity - resolve legal names and deployment roles to accounts
package identity

import (
	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/artregistry/account"
	"github.com/bitmark-inc/artregistry/fault"
)

// Roles - the party name designated for each role of a deployment
type Roles struct {
	Creator   string   // sole party allowed to create collectibles
	Registry  string   // co-attestor of every creation
	Buyer     string   // sole party allowed to buy
	Issuer    string   // settlement currency issuer
	Notary    string   // double-spend authority
	Observers []string // informed of creations; defaults to the buyer
}

// Directory - the known parties of a network
type Directory struct {
	log     *logger.L
	roles   Roles
	parties *cache.Cache
}

// NewDirectory - an empty directory for a set of roles
func NewDirectory(roles Roles) *Directory {
	if 0 == len(roles.Observers) && "" != roles.Buyer {
		roles.Observers = []string{roles.Buyer}
	}

	log := logger.New("identity")
	log.Infof("starting… creator: %s  registry: %s  buyer: %s  issuer: %s  notary: %s", roles.Creator, roles.Registry, roles.Buyer, roles.Issuer, roles.Notary)

	return &Directory{
		log:     log,
		roles:   roles,
		parties: cache.New(cache.NoExpiration, 0),
	}
}

// Register - add a party
//
// registering the same account again is harmless; a different key under
// a known name is refused
func (d *Directory) Register(a *account.Account) error {
	err := d.parties.Add(a.Name, a, cache.NoExpiration)
	if nil == err {
		d.log.Debugf("register: %s", a.Name)
		return nil
	}
	existing, _ := d.ResolveParty(a.Name)
	if existing.Equal(a) {
		return nil
	}
	return fault.ErrPartyExists
}

// ResolveParty - the account registered under a legal name
func (d *Directory) ResolveParty(name string) (*account.Account, error) {
	if a, found := d.parties.Get(name); found {
		return a.(*account.Account), nil
	}
	return nil, fault.ErrPartyNotFound
}

// Roles - the role assignment of the deployment
func (d *Directory) Roles() Roles {
	return d.roles
}

// Creator - the account of the creator role
func (d *Directory) Creator() (*account.Account, error) {
	return d.ResolveParty(d.roles.Creator)
}

// Registry - the account of the co-attestor role
func (d *Directory) Registry() (*account.Account, error) {
	return d.ResolveParty(d.roles.Registry)
}

// Buyer - the account of the buyer role
func (d *Directory) Buyer() (*account.Account, error) {
	return d.ResolveParty(d.roles.Buyer)
}

// Issuer - the account of the settlement issuer role
func (d *Directory) Issuer() (*account.Account, error) {
	return d.ResolveParty(d.roles.Issuer)
}

// Notary - the account of the double-spend authority
func (d *Directory) Notary() (*account.Account, error) {
	return d.ResolveParty(d.roles.Notary)
}

// Observers - the accounts informed of creations
func (d *Directory) Observers() ([]*account.Account, error) {
	observers := make([]*account.Account, 0, len(d.roles.Observers))
	for _, name := range d.roles.Observers {
		a, err := d.ResolveParty(name)
		if nil != err {
			return nil, err
		}
		observers = append(observers, a)
	}
	return observers, nil
}
