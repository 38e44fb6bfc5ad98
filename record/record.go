// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/google/uuid"

	"github.com/bitmark-inc/artregistry/account"
)

// DefaultPrecision - decimal digits used to display a price
const DefaultPrecision = 2

// Amount - a quantity of minor units of a currency
type Amount struct {
	Quantity uint64 `json:"quantity,string"` // number as string, in terms of smallest currency unit
	Currency string `json:"currency"`        // e.g. CHF
}

// Collectible - one version of a unique collectible record
type Collectible struct {
	Id          uuid.UUID          `json:"id"`          // immutable
	Name        string             `json:"name"`        // immutable
	Price       Amount             `json:"price"`       // mutable
	MediaURL    string             `json:"mediaUrl"`    // immutable
	Creator     *account.Account   `json:"creator"`     // immutable
	CoAttestor  *account.Account   `json:"coAttestor"`  // immutable
	Maintainers []*account.Account `json:"maintainers"` // mutable, never empty
	Precision   int                `json:"precision"`   // immutable
}

// Ownership - the right to a collectible, held by one party
type Ownership struct {
	TokenId  uuid.UUID        `json:"tokenId"`  // kept across moves
	RecordId uuid.UUID        `json:"recordId"` // points at the collectible lineage
	Holder   *account.Account `json:"holder"`
	Issuer   *account.Account `json:"issuer"` // the creator, for provenance
}

// Payment - a fungible amount of settlement currency
type Payment struct {
	Amount   uint64           `json:"amount,string"`
	Currency string           `json:"currency"`
	Issuer   *account.Account `json:"issuer"`
	Holder   *account.Account `json:"holder"`
}

// NewCollectible - the first version of a record
//
// the creator is the initial maintainer
func NewCollectible(name string, price Amount, mediaURL string, creator *account.Account, coAttestor *account.Account) *Collectible {
	return &Collectible{
		Id:          uuid.New(),
		Name:        name,
		Price:       price,
		MediaURL:    mediaURL,
		Creator:     creator,
		CoAttestor:  coAttestor,
		Maintainers: []*account.Account{creator},
		Precision:   DefaultPrecision,
	}
}

// Supersede - the next version of a record with new commercial terms
func (c *Collectible) Supersede(price Amount, maintainers []*account.Account) *Collectible {
	next := *c
	next.Price = price
	next.Maintainers = make([]*account.Account, len(maintainers))
	copy(next.Maintainers, maintainers)
	return &next
}

// Equal - every field identical
func (c *Collectible) Equal(other *Collectible) bool {
	if nil == c || nil == other {
		return c == other
	}
	if len(c.Maintainers) != len(other.Maintainers) {
		return false
	}
	for i := range c.Maintainers {
		if !c.Maintainers[i].Equal(other.Maintainers[i]) {
			return false
		}
	}
	return c.Id == other.Id &&
		c.Name == other.Name &&
		c.Price == other.Price &&
		c.MediaURL == other.MediaURL &&
		c.Creator.Equal(other.Creator) &&
		c.CoAttestor.Equal(other.CoAttestor) &&
		c.Precision == other.Precision
}

// NewOwnership - issue the single ownership token of a record
func NewOwnership(recordId uuid.UUID, holder *account.Account, issuer *account.Account) *Ownership {
	return &Ownership{
		TokenId:  uuid.New(),
		RecordId: recordId,
		Holder:   holder,
		Issuer:   issuer,
	}
}

// MoveTo - the same token with a new holder
func (o *Ownership) MoveTo(holder *account.Account) *Ownership {
	next := *o
	next.Holder = holder
	return &next
}

// Equal - every field identical
func (o *Ownership) Equal(other *Ownership) bool {
	if nil == o || nil == other {
		return o == other
	}
	return o.TokenId == other.TokenId &&
		o.RecordId == other.RecordId &&
		o.Holder.Equal(other.Holder) &&
		o.Issuer.Equal(other.Issuer)
}

// Equal - every field identical
func (p *Payment) Equal(other *Payment) bool {
	if nil == p || nil == other {
		return p == other
	}
	return p.Amount == other.Amount &&
		p.Currency == other.Currency &&
		p.Issuer.Equal(other.Issuer) &&
		p.Holder.Equal(other.Holder)
}
