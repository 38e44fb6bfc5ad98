// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"

	"github.com/bitmark-inc/artregistry/account"
	"github.com/bitmark-inc/artregistry/merkle"
)

// Kind - which state an item holds
type Kind int

// the state kinds
const (
	NullKind        = Kind(iota)
	CollectibleKind = Kind(iota)
	OwnershipKind   = Kind(iota)
	PaymentKind     = Kind(iota)
)

func (k Kind) String() string {
	switch k {
	case CollectibleKind:
		return "Collectible"
	case OwnershipKind:
		return "Ownership"
	case PaymentKind:
		return "Payment"
	default:
		return "*unknown*"
	}
}

// Item - exactly one state; the kind is given by which field is set
type Item struct {
	Collectible *Collectible `json:"collectible,omitempty"`
	Ownership   *Ownership   `json:"ownership,omitempty"`
	Payment     *Payment     `json:"payment,omitempty"`
}

// Kind - the kind of state held, NullKind if none or more than one
func (item Item) Kind() Kind {
	kind := NullKind
	n := 0
	if nil != item.Collectible {
		kind = CollectibleKind
		n += 1
	}
	if nil != item.Ownership {
		kind = OwnershipKind
		n += 1
	}
	if nil != item.Payment {
		kind = PaymentKind
		n += 1
	}
	if 1 != n {
		return NullKind
	}
	return kind
}

// Participants - parties that hold or maintain the state
func (item Item) Participants() []*account.Account {
	switch item.Kind() {
	case CollectibleKind:
		return item.Collectible.Maintainers
	case OwnershipKind:
		return []*account.Account{item.Ownership.Holder}
	case PaymentKind:
		return []*account.Account{item.Payment.Holder}
	default:
		return nil
	}
}

// Equal - same kind and same content
func (item Item) Equal(other Item) bool {
	return item.Collectible.Equal(other.Collectible) &&
		item.Ownership.Equal(other.Ownership) &&
		item.Payment.Equal(other.Payment)
}

// Hash - digest of the canonical form
func (item Item) Hash() (merkle.Digest, error) {
	packed, err := Canonical(item)
	if nil != err {
		return merkle.Digest{}, err
	}
	return merkle.NewDigest(packed), nil
}

// Ref - identifies one output of a notarised transaction
type Ref struct {
	TxId  merkle.Digest `json:"txId"`
	Index uint32        `json:"index"`
}

// String - txid:index
func (ref Ref) String() string {
	return fmt.Sprintf("%s:%d", ref.TxId, ref.Index)
}

// Bytes - storage key form
func (ref Ref) Bytes() []byte {
	buffer := make([]byte, merkle.DigestLength+4)
	copy(buffer, ref.TxId[:])
	binary.BigEndian.PutUint32(buffer[merkle.DigestLength:], ref.Index)
	return buffer
}

// RefFromBytes - inverse of Bytes
func RefFromBytes(buffer []byte) (Ref, error) {
	ref := Ref{}
	if merkle.DigestLength+4 != len(buffer) {
		return ref, merkle.ErrNotDigest
	}
	err := merkle.DigestFromBytes(&ref.TxId, buffer[:merkle.DigestLength])
	ref.Index = binary.BigEndian.Uint32(buffer[merkle.DigestLength:])
	return ref, err
}

// StateAndRef - a state together with the output that produced it
type StateAndRef struct {
	Ref  Ref  `json:"ref"`
	Item Item `json:"item"`
}

// Canonical - RFC 8785 canonical JSON of any record value
func Canonical(v interface{}) ([]byte, error) {
	buffer, err := json.Marshal(v)
	if nil != err {
		return nil, err
	}
	return jcs.Transform(buffer)
}
