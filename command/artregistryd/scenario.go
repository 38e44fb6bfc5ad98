// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/artregistry/fault"
	"github.com/bitmark-inc/artregistry/record"
)

type scenarioResult struct {
	RecordId      uuid.UUID `json:"recordId"`
	CreateTx      string    `json:"createTx"`
	BuyTx         string    `json:"buyTx"`
	Holder        string    `json:"holder"`
	SellerBalance uint64    `json:"sellerBalance,string"`
	BuyerBalance  uint64    `json:"buyerBalance,string"`
	ShortBuy      string    `json:"shortBuy"`
}

// create, fund and buy, then try to buy a second copy without enough funds
func runScenario(d *deployment, scenario ScenarioType, verbose bool) error {
	log := logger.New("main")

	if "" == scenario.Name {
		log.Info("no scenario configured")
		return nil
	}

	ctx := context.Background()
	roles := d.directory.Roles()
	creator := d.party(roles.Creator)
	issuer := d.party(roles.Issuer)
	buyer := d.party(roles.Buyer)

	price := record.Amount{
		Quantity: scenario.Price,
		Currency: scenario.Currency,
	}

	created, err := creator.node.CreateCollectible(ctx, scenario.Name, price, scenario.MediaURL)
	if nil != err {
		return err
	}
	id := created.Tx.Outputs[0].Collectible.Id
	printJson("created", created, verbose)

	_, err = issuer.node.IssuePayment(ctx, scenario.Funds, scenario.Currency, roles.Buyer)
	if nil != err {
		return err
	}

	bought, err := buyer.node.BuyCollectible(ctx, id)
	if nil != err {
		return err
	}
	printJson("bought", bought, verbose)

	token, err := buyer.vault.FindOwnershipToken(id)
	if nil != err {
		return err
	}
	sellerBalance, err := creator.vault.Balance(creator.key.Account(), scenario.Currency)
	if nil != err {
		return err
	}
	buyerBalance, err := buyer.vault.Balance(buyer.key.Account(), scenario.Currency)
	if nil != err {
		return err
	}

	result := scenarioResult{
		RecordId:      id,
		CreateTx:      created.Id.String(),
		BuyTx:         bought.Id.String(),
		Holder:        token.Item.Ownership.Holder.Name,
		SellerBalance: sellerBalance,
		BuyerBalance:  buyerBalance,
	}

	// a second collectible the buyer cannot afford
	second, err := creator.node.CreateCollectible(ctx, scenario.Name, price, scenario.MediaURL)
	if nil != err {
		return err
	}
	_, err = issuer.node.IssuePayment(ctx, scenario.ShortFunds, scenario.Currency, roles.Buyer)
	if nil != err {
		return err
	}
	_, err = buyer.node.BuyCollectible(ctx, second.Tx.Outputs[0].Collectible.Id)
	if !fault.IsErrInsufficientFunds(err) {
		return fmt.Errorf("expected insufficient funds, got: %v", err)
	}
	result.ShortBuy = err.Error()

	log.Infof("scenario: holder: %s  seller balance: %d  buyer balance: %d", result.Holder, sellerBalance, buyerBalance)
	printJson("result", result)
	return nil
}

func printJson(title string, message interface{}, print ...bool) {

	// check optional verbose flag
	if 0 != len(print) {
		if !print[0] {
			return
		}
	}
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Printf("%s: marshal error: %s\n", title, err)
		return
	}
	fmt.Printf("%s:\n%s\n", title, b)
}
