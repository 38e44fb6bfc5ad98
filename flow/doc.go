// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package flow - the multi-party protocols
//
// A Node acts for one party.  Its initiator methods build a proposal,
// validate it locally, collect counter-signatures over sessions, have
// it notarised and then distribute the final transaction.  Its Run
// loop answers the sessions other parties open, and every responder
// re-validates a proposal against its own vault before signing.
//
// Nothing is written to any vault until the notary has stamped the
// transaction, so a flow that fails before notarisation leaves no trace.
package flow
