// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - proposals, signatures and notary stamps
//
// A Transaction is the unsigned bundle of consumed states, produced
// states and required signers.  Its packed form is RFC 8785 canonical
// JSON so every party derives the same id from the same content, and
// each signature is over that id.
//
// A Signed transaction becomes final only when it carries a Stamp from
// the notary; until then it may be discarded with no ledger effect.
package transaction
