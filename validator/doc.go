// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package validator - the state transition rules
//
// Every function here is pure: it sees only the proposal (and, for an
// update, the prior version held by the caller) and returns the first
// violated rule as a fault.ValidationError.  The initiator, each
// counterparty and the notary all run the same checks.
package validator
