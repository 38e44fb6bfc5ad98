// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package session - point to point message exchange between parties
//
// A Session is an ordered, reliable conversation between two parties
// about one flow.  Flows only use the Session and Endpoint interfaces;
// Network is an in-process implementation in which every message is
// copied through its JSON form so the parties never share memory.
package session
