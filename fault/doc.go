// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Protocol outcomes that carry data (validation rule, counterparty
// rejection, insufficient funds, double-spend conflict) are distinct
// types so a caller can choose its retry strategy per kind.
package fault
