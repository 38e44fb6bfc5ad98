// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/artregistry/fault"
)

// Command - the declared intent of a transaction
type Command int

// enumerate the commands
const (
	NullCommand   = Command(iota) // not a valid command
	CreateCommand = Command(iota) // first version of a collectible and its ownership token
	UpdateCommand = Command(iota) // supersede a collectible version
	IssueCommand  = Command(iota) // mint payment tokens
	MoveCommand   = Command(iota) // change holders of tokens

	// this item must be last
	InvalidCommand = Command(iota)
)

var commandNames = map[Command]string{
	CreateCommand: "create",
	UpdateCommand: "update",
	IssueCommand:  "issue",
	MoveCommand:   "move",
}

// String - lower case name
func (command Command) String() string {
	if name, ok := commandNames[command]; ok {
		return name
	}
	return "*unknown*"
}

// MarshalText - name for JSON
func (command Command) MarshalText() ([]byte, error) {
	name, ok := commandNames[command]
	if !ok {
		return nil, fault.ErrUnknownCommand
	}
	return []byte(name), nil
}

// UnmarshalText - name from JSON
func (command *Command) UnmarshalText(s []byte) error {
	for c, name := range commandNames {
		if name == string(s) {
			*command = c
			return nil
		}
	}
	return fault.ErrUnknownCommand
}
