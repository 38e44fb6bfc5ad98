// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/artregistry/fault"
)

var (
	ErrExistsOne        = fault.ExistsError("exists one ")
	ErrExistsTwo        = fault.ExistsError("exists two")
	ErrInvalidOne       = fault.InvalidError("invalid one")
	ErrInvalidTwo       = fault.InvalidError("invalid two")
	ErrNotFoundOne      = fault.NotFoundError("not found one")
	ErrNotFoundTwo      = fault.NotFoundError("not found two")
	ErrProcessOne       = fault.ProcessError("process one")
	ErrProcessTwo       = fault.ProcessError("process two")
	ErrAuthorisationOne = fault.AuthorisationError("authorisation one")
	ErrRejectionOne     = fault.RejectionError("rejection one")
)

// test that the various error classes can be distinguished
func TestClasses(t *testing.T) {
	errorList := []struct {
		err           error
		exists        bool
		invalid       bool
		notFound      bool
		process       bool
		authorisation bool
		rejection     bool
	}{
		{ErrExistsOne, true, false, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false, false},
		{ErrNotFoundOne, false, false, true, false, false, false},
		{ErrNotFoundTwo, false, false, true, false, false, false},
		{ErrProcessOne, false, false, false, true, false, false},
		{ErrProcessTwo, false, false, false, true, false, false},
		{ErrAuthorisationOne, false, false, false, false, true, false},
		{ErrRejectionOne, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrAuthorisation(err) != e.authorisation {
			t.Errorf("%d: expected 'authorisation' == %v for err = %v", i, e.authorisation, err)
		}
		if fault.IsErrRejection(err) != e.rejection {
			t.Errorf("%d: expected 'rejection' == %v for err = %v", i, e.rejection, err)
		}
	}
}

func TestValidationErrorNamesFieldAndRule(t *testing.T) {
	err := error(fault.ErrNameEmpty)

	assert.True(t, fault.IsErrValidation(err), "not a validation error")
	assert.Equal(t, "name: name cannot be empty", err.Error(), "wrong text")
	assert.Equal(t, fault.ErrNameEmpty, err, "sentinel not comparable")
	assert.NotEqual(t, fault.ErrURLEmpty, err, "different rules compare equal")

	wrapped := fmt.Errorf("create: %w", err)
	assert.True(t, fault.IsErrValidation(wrapped), "wrapped validation error lost")
	assert.False(t, fault.IsErrValidation(ErrInvalidOne), "invalid error classed as validation")
}

func TestCounterpartyRejectionUnwrapsReason(t *testing.T) {
	err := error(&fault.CounterpartyRejection{
		Party:  "Artist",
		Reason: fault.RejectionError(fault.ErrPaymentAmountMismatch.Error()),
	})

	assert.True(t, fault.IsErrCounterpartyRejection(err), "not a rejection")
	assert.True(t, errors.Is(err, fault.ErrPaymentAmountMismatch), "reason lost after transport")
	assert.False(t, errors.Is(err, fault.ErrPaymentMissing), "matched the wrong reason")
	assert.Contains(t, err.Error(), "Artist", "party not named")
}

func TestDistinctProtocolOutcomes(t *testing.T) {
	funds := error(&fault.InsufficientFunds{Currency: "CHF", Required: 1000, Available: 1})
	conflict := error(&fault.ConflictError{Spent: []string{"abc:0"}})

	assert.True(t, fault.IsErrInsufficientFunds(funds), "funds not detected")
	assert.False(t, fault.IsErrConflict(funds), "funds classed as conflict")
	assert.True(t, fault.IsErrConflict(conflict), "conflict not detected")
	assert.False(t, fault.IsErrInsufficientFunds(conflict), "conflict classed as funds")
	assert.Contains(t, conflict.Error(), "abc:0", "spent input not named")
	assert.Contains(t, funds.Error(), "CHF", "currency not named")
	assert.True(t, fault.IsErrAuthorisation(fault.ErrNotBuyer), "not buyer is not authorisation")
	assert.True(t, fault.IsErrProcess(fault.ErrAuthorityUnavailable), "unavailable is not a process error")
}
