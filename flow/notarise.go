// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package flow

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/bitmark-inc/artregistry/fault"
	"github.com/bitmark-inc/artregistry/transaction"
)

// obtain a stamp, retrying only while the authority is unavailable
//
// any other refusal is final; on success the stamp is attached to stx
func (n *Node) notarise(ctx context.Context, stx *transaction.Signed) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = n.config.Retry.InitialInterval
	b.MaxInterval = n.config.Retry.MaxInterval
	b.MaxElapsedTime = n.config.Retry.MaxElapsedTime

	var policy backoff.BackOff = b
	if n.config.Retry.MaxRetries > 0 {
		policy = backoff.WithMaxRetries(policy, n.config.Retry.MaxRetries)
	}

	var stamp *transaction.Stamp
	operation := func() error {
		var err error
		stamp, err = n.authority.Notarise(ctx, stx)
		if nil == err {
			return nil
		}
		if fault.ErrAuthorityUnavailable == err {
			return err
		}
		return backoff.Permanent(err)
	}
	notify := func(err error, wait time.Duration) {
		n.log.Warnf("tx: %s  notarise error: %s  retry in: %s", stx.Id, err, wait)
	}

	err := backoff.RetryNotify(operation, backoff.WithContext(policy, ctx), notify)
	if nil != err {
		n.log.Errorf("tx: %s  notarise error: %s", stx.Id, err)
		return err
	}

	stx.Stamp = stamp
	n.log.Infof("tx: %s  notarised  sequence: %d", stx.Id, stamp.Sequence)
	return nil
}
