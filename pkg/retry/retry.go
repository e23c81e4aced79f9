// Copyright © 2024 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package retry

import (
	"context"
	"time"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/msgs"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/confutil"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/log"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtconf"
)

// Retry is an exponential backoff, used for polling the ledger for receipts
type Retry struct {
	initialDelay time.Duration
	maxDelay     time.Duration
	factor       float64
	maxAttempts  int
}

func NewRetryIndefinite(conf *rmtconf.RetryConfig, defaults ...*rmtconf.RetryConfig) *Retry {
	def := rmtconf.GenericRetryDefaults
	if len(defaults) > 0 {
		def = defaults[0]
	}
	return &Retry{
		initialDelay: confutil.DurationMin(conf.InitialDelay, 0, *def.InitialDelay),
		maxDelay:     confutil.DurationMin(conf.MaxDelay, 0, *def.MaxDelay),
		factor:       confutil.Float64Min(conf.Factor, 1.0, *def.Factor),
	}
}

func NewRetryLimited(conf *rmtconf.RetryConfig, maxAttempts int, defaults ...*rmtconf.RetryConfig) *Retry {
	r := NewRetryIndefinite(conf, defaults...)
	r.maxAttempts = maxAttempts
	return r
}

// Do invokes the function until it returns nil, a non-retryable error, the attempts
// are exhausted, or the context is done
func (r *Retry) Do(ctx context.Context, do func(attempt int) (retryable bool, err error)) error {
	attempt := 0
	for {
		attempt++
		retry, err := do(attempt)
		if err != nil {
			log.L(ctx).Debugf("%s (attempt=%d)", err, attempt)
		}
		if !retry || err == nil || (r.maxAttempts > 0 && attempt >= r.maxAttempts) {
			return err
		}
		if err := r.WaitDelay(ctx, attempt); err != nil {
			return err
		}
	}
}

func (r *Retry) Delay(failureCount int) time.Duration {
	retryDelay := r.initialDelay
	for i := 0; i < (failureCount - 1); i++ {
		retryDelay = time.Duration(float64(retryDelay) * r.factor)
		if retryDelay > r.maxDelay {
			return r.maxDelay
		}
	}
	return retryDelay
}

func (r *Retry) WaitDelay(ctx context.Context, failureCount int) error {
	if failureCount > 0 {
		retryDelay := r.Delay(failureCount)
		log.L(ctx).Tracef("Retrying after %.2fs (failures=%d)", retryDelay.Seconds(), failureCount)
		select {
		case <-time.After(retryDelay):
		case <-ctx.Done():
			return i18n.NewError(ctx, msgs.MsgContextCanceled)
		}
	}
	return nil
}
