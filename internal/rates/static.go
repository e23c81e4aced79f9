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

package rates

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/confutil"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/log"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtconf"
)

type staticProvider struct {
	baseProvider
	rate decimal.Decimal
}

func newStaticProvider(base baseProvider, conf *rmtconf.RatesConfig) *staticProvider {
	sp := &staticProvider{
		baseProvider: base,
		rate:         confutil.Decimal(conf.StaticRate, *rmtconf.RatesDefaults.StaticRate),
	}
	log.L(base.bgCtx).Infof("Static rate %s=%s", sp.pair, sp.rate)
	return sp
}

func (sp *staticProvider) CurrentRate(ctx context.Context, pair string) (decimal.Decimal, time.Time, error) {
	if _, err := sp.checkPair(ctx, pair); err != nil {
		return decimal.Zero, time.Time{}, err
	}
	return sp.rate, time.Now(), nil
}
