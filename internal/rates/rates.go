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
	"strings"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/components"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/msgs"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/confutil"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/log"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtconf"
)

// NewRateProvider builds the single rate provider for the process, from the configured type
func NewRateProvider(bgCtx context.Context, conf *rmtconf.RatesConfig) (components.RateProvider, error) {
	bgCtx = log.WithLogField(bgCtx, "component", "rates")
	base := baseProvider{
		bgCtx: bgCtx,
		pair:  strings.ToUpper(confutil.StringNotEmpty(conf.Pair, *rmtconf.RatesDefaults.Pair)),
	}
	providerType := confutil.StringNotEmpty(conf.Type, *rmtconf.RatesDefaults.Type)
	switch providerType {
	case rmtconf.RatesTypeStatic:
		return newStaticProvider(base, conf), nil
	case rmtconf.RatesTypeHTTP:
		return newHTTPProvider(base, conf)
	default:
		return nil, i18n.NewError(bgCtx, msgs.MsgRatesInvalidType, providerType)
	}
}

type baseProvider struct {
	bgCtx context.Context
	pair  string
}

func (bp *baseProvider) PreInit(components.PreInitComponents) error { return nil }

func (bp *baseProvider) PostInit(components.AllComponents) error { return nil }

func (bp *baseProvider) Start() error { return nil }

func (bp *baseProvider) Stop() {}

func (bp *baseProvider) Pair() string {
	return bp.pair
}

func (bp *baseProvider) checkPair(ctx context.Context, pair string) (string, error) {
	pair = strings.ToUpper(strings.TrimSpace(pair))
	if pair != bp.pair {
		return "", i18n.NewError(ctx, msgs.MsgRatesUnsupportedPair, pair, bp.pair)
	}
	return pair, nil
}
