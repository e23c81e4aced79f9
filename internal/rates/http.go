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

	"github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/shopspring/decimal"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/msgs"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/cache"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/confutil"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/log"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtapi"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtconf"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtresty"
)

type quote struct {
	rate decimal.Decimal
	asOf time.Time
}

type rateResponse struct {
	Pair      string            `json:"pair"`
	Rate      *decimal.Decimal  `json:"rate"`
	Timestamp *rmtapi.Timestamp `json:"timestamp"`
}

type httpProvider struct {
	baseProvider
	client *resty.Client
	path   string
	quotes cache.Cache[string, *quote]
}

func newHTTPProvider(base baseProvider, conf *rmtconf.RatesConfig) (*httpProvider, error) {
	if conf.HTTP.URL == "" {
		return nil, i18n.NewError(base.bgCtx, msgs.MsgRatesMissingURL)
	}
	client, err := rmtresty.New(base.bgCtx, &conf.HTTP)
	if err != nil {
		return nil, err
	}
	hp := &httpProvider{
		baseProvider: base,
		client:       client,
		path:         confutil.StringNotEmpty(conf.Path, *rmtconf.RatesDefaults.Path),
		quotes:       cache.NewCache[string, *quote](&conf.Cache, &rmtconf.RatesDefaults.Cache),
	}
	log.L(base.bgCtx).Infof("HTTP rate provider %s pair=%s ttl=%s", conf.HTTP.URL, hp.pair, hp.quotes.TTL())
	return hp, nil
}

func (hp *httpProvider) CurrentRate(ctx context.Context, pair string) (decimal.Decimal, time.Time, error) {
	pair, err := hp.checkPair(ctx, pair)
	if err != nil {
		return decimal.Zero, time.Time{}, err
	}
	if q, ok := hp.quotes.Get(pair); ok {
		log.L(ctx).Debugf("Cached rate %s=%s asOf=%s", pair, q.rate, q.asOf)
		return q.rate, q.asOf, nil
	}

	var rr rateResponse
	res, err := hp.client.R().
		SetContext(ctx).
		SetQueryParam("pair", pair).
		SetResult(&rr).
		Get(hp.path)
	if err != nil {
		return decimal.Zero, time.Time{}, i18n.WrapError(ctx, err, msgs.MsgRatesRequestFailed, pair, -1, err.Error())
	}
	if res.IsError() {
		return decimal.Zero, time.Time{}, i18n.NewError(ctx, msgs.MsgRatesRequestFailed, pair, res.StatusCode(), rmtresty.ErrorBody(res))
	}
	if rr.Rate == nil || !rr.Rate.IsPositive() || (rr.Pair != "" && rr.Pair != pair) {
		return decimal.Zero, time.Time{}, i18n.NewError(ctx, msgs.MsgRatesInvalidRate, pair, string(res.Body()))
	}

	q := &quote{rate: *rr.Rate, asOf: time.Now()}
	if rr.Timestamp != nil && *rr.Timestamp != 0 {
		q.asOf = rr.Timestamp.Time()
	}
	hp.quotes.Set(pair, q)
	log.L(ctx).Infof("Fetched rate %s=%s asOf=%s", pair, q.rate, q.asOf)
	return q.rate, q.asOf, nil
}
