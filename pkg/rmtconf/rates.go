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

package rmtconf

import "github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/confutil"

const (
	RatesTypeStatic = "static"
	RatesTypeHTTP   = "http"
)

type RatesConfig struct {
	Type *string `json:"type"`
	// the currency pair quoted, such as "USD/COP"
	Pair       *string          `json:"pair"`
	StaticRate *string          `json:"staticRate"`
	HTTP       HTTPClientConfig `json:"http"`
	// path on the HTTP endpoint queried with ?pair=, returning {"pair","rate","timestamp"}
	Path  *string     `json:"path"`
	Cache CacheConfig `json:"cache"`
}

type CacheConfig struct {
	Capacity *int    `json:"capacity"`
	TTL      *string `json:"ttl"`
}

var RatesDefaults = &RatesConfig{
	Type:       confutil.P(RatesTypeStatic),
	Pair:       confutil.P("USD/COP"),
	StaticRate: confutil.P("4150.0000"),
	Path:       confutil.P("/rates"),
	Cache: CacheConfig{
		Capacity: confutil.P(100),
		TTL:      confutil.P("1m"),
	},
}
