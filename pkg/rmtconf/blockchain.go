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

type EthClientConfig struct {
	HTTP              HTTPClientConfig `json:"http"`
	GasEstimateFactor *float64         `json:"gasEstimateFactor"`
	StartupRetry      RetryConfig      `json:"startupRetry"`
	StartupAttempts   *int             `json:"startupAttempts"`
}

type HTTPBasicAuthConfig struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type HTTPClientConfig struct {
	URL               string              `json:"url"`
	HTTPHeaders       map[string]string   `json:"httpHeaders"`
	Auth              HTTPBasicAuthConfig `json:"auth"`
	RequestTimeout    *string             `json:"requestTimeout,omitempty"`
	ConnectionTimeout *string             `json:"connectionTimeout,omitempty"`
}

var DefaultHTTPConfig = &HTTPClientConfig{
	ConnectionTimeout: confutil.P("30s"),
	RequestTimeout:    confutil.P("30s"),
}

var EthClientDefaults = &EthClientConfig{
	HTTP: HTTPClientConfig{
		URL: "https://rpc-amoy.polygon.technology",
	},
	GasEstimateFactor: confutil.P(2.0),
	StartupRetry: RetryConfig{
		InitialDelay: confutil.P("500ms"),
		MaxDelay:     confutil.P("5s"),
		Factor:       confutil.P(2.0),
	},
	StartupAttempts: confutil.P(10),
}

type RetryConfig struct {
	InitialDelay *string  `json:"initialDelay"`
	MaxDelay     *string  `json:"maxDelay"`
	Factor       *float64 `json:"factor"`
}

var GenericRetryDefaults = &RetryConfig{
	InitialDelay: confutil.P("250ms"),
	MaxDelay:     confutil.P("30s"),
	Factor:       confutil.P(2.0),
}
