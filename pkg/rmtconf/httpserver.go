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

type HTTPServerConfig struct {
	Address *string `json:"address"`
	Port    *int    `json:"port"`
	// every request is bounded by this, and the read/write timeouts default just above it
	RequestTimeout  *string `json:"requestTimeout"`
	ReadTimeout     *string `json:"readTimeout"`
	WriteTimeout    *string `json:"writeTimeout"`
	ShutdownTimeout *string `json:"shutdownTimeout"`
}

var HTTPDefaults = &HTTPServerConfig{
	Address:         confutil.P("127.0.0.1"),
	RequestTimeout:  confutil.P("30s"),
	ShutdownTimeout: confutil.P("10s"),
}

type MetricsServerConfig struct {
	Enabled *bool   `json:"enabled"`
	Path    *string `json:"path"`
	HTTPServerConfig
}

var MetricsServerDefaults = &MetricsServerConfig{
	Enabled: confutil.P(false),
	Path:    confutil.P("/metrics"),
	HTTPServerConfig: HTTPServerConfig{
		Port: confutil.P(9090),
	},
}
