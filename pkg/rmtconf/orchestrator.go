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

type OrchestratorConfig struct {
	// upper bound on how long a caller waits for a transition. The transition
	// itself continues after this, and records the ledger outcome when it arrives.
	CallerTimeout *string `json:"callerTimeout"`
	// how long a Stop() waits for in-flight transitions
	ShutdownTimeout *string `json:"shutdownTimeout"`
}

var OrchestratorDefaults = &OrchestratorConfig{
	CallerTimeout:   confutil.P("90s"),
	ShutdownTimeout: confutil.P("2m"),
}
