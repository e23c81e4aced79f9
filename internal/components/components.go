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

package components

import (
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/metrics"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/ethclient"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/persistence"
)

// PreInitComponents are ones that are initialized before managers.
// PreInit components do not depend on any other components, they hold their
// own interface in their package.
type PreInitComponents interface {
	Persistence() persistence.Persistence
	EthClient() ethclient.EthClient
	MetricsManager() metrics.Metrics
}

// Managers are initialized after base components with access to them.
//
// So that they can call each other, their external mockable interfaces are
// all defined in this package.
type Managers interface {
	EscrowLedger() EscrowLedger
	RateProvider() RateProvider
	RemittanceManager() RemittanceManager
}

// All managers conform to a standard lifecycle
type ManagerLifecycle interface {
	// Init only depends on the configuration and components - no other managers
	PreInit(PreInitComponents) error
	// Post-init allows the manager to cross-bind to other managers
	PostInit(AllComponents) error
	Start() error
	Stop()
}

type AllComponents interface {
	PreInitComponents
	Managers
}
