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

package componentmgr

import (
	"context"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/components"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/ledger"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/metrics"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/metricsserver"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/msgs"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/rates"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/remittances"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/confutil"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/ethclient"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/log"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/persistence"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/retry"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtconf"
)

type ComponentManager interface {
	components.AllComponents
	Init() error
	StartManagers() error
	CompleteStart() error
	Stop()
}

type ethClientFactory func(ctx context.Context, conf *rmtconf.EthClientConfig) (ethclient.EthClient, error)

type componentManager struct {
	bgCtx context.Context
	conf  *rmtconf.PuenteConfig

	newEthClient          ethClientFactory
	ethClientStartupRetry *retry.Retry

	// pre-init
	persistence    persistence.Persistence
	ethClient      ethclient.EthClient
	metricsManager metrics.Metrics
	// managers
	escrowLedger      components.EscrowLedger
	rateProvider      components.RateProvider
	remittanceManager components.RemittanceManager
	// post-init
	metricsServer metricsserver.MetricsServer

	// tracking started and opened components, for a reverse-order shutdown
	started     map[string]stoppable
	opened      map[string]closeable
	shutdownSeq []string
}

type stoppable interface {
	Stop()
}

type closeable interface {
	Close()
}

func NewComponentManager(bgCtx context.Context, conf *rmtconf.PuenteConfig) ComponentManager {
	log.InitConfig(&conf.Log)
	return &componentManager{
		bgCtx:        bgCtx,
		conf:         conf,
		newEthClient: ethclient.NewEthClient,
		ethClientStartupRetry: retry.NewRetryLimited(&conf.Blockchain.StartupRetry,
			confutil.IntMin(conf.Blockchain.StartupAttempts, 1, *rmtconf.EthClientDefaults.StartupAttempts),
			&rmtconf.EthClientDefaults.StartupRetry),
		started: map[string]stoppable{},
		opened:  map[string]closeable{},
	}
}

func (cm *componentManager) Init() (err error) {
	log.L(cm.bgCtx).Info("Initializing")

	cm.persistence, err = persistence.NewPersistence(cm.bgCtx, &cm.conf.DB)
	err = cm.addIfOpened("database", cm.persistence, err, msgs.MsgComponentDBInitError)

	if err == nil {
		err = cm.connectEthClient()
		err = cm.addIfOpened("eth_client", cm.ethClient, err, msgs.MsgComponentEthClientInitError)
	}

	if err == nil {
		cm.metricsManager = metrics.NewMetricsManager(cm.bgCtx)
	}

	if err == nil {
		cm.escrowLedger, err = ledger.NewEscrowLedger(cm.bgCtx, &cm.conf.Escrow)
		err = cm.wrapIfErr(err, msgs.MsgComponentLedgerInitError)
	}
	if err == nil {
		err = cm.escrowLedger.PreInit(cm)
		err = cm.wrapIfErr(err, msgs.MsgComponentLedgerInitError)
	}

	if err == nil {
		cm.rateProvider, err = rates.NewRateProvider(cm.bgCtx, &cm.conf.Rates)
		err = cm.wrapIfErr(err, msgs.MsgComponentRatesInitError)
	}
	if err == nil {
		err = cm.rateProvider.PreInit(cm)
		err = cm.wrapIfErr(err, msgs.MsgComponentRatesInitError)
	}

	if err == nil {
		cm.remittanceManager = remittances.NewRemittanceManager(cm.bgCtx, &cm.conf.Orchestrator)
		err = cm.remittanceManager.PreInit(cm)
		err = cm.wrapIfErr(err, msgs.MsgComponentRemittancesInitError)
	}

	if err == nil {
		err = cm.escrowLedger.PostInit(cm)
		err = cm.wrapIfErr(err, msgs.MsgComponentLedgerInitError)
	}

	if err == nil {
		err = cm.rateProvider.PostInit(cm)
		err = cm.wrapIfErr(err, msgs.MsgComponentRatesInitError)
	}

	if err == nil {
		err = cm.remittanceManager.PostInit(cm)
		err = cm.wrapIfErr(err, msgs.MsgComponentRemittancesInitError)
	}

	if err == nil {
		cm.metricsServer, err = metricsserver.NewMetricsServer(cm.bgCtx, cm.metricsManager.Registry(), &cm.conf.MetricsServer)
		err = cm.wrapIfErr(err, msgs.MsgComponentMetricsServerInitError)
	}

	return err
}

// The eth client queries the chain ID as it connects
func (cm *componentManager) connectEthClient() error {
	return cm.ethClientStartupRetry.Do(cm.bgCtx, func(attempt int) (retryable bool, err error) {
		cm.ethClient, err = cm.newEthClient(cm.bgCtx, &cm.conf.Blockchain)
		if err != nil {
			log.L(cm.bgCtx).Warnf("Connecting to the blockchain node failed (attempt=%d): %s", attempt, err)
		}
		return true, err
	})
}

func (cm *componentManager) StartManagers() (err error) {

	err = cm.escrowLedger.Start()
	err = cm.addIfStarted("escrow_ledger", cm.escrowLedger, err, msgs.MsgComponentLedgerStartError)

	if err == nil {
		err = cm.rateProvider.Start()
		err = cm.addIfStarted("rate_provider", cm.rateProvider, err, msgs.MsgComponentStartError, "rate_provider")
	}

	if err == nil {
		err = cm.remittanceManager.Start()
		err = cm.addIfStarted("remittance_manager", cm.remittanceManager, err, msgs.MsgComponentStartError, "remittance_manager")
	}

	return err
}

func (cm *componentManager) CompleteStart() (err error) {
	if cm.metricsServer != nil {
		err = cm.metricsServer.Start()
		err = cm.addIfStarted("metrics_server", cm.metricsServer, err, msgs.MsgComponentStartError, "metrics_server")
	}
	if err == nil {
		log.L(cm.bgCtx).Infof("Startup complete chainId=%d", cm.ethClient.ChainID())
	}
	return err
}

func (cm *componentManager) wrapIfErr(err error, failMsg i18n.ErrorMessageKey, inserts ...any) error {
	if err != nil {
		return i18n.WrapError(cm.bgCtx, err, failMsg, inserts...)
	}
	return nil
}

func (cm *componentManager) addIfStarted(desc string, c stoppable, err error, failMsg i18n.ErrorMessageKey, inserts ...any) error {
	if err != nil {
		return i18n.WrapError(cm.bgCtx, err, failMsg, inserts...)
	}
	cm.started[desc] = c
	cm.shutdownSeq = append(cm.shutdownSeq, desc)
	return nil
}

func (cm *componentManager) addIfOpened(desc string, c closeable, err error, failMsg i18n.ErrorMessageKey) error {
	if err != nil {
		return i18n.WrapError(cm.bgCtx, err, failMsg)
	}
	cm.opened[desc] = c
	cm.shutdownSeq = append(cm.shutdownSeq, desc)
	return nil
}

// Stop tears down in the reverse of the order things were opened and started,
// so the remittance manager drains before the database closes
func (cm *componentManager) Stop() {
	log.L(cm.bgCtx).Info("Stopping")
	for i := len(cm.shutdownSeq) - 1; i >= 0; i-- {
		name := cm.shutdownSeq[i]
		log.L(cm.bgCtx).Infof("Stopping %s", name)
		if c, ok := cm.started[name]; ok {
			c.Stop()
		} else if c, ok := cm.opened[name]; ok {
			c.Close()
		}
		log.L(cm.bgCtx).Debugf("Stopped %s", name)
	}
	cm.shutdownSeq = nil
	log.L(cm.bgCtx).Debug("Stopped")
}

func (cm *componentManager) Persistence() persistence.Persistence {
	return cm.persistence
}

func (cm *componentManager) EthClient() ethclient.EthClient {
	return cm.ethClient
}

func (cm *componentManager) MetricsManager() metrics.Metrics {
	return cm.metricsManager
}

func (cm *componentManager) EscrowLedger() components.EscrowLedger {
	return cm.escrowLedger
}

func (cm *componentManager) RateProvider() components.RateProvider {
	return cm.rateProvider
}

func (cm *componentManager) RemittanceManager() components.RemittanceManager {
	return cm.remittanceManager
}
