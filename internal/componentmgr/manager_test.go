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
	"fmt"
	"testing"

	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/components"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/mocks/componentsmocks"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/mocks/ethclientmocks"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/confutil"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/ethclient"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testContract    = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	testToken       = "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"
	testOperatorKey = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
)

func testConfig() *rmtconf.PuenteConfig {
	return &rmtconf.PuenteConfig{
		DB: rmtconf.DBConfig{
			Type: "sqlite",
			SQLite: rmtconf.SQLiteConfig{
				SQLDBConfig: rmtconf.SQLDBConfig{
					DSN:           ":memory:",
					AutoMigrate:   confutil.P(true),
					MigrationsDir: "../../db/migrations/sqlite",
				},
			},
		},
		Blockchain: rmtconf.EthClientConfig{
			HTTP: rmtconf.HTTPClientConfig{
				URL: "http://localhost:8545", // the factory is replaced, so this is never dialed
			},
			StartupAttempts: confutil.P(2),
			StartupRetry: rmtconf.RetryConfig{
				InitialDelay: confutil.P("1ms"),
				MaxDelay:     confutil.P("1ms"),
			},
		},
		Escrow: rmtconf.EscrowConfig{
			ContractAddress: testContract,
			TokenAddress:    testToken,
			OperatorKey:     testOperatorKey,
		},
		Rates: rmtconf.RatesConfig{
			Type:       confutil.P(rmtconf.RatesTypeStatic),
			StaticRate: confutil.P("4150.25"),
		},
		MetricsServer: rmtconf.MetricsServerConfig{
			Enabled: confutil.P(true),
			HTTPServerConfig: rmtconf.HTTPServerConfig{
				Port: confutil.P(0),
			},
		},
	}
}

func newTestComponentManager(t *testing.T, conf *rmtconf.PuenteConfig) (*componentManager, *ethclientmocks.EthClient) {
	mec := ethclientmocks.NewEthClient(t)
	cm := NewComponentManager(context.Background(), conf).(*componentManager)
	cm.newEthClient = func(ctx context.Context, conf *rmtconf.EthClientConfig) (ethclient.EthClient, error) {
		return mec, nil
	}
	return cm, mec
}

func TestInitStartStopOK(t *testing.T) {
	cm, mec := newTestComponentManager(t, testConfig())
	mec.On("ChainID").Return(int64(80002)).Maybe()
	mec.On("Close").Return().Once()

	err := cm.Init()
	require.NoError(t, err)

	assert.NotNil(t, cm.Persistence())
	assert.Equal(t, mec, cm.EthClient())
	assert.NotNil(t, cm.MetricsManager())
	assert.NotNil(t, cm.EscrowLedger())
	assert.NotNil(t, cm.RateProvider())
	assert.NotNil(t, cm.RemittanceManager())
	assert.NotNil(t, cm.metricsServer)

	require.NoError(t, cm.StartManagers())
	require.NoError(t, cm.CompleteStart())

	assert.Equal(t, []string{
		"database",
		"eth_client",
		"escrow_ledger",
		"rate_provider",
		"remittance_manager",
		"metrics_server",
	}, cm.shutdownSeq)

	rate, _, err := cm.RateProvider().CurrentRate(context.Background(), cm.RateProvider().Pair())
	require.NoError(t, err)
	assert.Equal(t, "4150.25", rate.String())

	cc, err := cm.RemittanceManager().ContractConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(80002), cc.ChainID)

	cm.Stop()
	assert.Empty(t, cm.shutdownSeq)
}

func TestInitDBFail(t *testing.T) {
	conf := testConfig()
	conf.DB.Type = "wrong"
	cm, _ := newTestComponentManager(t, conf)
	err := cm.Init()
	assert.Regexp(t, "PT011100", err)
}

func TestInitEthClientRetryThenFail(t *testing.T) {
	cm, _ := newTestComponentManager(t, testConfig())
	attempts := 0
	cm.newEthClient = func(ctx context.Context, conf *rmtconf.EthClientConfig) (ethclient.EthClient, error) {
		attempts++
		return nil, fmt.Errorf("connection refused")
	}
	err := cm.Init()
	assert.Regexp(t, "PT011101.*connection refused", err)
	assert.Equal(t, 2, attempts)
	cm.Stop()
}

func TestInitEthClientRetryThenSucceed(t *testing.T) {
	cm, mec := newTestComponentManager(t, testConfig())
	attempts := 0
	cm.newEthClient = func(ctx context.Context, conf *rmtconf.EthClientConfig) (ethclient.EthClient, error) {
		attempts++
		if attempts == 1 {
			return nil, fmt.Errorf("connection refused")
		}
		return mec, nil
	}
	mec.On("Close").Return().Once()
	require.NoError(t, cm.Init())
	assert.Equal(t, 2, attempts)
	cm.Stop()
}

func TestInitLedgerFail(t *testing.T) {
	conf := testConfig()
	conf.Escrow.ContractAddress = ""
	cm, mec := newTestComponentManager(t, conf)
	mec.On("Close").Return().Once()
	err := cm.Init()
	assert.Regexp(t, "PT011102", err)
	cm.Stop()
}

func TestInitRatesFail(t *testing.T) {
	conf := testConfig()
	conf.Rates.Type = confutil.P("wrong")
	cm, mec := newTestComponentManager(t, conf)
	mec.On("Close").Return().Once()
	err := cm.Init()
	assert.Regexp(t, "PT011103", err)
	cm.Stop()
}

func TestInitMetricsServerFail(t *testing.T) {
	conf := testConfig()
	conf.MetricsServer.Port = confutil.P(-1)
	cm, mec := newTestComponentManager(t, conf)
	mec.On("Close").Return().Once()
	err := cm.Init()
	assert.Regexp(t, "PT011105", err)
	cm.Stop()
}

func TestStartLedgerFail(t *testing.T) {
	conf := testConfig()
	conf.Escrow.TokenAddress = ""
	cm, mec := newTestComponentManager(t, conf)
	mec.On("Close").Return().Once()
	mec.On("CallContract", mock.Anything, mock.Anything, "latest", mock.Anything).
		Return(ethclient.CallResult{}, fmt.Errorf("pop"))
	require.NoError(t, cm.Init())

	err := cm.StartManagers()
	assert.Regexp(t, "PT011107.*pop", err)
	assert.NotContains(t, cm.started, "escrow_ledger")
	cm.Stop()
}

func TestStartManagerFail(t *testing.T) {
	cm, _ := newTestComponentManager(t, testConfig())

	ml := componentsmocks.NewEscrowLedger(t)
	ml.On("Start").Return(nil)
	ml.On("Stop").Return()
	mr := componentsmocks.NewRateProvider(t)
	mr.On("Start").Return(fmt.Errorf("pop"))
	cm.escrowLedger = ml
	cm.rateProvider = mr

	err := cm.StartManagers()
	assert.Regexp(t, "PT011106.*rate_provider.*pop", err)
	cm.Stop()
}

type recordStop struct {
	name  string
	order *[]string
}

func (rs *recordStop) Stop()  { *rs.order = append(*rs.order, rs.name) }
func (rs *recordStop) Close() { *rs.order = append(*rs.order, rs.name) }

func TestStopReverseOrder(t *testing.T) {
	cm, _ := newTestComponentManager(t, testConfig())
	var order []string
	for _, name := range []string{"database", "eth_client"} {
		require.NoError(t, cm.addIfOpened(name, &recordStop{name, &order}, nil, ""))
	}
	for _, name := range []string{"escrow_ledger", "remittance_manager"} {
		require.NoError(t, cm.addIfStarted(name, &recordStop{name, &order}, nil, ""))
	}
	cm.Stop()
	assert.Equal(t, []string{"remittance_manager", "escrow_ledger", "eth_client", "database"}, order)
}

var _ components.AllComponents = &componentManager{}
