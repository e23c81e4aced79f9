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

package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path"
	"syscall"
	"testing"

	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/componentmgr"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/mocks/componentmgrmocks"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestConfig(t *testing.T, mockers ...func(mockCM *componentmgrmocks.ComponentManager)) (configFile string, loaded chan *rmtconf.PuenteConfig, done func()) {
	origCMFactory := componentManagerFactory
	mockCM := componentmgrmocks.NewComponentManager(t)
	loaded = make(chan *rmtconf.PuenteConfig, 1)
	componentManagerFactory = func(bgCtx context.Context, conf *rmtconf.PuenteConfig) componentmgr.ComponentManager {
		loaded <- conf
		return mockCM
	}
	for _, mocker := range mockers {
		mocker(mockCM)
	}
	configFile = path.Join(t.TempDir(), "puente.yaml")
	err := os.WriteFile(configFile, []byte(`
blockchain:
  http:
    url: http://localhost:8545
escrow:
  contractAddress: "0x5FbDB2315678afecb367f032d93F642f64180aa3"
  operatorKey: "0x01"
  operatorKeyFile: /some/file
`), 0664)
	require.NoError(t, err)
	return configFile, loaded, func() {
		componentManagerFactory = origCMFactory
	}
}

func TestEntrypointOK(t *testing.T) {

	cmStarted := make(chan struct{})
	configFile, loaded, done := setupTestConfig(t, func(mockCM *componentmgrmocks.ComponentManager) {
		mockCM.On("Init").Return(nil)
		mockCM.On("StartManagers").Return(nil)
		mockCM.On("CompleteStart").Return(nil).Run(func(args mock.Arguments) {
			close(cmStarted)
		})
		mockCM.On("Stop").Return()
	})
	defer done()

	completed := make(chan RC)
	go func() {
		completed <- Run(configFile)
	}()

	<-cmStarted
	conf := <-loaded
	assert.Equal(t, "http://localhost:8545", conf.Blockchain.HTTP.URL)
	assert.Equal(t, "0x01", conf.Escrow.OperatorKey)

	// Double start should panic
	assert.Panics(t, func() {
		Run(configFile)
	})

	Stop()
	assert.Equal(t, RC_OK, <-completed)

	// Stop when not running is a no-op
	Stop()
}

func TestOperatorKeyFromEnv(t *testing.T) {

	cmStarted := make(chan struct{})
	configFile, loaded, done := setupTestConfig(t, func(mockCM *componentmgrmocks.ComponentManager) {
		mockCM.On("Init").Return(nil)
		mockCM.On("StartManagers").Return(nil)
		mockCM.On("CompleteStart").Return(nil).Run(func(args mock.Arguments) {
			close(cmStarted)
		})
		mockCM.On("Stop").Return()
	})
	defer done()
	t.Setenv(OperatorKeyEnvVar, "0xfeedbeef")

	completed := make(chan RC)
	go func() {
		completed <- Run(configFile)
	}()

	<-cmStarted
	conf := <-loaded
	assert.Equal(t, "0xfeedbeef", conf.Escrow.OperatorKey)
	assert.Empty(t, conf.Escrow.OperatorKeyFile)

	Stop()
	assert.Equal(t, RC_OK, <-completed)
}

func TestSignalHandlerStop(t *testing.T) {

	cmStarted := make(chan struct{})
	configFile, _, done := setupTestConfig(t, func(mockCM *componentmgrmocks.ComponentManager) {
		mockCM.On("Init").Return(nil)
		mockCM.On("StartManagers").Return(nil)
		mockCM.On("CompleteStart").Return(nil).Run(func(args mock.Arguments) {
			close(cmStarted)
		})
		mockCM.On("Stop").Return()
	})
	defer done()

	completed := make(chan RC)
	go func() {
		completed <- Run(configFile)
	}()

	<-cmStarted

	inst := running.Load()
	(*inst).signals <- syscall.SIGQUIT

	assert.Equal(t, RC_OK, <-completed)
}

func TestNoConfigFile(t *testing.T) {
	_, _, done := setupTestConfig(t)
	defer done()

	assert.Equal(t, RC_FAIL, Run(""))
}

func TestBadConfigFile(t *testing.T) {
	_, _, done := setupTestConfig(t)
	defer done()

	assert.Equal(t, RC_FAIL, Run(path.Join(t.TempDir(), "wrong.yaml")))
}

func TestComponentManagerInitFail(t *testing.T) {
	configFile, _, done := setupTestConfig(t, func(mockCM *componentmgrmocks.ComponentManager) {
		mockCM.On("Init").Return(fmt.Errorf("pop"))
		mockCM.On("Stop").Return()
	})
	defer done()

	assert.Equal(t, RC_FAIL, Run(configFile))
}

func TestComponentManagerStartFail(t *testing.T) {
	configFile, _, done := setupTestConfig(t, func(mockCM *componentmgrmocks.ComponentManager) {
		mockCM.On("Init").Return(nil)
		mockCM.On("StartManagers").Return(nil)
		mockCM.On("CompleteStart").Return(fmt.Errorf("pop"))
		mockCM.On("Stop").Return()
	})
	defer done()

	assert.Equal(t, RC_FAIL, Run(configFile))
}
