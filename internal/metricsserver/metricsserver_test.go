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

package metricsserver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/confutil"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsServerDisabled(t *testing.T) {
	s, err := NewMetricsServer(context.Background(), prometheus.NewRegistry(), &rmtconf.MetricsServerConfig{})
	require.NoError(t, err)
	assert.Nil(t, s.httpServer)
	require.NoError(t, s.Start())
	s.Stop()
}

func TestMetricsServerServesRegistry(t *testing.T) {
	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "puente_test_total", Help: "test"})
	registry.MustRegister(counter)
	counter.Add(3)

	s, err := NewMetricsServer(context.Background(), registry, &rmtconf.MetricsServerConfig{
		Enabled: confutil.P(true),
		Path:    confutil.P("/custom"),
		HTTPServerConfig: rmtconf.HTTPServerConfig{
			Port: confutil.P(0),
		},
	})
	require.NoError(t, err)
	require.NoError(t, s.Start())
	defer s.Stop()

	res, err := http.Get(fmt.Sprintf("http://%s/custom", s.httpServer.Addr()))
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "puente_test_total 3")

	res, err = http.Get(fmt.Sprintf("http://%s/metrics", s.httpServer.Addr()))
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestMetricsServerBadAddress(t *testing.T) {
	_, err := NewMetricsServer(context.Background(), prometheus.NewRegistry(), &rmtconf.MetricsServerConfig{
		Enabled: confutil.P(true),
		HTTPServerConfig: rmtconf.HTTPServerConfig{
			Address: confutil.P(":::::badness"),
		},
	})
	assert.Regexp(t, "PT011901", err)
}
