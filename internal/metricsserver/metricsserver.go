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

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/confutil"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/httpserver"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/log"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtconf"
)

type MetricsServer interface {
	Start() error
	Stop()
}

func NewMetricsServer(ctx context.Context, registry *prometheus.Registry, conf *rmtconf.MetricsServerConfig) (_ *metricsServer, err error) {
	s := &metricsServer{
		bgCtx: log.WithLogField(ctx, "component", "metrics-server"),
	}

	if confutil.Bool(conf.Enabled, *rmtconf.MetricsServerDefaults.Enabled) {
		serverConf := conf.HTTPServerConfig
		if serverConf.Port == nil {
			serverConf.Port = rmtconf.MetricsServerDefaults.Port
		}
		r := mux.NewRouter()
		r.Handle(confutil.StringNotEmpty(conf.Path, *rmtconf.MetricsServerDefaults.Path),
			promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		if s.httpServer, err = httpserver.NewServer(s.bgCtx, "Metrics (HTTP)", &serverConf, r); err != nil {
			return s, err
		}
	}
	return s, err
}

var _ MetricsServer = &metricsServer{}

type metricsServer struct {
	bgCtx      context.Context
	httpServer httpserver.Server
}

func (s *metricsServer) Start() (err error) {
	if s.httpServer != nil {
		err = s.httpServer.Start()
	}
	return err
}

func (s *metricsServer) Stop() {
	if s.httpServer != nil {
		s.httpServer.Stop()
	}
}
