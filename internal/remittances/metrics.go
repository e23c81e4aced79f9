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

package remittances

import (
	"context"
	"time"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/metrics"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/msgs"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtapi"
)

const metricsSubsystem = "remittances"

const outcomeSuccess = "success"

type remittanceMetrics interface {
	RecordTransition(operation string, err error, duration time.Duration)
}

type remittancePromMetrics struct {
	transitions *prometheus.CounterVec
	durations   *prometheus.HistogramVec
}

func initMetrics(ctx context.Context, registry *prometheus.Registry) (*remittancePromMetrics, error) {
	m := &remittancePromMetrics{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metricsSubsystem,
			Name:      "transitions_total",
			Help:      "Ledger-driven remittance transitions, by operation and outcome",
		}, []string{"operation", "outcome"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metricsSubsystem,
			Name:      "transition_seconds",
			Help:      "Time from the start of the ledger call to the commit of its outcome",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"operation"}),
	}
	for _, c := range []prometheus.Collector{m.transitions, m.durations} {
		if err := registry.Register(c); err != nil {
			return nil, i18n.WrapError(ctx, err, msgs.MsgMetricsRegistrationFailed)
		}
	}
	return m, nil
}

// The outcome label is the error kind, or "success"
func (m *remittancePromMetrics) RecordTransition(operation string, err error, duration time.Duration) {
	outcome := outcomeSuccess
	if err != nil {
		outcome = string(rmtapi.KindOf(err))
		if outcome == "" {
			outcome = string(rmtapi.ErrorKindLedgerError)
		}
	}
	m.transitions.WithLabelValues(operation, outcome).Inc()
	m.durations.WithLabelValues(operation).Observe(duration.Seconds())
}
