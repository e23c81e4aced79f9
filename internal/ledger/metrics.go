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

package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/metrics"
)

const metricsSubsystem = "ledger"

const (
	outcomeSuccess   = "success"
	outcomeRejected  = "rejected"
	outcomeFailed    = "failed"
	outcomeAmbiguous = "ambiguous"
)

type ledgerMetrics interface {
	RecordSubmission(method, outcome string)
}

type ledgerPromMetrics struct {
	submissions *prometheus.CounterVec
}

func initMetrics(registry *prometheus.Registry) *ledgerPromMetrics {
	m := &ledgerPromMetrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metricsSubsystem,
			Name:      "submissions_total",
			Help:      "Transactions submitted to the escrow ledger, by contract method and outcome",
		}, []string{"method", "outcome"}),
	}
	registry.MustRegister(m.submissions)
	return m
}

func (m *ledgerPromMetrics) RecordSubmission(method, outcome string) {
	m.submissions.WithLabelValues(method, outcome).Inc()
}
