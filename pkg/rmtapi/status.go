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

package rmtapi

import (
	"context"
	"database/sql/driver"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/msgs"
)

type RemittanceStatus string

const (
	// Persisted, with the ledger outcome of creation not yet recorded
	RemittanceStatusPending RemittanceStatus = "pending"
	// Escrow exists on the ledger, and has a ledger id
	RemittanceStatusCreated   RemittanceStatus = "created"
	RemittanceStatusFunded    RemittanceStatus = "funded"
	RemittanceStatusCompleted RemittanceStatus = "completed"
	RemittanceStatusRefunded  RemittanceStatus = "refunded"
	RemittanceStatusFailed    RemittanceStatus = "failed"
)

func (s RemittanceStatus) Options() []string {
	return []string{
		string(RemittanceStatusPending),
		string(RemittanceStatusCreated),
		string(RemittanceStatusFunded),
		string(RemittanceStatusCompleted),
		string(RemittanceStatusRefunded),
		string(RemittanceStatusFailed),
	}
}

// The only edges a remittance may move along. There are no edges out of a terminal state.
var statusEdges = map[RemittanceStatus][]RemittanceStatus{
	RemittanceStatusPending: {RemittanceStatusCreated, RemittanceStatusFailed},
	RemittanceStatusCreated: {RemittanceStatusFunded, RemittanceStatusFailed},
	RemittanceStatusFunded:  {RemittanceStatusCompleted, RemittanceStatusRefunded, RemittanceStatusFailed},
}

func (s RemittanceStatus) IsTerminal() bool {
	return len(statusEdges[s]) == 0
}

func (s RemittanceStatus) CanTransitionTo(to RemittanceStatus) bool {
	for _, e := range statusEdges[s] {
		if e == to {
			return true
		}
	}
	return false
}

func ValidateTransition(ctx context.Context, from, to RemittanceStatus) error {
	if !from.CanTransitionTo(to) {
		return i18n.NewError(ctx, msgs.MsgTypesInvalidTransition, from, to)
	}
	return nil
}

func (s RemittanceStatus) Validate() (RemittanceStatus, error) {
	for _, o := range s.Options() {
		if strings.EqualFold(o, string(s)) {
			return RemittanceStatus(o), nil
		}
	}
	return "", i18n.NewError(context.Background(), msgs.MsgTypesEnumValueInvalid, strings.Join(s.Options(), ","))
}

// Value only allows the known statuses to be written
func (s RemittanceStatus) Value() (driver.Value, error) {
	v, err := s.Validate()
	return string(v), err
}

func (s *RemittanceStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*s = RemittanceStatus(v)
	case []byte:
		*s = RemittanceStatus(v)
	default:
		return i18n.NewError(context.Background(), msgs.MsgTypesScanFail, src, s)
	}
	validated, err := s.Validate()
	if err != nil {
		return err
	}
	*s = validated
	return nil
}
