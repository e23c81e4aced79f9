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
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/components"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/persistence/mockpersistence"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var remittanceColumns = []string{
	"id", "sender_id", "recipient_id", "recipient_name",
	"amount_usdc", "amount_cop", "exchange_rate", "rate_as_of",
	"status", "blockchain_id", "tx_hash_create", "tx_hash_fund", "tx_hash_complete",
	"created_at", "funded_at", "completed_at", "updated_at", "version",
}

func mockRemittanceRow(id uuid.UUID, status rmtapi.RemittanceStatus, ledgerID string) *sqlmock.Rows {
	now := int64(rmtapi.TimestampNow())
	return sqlmock.NewRows(remittanceColumns).AddRow(
		id.String(), "owner1", "recipient1", "Maria Lopez",
		"100.5", "417075", "4150", now,
		string(status), ledgerID, "0xc1", nil, nil,
		now, nil, nil, now, int64(2),
	)
}

func TestLedgerErrorAuditWriteFailed(t *testing.T) {
	mp, err := mockpersistence.NewSQLMockProvider()
	require.NoError(t, err)
	ctx, rm, mc := newTestManagerWithPersistence(t, mp.P)

	id := uuid.New()
	ledgerID := nextLedgerID()
	mp.Mock.ExpectQuery("SELECT.*remittances").WillReturnRows(mockRemittanceRow(id, rmtapi.RemittanceStatusCreated, ledgerID))
	mp.Mock.ExpectBegin()
	mp.Mock.ExpectExec("UPDATE.*remittances").WillReturnError(fmt.Errorf("disk full"))
	mp.Mock.ExpectRollback()

	ledgerErr := rmtapi.NewError(rmtapi.ErrorKindLedgerRejected, fmt.Errorf("execution reverted"))
	mc.ledger.On("FundEscrow", mock.Anything, ledgerID, mock.Anything).
		Return(&components.FundReceipt{ApproveTxHash: "0xa1"}, ledgerErr).Once()

	r, err := rm.FundRemittance(ctx, id)
	assert.Regexp(t, "PT011604.*execution reverted", err)
	assert.Regexp(t, "disk full", err)
	assert.Equal(t, rmtapi.ErrorKindAuditWriteFailed, rmtapi.KindOf(err))
	assert.True(t, errors.Is(err, ledgerErr))
	require.NotNil(t, r)
	assert.Equal(t, rmtapi.RemittanceStatusCreated, r.Status)
	assert.Equal(t, int64(2), r.Version)

	assert.NoError(t, mp.Mock.ExpectationsWereMet())
}

func TestLedgerSuccessAuditWriteFailed(t *testing.T) {
	mp, err := mockpersistence.NewSQLMockProvider()
	require.NoError(t, err)
	ctx, rm, mc := newTestManagerWithPersistence(t, mp.P)

	id := uuid.New()
	ledgerID := nextLedgerID()
	mp.Mock.ExpectQuery("SELECT.*remittances").WillReturnRows(mockRemittanceRow(id, rmtapi.RemittanceStatusFunded, ledgerID))
	mp.Mock.ExpectBegin()
	mp.Mock.ExpectExec("UPDATE.*remittances").WillReturnResult(sqlmock.NewResult(0, 1))
	mp.Mock.ExpectQuery("SELECT.*remittance_events").WillReturnError(fmt.Errorf("pop"))
	mp.Mock.ExpectRollback()

	mc.ledger.On("CompleteEscrow", mock.Anything, ledgerID).
		Return(&components.LedgerReceipt{TxHash: "0xd1"}, nil).Once()

	r, err := rm.ReleaseRemittance(ctx, id)
	assert.Regexp(t, "PT011604.*pop", err)
	assert.Equal(t, rmtapi.ErrorKindAuditWriteFailed, rmtapi.KindOf(err))
	assert.Equal(t, rmtapi.RemittanceStatusFunded, r.Status)
	assert.Equal(t, float64(1), testutil.ToFloat64(rm.metrics.(*remittancePromMetrics).transitions.WithLabelValues(opRelease, string(rmtapi.ErrorKindAuditWriteFailed))))

	assert.NoError(t, mp.Mock.ExpectationsWereMet())
}

func TestLoadRemittanceDBError(t *testing.T) {
	mp, err := mockpersistence.NewSQLMockProvider()
	require.NoError(t, err)
	ctx, rm, _ := newTestManagerWithPersistence(t, mp.P)

	mp.Mock.ExpectQuery("SELECT.*remittances").WillReturnError(fmt.Errorf("pop"))
	_, err = rm.RefundRemittance(ctx, uuid.New())
	assert.Regexp(t, "pop", err)

	mp.Mock.ExpectQuery("SELECT.*remittances").WillReturnError(fmt.Errorf("pop"))
	_, err = rm.ListRemittances(ctx, "owner1")
	assert.Regexp(t, "pop", err)

	mp.Mock.ExpectQuery("SELECT.*remittances").WillReturnError(fmt.Errorf("pop"))
	_, err = rm.ListAllAdmin(ctx)
	assert.Regexp(t, "pop", err)

	mp.Mock.ExpectQuery("SELECT.*received_records").WillReturnError(fmt.Errorf("pop"))
	_, err = rm.GetReceivedRecord(ctx, uuid.New())
	assert.Regexp(t, "pop", err)

	assert.NoError(t, mp.Mock.ExpectationsWereMet())
}

func TestCreateInsertFailed(t *testing.T) {
	mp, err := mockpersistence.NewSQLMockProvider()
	require.NoError(t, err)
	ctx, rm, mc := newTestManagerWithPersistence(t, mp.P)
	expectRate(mc, "4150")

	mp.Mock.ExpectBegin()
	mp.Mock.ExpectExec("INSERT.*remittances").WillReturnError(fmt.Errorf("pop"))
	mp.Mock.ExpectRollback()

	_, err = rm.CreateRemittance(ctx, "owner1", "recipient1", "", decimal.NewFromInt(10))
	assert.Regexp(t, "PT011604.*pop", err)
	assert.Equal(t, rmtapi.ErrorKindAuditWriteFailed, rmtapi.KindOf(err))

	assert.NoError(t, mp.Mock.ExpectationsWereMet())
}

func TestMapPersistedEventBadHash(t *testing.T) {
	_, err := mapPersistedEvent(context.Background(), &persistedEvent{Hash: "not hex"})
	assert.Regexp(t, "PT011801", err)

	_, err = mapPersistedEvent(context.Background(), &persistedEvent{
		Hash:        "0x01",
		PayloadKind: rmtapi.PayloadKindError,
		Payload:     "{!",
	})
	assert.Regexp(t, "PT011801", err)
}
