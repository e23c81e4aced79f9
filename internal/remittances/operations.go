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
	"strings"

	"github.com/google/uuid"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/shopspring/decimal"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/msgs"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/log"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtapi"
)

type initDetail struct {
	RecipientID  string           `json:"recipientId"`
	AmountUSDC   decimal.Decimal  `json:"amountUsdc"`
	AmountCOP    decimal.Decimal  `json:"amountCop"`
	ExchangeRate decimal.Decimal  `json:"exchangeRate"`
	RateAsOf     rmtapi.Timestamp `json:"rateAsOf"`
	Pair         string           `json:"pair"`
}

func validationError(ctx context.Context, key i18n.ErrorMessageKey, inserts ...interface{}) error {
	return rmtapi.NewError(rmtapi.ErrorKindValidation, i18n.NewError(ctx, key, inserts...))
}

// CreateRemittance freezes the rate and the destination amount, persists the record as pending,
// then creates the escrow on the ledger. If the ledger call fails the record is marked failed,
// and returned alongside the error.
func (rm *remittanceManager) CreateRemittance(ctx context.Context, ownerID, recipientRef, recipientName string, sourceAmount decimal.Decimal) (*rmtapi.Remittance, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, validationError(ctx, msgs.MsgRemittanceMissingOwner)
	}
	if strings.TrimSpace(recipientRef) == "" {
		return nil, validationError(ctx, msgs.MsgRemittanceMissingRecipient)
	}
	if !sourceAmount.IsPositive() || !sourceAmount.Equal(sourceAmount.Truncate(rmtapi.AmountUSDCDecimals)) {
		return nil, validationError(ctx, msgs.MsgRemittanceInvalidAmount, sourceAmount, rmtapi.AmountUSDCDecimals)
	}

	id := uuid.New()
	return rm.runTransition(ctx, opCreate, id, func(ctx context.Context) (*rmtapi.Remittance, error) {
		unlock := rm.lockRemittance(id)
		defer unlock()

		pair := rm.rates.Pair()
		rate, asOf, err := rm.rates.CurrentRate(ctx, pair)
		if err == nil {
			rate = rate.Truncate(rmtapi.ExchangeRateDecimals)
			if !rate.IsPositive() {
				err = i18n.NewError(ctx, msgs.MsgRatesInvalidRate, pair, rate)
			}
		}
		if err != nil {
			return nil, rmtapi.NewError(rmtapi.ErrorKindLedgerError, i18n.WrapError(ctx, err, msgs.MsgRemittanceRateFailed, pair))
		}

		now := rmtapi.TimestampNow()
		rateAsOf := now
		if !asOf.IsZero() {
			rateAsOf = rmtapi.TimestampFromTime(asOf)
		}
		r := &rmtapi.Remittance{
			ID:            id,
			SenderID:      ownerID,
			RecipientID:   recipientRef,
			RecipientName: recipientName,
			AmountUSDC:    sourceAmount,
			AmountCOP:     rmtapi.DestinationAmount(sourceAmount, rate),
			ExchangeRate:  rate,
			RateAsOf:      rateAsOf,
			Status:        rmtapi.RemittanceStatusPending,
			CreatedAt:     now,
			UpdatedAt:     now,
			Version:       1,
		}
		payload, err := rmtapi.DetailPayload(&initDetail{
			RecipientID:  r.RecipientID,
			AmountUSDC:   r.AmountUSDC,
			AmountCOP:    r.AmountCOP,
			ExchangeRate: r.ExchangeRate,
			RateAsOf:     r.RateAsOf,
			Pair:         pair,
		})
		if err == nil {
			err = rm.insertNew(ctx, r, payload)
		}
		if err != nil {
			return nil, rmtapi.NewError(rmtapi.ErrorKindAuditWriteFailed,
				i18n.WrapError(ctx, err, msgs.MsgRemittanceAuditWriteFailed, opCreate, id, nil))
		}
		log.L(ctx).Infof("Remittance persisted amountUsdc=%s rate=%s amountCop=%s", r.AmountUSDC, r.ExchangeRate, r.AmountCOP)

		return rm.attempt(ctx, createPolicy, r, nil)
	})
}

func (rm *remittanceManager) FundRemittance(ctx context.Context, id uuid.UUID) (*rmtapi.Remittance, error) {
	return rm.transition(ctx, fundPolicy, id, nil)
}

func (rm *remittanceManager) ReleaseRemittance(ctx context.Context, id uuid.UUID) (*rmtapi.Remittance, error) {
	return rm.transition(ctx, releasePolicy, id, nil)
}

// ReceiveRemittance is the recipient claiming the funds. The claim is recorded only if
// the escrow is completed on the ledger.
func (rm *remittanceManager) ReceiveRemittance(ctx context.Context, id uuid.UUID, claim *rmtapi.ClaimMetadata) (*rmtapi.Remittance, error) {
	if claim == nil {
		claim = &rmtapi.ClaimMetadata{}
	}
	return rm.transition(ctx, receivePolicy, id, claim)
}

func (rm *remittanceManager) RefundRemittance(ctx context.Context, id uuid.UUID) (*rmtapi.Remittance, error) {
	return rm.transition(ctx, refundPolicy, id, nil)
}

func (rm *remittanceManager) transition(ctx context.Context, tp *transitionPolicy, id uuid.UUID, claim *rmtapi.ClaimMetadata) (*rmtapi.Remittance, error) {
	return rm.runTransition(ctx, tp.operation, id, func(ctx context.Context) (*rmtapi.Remittance, error) {
		unlock := rm.lockRemittance(id)
		defer unlock()

		r, err := rm.getRemittanceByID(ctx, rm.p.NOTX(), id)
		if err != nil {
			return nil, err
		}
		if !tp.permits(r.Status) {
			return r, rmtapi.NewError(rmtapi.ErrorKindInvalidState,
				i18n.NewError(ctx, msgs.MsgRemittanceInvalidState, tp.operation, id, r.Status)).WithRemittance(r)
		}
		if r.BlockchainID == nil {
			return r, rmtapi.NewError(rmtapi.ErrorKindInvalidState,
				i18n.NewError(ctx, msgs.MsgRemittanceNoLedgerID, id)).WithRemittance(r)
		}
		return rm.attempt(ctx, tp, r, claim)
	})
}
