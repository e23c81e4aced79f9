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
	"context"
	"encoding/json"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-signer/pkg/abi"
	"github.com/hyperledger/firefly-signer/pkg/ethsigner"
	"github.com/hyperledger/firefly-signer/pkg/ethtypes"
	"github.com/shopspring/decimal"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/components"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/msgs"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/ethclient"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/log"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtapi"
)

func rejected(err error) error {
	return rmtapi.NewError(rmtapi.ErrorKindLedgerRejected, err)
}

func toUnits(ctx context.Context, amount decimal.Decimal, decimals int32) (*big.Int, error) {
	shifted := amount.Shift(decimals)
	if !shifted.IsInteger() {
		return nil, i18n.NewError(ctx, msgs.MsgLedgerAmountPrecision, amount, decimals)
	}
	return shifted.BigInt(), nil
}

func fromUnits(units string, decimals int32) decimal.Decimal {
	d, err := decimal.NewFromString(units)
	if err != nil {
		return decimal.Zero
	}
	return d.Shift(-decimals)
}

func parseLedgerID(ctx context.Context, ledgerID string) (ethtypes.HexBytes0xPrefix, error) {
	b, err := ethtypes.NewHexBytes0xPrefix(ledgerID)
	if err != nil || len(b) != 32 {
		return nil, rejected(i18n.NewError(ctx, msgs.MsgLedgerInvalidLedgerID, ledgerID))
	}
	return b, nil
}

func encodeCall(ctx context.Context, fn *abi.Entry, params map[string]interface{}) ([]byte, error) {
	jsonParams, err := json.Marshal(params)
	if err == nil {
		var data []byte
		if data, err = fn.EncodeCallDataJSONCtx(ctx, jsonParams); err == nil {
			return data, nil
		}
	}
	return nil, rejected(i18n.WrapError(ctx, err, msgs.MsgEthClientInvalidInput, fn.Name))
}

func (el *escrowLedger) CreateEscrow(ctx context.Context, recipientRef string, amount, rate decimal.Decimal) (*components.LedgerReceipt, error) {
	// same validation as the contract, so we never pay gas for a transaction that will revert
	if amount.Sign() <= 0 {
		return nil, rejected(i18n.NewError(ctx, msgs.MsgLedgerInvalidAmount))
	}
	if strings.TrimSpace(recipientRef) == "" {
		return nil, rejected(i18n.NewError(ctx, msgs.MsgLedgerMissingRecipient))
	}
	amountUnits, err := toUnits(ctx, amount, el.tokenDecimals)
	if err != nil {
		return nil, rejected(err)
	}
	rateUnits, err := toUnits(ctx, rate, el.rateDecimals)
	if err != nil {
		return nil, rejected(err)
	}
	data, err := encodeCall(ctx, el.abis.createRemittance, map[string]interface{}{
		"recipientId":  recipientRef,
		"amountUSDC":   amountUnits.Text(10),
		"exchangeRate": rateUnits.Text(10),
	})
	if err != nil {
		return nil, err
	}

	receipt, err := el.submitAndConfirm(ctx, el.abis.createRemittance.Name, &el.contract, data)
	if err != nil {
		return nil, err
	}
	ledgerID, err := el.parseCreatedEvent(ctx, receipt)
	if err != nil {
		// the escrow exists, but we cannot say which one it is
		return nil, rmtapi.NewError(rmtapi.ErrorKindLedgerError, err).WithAmbiguous(true)
	}
	log.L(ctx).Infof("Escrow %s created tx=%s", ledgerID, receipt.TransactionHash)
	return &components.LedgerReceipt{
		LedgerID: ledgerID.String(),
		TxHash:   receipt.TransactionHash.String(),
	}, nil
}

func (el *escrowLedger) parseCreatedEvent(ctx context.Context, receipt *ethclient.TransactionReceipt) (ethtypes.HexBytes0xPrefix, error) {
	event := el.abis.remittanceCreated
	signature := event.SignatureHashBytes()
	for _, l := range receipt.Logs {
		if l.Address == nil || *l.Address != el.contract || len(l.Topics) == 0 || !l.Topics[0].Equals(signature) {
			continue
		}
		cv, err := event.DecodeEventDataCtx(ctx, l.Topics, l.Data)
		if err != nil {
			log.L(ctx).Errorf("Failed to decode RemittanceCreated event in tx=%s: %s", receipt.TransactionHash, err)
			continue
		}
		jsonEvent, err := ethclient.StandardABISerializer().SerializeJSONCtx(ctx, cv)
		if err != nil {
			continue
		}
		var created struct {
			RemittanceID ethtypes.HexBytes0xPrefix `json:"remittanceId"`
		}
		if err := json.Unmarshal(jsonEvent, &created); err == nil && len(created.RemittanceID) == 32 {
			return created.RemittanceID, nil
		}
	}
	return nil, i18n.NewError(ctx, msgs.MsgLedgerCreatedEventMissing, receipt.TransactionHash)
}

func (el *escrowLedger) FundEscrow(ctx context.Context, ledgerID string, amount decimal.Decimal) (*components.FundReceipt, error) {
	id, err := parseLedgerID(ctx, ledgerID)
	if err != nil {
		return nil, err
	}
	if amount.Sign() <= 0 {
		return nil, rejected(i18n.NewError(ctx, msgs.MsgLedgerInvalidAmount))
	}
	amountUnits, err := toUnits(ctx, amount, el.tokenDecimals)
	if err != nil {
		return nil, rejected(err)
	}
	approveData, err := encodeCall(ctx, el.abis.approve, map[string]interface{}{
		"spender": el.contract.String(),
		"value":   amountUnits.Text(10),
	})
	if err != nil {
		return nil, err
	}
	depositData, err := encodeCall(ctx, el.abis.deposit, map[string]interface{}{
		"remittanceId": id.String(),
	})
	if err != nil {
		return nil, err
	}

	// The deposit pulls the tokens using the allowance, so it is only sent once the approval is mined
	approveReceipt, err := el.submitAndConfirm(ctx, el.abis.approve.Name, el.token, approveData)
	if err != nil {
		return nil, err
	}
	fr := &components.FundReceipt{ApproveTxHash: approveReceipt.TransactionHash.String()}
	depositReceipt, err := el.submitAndConfirm(ctx, el.abis.deposit.Name, &el.contract, depositData)
	if err != nil {
		log.L(ctx).Errorf("Deposit for escrow %s failed after approval tx=%s", ledgerID, fr.ApproveTxHash)
		return fr, err
	}
	fr.TxHash = depositReceipt.TransactionHash.String()
	return fr, nil
}

func (el *escrowLedger) escrowAction(ctx context.Context, fn *abi.Entry, ledgerID string) (*components.LedgerReceipt, error) {
	id, err := parseLedgerID(ctx, ledgerID)
	if err != nil {
		return nil, err
	}
	data, err := encodeCall(ctx, fn, map[string]interface{}{
		"remittanceId": id.String(),
	})
	if err != nil {
		return nil, err
	}
	receipt, err := el.submitAndConfirm(ctx, fn.Name, &el.contract, data)
	if err != nil {
		return nil, err
	}
	return &components.LedgerReceipt{
		LedgerID: id.String(),
		TxHash:   receipt.TransactionHash.String(),
	}, nil
}

func (el *escrowLedger) CompleteEscrow(ctx context.Context, ledgerID string) (*components.LedgerReceipt, error) {
	return el.escrowAction(ctx, el.abis.release, ledgerID)
}

func (el *escrowLedger) RefundEscrow(ctx context.Context, ledgerID string) (*components.LedgerReceipt, error) {
	return el.escrowAction(ctx, el.abis.refund, ledgerID)
}

type onChainRemittance struct {
	Sender          string `json:"sender"`
	RecipientID     string `json:"recipientId"`
	AmountUSDC      string `json:"amountUSDC"`
	TargetAmountCOP string `json:"targetAmountCOP"`
	ExchangeRate    string `json:"exchangeRate"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
	FundedAt        string `json:"fundedAt"`
	CompletedAt     string `json:"completedAt"`
}

func unixSecondsTimestamp(s string) *rmtapi.Timestamp {
	secs, err := strconv.ParseInt(s, 10, 64)
	if err != nil || secs <= 0 {
		return nil
	}
	ts := rmtapi.Timestamp(secs * int64(time.Second))
	return &ts
}

func (el *escrowLedger) GetEscrow(ctx context.Context, ledgerID string) (*rmtapi.EscrowSnapshot, error) {
	id, err := parseLedgerID(ctx, ledgerID)
	if err != nil {
		return nil, err
	}
	fn := el.abis.getRemittance
	data, err := encodeCall(ctx, fn, map[string]interface{}{
		"remittanceId": id.String(),
	})
	if err != nil {
		return nil, err
	}
	res, err := el.ethClient.CallContract(ctx, &ethsigner.Transaction{
		From: el.operatorFrom(),
		To:   &el.contract,
		Data: data,
	}, "latest", ethclient.WithOutputs(fn.Outputs), ethclient.WithErrorsFrom(el.abis.errors))
	var jsonRes json.RawMessage
	if err == nil {
		jsonRes, err = res.JSON(ctx)
	}
	var parsed struct {
		Remittance onChainRemittance `json:"remittance"`
	}
	if err == nil {
		err = json.Unmarshal(jsonRes, &parsed)
	}
	if err != nil {
		kind := rmtapi.ErrorKindLedgerError
		if ethclient.MapSubmissionRejected(err) {
			kind = rmtapi.ErrorKindLedgerRejected
		}
		return nil, rmtapi.NewError(kind, i18n.WrapError(ctx, err, msgs.MsgLedgerReadFailed, ledgerID))
	}

	r := &parsed.Remittance
	status, _ := strconv.ParseUint(r.Status, 10, 8)
	snapshot := &rmtapi.EscrowSnapshot{
		LedgerID:        id.String(),
		Sender:          r.Sender,
		RecipientID:     r.RecipientID,
		AmountUSDC:      fromUnits(r.AmountUSDC, el.tokenDecimals),
		TargetAmountCOP: fromUnits(r.TargetAmountCOP, el.tokenDecimals),
		ExchangeRate:    fromUnits(r.ExchangeRate, el.rateDecimals),
		Status:          rmtapi.EscrowStatus(status),
		FundedAt:        unixSecondsTimestamp(r.FundedAt),
		CompletedAt:     unixSecondsTimestamp(r.CompletedAt),
	}
	if createdAt := unixSecondsTimestamp(r.CreatedAt); createdAt != nil {
		snapshot.CreatedAt = *createdAt
	}
	return snapshot, nil
}
