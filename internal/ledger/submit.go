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
	"errors"
	"fmt"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-signer/pkg/ethsigner"
	"github.com/hyperledger/firefly-signer/pkg/ethtypes"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/msgs"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/ethclient"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/log"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtapi"
)

var errNotMined = errors.New("not yet mined")

// submitAndConfirm signs and sends a transaction as the operator, and waits for it to be mined.
// A successful return means the transaction was mined with a success status.
func (el *escrowLedger) submitAndConfirm(ctx context.Context, method string, to *ethtypes.Address0xHex, data []byte) (*ethclient.TransactionReceipt, error) {
	ctx = log.WithLogField(ctx, "method", method)
	tx := &ethsigner.Transaction{
		To:   to,
		Data: data,
	}
	txHash, err := el.submit(ctx, method, tx)
	if err != nil {
		return nil, err
	}
	receipt, err := el.waitForReceipt(ctx, method, txHash)
	if err != nil {
		el.metrics.RecordSubmission(method, outcomeAmbiguous)
		return nil, err
	}
	if !receipt.Success() {
		reason := el.revertReason(ctx, tx, receipt)
		log.L(ctx).Errorf("Transaction %s reverted: %s", txHash, reason)
		el.metrics.RecordSubmission(method, outcomeRejected)
		return nil, rmtapi.NewError(rmtapi.ErrorKindLedgerRejected,
			i18n.NewError(ctx, msgs.MsgLedgerTransactionReverted, txHash, method, reason))
	}
	el.metrics.RecordSubmission(method, outcomeSuccess)
	log.L(ctx).Infof("Transaction %s mined in block %s", txHash, receipt.BlockNumber)
	return receipt, nil
}

// submit holds the operator nonce only until the node has accepted (or refused) the transaction
func (el *escrowLedger) submit(ctx context.Context, method string, tx *ethsigner.Transaction) (ethtypes.HexBytes0xPrefix, error) {
	intent, err := el.nonces.IntentToAssignNonce(ctx, el.operator.Address)
	if err != nil {
		return nil, el.submitError(ctx, method, err, false)
	}
	defer intent.Rollback(ctx)

	nonce := intent.AssignNextNonce(ctx)
	tx.Nonce = ethtypes.NewHexInteger64(int64(nonce))
	rawTX, err := el.ethClient.BuildRawTransaction(ctx, el.operator, tx, ethclient.WithErrorsFrom(el.abis.errors))
	if err != nil {
		return nil, el.submitError(ctx, method, err, false)
	}

	txHash, err := el.ethClient.SendRawTransaction(ctx, rawTX)
	if err != nil {
		switch ethclient.MapError(err) {
		case ethclient.ErrorKnownTransaction:
			log.L(ctx).Warnf("Transaction nonce=%d already known to node: %s", nonce, err)
			txHash = ethclient.TransactionHash(rawTX)
		case ethclient.ErrorReasonNonceTooLow, ethclient.ErrorReasonTransactionUnderpriced:
			intent.Reset(ctx)
			return nil, el.submitError(ctx, method, err, false)
		default:
			// the node might have received it, so we cannot reuse the nonce or assume failure
			intent.Reset(ctx)
			return nil, el.submitError(ctx, method, err, !ethclient.MapSubmissionRejected(err))
		}
	}
	intent.Complete(ctx)
	log.L(ctx).Infof("Submitted %s tx=%s nonce=%d", method, txHash, nonce)
	return txHash, nil
}

func (el *escrowLedger) submitError(ctx context.Context, method string, err error, ambiguous bool) error {
	kind := rmtapi.ErrorKindLedgerError
	outcome := outcomeFailed
	switch {
	case ethclient.MapSubmissionRejected(err):
		kind = rmtapi.ErrorKindLedgerRejected
		outcome = outcomeRejected
		ambiguous = false
	case ambiguous:
		outcome = outcomeAmbiguous
	}
	el.metrics.RecordSubmission(method, outcome)
	return rmtapi.NewError(kind, i18n.WrapError(ctx, err, msgs.MsgLedgerSubmitFailed, method)).
		WithAmbiguous(ambiguous)
}

// waitForReceipt polls until the transaction is mined. Errors polling the node are retried, as the
// transaction is already submitted. Exceeding the confirmation timeout is ambiguous, not a failure.
func (el *escrowLedger) waitForReceipt(ctx context.Context, method string, txHash ethtypes.HexBytes0xPrefix) (*ethclient.TransactionReceipt, error) {
	waitCtx, cancel := context.WithTimeout(ctx, el.confirmationTimeout)
	defer cancel()
	var receipt *ethclient.TransactionReceipt
	err := el.receiptPoll.Do(waitCtx, func(attempt int) (retryable bool, err error) {
		receipt, err = el.ethClient.GetTransactionReceipt(waitCtx, txHash)
		if err == nil && receipt == nil {
			err = errNotMined
		}
		return true, err
	})
	if err != nil {
		log.L(ctx).Errorf("No receipt for %s tx=%s after %s: %s", method, txHash, el.confirmationTimeout, err)
		return nil, rmtapi.NewError(rmtapi.ErrorKindLedgerError,
			i18n.NewError(ctx, msgs.MsgLedgerConfirmTimeout, txHash, method, el.confirmationTimeout)).
			WithAmbiguous(true)
	}
	return receipt, nil
}

// revertReason uses the reason on the receipt if the node provides one, or replays the
// transaction as a call against the block it was mined in
func (el *escrowLedger) revertReason(ctx context.Context, tx *ethsigner.Transaction, receipt *ethclient.TransactionReceipt) string {
	if receipt.RevertReason != nil && len(*receipt.RevertReason) > 0 {
		if reason, ok := el.abis.errors.ErrorStringCtx(ctx, *receipt.RevertReason); ok {
			return reason
		}
		return receipt.RevertReason.String()
	}
	block := "latest"
	if receipt.BlockNumber != nil {
		block = fmt.Sprintf("0x%x", receipt.BlockNumber.BigInt())
	}
	_, err := el.ethClient.CallContract(ctx, tx, block, ethclient.WithErrorsFrom(el.abis.errors))
	if err != nil {
		return err.Error()
	}
	return "unknown"
}
