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

package ethclient

import (
	"strings"

	"github.com/hyperledger/firefly-signer/pkg/ethtypes"
)

// TransactionReceipt as returned over JSON/RPC by eth_getTransactionReceipt
type TransactionReceipt struct {
	BlockHash         ethtypes.HexBytes0xPrefix  `json:"blockHash"`
	BlockNumber       *ethtypes.HexInteger       `json:"blockNumber"`
	ContractAddress   *ethtypes.Address0xHex     `json:"contractAddress"`
	CumulativeGasUsed *ethtypes.HexInteger       `json:"cumulativeGasUsed"`
	From              *ethtypes.Address0xHex     `json:"from"`
	GasUsed           *ethtypes.HexInteger       `json:"gasUsed"`
	Logs              []*ReceiptLog              `json:"logs"`
	Status            *ethtypes.HexInteger       `json:"status"`
	To                *ethtypes.Address0xHex     `json:"to"`
	TransactionHash   ethtypes.HexBytes0xPrefix  `json:"transactionHash"`
	TransactionIndex  *ethtypes.HexInteger       `json:"transactionIndex"`
	RevertReason      *ethtypes.HexBytes0xPrefix `json:"revertReason"`
}

func (r *TransactionReceipt) Success() bool {
	return r.Status != nil && r.Status.BigInt().Sign() > 0
}

type ReceiptLog struct {
	Removed         bool                        `json:"removed"`
	LogIndex        *ethtypes.HexInteger        `json:"logIndex"`
	BlockNumber     *ethtypes.HexInteger        `json:"blockNumber"`
	TransactionHash ethtypes.HexBytes0xPrefix   `json:"transactionHash"`
	Address         *ethtypes.Address0xHex      `json:"address"`
	Data            ethtypes.HexBytes0xPrefix   `json:"data"`
	Topics          []ethtypes.HexBytes0xPrefix `json:"topics"`
}

// ErrorReason classifies the errors a JSON/RPC node returns, so the caller
// can decide between a permanent rejection and a retry
type ErrorReason string

const (
	// ErrorReasonInvalidInputs the transaction could not be built from the inputs
	ErrorReasonInvalidInputs ErrorReason = "invalid_inputs"
	// ErrorReasonTransactionReverted on-chain execution reverted (during gas estimation or a call)
	ErrorReasonTransactionReverted ErrorReason = "transaction_reverted"
	// ErrorReasonNonceTooLow the nonce has already been used in a mined transaction
	ErrorReasonNonceTooLow ErrorReason = "nonce_too_low"
	// ErrorReasonTransactionUnderpriced the gas price is below the node minimum
	ErrorReasonTransactionUnderpriced ErrorReason = "transaction_underpriced"
	// ErrorReasonInsufficientFunds the signing account cannot pay for gas
	ErrorReasonInsufficientFunds ErrorReason = "insufficient_funds"
	// ErrorKnownTransaction the exact transaction is already in the node's pool
	ErrorKnownTransaction ErrorReason = "known_transaction"
	// ErrorReasonNotFound the requested object was not found
	ErrorReasonNotFound ErrorReason = "not_found"
)

// MapSubmissionRejected returns true for errors where resubmitting the same
// transaction cannot succeed
func MapSubmissionRejected(err error) bool {
	switch MapError(err) {
	case ErrorReasonInvalidInputs,
		ErrorReasonTransactionReverted,
		ErrorReasonInsufficientFunds:
		return true
	default:
		return false
	}
}

func MapError(err error) ErrorReason {
	errString := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errString, "filter not found"):
		return ErrorReasonNotFound
	case strings.Contains(errString, "nonce too low"):
		return ErrorReasonNonceTooLow
	case strings.Contains(errString, "insufficient funds"):
		return ErrorReasonInsufficientFunds
	case strings.Contains(errString, "transaction underpriced"):
		return ErrorReasonTransactionUnderpriced
	case strings.Contains(errString, "known transaction"),
		strings.Contains(errString, "already known"):
		return ErrorKnownTransaction
	case strings.Contains(errString, "reverted"):
		return ErrorReasonTransactionReverted
	case strings.Contains(errString, "invalid argument"),
		strings.Contains(errString, "invalid input"):
		return ErrorReasonInvalidInputs
	default:
		return ""
	}
}
