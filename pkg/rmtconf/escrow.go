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

package rmtconf

import "github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/confutil"

type EscrowConfig struct {
	// address of the deployed escrow contract
	ContractAddress string `json:"contractAddress"`
	// address of the ERC20 settlement token - queried from the escrow contract when empty
	TokenAddress string `json:"tokenAddress"`
	// hex secp256k1 private key of the operator wallet, or a file containing it
	OperatorKey     string `json:"operatorKey"`
	OperatorKeyFile string `json:"operatorKeyFile"`
	// decimals of the token, and the fixed point scale the contract expects for rates
	TokenDecimals *int32 `json:"tokenDecimals"`
	RateDecimals  *int32 `json:"rateDecimals"`
	// how long to wait for a receipt, before reporting an ambiguous outcome
	ConfirmationTimeout *string     `json:"confirmationTimeout"`
	ReceiptPoll         RetryConfig `json:"receiptPoll"`
	// how long an unused nonce is cached for the operator
	NonceStateTimeout *string `json:"nonceStateTimeout"`
}

var EscrowDefaults = &EscrowConfig{
	TokenDecimals:       confutil.P(int32(6)),
	RateDecimals:        confutil.P(int32(4)),
	ConfirmationTimeout: confutil.P("60s"),
	ReceiptPoll: RetryConfig{
		InitialDelay: confutil.P("250ms"),
		MaxDelay:     confutil.P("2s"),
		Factor:       confutil.P(1.5),
	},
	NonceStateTimeout: confutil.P("1h"),
}
