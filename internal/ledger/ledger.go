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
	"encoding/hex"
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-signer/pkg/ethsigner"
	"github.com/hyperledger/firefly-signer/pkg/ethtypes"
	"github.com/hyperledger/firefly-signer/pkg/secp256k1"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/components"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/msgs"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/confutil"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/ethclient"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/log"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/retry"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtapi"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtconf"
)

type escrowLedger struct {
	bgCtx   context.Context
	abis    *contractABIs
	metrics ledgerMetrics

	ethClient ethclient.EthClient
	operator  *secp256k1.KeyPair
	contract  ethtypes.Address0xHex
	token     *ethtypes.Address0xHex
	nonces    NonceCache

	tokenDecimals       int32
	rateDecimals        int32
	confirmationTimeout time.Duration
	nonceStateTimeout   time.Duration
	receiptPoll         *retry.Retry
}

var _ components.EscrowLedger = &escrowLedger{}

func NewEscrowLedger(bgCtx context.Context, conf *rmtconf.EscrowConfig) (components.EscrowLedger, error) {
	el := &escrowLedger{
		bgCtx:               log.WithLogField(bgCtx, "component", "ledger"),
		abis:                loadContractABIs(),
		tokenDecimals:       confutil.Int32Range(conf.TokenDecimals, 0, 18, *rmtconf.EscrowDefaults.TokenDecimals),
		rateDecimals:        confutil.Int32Range(conf.RateDecimals, 0, 18, *rmtconf.EscrowDefaults.RateDecimals),
		confirmationTimeout: confutil.DurationMin(conf.ConfirmationTimeout, 100*time.Millisecond, *rmtconf.EscrowDefaults.ConfirmationTimeout),
		nonceStateTimeout:   confutil.DurationMin(conf.NonceStateTimeout, 1*time.Second, *rmtconf.EscrowDefaults.NonceStateTimeout),
		receiptPoll:         retry.NewRetryIndefinite(&conf.ReceiptPoll, &rmtconf.EscrowDefaults.ReceiptPoll),
	}

	if conf.ContractAddress == "" {
		return nil, i18n.NewError(bgCtx, msgs.MsgLedgerMissingContract)
	}
	contract, err := ethtypes.NewAddress(conf.ContractAddress)
	if err != nil {
		return nil, i18n.WrapError(bgCtx, err, msgs.MsgLedgerInvalidContract, conf.ContractAddress)
	}
	el.contract = *contract

	if conf.TokenAddress != "" {
		if el.token, err = ethtypes.NewAddress(conf.TokenAddress); err != nil {
			return nil, i18n.WrapError(bgCtx, err, msgs.MsgLedgerInvalidContract, conf.TokenAddress)
		}
	}

	if el.operator, err = loadOperatorKey(bgCtx, conf); err != nil {
		return nil, err
	}
	log.L(bgCtx).Infof("Escrow ledger contract=%s operator=%s", el.contract, el.operator.Address)
	return el, nil
}

func loadOperatorKey(ctx context.Context, conf *rmtconf.EscrowConfig) (*secp256k1.KeyPair, error) {
	keyHex := conf.OperatorKey
	if conf.OperatorKeyFile != "" {
		b, err := os.ReadFile(conf.OperatorKeyFile)
		if err != nil {
			return nil, i18n.WrapError(ctx, err, msgs.MsgLedgerInvalidOperatorFile, conf.OperatorKeyFile)
		}
		keyHex = string(b)
	}
	keyBytes, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(keyHex), "0x"))
	if err != nil || len(keyBytes) != 32 {
		return nil, i18n.NewError(ctx, msgs.MsgLedgerInvalidOperatorKey)
	}
	kp, err := secp256k1.NewSecp256k1KeyPair(keyBytes)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgLedgerInvalidOperatorKey)
	}
	return kp, nil
}

func (el *escrowLedger) PreInit(c components.PreInitComponents) error {
	el.ethClient = c.EthClient()
	el.metrics = initMetrics(c.MetricsManager().Registry())
	el.nonces = newNonceCache(el.nonceStateTimeout, el.ethClient.GetTransactionCount)
	return nil
}

func (el *escrowLedger) PostInit(c components.AllComponents) error {
	return nil
}

func (el *escrowLedger) Start() error {
	if el.token == nil {
		token, err := el.resolveTokenAddress(el.bgCtx)
		if err != nil {
			return err
		}
		el.token = token
	}
	log.L(el.bgCtx).Infof("Escrow settlement token=%s chainId=%d", el.token, el.ethClient.ChainID())
	return nil
}

func (el *escrowLedger) Stop() {
	if el.nonces != nil {
		el.nonces.Stop()
	}
}

func (el *escrowLedger) operatorFrom() json.RawMessage {
	return json.RawMessage(`"` + el.operator.Address.String() + `"`)
}

func (el *escrowLedger) resolveTokenAddress(ctx context.Context) (*ethtypes.Address0xHex, error) {
	data, err := el.abis.usdc.EncodeCallDataJSONCtx(ctx, []byte(`{}`))
	if err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgLedgerTokenLookupFailed)
	}
	res, err := el.ethClient.CallContract(ctx, &ethsigner.Transaction{
		From: el.operatorFrom(),
		To:   &el.contract,
		Data: data,
	}, "latest", ethclient.WithOutputs(el.abis.usdc.Outputs))
	var jsonRes json.RawMessage
	if err == nil {
		jsonRes, err = res.JSON(ctx)
	}
	var parsed struct {
		USDC string `json:"usdc"`
	}
	if err == nil {
		err = json.Unmarshal(jsonRes, &parsed)
	}
	var token *ethtypes.Address0xHex
	if err == nil {
		token, err = ethtypes.NewAddress(parsed.USDC)
	}
	if err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgLedgerTokenLookupFailed)
	}
	return token, nil
}

func (el *escrowLedger) ContractInfo(ctx context.Context) (*rmtapi.ContractConfig, error) {
	cc := &rmtapi.ContractConfig{
		EscrowAddress: el.contract.String(),
		ChainID:       el.ethClient.ChainID(),
	}
	if el.token != nil {
		cc.USDCAddress = el.token.String()
	}
	return cc, nil
}
