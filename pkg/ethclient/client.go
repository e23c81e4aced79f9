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
	"context"
	"encoding/json"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-signer/pkg/abi"
	"github.com/hyperledger/firefly-signer/pkg/ethsigner"
	"github.com/hyperledger/firefly-signer/pkg/ethtypes"
	"github.com/hyperledger/firefly-signer/pkg/secp256k1"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/msgs"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/confutil"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/log"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtconf"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rpcclient"
	"golang.org/x/crypto/sha3"
)

// EthClient is the low level JSON/RPC interface used to submit and track
// transactions signed by a single in-memory key
type EthClient interface {
	Close()
	ChainID() int64

	GasPrice(ctx context.Context) (*ethtypes.HexInteger, error)
	EstimateGas(ctx context.Context, tx *ethsigner.Transaction, opts ...CallOption) (EstimateGasResult, error)
	CallContract(ctx context.Context, tx *ethsigner.Transaction, block string, opts ...CallOption) (CallResult, error)
	// Returns the pending transaction count, so transactions already in the mempool are counted
	GetTransactionCount(ctx context.Context, fromAddr ethtypes.Address0xHex) (uint64, error)
	// Estimates gas (if unset), fetches the gas price (if unset), and signs. The nonce must already be set.
	BuildRawTransaction(ctx context.Context, signer *secp256k1.KeyPair, tx *ethsigner.Transaction, opts ...CallOption) (ethtypes.HexBytes0xPrefix, error)
	SendRawTransaction(ctx context.Context, rawTX ethtypes.HexBytes0xPrefix) (ethtypes.HexBytes0xPrefix, error)
	// Returns nil with no error, if the transaction is not yet mined
	GetTransactionReceipt(ctx context.Context, txHash ethtypes.HexBytes0xPrefix) (*TransactionReceipt, error)
}

type CallOption interface {
	isCallOptions()
}

type callOptions struct {
	errABI  abi.ABI
	outputs abi.ParameterArray
}

func (co *callOptions) isCallOptions() {}

// WithErrorsFrom decodes revert data using the custom errors in the supplied ABI
func WithErrorsFrom(a abi.ABI) CallOption {
	return &callOptions{errABI: a}
}

// WithOutputs decodes the return data of a call
func WithOutputs(outputs abi.ParameterArray) CallOption {
	return &callOptions{outputs: outputs}
}

type EstimateGasResult struct {
	GasLimit   ethtypes.HexUint64
	RevertData ethtypes.HexBytes0xPrefix
}

type CallResult struct {
	Data          ethtypes.HexBytes0xPrefix
	DecodedResult *abi.ComponentValue
	RevertData    ethtypes.HexBytes0xPrefix
}

// JSON renders the decoded result as an object, with numbers as base 10 strings
func (cr CallResult) JSON(ctx context.Context) (json.RawMessage, error) {
	if cr.DecodedResult == nil {
		return json.RawMessage(`null`), nil
	}
	return StandardABISerializer().SerializeJSONCtx(ctx, cr.DecodedResult)
}

func StandardABISerializer() *abi.Serializer {
	return abi.NewSerializer().
		SetFormattingMode(abi.FormatAsObjects).
		SetIntSerializer(abi.Base10StringIntSerializer).
		SetFloatSerializer(abi.Base10StringFloatSerializer).
		SetByteSerializer(abi.HexByteSerializer0xPrefix).
		SetAddressSerializer(abi.HexAddrSerializer0xPrefix)
}

type ethClient struct {
	chainID           int64
	gasEstimateFactor float64
	rpc               rpcclient.Client
}

// NewEthClient connects over HTTP and queries the chain ID
func NewEthClient(ctx context.Context, conf *rmtconf.EthClientConfig) (EthClient, error) {
	httpConf := conf.HTTP
	httpConf.URL = confutil.StringNotEmpty(&conf.HTTP.URL, rmtconf.EthClientDefaults.HTTP.URL)
	rpc, err := rpcclient.NewHTTPClient(ctx, &httpConf)
	if err != nil {
		return nil, err
	}
	return WrapRPCClient(ctx, rpc, conf)
}

func WrapRPCClient(ctx context.Context, rpc rpcclient.Client, conf *rmtconf.EthClientConfig) (EthClient, error) {
	ec := &ethClient{
		rpc:               rpc,
		gasEstimateFactor: confutil.Float64Min(conf.GasEstimateFactor, 1.0, *rmtconf.EthClientDefaults.GasEstimateFactor),
	}
	if err := ec.setupChainID(ctx); err != nil {
		return nil, err
	}
	return ec, nil
}

func (ec *ethClient) Close() {}

func (ec *ethClient) ChainID() int64 {
	return ec.chainID
}

func (ec *ethClient) setupChainID(ctx context.Context) error {
	var chainID ethtypes.HexUint64
	if rpcErr := ec.rpc.CallRPC(ctx, &chainID, "eth_chainId"); rpcErr != nil {
		log.L(ctx).Errorf("eth_chainId failed: %+v", rpcErr)
		return i18n.WrapError(ctx, rpcErr, msgs.MsgEthClientChainIDFailed)
	}
	ec.chainID = int64(chainID.Uint64())
	return nil
}

func collectOptions(opts []CallOption) *callOptions {
	co := &callOptions{errABI: abi.ABI{}}
	for _, o := range opts {
		oc := o.(*callOptions)
		if oc.errABI != nil {
			co.errABI = oc.errABI
		}
		if oc.outputs != nil {
			co.outputs = oc.outputs
		}
	}
	return co
}

func (ec *ethClient) CallContract(ctx context.Context, tx *ethsigner.Transaction, block string, opts ...CallOption) (res CallResult, err error) {
	co := collectOptions(opts)
	if rpcErr := ec.rpc.CallRPC(ctx, &res.Data, "eth_call", tx, block); rpcErr != nil {
		e := rpcErr.RPCError()
		log.L(ctx).Errorf("eth_call failed: %+v", e)
		if len(e.Data) != 0 {
			log.L(ctx).Debugf("Received error data in revert: %s", e.Data)
			_ = json.Unmarshal(e.Data, &res.RevertData)
			if len(res.RevertData) > 0 {
				errString, _ := co.errABI.ErrorStringCtx(ctx, res.RevertData)
				if errString == "" {
					errString = res.RevertData.String()
				}
				return res, i18n.NewError(ctx, msgs.MsgEthClientCallReverted, errString)
			}
		}
		return res, rpcErr
	}

	if co.outputs != nil {
		res.DecodedResult, err = co.outputs.DecodeABIDataCtx(ctx, res.Data, 0)
		if err != nil {
			return res, i18n.WrapError(ctx, err, msgs.MsgEthClientReturnDecode, tx.To)
		}
	}
	return res, nil
}

func (ec *ethClient) GasPrice(ctx context.Context) (*ethtypes.HexInteger, error) {
	// legacy gas pricing only - the operator signs EIP-155 transactions
	var gasPrice ethtypes.HexInteger
	if rpcErr := ec.rpc.CallRPC(ctx, &gasPrice, "eth_gasPrice"); rpcErr != nil {
		log.L(ctx).Errorf("eth_gasPrice failed: %+v", rpcErr)
		return nil, rpcErr
	}
	return &gasPrice, nil
}

func (ec *ethClient) EstimateGas(ctx context.Context, tx *ethsigner.Transaction, opts ...CallOption) (res EstimateGasResult, err error) {
	if rpcErr := ec.rpc.CallRPC(ctx, &res.GasLimit, "eth_estimateGas", tx); rpcErr != nil {
		log.L(ctx).Errorf("eth_estimateGas failed: %+v", rpcErr)
		// Fall back to a call, to see if we can get a revert reason
		callRes, callErr := ec.CallContract(ctx, tx, "latest", opts...)
		err = rpcErr
		if callErr != nil {
			err = callErr
		}
		res.RevertData = callRes.RevertData
		return res, err
	}
	return res, nil
}

func (ec *ethClient) GetTransactionCount(ctx context.Context, fromAddr ethtypes.Address0xHex) (uint64, error) {
	var transactionCount ethtypes.HexUint64
	if rpcErr := ec.rpc.CallRPC(ctx, &transactionCount, "eth_getTransactionCount", fromAddr, "pending"); rpcErr != nil {
		log.L(ctx).Errorf("eth_getTransactionCount(%s) failed: %+v", fromAddr, rpcErr)
		return 0, rpcErr
	}
	return transactionCount.Uint64(), nil
}

func (ec *ethClient) BuildRawTransaction(ctx context.Context, signer *secp256k1.KeyPair, tx *ethsigner.Transaction, opts ...CallOption) (ethtypes.HexBytes0xPrefix, error) {
	tx.From = json.RawMessage(`"` + signer.Address.String() + `"`)

	if tx.GasLimit == nil {
		gasEstimate, err := ec.EstimateGas(ctx, tx, opts...)
		if err != nil {
			return nil, err
		}
		factoredGasLimit := int64(float64(gasEstimate.GasLimit.Uint64()) * ec.gasEstimateFactor)
		tx.GasLimit = ethtypes.NewHexInteger64(factoredGasLimit)
	}

	if tx.GasPrice == nil {
		gasPrice, err := ec.GasPrice(ctx)
		if err != nil {
			return nil, err
		}
		tx.GasPrice = gasPrice
	}

	sigPayload := tx.SignaturePayloadLegacyEIP155(ec.chainID)
	sig, err := signer.Sign(sigPayload.Bytes())
	var rawTX []byte
	if err == nil {
		rawTX, err = tx.FinalizeLegacyEIP155WithSignature(sigPayload, sig, ec.chainID)
	}
	if err != nil {
		log.L(ctx).Errorf("signing failed (addr=%s): %s", signer.Address, err)
		return nil, err
	}
	return rawTX, nil
}

func (ec *ethClient) SendRawTransaction(ctx context.Context, rawTX ethtypes.HexBytes0xPrefix) (ethtypes.HexBytes0xPrefix, error) {
	var txHash ethtypes.HexBytes0xPrefix
	if rpcErr := ec.rpc.CallRPC(ctx, &txHash, "eth_sendRawTransaction", rawTX); rpcErr != nil {
		addr, decodedTX, err := ethsigner.RecoverRawTransaction(ctx, rawTX, ec.chainID)
		if err != nil {
			log.L(ctx).Errorf("Invalid transaction build during signing: %s", err)
		} else {
			log.L(ctx).Errorf("Rejected TX (from=%s, nonce=%s): %s", addr, decodedTX.Nonce, rpcErr)
		}
		return nil, rpcErr
	}
	return txHash, nil
}

func (ec *ethClient) GetTransactionReceipt(ctx context.Context, txHash ethtypes.HexBytes0xPrefix) (*TransactionReceipt, error) {
	var receipt *TransactionReceipt
	if rpcErr := ec.rpc.CallRPC(ctx, &receipt, "eth_getTransactionReceipt", txHash); rpcErr != nil {
		log.L(ctx).Errorf("eth_getTransactionReceipt(%s) failed: %+v", txHash, rpcErr)
		return nil, rpcErr
	}
	return receipt, nil
}

// TransactionHash is the keccak256 of the signed transaction bytes, which is the hash
// the node reports once it accepts the transaction
func TransactionHash(rawTX []byte) ethtypes.HexBytes0xPrefix {
	hash := sha3.NewLegacyKeccak256()
	_, _ = hash.Write(rawTX)
	return hash.Sum(nil)
}
