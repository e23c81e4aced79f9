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
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hyperledger/firefly-signer/pkg/abi"
	"github.com/hyperledger/firefly-signer/pkg/ethsigner"
	"github.com/hyperledger/firefly-signer/pkg/ethtypes"
	"github.com/hyperledger/firefly-signer/pkg/secp256k1"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/confutil"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtconf"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rpcclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rpcHandler func(params []json.RawMessage) (interface{}, *rpcclient.RPCError)

type mockEth map[string]rpcHandler

func newTestServer(t *testing.T, mEth mockEth) (string, func()) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcclient.RPCRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		res := &rpcclient.RPCResponse{JSONRpc: "2.0", ID: req.ID}
		handler := mEth[req.Method]
		if handler == nil {
			res.Error = &rpcclient.RPCError{Code: int64(rpcclient.RPCCodeInvalidRequest), Message: "method not found: " + req.Method}
		} else {
			result, rpcErr := handler(req.Params)
			if rpcErr != nil {
				res.Error = rpcErr
			} else {
				res.Result, err = json.Marshal(result)
				require.NoError(t, err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		if res.Error != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
		_ = json.NewEncoder(w).Encode(res)
	}))
	return server.URL, server.Close
}

func newTestClientAndServer(t *testing.T, mEth mockEth) (context.Context, *ethClient, func()) {
	ctx := context.Background()
	if mEth["eth_chainId"] == nil {
		mEth["eth_chainId"] = func(params []json.RawMessage) (interface{}, *rpcclient.RPCError) {
			return "0x13882", nil
		}
	}
	url, done := newTestServer(t, mEth)
	ec, err := NewEthClient(ctx, &rmtconf.EthClientConfig{
		HTTP:              rmtconf.HTTPClientConfig{URL: url},
		GasEstimateFactor: confutil.P(1.5),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(80002), ec.ChainID())
	return ctx, ec.(*ethClient), func() {
		ec.Close()
		done()
	}
}

func testErrorABI() abi.ABI {
	return abi.ABI{
		{Type: abi.Error, Name: "InsufficientBalance", Inputs: abi.ParameterArray{
			{Name: "needed", Type: "uint256"},
		}},
	}
}

func TestNewEthClientChainIDFail(t *testing.T) {
	url, done := newTestServer(t, mockEth{
		"eth_chainId": func(params []json.RawMessage) (interface{}, *rpcclient.RPCError) {
			return nil, &rpcclient.RPCError{Code: -32000, Message: "pop"}
		},
	})
	defer done()
	_, err := NewEthClient(context.Background(), &rmtconf.EthClientConfig{
		HTTP: rmtconf.HTTPClientConfig{URL: url},
	})
	assert.Regexp(t, "PT011304.*pop", err)
}

func TestNewEthClientBadURL(t *testing.T) {
	_, err := NewEthClient(context.Background(), &rmtconf.EthClientConfig{
		HTTP: rmtconf.HTTPClientConfig{URL: "wrong://bad.example.com"},
	})
	assert.Regexp(t, "PT011302", err)
}

func TestGasPriceAndCount(t *testing.T) {
	ctx, ec, done := newTestClientAndServer(t, mockEth{
		"eth_gasPrice": func(params []json.RawMessage) (interface{}, *rpcclient.RPCError) {
			return "0x3b9aca00", nil
		},
		"eth_getTransactionCount": func(params []json.RawMessage) (interface{}, *rpcclient.RPCError) {
			assert.JSONEq(t, `"pending"`, string(params[1]))
			return "0x0a", nil
		},
	})
	defer done()

	gp, err := ec.GasPrice(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1000000000), gp.BigInt().Int64())

	count, err := ec.GetTransactionCount(ctx, *ethtypes.MustNewAddress("0xfb75836dc4130a9462fafa3ec8c1c1ac4ea8a8a0"))
	require.NoError(t, err)
	assert.Equal(t, uint64(10), count)
}

func TestGasPriceAndCountFail(t *testing.T) {
	ctx, ec, done := newTestClientAndServer(t, mockEth{})
	defer done()

	_, err := ec.GasPrice(ctx)
	assert.Regexp(t, "method not found", err)

	_, err = ec.GetTransactionCount(ctx, *ethtypes.MustNewAddress("0xfb75836dc4130a9462fafa3ec8c1c1ac4ea8a8a0"))
	assert.Regexp(t, "method not found", err)
}

func TestCallContractDecodeOutputs(t *testing.T) {
	ctx, ec, done := newTestClientAndServer(t, mockEth{
		"eth_call": func(params []json.RawMessage) (interface{}, *rpcclient.RPCError) {
			assert.JSONEq(t, `"latest"`, string(params[1]))
			return "0x000000000000000000000000000000000000000000000000000000000000007b", nil
		},
	})
	defer done()

	res, err := ec.CallContract(ctx, &ethsigner.Transaction{}, "latest", WithOutputs(abi.ParameterArray{
		{Name: "value", Type: "uint256"},
	}))
	require.NoError(t, err)
	jv, err := res.JSON(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":"123"}`, string(jv))
}

func TestCallContractNoOutputsJSON(t *testing.T) {
	ctx, ec, done := newTestClientAndServer(t, mockEth{
		"eth_call": func(params []json.RawMessage) (interface{}, *rpcclient.RPCError) {
			return "0x", nil
		},
	})
	defer done()

	res, err := ec.CallContract(ctx, &ethsigner.Transaction{}, "latest")
	require.NoError(t, err)
	jv, err := res.JSON(ctx)
	require.NoError(t, err)
	assert.Equal(t, `null`, string(jv))
}

func TestCallContractBadOutputs(t *testing.T) {
	ctx, ec, done := newTestClientAndServer(t, mockEth{
		"eth_call": func(params []json.RawMessage) (interface{}, *rpcclient.RPCError) {
			return "0x00", nil
		},
	})
	defer done()

	_, err := ec.CallContract(ctx, &ethsigner.Transaction{}, "latest", WithOutputs(abi.ParameterArray{
		{Name: "value", Type: "uint256"},
	}))
	assert.Regexp(t, "PT011306", err)
}

func TestCallContractRevertErrorString(t *testing.T) {
	revertData, err := (&abi.Entry{Type: abi.Error, Name: "Error", Inputs: abi.ParameterArray{{Type: "string"}}}).
		EncodeCallDataValuesCtx(context.Background(), []interface{}{"Amount must be greater than 0"})
	require.NoError(t, err)

	ctx, ec, done := newTestClientAndServer(t, mockEth{
		"eth_call": func(params []json.RawMessage) (interface{}, *rpcclient.RPCError) {
			return nil, &rpcclient.RPCError{
				Code:    3,
				Message: "execution reverted",
				Data:    json.RawMessage(fmt.Sprintf(`"%s"`, ethtypes.HexBytes0xPrefix(revertData))),
			}
		},
	})
	defer done()

	res, err := ec.CallContract(ctx, &ethsigner.Transaction{}, "latest")
	assert.Regexp(t, "PT011305.*Amount must be greater than 0", err)
	assert.NotEmpty(t, res.RevertData)
	assert.Equal(t, ErrorReasonTransactionReverted, MapError(err))
}

func TestCallContractRevertCustomError(t *testing.T) {
	errABI := testErrorABI()
	revertData, err := errABI[0].EncodeCallDataValuesCtx(context.Background(), []interface{}{big.NewInt(42)})
	require.NoError(t, err)

	ctx, ec, done := newTestClientAndServer(t, mockEth{
		"eth_call": func(params []json.RawMessage) (interface{}, *rpcclient.RPCError) {
			return nil, &rpcclient.RPCError{
				Code:    3,
				Message: "execution reverted",
				Data:    json.RawMessage(fmt.Sprintf(`"%s"`, ethtypes.HexBytes0xPrefix(revertData))),
			}
		},
	})
	defer done()

	_, err = ec.CallContract(ctx, &ethsigner.Transaction{}, "latest", WithErrorsFrom(errABI))
	assert.Regexp(t, "PT011305.*InsufficientBalance", err)
}

func TestCallContractFailNoData(t *testing.T) {
	ctx, ec, done := newTestClientAndServer(t, mockEth{
		"eth_call": func(params []json.RawMessage) (interface{}, *rpcclient.RPCError) {
			return nil, &rpcclient.RPCError{Code: -32000, Message: "pop"}
		},
	})
	defer done()

	_, err := ec.CallContract(ctx, &ethsigner.Transaction{}, "latest")
	assert.Regexp(t, "pop", err)
}

func TestEstimateGasFallbackToCall(t *testing.T) {
	ctx, ec, done := newTestClientAndServer(t, mockEth{
		"eth_estimateGas": func(params []json.RawMessage) (interface{}, *rpcclient.RPCError) {
			return nil, &rpcclient.RPCError{Code: -32000, Message: "gas required exceeds allowance"}
		},
		"eth_call": func(params []json.RawMessage) (interface{}, *rpcclient.RPCError) {
			return nil, &rpcclient.RPCError{Code: 3, Message: "execution reverted", Data: json.RawMessage(`"0xfeedbeef"`)}
		},
	})
	defer done()

	res, err := ec.EstimateGas(ctx, &ethsigner.Transaction{})
	assert.Regexp(t, "PT011305.*0xfeedbeef", err)
	assert.Equal(t, "0xfeedbeef", res.RevertData.String())
}

func TestEstimateGasFailCallOK(t *testing.T) {
	ctx, ec, done := newTestClientAndServer(t, mockEth{
		"eth_estimateGas": func(params []json.RawMessage) (interface{}, *rpcclient.RPCError) {
			return nil, &rpcclient.RPCError{Code: -32000, Message: "pop"}
		},
		"eth_call": func(params []json.RawMessage) (interface{}, *rpcclient.RPCError) {
			return "0x", nil
		},
	})
	defer done()

	_, err := ec.EstimateGas(ctx, &ethsigner.Transaction{})
	assert.Regexp(t, "pop", err)
}

func TestBuildAndSendRawTransaction(t *testing.T) {
	kp, err := secp256k1.GenerateSecp256k1KeyPair()
	require.NoError(t, err)

	var sentTX ethtypes.HexBytes0xPrefix
	ctx, ec, done := newTestClientAndServer(t, mockEth{
		"eth_estimateGas": func(params []json.RawMessage) (interface{}, *rpcclient.RPCError) {
			var tx ethsigner.Transaction
			require.NoError(t, json.Unmarshal(params[0], &tx))
			assert.JSONEq(t, fmt.Sprintf(`"%s"`, kp.Address), string(tx.From))
			return "0x5208", nil
		},
		"eth_gasPrice": func(params []json.RawMessage) (interface{}, *rpcclient.RPCError) {
			return "0x3b9aca00", nil
		},
		"eth_sendRawTransaction": func(params []json.RawMessage) (interface{}, *rpcclient.RPCError) {
			require.NoError(t, json.Unmarshal(params[0], &sentTX))
			return TransactionHash(sentTX), nil
		},
	})
	defer done()

	tx := &ethsigner.Transaction{
		Nonce: ethtypes.NewHexInteger64(3),
		To:    ethtypes.MustNewAddress("0xfb75836dc4130a9462fafa3ec8c1c1ac4ea8a8a0"),
	}
	rawTX, err := ec.BuildRawTransaction(ctx, kp, tx)
	require.NoError(t, err)
	assert.Equal(t, int64(31500), tx.GasLimit.BigInt().Int64())
	assert.Equal(t, int64(1000000000), tx.GasPrice.BigInt().Int64())

	addr, decoded, err := ethsigner.RecoverRawTransaction(ctx, rawTX, ec.ChainID())
	require.NoError(t, err)
	assert.Equal(t, kp.Address.String(), addr.String())
	assert.Equal(t, int64(3), decoded.Nonce.BigInt().Int64())

	txHash, err := ec.SendRawTransaction(ctx, rawTX)
	require.NoError(t, err)
	assert.Equal(t, TransactionHash(rawTX).String(), txHash.String())
	assert.Equal(t, rawTX.String(), sentTX.String())
}

func TestBuildRawTransactionEstimateFail(t *testing.T) {
	kp, err := secp256k1.GenerateSecp256k1KeyPair()
	require.NoError(t, err)

	ctx, ec, done := newTestClientAndServer(t, mockEth{
		"eth_estimateGas": func(params []json.RawMessage) (interface{}, *rpcclient.RPCError) {
			return nil, &rpcclient.RPCError{Code: -32000, Message: "insufficient funds for gas"}
		},
		"eth_call": func(params []json.RawMessage) (interface{}, *rpcclient.RPCError) {
			return "0x", nil
		},
	})
	defer done()

	_, err = ec.BuildRawTransaction(ctx, kp, &ethsigner.Transaction{Nonce: ethtypes.NewHexInteger64(0)})
	assert.Regexp(t, "insufficient funds", err)
	assert.True(t, MapSubmissionRejected(err))
}

func TestBuildRawTransactionGasPriceFail(t *testing.T) {
	kp, err := secp256k1.GenerateSecp256k1KeyPair()
	require.NoError(t, err)

	ctx, ec, done := newTestClientAndServer(t, mockEth{})
	defer done()

	_, err = ec.BuildRawTransaction(ctx, kp, &ethsigner.Transaction{
		Nonce:    ethtypes.NewHexInteger64(0),
		GasLimit: ethtypes.NewHexInteger64(100000),
	})
	assert.Regexp(t, "method not found", err)
}

func TestSendRawTransactionFail(t *testing.T) {
	kp, err := secp256k1.GenerateSecp256k1KeyPair()
	require.NoError(t, err)

	ctx, ec, done := newTestClientAndServer(t, mockEth{
		"eth_sendRawTransaction": func(params []json.RawMessage) (interface{}, *rpcclient.RPCError) {
			return nil, &rpcclient.RPCError{Code: -32000, Message: "nonce too low"}
		},
	})
	defer done()

	rawTX, err := ec.BuildRawTransaction(ctx, kp, &ethsigner.Transaction{
		Nonce:    ethtypes.NewHexInteger64(0),
		GasLimit: ethtypes.NewHexInteger64(100000),
		GasPrice: ethtypes.NewHexInteger64(1),
	})
	require.NoError(t, err)

	_, err = ec.SendRawTransaction(ctx, rawTX)
	assert.Regexp(t, "nonce too low", err)
	assert.Equal(t, ErrorReasonNonceTooLow, MapError(err))

	_, err = ec.SendRawTransaction(ctx, ethtypes.HexBytes0xPrefix{0xfe})
	assert.Regexp(t, "nonce too low", err)
}

func TestGetTransactionReceipt(t *testing.T) {
	ctx, ec, done := newTestClientAndServer(t, mockEth{
		"eth_getTransactionReceipt": func(params []json.RawMessage) (interface{}, *rpcclient.RPCError) {
			if string(params[0]) == `"0x01"` {
				return nil, nil
			}
			return map[string]interface{}{
				"transactionHash": "0x02",
				"blockNumber":     "0x10",
				"status":          "0x1",
				"logs": []map[string]interface{}{
					{"address": "0xfb75836dc4130a9462fafa3ec8c1c1ac4ea8a8a0", "topics": []string{"0xaa"}, "data": "0x"},
				},
			}, nil
		},
	})
	defer done()

	r, err := ec.GetTransactionReceipt(ctx, ethtypes.HexBytes0xPrefix{0x01})
	require.NoError(t, err)
	assert.Nil(t, r)

	r, err = ec.GetTransactionReceipt(ctx, ethtypes.HexBytes0xPrefix{0x02})
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.True(t, r.Success())
	assert.Len(t, r.Logs, 1)
	assert.Equal(t, int64(16), r.BlockNumber.BigInt().Int64())
}

func TestGetTransactionReceiptFail(t *testing.T) {
	ctx, ec, done := newTestClientAndServer(t, mockEth{})
	defer done()

	_, err := ec.GetTransactionReceipt(ctx, ethtypes.HexBytes0xPrefix{0x01})
	assert.Regexp(t, "method not found", err)
}

func TestMapErrors(t *testing.T) {
	assert.Equal(t, ErrorReasonNotFound, MapError(fmt.Errorf("filter not found")))
	assert.Equal(t, ErrorReasonTransactionUnderpriced, MapError(fmt.Errorf("transaction underpriced")))
	assert.Equal(t, ErrorKnownTransaction, MapError(fmt.Errorf("already known")))
	assert.Equal(t, ErrorReasonInvalidInputs, MapError(fmt.Errorf("invalid argument 0")))
	assert.Equal(t, ErrorReason(""), MapError(fmt.Errorf("connection refused")))
	assert.False(t, MapSubmissionRejected(fmt.Errorf("connection refused")))
	assert.True(t, MapSubmissionRejected(fmt.Errorf("execution reverted")))
}

func TestReceiptFailureStatus(t *testing.T) {
	assert.False(t, (&TransactionReceipt{}).Success())
	assert.False(t, (&TransactionReceipt{Status: ethtypes.NewHexInteger64(0)}).Success())
}
