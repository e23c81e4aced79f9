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

package rpcclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/log"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler func(req *RPCRequest) (int, *RPCResponse)) (Client, func()) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req RPCRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2.0", req.JSONRpc)
		status, res := handler(&req)
		res.JSONRpc = "2.0"
		res.ID = req.ID
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(res)
	}))
	c, err := NewHTTPClient(context.Background(), &rmtconf.HTTPClientConfig{URL: server.URL})
	require.NoError(t, err)
	return c, server.Close
}

func TestCallRPCOk(t *testing.T) {
	c, done := newTestServer(t, func(req *RPCRequest) (int, *RPCResponse) {
		assert.Equal(t, "eth_getBalance", req.Method)
		require.Len(t, req.Params, 2)
		assert.JSONEq(t, `"0xfb6916095ca1df60bb79ce92ce3ea74c37c5d359"`, string(req.Params[0]))
		return 200, &RPCResponse{Result: json.RawMessage(`"0x1234"`)}
	})
	defer done()

	var balance string
	rpcErr := c.CallRPC(context.Background(), &balance, "eth_getBalance", "0xfb6916095ca1df60bb79ce92ce3ea74c37c5d359", "latest")
	assert.Nil(t, rpcErr)
	assert.Equal(t, "0x1234", balance)
}

func TestCallRPCErrorIn200(t *testing.T) {
	log.SetLevel("trace")
	defer log.SetLevel("info")
	c, done := newTestServer(t, func(req *RPCRequest) (int, *RPCResponse) {
		return 200, &RPCResponse{Error: &RPCError{Code: -32000, Message: "nonce too low"}}
	})
	defer done()

	var res string
	rpcErr := c.CallRPC(context.Background(), &res, "eth_sendRawTransaction", "0x00")
	require.NotNil(t, rpcErr)
	assert.Equal(t, int64(-32000), rpcErr.RPCError().Code)
	assert.Equal(t, "nonce too low", rpcErr.Error())
}

func TestCallRPCHTTPErrorNoBody(t *testing.T) {
	c, done := newTestServer(t, func(req *RPCRequest) (int, *RPCResponse) {
		return 500, &RPCResponse{}
	})
	defer done()

	var res string
	rpcErr := c.CallRPC(context.Background(), &res, "eth_chainId")
	require.NotNil(t, rpcErr)
	assert.Regexp(t, "PT011300.*500", rpcErr)
	assert.Equal(t, int64(RPCCodeInternalError), rpcErr.RPCError().Code)
}

func TestCallRPCBadResult(t *testing.T) {
	c, done := newTestServer(t, func(req *RPCRequest) (int, *RPCResponse) {
		return 200, &RPCResponse{Result: json.RawMessage(`{"not":"a string"}`)}
	})
	defer done()

	var res string
	rpcErr := c.CallRPC(context.Background(), &res, "eth_chainId")
	assert.Regexp(t, "PT011301", rpcErr)
	assert.Equal(t, int64(RPCCodeParseError), rpcErr.RPCError().Code)
}

func TestCallRPCNullResult(t *testing.T) {
	c, done := newTestServer(t, func(req *RPCRequest) (int, *RPCResponse) {
		return 200, &RPCResponse{}
	})
	defer done()

	var res *map[string]interface{}
	rpcErr := c.CallRPC(context.Background(), &res, "eth_getTransactionReceipt", "0x01")
	assert.Nil(t, rpcErr)
	assert.Nil(t, res)
}

func TestCallRPCBadParam(t *testing.T) {
	c := WrapRestyClient(nil)
	var res string
	rpcErr := c.CallRPC(context.Background(), &res, "eth_call", map[bool]bool{true: false})
	assert.Regexp(t, "PT011308", rpcErr)
}

func TestCallRPCConnectionFailure(t *testing.T) {
	c, err := NewHTTPClient(context.Background(), &rmtconf.HTTPClientConfig{URL: "http://localhost:1"})
	require.NoError(t, err)
	var res string
	rpcErr := c.CallRPC(context.Background(), &res, "eth_chainId")
	assert.Regexp(t, "PT011300", rpcErr)
}

func TestNewHTTPClientBadURL(t *testing.T) {
	_, err := NewHTTPClient(context.Background(), &rmtconf.HTTPClientConfig{URL: "wss://example.com"})
	assert.Regexp(t, "PT011302", err)
}
