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
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/msgs"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/log"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtconf"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtresty"
)

type RPCCode int64

const (
	RPCCodeParseError     RPCCode = -32700
	RPCCodeInvalidRequest RPCCode = -32600
	RPCCodeInternalError  RPCCode = -32603
)

type ErrorRPC interface {
	error
	RPCError() *RPCError
}

type Client interface {
	CallRPC(ctx context.Context, result interface{}, method string, params ...interface{}) ErrorRPC
}

func NewHTTPClient(ctx context.Context, conf *rmtconf.HTTPClientConfig) (Client, error) {
	rc, err := rmtresty.New(ctx, conf)
	if err != nil {
		return nil, err
	}
	return WrapRestyClient(rc), nil
}

func WrapRestyClient(rc *resty.Client) Client {
	return &rpcClient{client: rc}
}

type rpcClient struct {
	client         *resty.Client
	requestCounter int64
}

type RPCRequest struct {
	JSONRpc string            `json:"jsonrpc"`
	ID      json.RawMessage   `json:"id"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params,omitempty"`
}

type RPCError struct {
	Code    int64           `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	return e.Message
}

func (e *RPCError) RPCError() *RPCError {
	return e
}

type RPCResponse struct {
	JSONRpc string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

func (r *RPCResponse) Message() string {
	if r.Error != nil {
		return r.Error.Error()
	}
	return ""
}

func (rc *rpcClient) allocateRequestID(req *RPCRequest) string {
	reqID := fmt.Sprintf(`%.9d`, atomic.AddInt64(&rc.requestCounter, 1))
	req.ID = json.RawMessage(`"` + reqID + `"`)
	return reqID
}

func (rc *rpcClient) CallRPC(ctx context.Context, result interface{}, method string, params ...interface{}) ErrorRPC {
	rpcReq, rpcErr := buildRequest(ctx, method, params)
	if rpcErr != nil {
		return rpcErr
	}
	res, err := rc.SyncRequest(ctx, rpcReq)
	if err != nil {
		if res != nil && res.Error != nil && res.Error.Code != 0 {
			return res.Error
		}
		return &RPCError{Code: int64(RPCCodeInternalError), Message: err.Error()}
	}
	if len(res.Result) == 0 {
		res.Result = json.RawMessage(`null`)
	}
	if err = json.Unmarshal(res.Result, result); err != nil {
		err = i18n.NewError(ctx, msgs.MsgRPCClientResultParseFailed, result, err)
		return &RPCError{Code: int64(RPCCodeParseError), Message: err.Error()}
	}
	return nil
}

// SyncRequest sends one request over HTTP and waits for the response. The RPCResponse
// is populated on every return path, including errors.
func (rc *rpcClient) SyncRequest(ctx context.Context, rpcReq *RPCRequest) (rpcRes *RPCResponse, err error) {
	beReq := *rpcReq
	beReq.JSONRpc = "2.0"
	rpcTraceID := rc.allocateRequestID(&beReq)

	rpcRes = new(RPCResponse)

	log.L(ctx).Debugf("RPC[%s] --> %s", rpcTraceID, rpcReq.Method)
	if log.IsTraceEnabled() {
		jsonInput, _ := json.Marshal(beReq)
		log.L(ctx).Tracef("RPC[%s] INPUT: %s", rpcTraceID, jsonInput)
	}
	rpcStartTime := time.Now()
	res, err := rc.client.R().
		SetContext(ctx).
		SetBody(beReq).
		SetResult(rpcRes).
		SetError(rpcRes).
		Post("")

	if err != nil {
		err := i18n.NewError(ctx, msgs.MsgRPCClientRequestFailed, err)
		log.L(ctx).Errorf("RPC[%s] <-- ERROR: %s", rpcTraceID, err)
		return RPCErrorResponse(err, rpcReq.ID, RPCCodeInternalError), err
	}
	if log.IsTraceEnabled() {
		log.L(ctx).Tracef("RPC[%s] OUTPUT: %s", rpcTraceID, res.Body())
	}
	// JSON/RPC errors can come back with a 200 status code
	if res.IsError() || rpcRes.Error != nil && rpcRes.Error.Code != 0 {
		rpcMsg := rpcRes.Message()
		errLog := rpcMsg
		if rpcMsg == "" {
			errLog = string(res.Body())
			rpcMsg = i18n.NewError(ctx, msgs.MsgRPCClientRequestFailed, res.Status()).Error()
		}
		log.L(ctx).Errorf("RPC[%s] <-- [%d]: %s", rpcTraceID, res.StatusCode(), errLog)
		return rpcRes, errors.New(rpcMsg)
	}
	log.L(ctx).Debugf("RPC[%s] <-- %s [%d] OK (%.2fms)", rpcTraceID, rpcReq.Method, res.StatusCode(), float64(time.Since(rpcStartTime))/float64(time.Millisecond))
	return rpcRes, nil
}

func RPCErrorResponse(err error, id json.RawMessage, code RPCCode) *RPCResponse {
	return &RPCResponse{
		JSONRpc: "2.0",
		ID:      id,
		Error: &RPCError{
			Code:    int64(code),
			Message: err.Error(),
		},
	}
}

func buildRequest(ctx context.Context, method string, params []interface{}) (*RPCRequest, ErrorRPC) {
	req := &RPCRequest{
		JSONRpc: "2.0",
		Method:  method,
		Params:  make([]json.RawMessage, len(params)),
	}
	for i, param := range params {
		b, err := json.Marshal(param)
		if err != nil {
			return nil, &RPCError{
				Code:    int64(RPCCodeInvalidRequest),
				Message: i18n.WrapError(ctx, err, msgs.MsgEthClientInvalidInput, method).Error(),
			}
		}
		req.Params[i] = json.RawMessage(b)
	}
	return req, nil
}
