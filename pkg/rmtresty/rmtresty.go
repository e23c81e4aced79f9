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

package rmtresty

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/sirupsen/logrus"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/msgs"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/confutil"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/log"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtconf"
)

type reqCtxKey struct{}

type reqCtx struct {
	id    string
	start time.Time
}

func onAfterResponse(_ *resty.Client, resp *resty.Response) error {
	rCtx := resp.Request.Context()
	level := logrus.DebugLevel
	status := resp.StatusCode()
	if status >= 300 {
		level = logrus.ErrorLevel
	}
	var elapsed time.Duration
	if rc, ok := rCtx.Value(reqCtxKey{}).(*reqCtx); ok {
		elapsed = time.Since(rc.start)
	}
	log.L(rCtx).Logf(level, "<== %s %s [%d] (%dms)", resp.Request.Method, resp.Request.URL, status, elapsed.Milliseconds())
	return nil
}

// New builds a resty client from config, logging each request with a short id
func New(ctx context.Context, conf *rmtconf.HTTPClientConfig) (client *resty.Client, err error) {
	def := rmtconf.DefaultHTTPConfig
	connTimeout := confutil.DurationMin(conf.ConnectionTimeout, 0, *def.ConnectionTimeout)
	httpTransport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   connTimeout,
			KeepAlive: connTimeout,
		}).DialContext,
		ForceAttemptHTTP2: true,
	}

	u, err := url.Parse(conf.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, i18n.WrapError(ctx, err, msgs.MsgRPCClientInvalidHTTPURL, conf.URL)
	}

	client = resty.NewWithClient(&http.Client{Transport: httpTransport})
	baseURL := strings.TrimSuffix(conf.URL, "/")
	client.SetBaseURL(baseURL)
	client.SetTimeout(confutil.DurationMin(conf.RequestTimeout, 0, *def.RequestTimeout))
	log.L(ctx).Debugf("Created REST client to %s", baseURL)

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		rCtx := req.Context()
		if rCtx.Value(reqCtxKey{}) == nil {
			rc := &reqCtx{id: uuid.NewString()[0:8], start: time.Now()}
			rCtx = context.WithValue(rCtx, reqCtxKey{}, rc)
			rCtx = log.WithLogField(rCtx, "breq", rc.id)
			req.SetContext(rCtx)
		}
		log.L(rCtx).Debugf("==> %s %s%s", req.Method, baseURL, req.URL)
		return nil
	})
	client.OnAfterResponse(onAfterResponse)

	for k, v := range conf.HTTPHeaders {
		client.SetHeader(k, v)
	}
	if conf.Auth.Username != "" && conf.Auth.Password != "" {
		client.SetBasicAuth(conf.Auth.Username, conf.Auth.Password)
	}
	return client, nil
}

// ErrorBody extracts something printable from a failed response
func ErrorBody(res *resty.Response) string {
	if res == nil {
		return ""
	}
	body := strings.TrimSpace(string(res.Body()))
	if body == "" {
		return res.Status()
	}
	return fmt.Sprintf("%s: %s", res.Status(), body)
}
