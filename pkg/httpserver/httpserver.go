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

package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/msgs"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/confutil"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/log"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtconf"
)

// Server binds its listener on construction, and serves once started
type Server interface {
	Start() error
	Stop()
	Addr() net.Addr
}

var _ Server = &httpServer{}

type httpServer struct {
	bgCtx           context.Context
	cancelCtx       context.CancelFunc
	name            string
	listener        net.Listener
	server          *http.Server
	served          chan error
	requestTimeout  time.Duration
	shutdownTimeout time.Duration
	started         bool
}

func NewServer(ctx context.Context, name string, conf *rmtconf.HTTPServerConfig, handler http.Handler) (_ Server, err error) {
	if conf.Port == nil {
		return nil, i18n.NewError(ctx, msgs.MsgHTTPServerMissingPort, name)
	}

	s := &httpServer{
		name:            name,
		served:          make(chan error, 1),
		requestTimeout:  confutil.DurationMin(conf.RequestTimeout, 10*time.Millisecond, *rmtconf.HTTPDefaults.RequestTimeout),
		shutdownTimeout: confutil.DurationMin(conf.ShutdownTimeout, 0, *rmtconf.HTTPDefaults.ShutdownTimeout),
	}
	s.bgCtx, s.cancelCtx = context.WithCancel(ctx)

	listenAddr := fmt.Sprintf("%s:%d", confutil.StringNotEmpty(conf.Address, *rmtconf.HTTPDefaults.Address), *conf.Port)
	if s.listener, err = net.Listen("tcp", listenAddr); err != nil {
		s.cancelCtx()
		return nil, i18n.WrapError(ctx, err, msgs.MsgHTTPServerStartFailed, listenAddr)
	}

	// connection deadlines sit just past the request timeout
	connTimeout := s.requestTimeout + 1*time.Second
	s.server = &http.Server{
		Handler:           s.accessLog(handler),
		ReadTimeout:       confutil.DurationMin(conf.ReadTimeout, connTimeout, "0"),
		ReadHeaderTimeout: connTimeout,
		WriteTimeout:      confutil.DurationMin(conf.WriteTimeout, connTimeout, "0"),
		BaseContext: func(net.Listener) context.Context {
			return s.bgCtx
		},
	}
	log.L(ctx).Infof("%s listening on %s (requestTimeout=%s)", name, s.listener.Addr(), s.requestTimeout)
	return s, nil
}

func (s *httpServer) Addr() net.Addr {
	return s.listener.Addr()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

func (s *httpServer) accessLog(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ctx, cancel := context.WithTimeout(log.WithLogField(req.Context(), "req", uuid.NewString()[0:8]), s.requestTimeout)
		defer cancel()

		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		handler.ServeHTTP(sr, req.WithContext(ctx))

		log.L(ctx).Debugf("%s %s %s [%d] (%dms) remote=%s",
			s.name, req.Method, req.URL.Path, sr.status, time.Since(start).Milliseconds(), req.RemoteAddr)
	})
}

func (s *httpServer) Start() error {
	s.started = true
	go func() {
		s.served <- s.server.Serve(s.listener)
	}()
	return nil
}

func (s *httpServer) Stop() {
	defer s.cancelCtx()
	if !s.started {
		_ = s.listener.Close()
		return
	}
	s.started = false

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(s.bgCtx), s.shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		log.L(s.bgCtx).Warnf("%s did not drain within %s, closing: %s", s.name, s.shutdownTimeout, err)
		_ = s.server.Close()
	}
	err := <-s.served
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	log.L(s.bgCtx).Infof("%s stopped (err=%v)", s.name, err)
}
