// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/bitmark-inc/carledger/fault"
	"github.com/bitmark-inc/carledger/rpc/handler"
	"github.com/bitmark-inc/logger"
)

const (
	httpLogName      = "http_rpc"
	readWriteTimeout = 10 * time.Second
)

// HTTPConfiguration - configuration file data for HTTP setup
type HTTPConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
}

type httpListener struct {
	log             *logger.L
	listenIPAndPort []string
	mux             *http.ServeMux
	servers         []*http.Server
	listeners       []net.Listener
}

// Serve - bind every listen address and serve in background
func (h *httpListener) Serve() error {
	for _, listen := range h.listenIPAndPort {
		h.log.Infof("starting server: %s on: %q", httpLogName, listen)
		if '*' == listen[0] {
			// change "*:PORT" to "[::]:PORT"
			// on the assumption that this will listen on tcp4 and tcp6
			listen = "[::]" + ":" + strings.Split(listen, ":")[1]
		}

		l, err := net.Listen("tcp", listen)
		if nil != err {
			h.log.Errorf("%s listen error: %s", httpLogName, err)
			h.Close()
			return err
		}

		s := &http.Server{
			Handler:        h.mux,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
		}
		h.servers = append(h.servers, s)
		h.listeners = append(h.listeners, l)

		go func() {
			err := s.Serve(l)
			h.log.Infof("%s terminated: %s", httpLogName, err)
		}()
	}

	return nil
}

// Close - shut down every server
func (h *httpListener) Close() {
	for _, s := range h.servers {
		_ = s.Close()
	}
	h.servers = nil
	h.listeners = nil
}

// Addresses - the actual bound addresses
func (h *httpListener) Addresses() []string {
	addresses := make([]string, len(h.listeners))
	for i, l := range h.listeners {
		addresses[i] = l.Addr().String()
	}
	return addresses
}

// NewHTTP - create the HTTP listener, nil if no listen addresses are configured
func NewHTTP(
	configuration *HTTPConfiguration,
	log *logger.L,
	hdlr handler.Handler,
) (Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpLogName)
		return nil, nil
	}

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", httpLogName, configuration.MaximumConnections)
		return nil, fault.ErrMissingParameters
	}

	for _, listen := range configuration.Listen {
		if "" == listen {
			return nil, fault.Detail(fault.ErrInvalidIPAddress, "%q", listen)
		}
	}

	h := httpListener{
		log:             log,
		listenIPAndPort: configuration.Listen,
	}

	// create access control matched against http.Request.RemoteAddr
	local := make(map[string][]*net.IPNet)
	for path, addresses := range configuration.Allow {
		set := make([]*net.IPNet, len(addresses))
		local[path] = set
		for i, ip := range addresses {
			_, cidr, err := net.ParseCIDR(strings.Trim(ip, " "))
			if nil != err {
				return nil, fault.Detail(fault.ErrInvalidIPAddress, "allow %s: %q", path, ip)
			}
			set[i] = cidr
		}
	}

	hdlr.SetAllow(local)

	h.mux = http.NewServeMux()
	h.mux.HandleFunc("/carledger/rpc", hdlr.RPC)
	h.mux.HandleFunc("/carledger/details", hdlr.Details)
	h.mux.HandleFunc("/", hdlr.Root)

	return &h, nil
}
