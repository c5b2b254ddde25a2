// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"
)

// the settings that can change without a restart
type adjustable interface {
	SetRateLimit(limit float64)
}

// background process to re-read the configuration file on every
// change event and apply the RPC rate, other settings need a restart
type reloader struct {
	log      *logger.L
	fileName string
	channel  WatcherChannel
	target   adjustable
}

func (r *reloader) Run(args interface{}, shutdown <-chan struct{}) {
	for {
		select {
		case <-shutdown:
			return

		case <-r.channel.change:
			options, err := getConfiguration(r.fileName)
			if nil != err {
				r.log.Errorf("failed to read configuration from: %q  error: %s", r.fileName, err)
				continue
			}
			applyConfiguration(r.log, options, r.target)

		case <-r.channel.remove:
			r.log.Warnf("configuration file: %q removed, reload disabled", r.fileName)
			<-shutdown
			return
		}
	}
}

func applyConfiguration(log *logger.L, options *Configuration, target adjustable) {
	target.SetRateLimit(options.ClientRPC.RateLimit)
	log.Infof("reloaded: rate limit: %g", options.ClientRPC.RateLimit)
}
