// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/carledger/background"
	"github.com/bitmark-inc/carledger/counter"
	"github.com/bitmark-inc/carledger/fault"
	"github.com/bitmark-inc/carledger/rpc/handler"
	"github.com/bitmark-inc/carledger/rpc/listeners"
	"github.com/bitmark-inc/carledger/rpc/ratelimit"
	"github.com/bitmark-inc/carledger/rpc/server"
	"github.com/bitmark-inc/carledger/storage"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// start the data storage
	log.Infof("database: %q  memory: %t", theConfiguration.Database.Name, theConfiguration.Database.Memory)
	var db *storage.Database
	if theConfiguration.Database.Memory {
		db, err = storage.OpenMemory()
	} else {
		db, err = storage.Open(theConfiguration.Database.Name, storage.ReadWrite)
	}
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer db.Close()

	// RPC services
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "HttpRPC", theConfiguration.HttpRPC)

	rpcLog := logger.New("rpc")
	var rpcCount counter.Counter
	settings := ratelimit.Settings{
		Limit: theConfiguration.ClientRPC.RateLimit,
		Burst: theConfiguration.ClientRPC.RateBurst,
	}
	rpcServer, services := server.Create(rpcLog, version, settings, db, &rpcCount)

	rpcListener, err := listeners.NewRPC(&theConfiguration.ClientRPC, rpcLog, &rpcCount, rpcServer)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	if err = rpcListener.Serve(); nil != err {
		log.Criticalf("rpc serve error: %s", err)
		exitwithstatus.Message("rpc serve error: %s", err)
	}
	defer rpcListener.Close()

	hdlr := handler.New(rpcLog, rpcServer, time.Now(), version, theConfiguration.HttpRPC.MaximumConnections)
	httpListener, err := listeners.NewHTTP(&theConfiguration.HttpRPC, rpcLog, hdlr)
	if nil != err {
		log.Criticalf("http initialise error: %s", err)
		exitwithstatus.Message("http initialise error: %s", err)
	}
	if nil != httpListener {
		if err = httpListener.Serve(); nil != err {
			log.Criticalf("http serve error: %s", err)
			exitwithstatus.Message("http serve error: %s", err)
		}
		defer httpListener.Close()
	}

	// reload rate limits when the configuration changes
	watchLog := logger.New(fileWatcherLoggerPrefix)
	channel := newWatcherChannel()

	watcher, err := newFileWatcher(configurationFile, watchLog, channel)
	if nil == err {
		err = watcher.Start()
	}
	if nil != err {
		log.Warnf("configuration watch disabled: %s", err)
	} else {
		defer watcher.Close()

		processes := background.Processes{
			&reloader{
				log:      watchLog,
				fileName: configurationFile,
				channel:  channel,
				target:   services,
			},
		}
		bg := background.Start(processes, nil)
		defer bg.Stop()
	}

	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}
