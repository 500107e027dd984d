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

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avlmap/background"
	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/ratelimit"
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
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE", program)
	}

	if len(arguments) > 0 {
		exitwithstatus.Message("%s: unexpected arguments: %q", program, arguments)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// for last-gasp messages
	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != masterConfiguration.PidFile {
		lockFile, err := os.OpenFile(masterConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, masterConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(masterConfiguration.PidFile)
	}

	log.Infof("workers: %d  key space: %d  batch: %d  seed: %d",
		masterConfiguration.Workers,
		masterConfiguration.KeySpace,
		masterConfiguration.BatchSize,
		masterConfiguration.Seed,
	)

	limiter := ratelimit.New(masterConfiguration.Rate)
	stats := &statistics{}

	workers := make([]*worker, masterConfiguration.Workers)
	processes := make(background.Processes, len(workers))
	for i := range workers {
		workers[i] = newWorker(i, masterConfiguration, limiter, stats)
		processes[i] = workers[i]
	}

	// re-read the rate when the configuration file changes
	channels := newWatcherChannels()
	watcher, err := newFileWatcher(configurationFile, logger.New(watcherLoggerPrefix), channels)
	if nil != err {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}
	if err := watcher.Start(); nil != err {
		exitwithstatus.Message("%s: file watcher start failed with error: %s", program, err)
	}
	defer watcher.Stop()

	bg := background.Start(processes, nil)
	finished := bg.Done()

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	ticker := time.NewTicker(time.Duration(masterConfiguration.ReportInterval) * time.Second)
	defer ticker.Stop()

loop:
	for {
		select {
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			if 0 == len(options["quiet"]) {
				fmt.Printf("\nreceived signal: %v\n", sig)
				fmt.Printf("\nshutting down...\n")
			}
			break loop

		case <-finished:
			log.Info("all workers finished")
			break loop

		case <-ticker.C:
			report(log, stats, false)

		case <-channels.change:
			reload(log, configurationFile, limiter)

		case <-channels.remove:
			log.Warn("configuration file removed, keeping current settings")
		}
	}

	bg.Stop()
	report(log, stats, true)

	if "" != masterConfiguration.Snapshot && len(workers) > 0 {
		n, err := saveSnapshot(masterConfiguration.Snapshot, workers[0].tree)
		if nil != err {
			log.Errorf("snapshot: %q  error: %s", masterConfiguration.Snapshot, err)
		} else {
			log.Infof("snapshot: %q  entries: %d", masterConfiguration.Snapshot, n)
		}
	}

	if !stats.failures.IsZero() {
		fault.Criticalf("worker failures: %d  see worker logs for the inconsistency", stats.failures.Uint64())
		exitwithstatus.Message("%s: %d worker(s) detected an inconsistent tree", program, stats.failures.Uint64())
	}
}

// log the operation counts since the last report
func report(log *logger.L, stats *statistics, final bool) {
	if final {
		log.Infof("totals  rounds: %d  failures: %d", stats.rounds.Uint64(), stats.failures.Uint64())
		return
	}
	log.Infof("inserts: %d  deletes: %d  lookups: %d  ranges: %d",
		stats.inserts.Take(),
		stats.deletes.Take(),
		stats.lookups.Take(),
		stats.ranges.Take(),
	)
}

// apply a changed rate, other settings only take effect on restart
func reload(log *logger.L, configurationFile string, limiter *rate.Limiter) {
	configuration, err := getConfiguration(configurationFile)
	if nil != err {
		log.Errorf("reload: %q  error: %s", configurationFile, err)
		return
	}
	log.Infof("reload: rate: %g", configuration.Rate)
	ratelimit.Adjust(limiter, configuration.Rate)
}
