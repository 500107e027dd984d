// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/avlmap/configuration"
	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultWorkers        = 4
	defaultKeySpace       = 10000
	defaultBatchSize      = 100
	defaultReportInterval = 10 // seconds

	maximumWorkers   = 256
	maximumBatchSize = 100000

	defaultLogDirectory = "log"
	defaultLogFile      = "avlmap-stress.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "info",
	}
)

// Configuration - the stress test settings
type Configuration struct {
	DataDirectory  string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile        string               `gluamapper:"pidfile" json:"pidfile"`
	Workers        int                  `gluamapper:"workers" json:"workers"`
	Rounds         uint64               `gluamapper:"rounds" json:"rounds"`
	KeySpace       uint64               `gluamapper:"key_space" json:"key_space"`
	BatchSize      int                  `gluamapper:"batch_size" json:"batch_size"`
	Seed           int64                `gluamapper:"seed" json:"seed"`
	Rate           float64              `gluamapper:"rate" json:"rate"`
	ReportInterval int                  `gluamapper:"report_interval" json:"report_interval"`
	Snapshot       string               `gluamapper:"snapshot" json:"snapshot"`
	Logging        logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory:  defaultDataDirectory,
		PidFile:        "", // no PidFile by default
		Workers:        defaultWorkers,
		Rounds:         0, // run until stopped
		KeySpace:       defaultKeySpace,
		BatchSize:      defaultBatchSize,
		Seed:           0, // time based
		Rate:           0, // unlimited
		ReportInterval: defaultReportInterval,
		Snapshot:       "", // no snapshot by default

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if options.Workers <= 0 || options.Workers > maximumWorkers {
		return nil, fmt.Errorf("%w: workers: %d  must be in [1, %d]", fault.ErrInvalidCount, options.Workers, maximumWorkers)
	}
	if options.BatchSize <= 0 || options.BatchSize > maximumBatchSize {
		return nil, fmt.Errorf("%w: batch_size: %d  must be in [1, %d]", fault.ErrInvalidCount, options.BatchSize, maximumBatchSize)
	}
	if 0 == options.KeySpace || options.KeySpace > math.MaxInt64 {
		return nil, fmt.Errorf("%w: key_space: %d  must be in [1, %d]", fault.ErrInvalidCount, options.KeySpace, int64(math.MaxInt64))
	}
	if options.ReportInterval <= 0 {
		options.ReportInterval = defaultReportInterval
	}
	if 0 == options.Seed {
		options.Seed = time.Now().UnixNano()
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
		&options.Snapshot,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = configuration.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if the log file is not a simple file name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = configuration.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
