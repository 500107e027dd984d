// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"
)

const (
	watcherLoggerPrefix = "watcher"
)

// watcherChannels - events delivered to the main loop, each buffered
// so that a burst of file events collapses into one notification
type watcherChannels struct {
	change chan struct{}
	remove chan struct{}
}

func newWatcherChannels() watcherChannels {
	return watcherChannels{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

// fileWatcher - report changes to the configuration file
type fileWatcher struct {
	log      *logger.L
	channels watcherChannels
	watcher  *fsnotify.Watcher
	filePath string
	done     chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L, channels watcherChannels) (*fileWatcher, error) {

	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		channels: channels,
		watcher:  watcher,
		filePath: filePath,
		done:     make(chan struct{}),
	}, nil
}

// Start - begin watching
//
// the directory is watched rather than the file so that editors which
// replace the file by renaming are still seen
func (w *fileWatcher) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s", err)
		return err
	}

	go w.loop()
	return nil
}

// Stop - release the watcher and wait for the loop to exit
func (w *fileWatcher) Stop() {
	w.watcher.Close()
	<-w.done
}

func (w *fileWatcher) loop() {
	defer close(w.done)

	name := filepath.Base(w.filePath)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			w.log.Debugf("file event: %v", event)

			if eventFileRemove(event) {
				w.log.Warnf("file: %s removed", w.filePath)
				w.send(w.channels.remove, "remove")
			} else if eventFileChange(event) {
				w.send(w.channels.change, "change")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

func (w *fileWatcher) send(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
		w.log.Infof("sent %s event", name)
	default:
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

func eventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func eventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
