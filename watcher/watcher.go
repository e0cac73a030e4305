// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Codecarve Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package watcher - spool directory deployment
//
// watches a directory for runtime bytecode files; a new "*.bin" file
// is read and carved, then renamed with a ".carved" suffix on success
// or a ".failed" suffix on any deployment error so a file is only
// ever submitted once
package watcher

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"

	"github.com/codecarve/carved/engine"
)

// file name suffixes
const (
	spoolSuffix  = ".bin"
	carvedSuffix = ".carved"
	failedSuffix = ".failed"
)

// Configuration - configuration file data for the watcher
type Configuration struct {
	Directory string `gluamapper:"directory" json:"directory"`
}

// Watcher - watches one spool directory
type Watcher struct {
	log       *logger.L
	directory string
	engine    *engine.Engine
	watcher   *fsnotify.Watcher
}

// New - create a watcher for a spool directory
//
// the directory must already exist
func New(directory string, e *engine.Engine) (*Watcher, error) {

	directory, err := filepath.Abs(filepath.Clean(directory))
	if nil != err {
		return nil, err
	}

	fileInfo, err := os.Stat(directory)
	if nil != err {
		return nil, err
	}
	if !fileInfo.IsDir() {
		return nil, os.ErrInvalid
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}
	if err := fsWatcher.Add(directory); nil != err {
		fsWatcher.Close()
		return nil, err
	}

	return &Watcher{
		log:       logger.New("watcher"),
		directory: directory,
		engine:    e,
		watcher:   fsWatcher,
	}, nil
}

// Run - background process loop
func (w *Watcher) Run(args interface{}, shutdown <-chan struct{}) {

	log := w.log
	log.Infof("watching: %s", w.directory)

	// deploy any files already waiting
	w.scan()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event := <-w.watcher.Events:
			if 0 == event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) {
				continue loop
			}
			if !strings.HasSuffix(event.Name, spoolSuffix) {
				continue loop
			}
			log.Infof("file event: %v", event)
			w.process(event.Name)

		case err := <-w.watcher.Errors:
			log.Errorf("watch error: %s", err)
		}
	}

	w.watcher.Close()
	log.Info("finished")
}

// deploy all spool files already present
func (w *Watcher) scan() {
	names, err := filepath.Glob(filepath.Join(w.directory, "*"+spoolSuffix))
	if nil != err {
		w.log.Errorf("scan error: %s", err)
		return
	}
	for _, name := range names {
		w.process(name)
	}
}

// carve one spool file and rename it by outcome
func (w *Watcher) process(name string) {

	log := w.log

	code, err := ioutil.ReadFile(name)
	if nil != err {
		// already renamed or still being written
		log.Warnf("read: %q error: %s", name, err)
		return
	}

	h, err := w.engine.Carve(code)
	if nil != err {
		log.Errorf("carve: %q error: %s", name, err)
		if err := os.Rename(name, name+failedSuffix); nil != err {
			log.Errorf("rename: %q error: %s", name, err)
		}
		return
	}

	log.Infof("carved: %q handle: %s", name, h)
	if err := os.Rename(name, name+carvedSuffix); nil != err {
		log.Errorf("rename: %q error: %s", name, err)
	}
}
