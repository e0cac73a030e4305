// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Codecarve Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package watcher_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/codecarve/carved/background"
	"github.com/codecarve/carved/engine"
	"github.com/codecarve/carved/handle"
	"github.com/codecarve/carved/ledger"
	"github.com/codecarve/carved/watcher"
)

const testingDirName = "testing"

var testPlacer = handle.Handle{
	0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06,
	0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10,
}

func TestMain(m *testing.M) {
	removeTestDir()
	err := os.Mkdir(testingDirName, 0700)
	if nil != err {
		panic(err)
	}
	err = logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	if nil != err {
		panic(err)
	}
	rc := m.Run()
	logger.Finalise()
	removeTestDir()
	os.Exit(rc)
}

func removeTestDir() {
	os.RemoveAll(testingDirName)
}

// wait for a file to appear, polling
func waitForFile(t *testing.T, name string) {
	for i := 0; i < 100; i += 1 {
		if _, err := os.Stat(name); nil == err {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("file did not appear: %q", name)
}

func TestSpoolDeployment(t *testing.T) {

	spool, err := ioutil.TempDir("", "watcher")
	assert.NoError(t, err, "cannot create spool directory")
	defer os.RemoveAll(spool)

	mem := ledger.NewMemory(testPlacer)
	e := engine.New(testPlacer, mem, engine.Limits{})

	w, err := watcher.New(spool, e)
	assert.NoError(t, err, "cannot create watcher")

	processes := background.Processes{w}
	bg := background.Start(processes, nil)
	defer bg.Stop()

	code := []byte{0x01, 0x02, 0x03}
	good := filepath.Join(spool, "artifact.bin")
	err = ioutil.WriteFile(good, code, 0600)
	assert.NoError(t, err, "cannot write spool file")

	waitForFile(t, good+".carved")

	h := e.AddressOf(code)
	assert.True(t, e.IsCarved(h), "artifact was not carved")
	assert.Equal(t, uint64(1), mem.Count(), "wrong artifact count")
}

func TestSpoolFailure(t *testing.T) {

	spool, err := ioutil.TempDir("", "watcher")
	assert.NoError(t, err, "cannot create spool directory")
	defer os.RemoveAll(spool)

	mem := ledger.NewMemory(testPlacer)
	e := engine.New(testPlacer, mem, engine.Limits{})

	// pre-existing file with forbidden first byte is
	// picked up by the initial scan
	bad := filepath.Join(spool, "bad.bin")
	err = ioutil.WriteFile(bad, []byte{0xef, 0x00}, 0600)
	assert.NoError(t, err, "cannot write spool file")

	w, err := watcher.New(spool, e)
	assert.NoError(t, err, "cannot create watcher")

	processes := background.Processes{w}
	bg := background.Start(processes, nil)
	defer bg.Stop()

	waitForFile(t, bad+".failed")
	assert.Equal(t, uint64(0), mem.Count(), "artifact count not zero")
}
