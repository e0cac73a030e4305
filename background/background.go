// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Codecarve Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run and later shut down a set of processes
package background

// Process - type signature for a background process
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for the started set
type T struct {
	shutdown chan struct{}
	finished chan struct{}
	count    int
}

// Start - run each process in its own goroutine
func Start(processes Processes, args interface{}) *T {

	register := &T{
		shutdown: make(chan struct{}),
		finished: make(chan struct{}, len(processes)),
		count:    len(processes),
	}

	for _, p := range processes {
		go func(p Process) {
			p.Run(args, register.shutdown)
			register.finished <- struct{}{}
		}(p)
	}
	return register
}

// Stop - signal shutdown and wait for every process to finish
func (t *T) Stop() {
	if nil == t {
		return
	}

	close(t.shutdown)

	for i := 0; i < t.count; i += 1 {
		<-t.finished
	}
}
