// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Codecarve Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"sync"

	"github.com/bitmark-inc/listener"
	"github.com/bitmark-inc/logger"

	"github.com/codecarve/carved/engine"
	"github.com/codecarve/carved/fault"
	"github.com/codecarve/carved/ledger"
	"github.com/codecarve/carved/util"
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections int      `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// globals
type rpcData struct {
	sync.RWMutex

	log      *logger.L
	listener *listener.MultiListener
	argument *ServerArgument

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the RPC listeners
func Initialise(configuration *RPCConfiguration, version string, e *engine.Engine, lgr ledger.Ledger, artifacts Counter) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	if 0 == len(configuration.Listen) {
		log.Error("missing listen")
		return fault.ErrMissingParameters
	}
	if configuration.MaximumConnections < 1 {
		log.Errorf("invalid maximum connection limit: %d", configuration.MaximumConnections)
		return fault.ErrMissingParameters
	}
	if !util.EnsureFileExists(configuration.Certificate) {
		log.Errorf("certificate: %q does not exist", configuration.Certificate)
		return fault.ErrMissingParameters
	}
	if !util.EnsureFileExists(configuration.PrivateKey) {
		log.Errorf("private key: %q does not exist", configuration.PrivateKey)
		return fault.ErrMissingParameters
	}

	keyPair, err := tls.LoadX509KeyPair(configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		log.Errorf("failed to load keypair: %s", err)
		return err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fingerprint := util.Fingerprint(keyPair.Certificate[0])
	log.Infof("SHA3-256 fingerprint: %x", fingerprint)

	limiter := listener.NewLimiter(configuration.MaximumConnections)

	ml, err := listener.NewMultiListener("rpc", configuration.Listen, tlsConfiguration, limiter, Callback)
	if nil != err {
		log.Errorf("invalid listen addresses: %v", configuration.Listen)
		return err
	}

	globalData.argument = &ServerArgument{
		Log:    log,
		Server: CreateServer(log, version, e, lgr, artifacts),
	}

	ml.Start(globalData.argument)
	globalData.listener = ml

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop the RPC listeners
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.listener.Stop()

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
