// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Codecarve Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"io"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/codecarve/carved/counter"
	"github.com/codecarve/carved/engine"
	"github.com/codecarve/carved/ledger"
)

// ServerArgument - the argument passed to the listener callback
type ServerArgument struct {
	Log    *logger.L
	Server *rpc.Server
}

var connectionCount counter.Counter

// Callback - serve JSON RPC on an accepted connection
func Callback(conn io.ReadWriteCloser, argument interface{}) {

	serverArgument := argument.(*ServerArgument)

	log := serverArgument.Log
	log.Info("starting…")

	connectionCount.Increment()
	defer connectionCount.Decrement()

	codec := jsonrpc.NewServerCodec(conn)
	defer codec.Close()
	serverArgument.Server.ServeCodec(codec)

	log.Info("finished")
}

// CreateServer - create the RPC server and register all services
func CreateServer(log *logger.L, version string, e *engine.Engine, lgr ledger.Ledger, artifacts Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()
	_ = server.Register(NewCarve(log, e, lgr))
	_ = server.Register(NewNode(log, start, version, e, artifacts, &connectionCount))

	return server
}
