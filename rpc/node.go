// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Codecarve Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/codecarve/carved/counter"
	"github.com/codecarve/carved/engine"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Counter - source for the count of carved artifacts
type Counter interface {
	Count() uint64
}

// Node - type for RPC status calls
type Node struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Start     time.Time
	Version   string
	Engine    *engine.Engine
	Artifacts Counter
	rpcCount  *counter.Counter
}

// NewNode - create the node service
func NewNode(log *logger.L, start time.Time, version string, e *engine.Engine, artifacts Counter, rpcCount *counter.Counter) *Node {
	return &Node{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:     start,
		Version:   version,
		Engine:    e,
		Artifacts: artifacts,
		rpcCount:  rpcCount,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version   string `json:"version"`
	Uptime    string `json:"uptime"`
	Identity  string `json:"identity"`
	Artifacts uint64 `json:"artifacts"`
	RPCs      uint64 `json:"rpcs"`
}

// Info - daemon status
func (node *Node) Info(arguments *InfoArguments, reply *InfoReply) error {
	if err := rateLimit(node.Limiter); nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.Identity = node.Engine.Identity().String()
	reply.Artifacts = node.Artifacts.Count()
	reply.RPCs = node.rpcCount.Uint64()
	return nil
}
