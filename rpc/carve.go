// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Codecarve Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/hex"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/codecarve/carved/engine"
	"github.com/codecarve/carved/handle"
	"github.com/codecarve/carved/ledger"
)

const (
	rateLimitCarve = 200
	rateBurstCarve = 100
)

// Carve - type for RPC calls against the deployment engine
type Carve struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  *engine.Engine
	Ledger  ledger.Ledger
}

// NewCarve - create the carve service
func NewCarve(log *logger.L, e *engine.Engine, lgr ledger.Ledger) *Carve {
	return &Carve{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitCarve, rateBurstCarve),
		Engine:  e,
		Ledger:  lgr,
	}
}

// ---

// DeployArguments - hex encoded runtime bytecode
type DeployArguments struct {
	Code string `json:"code"`
}

// DeployReply - the handle of the carved artifact
type DeployReply struct {
	Handle handle.Handle `json:"handle"`
}

// Deploy - carve runtime bytecode into a permanent artifact
func (c *Carve) Deploy(arguments *DeployArguments, reply *DeployReply) error {
	if err := rateLimit(c.Limiter); nil != err {
		return err
	}

	code, err := hex.DecodeString(arguments.Code)
	if nil != err {
		return err
	}

	c.Log.Infof("deploy: %d bytes", len(code))

	h, err := c.Engine.Carve(code)
	if nil != err {
		return err
	}

	reply.Handle = h
	return nil
}

// ---

// AddressArguments - hex encoded runtime bytecode
type AddressArguments struct {
	Code string `json:"code"`
}

// AddressReply - the predicted handle
type AddressReply struct {
	Handle handle.Handle `json:"handle"`
}

// Address - predict the handle without deploying
//
// defined even for empty code
func (c *Carve) Address(arguments *AddressArguments, reply *AddressReply) error {
	if err := rateLimit(c.Limiter); nil != err {
		return err
	}

	code, err := hex.DecodeString(arguments.Code)
	if nil != err {
		return err
	}

	reply.Handle = c.Engine.AddressOf(code)
	return nil
}

// ---

// VerifyArguments - the handle to check
type VerifyArguments struct {
	Handle handle.Handle `json:"handle"`
}

// VerifyReply - result of the integrity check
type VerifyReply struct {
	Carved bool `json:"carved"`
	Size   int  `json:"size"`
}

// Verify - certify that the stored artifact re-derives to its handle
func (c *Carve) Verify(arguments *VerifyArguments, reply *VerifyReply) error {
	if err := rateLimit(c.Limiter); nil != err {
		return err
	}

	reply.Carved = c.Engine.IsCarved(arguments.Handle)
	reply.Size = c.Ledger.SizeOf(arguments.Handle)

	return nil
}
