// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Codecarve Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/hex"

	"github.com/codecarve/carved/rpc"
)

// Deploy - carve runtime bytecode into a permanent artifact
func (client *Client) Deploy(code []byte) (*rpc.DeployReply, error) {

	request := rpc.DeployArguments{
		Code: hex.EncodeToString(code),
	}
	client.printJson("Deploy Request", request)

	var reply rpc.DeployReply
	if err := client.client.Call("Carve.Deploy", request, &reply); err != nil {
		return nil, err
	}

	client.printJson("Deploy Reply", reply)

	return &reply, nil
}

// Address - predict the handle of runtime bytecode without deploying
func (client *Client) Address(code []byte) (*rpc.AddressReply, error) {

	request := rpc.AddressArguments{
		Code: hex.EncodeToString(code),
	}
	client.printJson("Address Request", request)

	var reply rpc.AddressReply
	if err := client.client.Call("Carve.Address", request, &reply); err != nil {
		return nil, err
	}

	client.printJson("Address Reply", reply)

	return &reply, nil
}

// Verify - check a stored artifact re-derives to its handle
func (client *Client) Verify(arguments *rpc.VerifyArguments) (*rpc.VerifyReply, error) {

	client.printJson("Verify Request", arguments)

	var reply rpc.VerifyReply
	if err := client.client.Call("Carve.Verify", arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Verify Reply", reply)

	return &reply, nil
}
