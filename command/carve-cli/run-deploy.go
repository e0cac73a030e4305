// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Codecarve Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/codecarve/carved/command/carve-cli/rpccalls"
)

func runDeploy(c *cli.Context) error {

	m, err := checkConnection(c)
	if nil != err {
		return err
	}

	code, err := checkCode(c)
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Deploy(code)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
