// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Codecarve Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io/ioutil"

	"github.com/urfave/cli"
)

// fetch the metadata and ensure a connect address is present
func checkConnection(c *cli.Context) (*metadata, error) {
	m := c.App.Metadata["config"].(*metadata)
	if "" == m.connect {
		return nil, fmt.Errorf("missing connect, use: --connect=HOST:PORT")
	}
	return m, nil
}

// bytecode from either a file or a hex string flag
// exactly one of the two must be supplied
func checkCode(c *cli.Context) ([]byte, error) {

	fileName := c.String("file")
	hexCode := c.String("code")

	switch {
	case "" != fileName && "" != hexCode:
		return nil, fmt.Errorf("only one of --file and --code is allowed")

	case "" != fileName:
		return ioutil.ReadFile(fileName)

	case "" != hexCode:
		code, err := hex.DecodeString(hexCode)
		if nil != err {
			return nil, fmt.Errorf("code: %q error: %s", hexCode, err)
		}
		return code, nil

	default:
		return nil, fmt.Errorf("one of --file and --code is required")
	}
}
