// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Codecarve Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - client RPC interface to the deployment engine
//
// serves JSON RPC 1.0 over TLS; the available calls are:
//
//	Carve.Deploy  - deploy hex encoded runtime bytecode
//	Carve.Address - predict the handle for runtime bytecode
//	Carve.Verify  - certify the artifact stored at a handle
//	Node.Info     - daemon status
package rpc
