// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Codecarve Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"golang.org/x/crypto/sha3"
)

// FingerprintLength - number of bytes in a certificate fingerprint
const FingerprintLength = 32

// FingerprintBytes - type to hold a certificate fingerprint
type FingerprintBytes [FingerprintLength]byte

// Fingerprint - SHA3-256 fingerprint of a certificate
func Fingerprint(certificate []byte) FingerprintBytes {
	return sha3.Sum256(certificate)
}
