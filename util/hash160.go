// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2022-2026 The Meowcoin Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// Hash160 calculates the hash ripemd160(sha256(b)), the payload of
// pay-to-pubkey-hash and pay-to-script-hash addresses.
func Hash160(buf []byte) []byte {
	first := sha256.Sum256(buf)
	h := ripemd160.New()
	// Hash writers never return errors.
	_, _ = h.Write(first[:])
	return h.Sum(nil)
}
