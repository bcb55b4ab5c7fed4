// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2022-2026 The Meowcoin Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

const (
	// SatoshiPerMeowcent is the number of satoshi in one meowcoin cent.
	SatoshiPerMeowcent = 1000000

	// SatoshiPerMeowcoin is the number of satoshi in one meowcoin (1 MEWC).
	SatoshiPerMeowcoin = 100000000

	// MaxSatoshi is the maximum transaction amount allowed in satoshi.
	MaxSatoshi = 21000000 * SatoshiPerMeowcoin
)
