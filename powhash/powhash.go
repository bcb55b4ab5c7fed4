// Copyright (c) 2022-2026 The Meowcoin Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package powhash computes the KAWPOW and MEOWPOW proof-of-work hashes.
//
// The DAG-backed computation is delegated to the powkit ethash-family
// engine, which builds and caches one epoch context per client; both hash
// families share Meowcoin's 7500-block epoch length. The package adds the
// light finalization path (KawpowNoVerify, MeowpowNoVerify) that derives the
// final hash from a claimed mix digest without touching a DAG.
package powhash

import (
	"math/big"
	"sync"

	"github.com/sencha-dev/powkit/kawpow"
	"github.com/sencha-dev/powkit/meowpow"

	"github.com/meowcoin-foundation/mewcd/chaincfg/chainhash"
	"github.com/meowcoin-foundation/mewcd/util"
)

// EpochLength is the number of blocks sharing one DAG epoch.
const EpochLength = 7500

// EpochNumber returns the DAG epoch of the given block height.
func EpochNumber(height uint64) uint64 {
	return height / EpochLength
}

var (
	kawpowOnce   sync.Once
	kawpowClient *kawpow.Client

	meowpowOnce   sync.Once
	meowpowClient *meowpow.Client
)

// kawpowEngine returns the process-wide kawpow client. The client owns the
// epoch context cache; building a context is expensive, so it is constructed
// once and shared.
func kawpowEngine() *kawpow.Client {
	kawpowOnce.Do(func() {
		kawpowClient = kawpow.NewRavencoin()
	})
	return kawpowClient
}

func meowpowEngine() *meowpow.Client {
	meowpowOnce.Do(func() {
		meowpowClient = meowpow.NewMeowcoin()
	})
	return meowpowClient
}

// Kawpow computes the KAWPOW (mix, final) pair for the given seed hash,
// block height and nonce.
func Kawpow(headerHash chainhash.Hash, height, nonce uint64) (mix, final chainhash.Hash, err error) {
	m, f, err := kawpowEngine().Compute(headerHash[:], height, nonce)
	if err != nil {
		return chainhash.Hash{}, chainhash.Hash{}, err
	}
	copy(mix[:], m)
	copy(final[:], f)
	return mix, final, nil
}

// Meowpow computes the MEOWPOW (mix, final) pair for the given seed hash,
// block height and nonce.
func Meowpow(headerHash chainhash.Hash, height, nonce uint64) (mix, final chainhash.Hash, err error) {
	m, f, err := meowpowEngine().Compute(headerHash[:], height, nonce)
	if err != nil {
		return chainhash.Hash{}, chainhash.Hash{}, err
	}
	copy(mix[:], m)
	copy(final[:], f)
	return mix, final, nil
}

// KawpowNoVerify finalizes a KAWPOW hash from a claimed mix digest without a
// DAG. The mix itself is not verified; callers that need full verification
// use KawpowVerify.
func KawpowNoVerify(headerHash, mixHash chainhash.Hash, nonce uint64) chainhash.Hash {
	return hashNoVerify(headerHash, mixHash, nonce, kawpowPadding)
}

// MeowpowNoVerify finalizes a MEOWPOW hash from a claimed mix digest without
// a DAG.
func MeowpowNoVerify(headerHash, mixHash chainhash.Hash, nonce uint64) chainhash.Hash {
	return hashNoVerify(headerHash, mixHash, nonce, meowpowPadding)
}

// KawpowVerify recomputes the KAWPOW pair and checks both the claimed mix
// digest and the final hash against the target.
func KawpowVerify(headerHash, mixHash chainhash.Hash, height, nonce uint64, target *big.Int) (bool, error) {
	mix, final, err := Kawpow(headerHash, height, nonce)
	if err != nil {
		return false, err
	}
	return verifyResult(mix, final, mixHash, target), nil
}

// MeowpowVerify recomputes the MEOWPOW pair and checks both the claimed mix
// digest and the final hash against the target.
func MeowpowVerify(headerHash, mixHash chainhash.Hash, height, nonce uint64, target *big.Int) (bool, error) {
	mix, final, err := Meowpow(headerHash, height, nonce)
	if err != nil {
		return false, err
	}
	return verifyResult(mix, final, mixHash, target), nil
}

func verifyResult(mix, final, claimedMix chainhash.Hash, target *big.Int) bool {
	if !mix.IsEqual(&claimedMix) {
		return false
	}
	return util.HashToBig(&final).Cmp(target) <= 0
}
