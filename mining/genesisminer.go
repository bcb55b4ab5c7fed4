// Copyright (c) 2022-2026 The Meowcoin Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mining implements the parallel genesis nonce search.
package mining

import (
	"math/big"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/meowcoin-foundation/mewcd/blockchain"
	"github.com/meowcoin-foundation/mewcd/chaincfg/chainhash"
	"github.com/meowcoin-foundation/mewcd/powhash"
	"github.com/meowcoin-foundation/mewcd/util"
	"github.com/meowcoin-foundation/mewcd/util/panics"
	"github.com/meowcoin-foundation/mewcd/wire"
)

// progressInterval is the nonce stride at which the first worker reports
// progress.
const progressInterval = 100000

// spawn runs a function in a panic-guarded goroutine.
var spawn = panics.GoroutineWrapperFunc(log)

// GenesisResult is the outcome of a successful genesis search.
type GenesisResult struct {
	// Nonce64 is the winning extended nonce.
	Nonce64 uint64

	// MixHash is the KAWPOW mix digest of the winning nonce.
	MixHash chainhash.Hash

	// PowHash is the KAWPOW final hash of the winning nonce.
	PowHash chainhash.Hash

	// Hashes is the total number of nonces attempted.
	Hashes uint64

	// Elapsed is the wall-clock search duration.
	Elapsed time.Duration
}

// MineGenesisBlock searches for a 64-bit nonce whose KAWPOW final hash
// satisfies the genesis header's difficulty bits. The genesis search always
// runs the KAWPOW path regardless of the header timestamp, matching the
// reference genesis tool, which forces the activation time to zero.
//
// Workers claim nonces from a shared atomic counter and the first winner
// publishes the result; the remaining workers observe the found flag and
// exit on their next iteration. Mined nonces are not reproducible across
// runs.
func MineGenesisBlock(genesis *wire.MsgBlock, powLimit *big.Int, numWorkers int,
	progress func(nonce, hashes uint64, elapsed time.Duration)) (*GenesisResult, error) {

	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	header := genesis.Header
	header.Height = 0

	target, err := blockchain.DeriveTarget(header.Bits, powLimit)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid genesis target for bits %08x", header.Bits)
	}

	// The KAWPOW input hash does not cover the extended nonce, so it is
	// constant across the whole search.
	headerHash := header.KawpowHeaderHash()

	var (
		found     uint32
		nextNonce uint64
		hashes    uint64

		resultMtx sync.Mutex
		result    GenesisResult
	)
	startTime := time.Now()

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		workerNum := i
		spawn("genesis-worker", func() {
			defer wg.Done()
			for atomic.LoadUint32(&found) == 0 {
				workNonce := atomic.AddUint64(&nextNonce, 1) - 1
				atomic.AddUint64(&hashes, 1)

				mix, pow, err := powhash.Kawpow(headerHash, 0, workNonce)
				if err != nil {
					log.Errorf("Genesis worker %d failed to hash nonce %d: %s",
						workerNum, workNonce, err)
					return
				}

				if util.HashToBig(&pow).Cmp(target) <= 0 {
					if atomic.CompareAndSwapUint32(&found, 0, 1) {
						resultMtx.Lock()
						result.Nonce64 = workNonce
						result.MixHash = mix
						result.PowHash = pow
						resultMtx.Unlock()
					}
					return
				}

				if workerNum == 0 && workNonce%progressInterval == 0 && progress != nil {
					progress(workNonce, atomic.LoadUint64(&hashes), time.Since(startTime))
				}
			}
		})
	}
	wg.Wait()

	if atomic.LoadUint32(&found) == 0 {
		return nil, errors.New("genesis search stopped without a result")
	}

	result.Hashes = atomic.LoadUint64(&hashes)
	result.Elapsed = time.Since(startTime)
	return &result, nil
}
