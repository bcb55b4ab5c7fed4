// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2022-2026 The Meowcoin Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"

	"github.com/meowcoin-foundation/mewcd/chaincfg"
	"github.com/meowcoin-foundation/mewcd/util"
	"github.com/meowcoin-foundation/mewcd/wire"
)

// dgwPastBlocks is the DarkGravityWave averaging window (~3 hours at one
// minute spacing).
const dgwPastBlocks = 180

// lwmaSearchFactor bounds the LWMA same-algorithm ancestor walk to
// N*lwmaSearchFactor blocks. The cap is load-bearing: without it a chain
// with a long same-algo drought would make the walk unbounded.
const lwmaSearchFactor = 10

// NextWorkRequired calculates the required difficulty for the block built on
// top of lastNode. Once merge mining starts, the multi-algorithm LWMA takes
// over from DarkGravityWave.
func NextWorkRequired(lastNode *BlockNode, header *wire.BlockHeader,
	params *chaincfg.Params, isAuxPow bool) uint32 {

	if params.AuxpowStartHeight > 0 && lastNode.Height+1 >= params.AuxpowStartHeight {
		isAuxPowBlock := isAuxPow || (header != nil && header.Version.IsAuxpow())
		return NextLWMAWorkRequired(lastNode, header, params, isAuxPowBlock)
	}

	return DarkGravityWave(lastNode, header, params)
}

// DarkGravityWave computes the next difficulty with the DarkGravityWave v3
// retarget algorithm, originally written by Evan Duffield for Dash: a
// weighted average target over the last 180 blocks scaled by the window's
// actual timespan.
func DarkGravityWave(lastNode *BlockNode, header *wire.BlockHeader,
	params *chaincfg.Params) uint32 {

	powLimit := params.PowLimit[wire.PowAlgoMeowpow]
	powLimitBits := util.BigToCompact(powLimit)

	// Without a full window behind the tip there is nothing to average.
	if lastNode == nil || lastNode.Height < dgwPastBlocks {
		return powLimitBits
	}

	if params.PowAllowMinDifficultyBlocks && params.PowNoRetargeting {
		// Special difficulty rule: a block whose timestamp is more than
		// twice the target spacing past the tip may be mined at minimum
		// difficulty.
		if header.BlockTime() > lastNode.Timestamp+params.PowTargetSpacing*2 {
			return powLimitBits
		}
		// Otherwise return the last non-special-minimum difficulty.
		node := lastNode
		for node.Parent != nil &&
			node.Height%params.DifficultyAdjustmentInterval() != 0 &&
			node.Bits == powLimitBits {
			node = node.Parent
		}
		return node.Bits
	}

	node := lastNode
	pastTargetAvg := new(big.Int)

	kawpowBlocksFound := 0
	meowpowBlocksFound := 0
	for countBlocks := int64(1); countBlocks <= dgwPastBlocks; countBlocks++ {
		target := util.CompactToBig(node.Bits)
		if countBlocks == 1 {
			pastTargetAvg.Set(target)
		} else {
			// Running weighted mean: avg = (avg*k + target) / (k+1).
			pastTargetAvg.Mul(pastTargetAvg, big.NewInt(countBlocks))
			pastTargetAvg.Add(pastTargetAvg, target)
			pastTargetAvg.Div(pastTargetAvg, big.NewInt(countBlocks+1))
		}

		nodeTime := uint32(node.Timestamp)
		if nodeTime >= params.KawpowActivationTime && nodeTime < params.MeowpowActivationTime {
			kawpowBlocksFound++
		}
		if nodeTime >= params.MeowpowActivationTime {
			meowpowBlocksFound++
		}

		if countBlocks != dgwPastBlocks {
			node = node.Parent
		}
	}

	// Until a full window of same-era blocks exists after an algorithm
	// switch, stay at the limit so the transition does not inherit the old
	// algorithm's targets.
	if header.Timestamp >= params.KawpowActivationTime &&
		header.Timestamp < params.MeowpowActivationTime &&
		kawpowBlocksFound != dgwPastBlocks {
		log.Tracef("DGW: only %d of %d window blocks are KAWPOW, staying at the limit",
			kawpowBlocksFound, dgwPastBlocks)
		return powLimitBits
	}
	if header.Timestamp >= params.MeowpowActivationTime &&
		meowpowBlocksFound != dgwPastBlocks {
		log.Tracef("DGW: only %d of %d window blocks are MEOWPOW, staying at the limit",
			meowpowBlocksFound, dgwPastBlocks)
		return powLimitBits
	}

	newTarget := new(big.Int).Set(pastTargetAvg)

	actualTimespan := lastNode.Timestamp - node.Timestamp
	targetTimespan := dgwPastBlocks * params.PowTargetSpacing

	if actualTimespan < targetTimespan/3 {
		actualTimespan = targetTimespan / 3
	}
	if actualTimespan > targetTimespan*3 {
		actualTimespan = targetTimespan * 3
	}

	// Retarget.
	newTarget.Mul(newTarget, big.NewInt(actualTimespan))
	newTarget.Div(newTarget, big.NewInt(targetTimespan))

	if newTarget.Cmp(powLimit) > 0 {
		return powLimitBits
	}

	return util.BigToCompact(newTarget)
}

// NextLWMAWorkRequired computes the next difficulty with the LWMA-1
// multi-algorithm adjustment: a linearly weighted moving average of the
// solvetimes of the last N blocks of the candidate's own algorithm.
func NextLWMAWorkRequired(lastNode *BlockNode, header *wire.BlockHeader,
	params *chaincfg.Params, isAuxPow bool) uint32 {

	// Number of parallel algorithms contributing blocks, made height-pure
	// so every validator derives the same answer.
	auxActive := lastNode.Height+1 >= params.AuxpowStartHeight
	algos := int64(1)
	if auxActive {
		algos = 2
	}

	// Effective per-algo spacing that preserves the chain-wide spacing.
	spacing := params.PowTargetSpacing * algos

	n := params.LwmaAveragingWindow
	k := n * (n + 1) * spacing / 2
	height := lastNode.Height

	algo := wire.PowAlgoMeowpow
	if header != nil {
		algo = header.Version.Algo()
	}
	if isAuxPow {
		// Merge-mined blocks always carry scrypt difficulty.
		algo = wire.PowAlgoScrypt
	}

	powLimit := params.PowLimit[algo]
	if height < n {
		return util.BigToCompact(powLimit)
	}

	// Gather the last N+1 blocks of the same algorithm. The walk is
	// bounded to n*lwmaSearchFactor lookups.
	sameAlgo := make([]*BlockNode, 0, n+1)
	searchLimit := n * lwmaSearchFactor
	if height < searchLimit {
		searchLimit = height
	}
	for h := height; h >= 0 && int64(len(sameAlgo)) < n+1 && height-h <= searchLimit; h-- {
		node := lastNode.Ancestor(h)
		if node == nil {
			break
		}
		nodeAlgo := wire.PowAlgoMeowpow
		if node.Version.IsAuxpow() {
			nodeAlgo = wire.PowAlgoScrypt
		}
		if nodeAlgo == algo {
			sameAlgo = append(sameAlgo, node)
		}
	}

	if int64(len(sameAlgo)) < n+1 {
		if len(sameAlgo) > 0 {
			// The walk runs tip-first, so the last entry is the oldest
			// same-algo block seen.
			return sameAlgo[len(sameAlgo)-1].Bits
		}
		return util.BigToCompact(powLimit)
	}

	// Reverse into chronological order.
	for i, j := 0, len(sameAlgo)-1; i < j; i, j = i+1, j-1 {
		sameAlgo[i], sameAlgo[j] = sameAlgo[j], sameAlgo[i]
	}

	sumTargets := new(big.Int)
	var sumWeightedSolvetimes int64

	prevTimestamp := sameAlgo[0].Timestamp
	for i := int64(1); i <= n; i++ {
		node := sameAlgo[i]

		// Monotonise the timestamps so a backwards clock cannot produce
		// negative solvetimes.
		timestamp := node.Timestamp
		if timestamp <= prevTimestamp {
			timestamp = prevTimestamp + 1
		}

		solvetime := timestamp - prevTimestamp
		prevTimestamp = timestamp

		if solvetime < 1 {
			solvetime = 1
		}
		if solvetime > 6*spacing {
			solvetime = 6 * spacing
		}

		sumWeightedSolvetimes += i * solvetime
		sumTargets.Add(sumTargets, util.CompactToBig(node.Bits))
	}

	avgTarget := sumTargets.Div(sumTargets, big.NewInt(n))

	if sumWeightedSolvetimes < 1 {
		sumWeightedSolvetimes = 1
	}
	nextTarget := new(big.Int).Set(avgTarget)
	nextTarget.Mul(nextTarget, big.NewInt(sumWeightedSolvetimes))
	nextTarget.Div(nextTarget, big.NewInt(k))

	if nextTarget.Cmp(powLimit) > 0 {
		nextTarget.Set(powLimit)
	}

	return util.BigToCompact(nextTarget)
}

// CalculateNextWorkRequired computes the classic timespan-based retarget
// from the tip difficulty and the time of the first block of the adjustment
// window. It survives from the pre-DGW rules and still backs the
// no-retargeting path.
func CalculateNextWorkRequired(lastNode *BlockNode, firstBlockTime int64,
	params *chaincfg.Params) uint32 {

	if params.PowNoRetargeting {
		return lastNode.Bits
	}

	// Limit adjustment step.
	actualTimespan := lastNode.Timestamp - firstBlockTime
	if actualTimespan < params.PowTargetTimespan/4 {
		actualTimespan = params.PowTargetTimespan / 4
	}
	if actualTimespan > params.PowTargetTimespan*4 {
		actualTimespan = params.PowTargetTimespan * 4
	}

	// Retarget.
	powLimit := params.PowLimit[wire.PowAlgoMeowpow]
	newTarget := util.CompactToBig(lastNode.Bits)
	newTarget.Mul(newTarget, big.NewInt(actualTimespan))
	newTarget.Div(newTarget, big.NewInt(params.PowTargetTimespan))

	if newTarget.Cmp(powLimit) > 0 {
		newTarget.Set(powLimit)
	}

	return util.BigToCompact(newTarget)
}

// PermittedDifficultyTransition reports whether the difficulty transition
// from oldBits to newBits is permitted at the given height. DarkGravityWave
// and LWMA retarget every block, so any transition within the algorithms'
// own constraints is permitted.
func PermittedDifficultyTransition(params *chaincfg.Params, height int64,
	oldBits, newBits uint32) bool {

	return true
}
