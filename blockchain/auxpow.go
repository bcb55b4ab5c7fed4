// Copyright (c) 2022-2026 The Meowcoin Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"bytes"
	"fmt"

	"github.com/meowcoin-foundation/mewcd/chaincfg"
	"github.com/meowcoin-foundation/mewcd/chaincfg/chainhash"
	"github.com/meowcoin-foundation/mewcd/wire"
)

// mergedMiningHeader is the magic prefix of the merged-mining commitment
// inside the parent coinbase signature script.
var mergedMiningHeader = []byte{0xfa, 0xbe, 'm', 'm'}

// maxChainBranchLength bounds the merged-mining tree depth.
const maxChainBranchLength = 30

// maxCommitmentLead is how deep into the parent coinbase script a bare
// commitment (one without the magic prefix) may start.
const maxCommitmentLead = 20

// CheckAuxPow validates a merge-mining attestation against the hash of the
// block it claims to prove:
//
//  1. the parent chain must be a different chain (strict chain id),
//  2. the chain merkle branch must link blockHash into a merged-mining tree
//     root committed to in the parent coinbase signature script under the
//     expected chain id slot,
//  3. the coinbase merkle branch must prove the coinbase is part of the
//     parent block.
//
// The parent's proof of work is checked separately against the child's
// difficulty bits (see CheckProofOfWork).
func CheckAuxPow(aux *wire.AuxPow, blockHash chainhash.Hash, params *chaincfg.Params) error {
	if aux.CoinbaseIndex != 0 {
		return ruleError(ErrAuxPowInvalid, "auxpow coinbase is not the first parent transaction")
	}

	if params.StrictChainID && aux.ParentBlock.Version.ChainID() == params.AuxpowChainID {
		return ruleError(ErrAuxPowInvalid, "auxpow parent block uses our chain id")
	}

	if len(aux.ChainBranch) > maxChainBranchLength {
		return ruleError(ErrAuxPowInvalid, "auxpow chain merkle branch is too long")
	}

	// Check that the chain merkle branch connects this block to the merged
	// mining tree root the parent coinbase commits to. The committed root
	// is byte-reversed relative to our hash order.
	chainRoot := CheckMerkleBranch(blockHash, aux.ChainBranch, aux.ChainIndex)
	committedRoot := reverseHashBytes(chainRoot)

	// Check that the coinbase belongs to the claimed parent block.
	coinbaseHash := aux.CoinbaseTx.TxHash()
	coinbaseRoot := CheckMerkleBranch(coinbaseHash, aux.CoinbaseBranch, aux.CoinbaseIndex)
	if !coinbaseRoot.IsEqual(&aux.ParentBlock.MerkleRoot) {
		return ruleError(ErrAuxPowInvalid, "auxpow merkle root is incorrect")
	}

	if len(aux.CoinbaseTx.TxIn) == 0 {
		return ruleError(ErrAuxPowInvalid, "auxpow coinbase has no inputs")
	}
	script := aux.CoinbaseTx.TxIn[0].SignatureScript

	// Locate the commitment, preferring the canonical headered form.
	headerIndex := bytes.Index(script, mergedMiningHeader)
	rootIndex := bytes.Index(script, committedRoot)
	if rootIndex < 0 {
		return ruleError(ErrAuxPowInvalid, "auxpow missing chain merkle root in parent coinbase")
	}

	if headerIndex >= 0 {
		// The merged-mining header may appear only once and the root must
		// follow it immediately.
		if bytes.Index(script[headerIndex+1:], mergedMiningHeader) >= 0 {
			return ruleError(ErrAuxPowInvalid, "multiple merged mining headers in coinbase")
		}
		if rootIndex != headerIndex+len(mergedMiningHeader) {
			return ruleError(ErrAuxPowInvalid, "merged mining header is not just before chain merkle root")
		}
	} else if rootIndex > maxCommitmentLead {
		// Without the magic prefix the commitment must sit in the first
		// bytes of the script so unrelated script data cannot fake it.
		return ruleError(ErrAuxPowInvalid, "auxpow chain merkle root must start in the first 20 bytes of the parent coinbase")
	}

	// The two trailing words after the root pin the merged-mining tree
	// geometry: the tree size and a nonce that derives the expected slot of
	// each chain id.
	tail := script[rootIndex+len(committedRoot):]
	if len(tail) < 8 {
		return ruleError(ErrAuxPowInvalid, "auxpow missing chain merkle tree size and nonce in parent coinbase")
	}

	treeSize := uint32(tail[0]) | uint32(tail[1])<<8 | uint32(tail[2])<<16 | uint32(tail[3])<<24
	nonce := uint32(tail[4]) | uint32(tail[5])<<8 | uint32(tail[6])<<16 | uint32(tail[7])<<24

	if treeSize != 1<<uint(len(aux.ChainBranch)) {
		return ruleError(ErrAuxPowInvalid, "auxpow merkle branch size does not match parent coinbase")
	}

	expected := expectedChainIndex(nonce, params.AuxpowChainID, len(aux.ChainBranch))
	if uint32(aux.ChainIndex) != expected {
		return ruleError(ErrAuxPowInvalid, fmt.Sprintf(
			"auxpow wrong index %d in chain merkle tree, expected %d",
			aux.ChainIndex, expected))
	}

	return nil
}

// expectedChainIndex derives the slot of a chain id in a merged-mining tree
// of height h, using the classic linear-congruential mixing of the coinbase
// nonce.
func expectedChainIndex(nonce uint32, chainID uint16, h int) uint32 {
	rand := nonce
	rand = rand*1103515245 + 12345
	rand += uint32(chainID)
	rand = rand*1103515245 + 12345

	return rand % (1 << uint(h))
}

// reverseHashBytes returns the big-endian byte order of a hash, which is how
// merged-mining commitments embed roots in coinbase scripts.
func reverseHashBytes(hash chainhash.Hash) []byte {
	reversed := make([]byte, chainhash.HashSize)
	for i, b := range hash {
		reversed[chainhash.HashSize-1-i] = b
	}
	return reversed
}
