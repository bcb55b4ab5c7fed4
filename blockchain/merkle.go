// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2022-2026 The Meowcoin Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/meowcoin-foundation/mewcd/chaincfg/chainhash"
	"github.com/meowcoin-foundation/mewcd/wire"
)

// hashMerkleBranches takes two hashes, treated as the left and right tree
// nodes, and returns the hash of their concatenation. This is a helper
// function used to aid in the generation of a merkle tree.
func hashMerkleBranches(left *chainhash.Hash, right *chainhash.Hash) *chainhash.Hash {
	// Concatenate the left and right nodes.
	var hash [chainhash.HashSize * 2]byte
	copy(hash[:chainhash.HashSize], left[:])
	copy(hash[chainhash.HashSize:], right[:])

	newHash := chainhash.DoubleHashH(hash[:])
	return &newHash
}

// BlockMerkleRoot computes the merkle root of the block's transactions using
// the classic Bitcoin tree: leaves are transaction hashes, interior nodes
// are the double sha256 of their children's concatenation, and a level with
// an odd number of nodes duplicates its last entry.
func BlockMerkleRoot(block *wire.MsgBlock) chainhash.Hash {
	hashes := block.TxHashes()
	return MerkleRootFromHashes(hashes)
}

// MerkleRootFromHashes computes the merkle root over the given leaf hashes.
// An empty leaf set yields the zero hash.
func MerkleRootFromHashes(hashes []chainhash.Hash) chainhash.Hash {
	if len(hashes) == 0 {
		return chainhash.Hash{}
	}

	level := make([]chainhash.Hash, len(hashes))
	copy(level, hashes)

	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}
		next := make([]chainhash.Hash, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			next = append(next, *hashMerkleBranches(&level[i], &level[i+1]))
		}
		level = next
	}

	return level[0]
}

// CheckMerkleBranch walks a merkle branch up from the given leaf hash,
// combining left or right at each level according to the side mask, and
// returns the implied root. A negative side mask yields the zero hash,
// mirroring the reference behaviour for an unset index.
func CheckMerkleBranch(leaf chainhash.Hash, branch []chainhash.Hash, sideMask int32) chainhash.Hash {
	if sideMask < 0 {
		return chainhash.Hash{}
	}

	current := leaf
	for _, sibling := range branch {
		if sideMask&1 != 0 {
			current = *hashMerkleBranches(&sibling, &current)
		} else {
			current = *hashMerkleBranches(&current, &sibling)
		}
		sideMask >>= 1
	}
	return current
}
