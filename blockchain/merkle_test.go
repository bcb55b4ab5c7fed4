// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/meowcoin-foundation/mewcd/chaincfg"
	"github.com/meowcoin-foundation/mewcd/chaincfg/chainhash"
)

func hashOfByte(fill byte) chainhash.Hash {
	var hash chainhash.Hash
	for i := range hash {
		hash[i] = fill
	}
	return hash
}

// TestMerkleRootSingleTx ensures a single-transaction tree's root is the
// transaction hash itself, which is what genesis construction relies on.
func TestMerkleRootSingleTx(t *testing.T) {
	genesis := chaincfg.MainNetParams.GenesisBlock
	txHash := genesis.Transactions[0].TxHash()

	root := BlockMerkleRoot(genesis)
	if !root.IsEqual(&txHash) {
		t.Errorf("single-tx merkle root: got %s, want %s", root, txHash)
	}
	if !root.IsEqual(&genesis.Header.MerkleRoot) {
		t.Errorf("genesis header merkle root: got %s, want %s",
			genesis.Header.MerkleRoot, root)
	}
}

// TestMerkleRootOddLeaves ensures an odd level duplicates its last entry.
func TestMerkleRootOddLeaves(t *testing.T) {
	a, b, c := hashOfByte(1), hashOfByte(2), hashOfByte(3)

	ab := hashMerkleBranches(&a, &b)
	cc := hashMerkleBranches(&c, &c)
	want := hashMerkleBranches(ab, cc)

	got := MerkleRootFromHashes([]chainhash.Hash{a, b, c})
	if !got.IsEqual(want) {
		t.Errorf("odd-leaf merkle root: got %s, want %s", got, want)
	}
}

// TestMerkleRootEmpty ensures the empty tree yields the zero hash.
func TestMerkleRootEmpty(t *testing.T) {
	got := MerkleRootFromHashes(nil)
	if !got.IsZero() {
		t.Errorf("empty merkle root: got %s, want zero", got)
	}
}

// TestCheckMerkleBranch verifies branch walks reproduce the root from every
// leaf of a four-leaf tree.
func TestCheckMerkleBranch(t *testing.T) {
	leaves := []chainhash.Hash{hashOfByte(1), hashOfByte(2), hashOfByte(3), hashOfByte(4)}
	root := MerkleRootFromHashes(leaves)

	l01 := hashMerkleBranches(&leaves[0], &leaves[1])
	l23 := hashMerkleBranches(&leaves[2], &leaves[3])

	tests := []struct {
		leaf     chainhash.Hash
		branch   []chainhash.Hash
		sideMask int32
	}{
		{leaves[0], []chainhash.Hash{leaves[1], *l23}, 0},
		{leaves[1], []chainhash.Hash{leaves[0], *l23}, 1},
		{leaves[2], []chainhash.Hash{leaves[3], *l01}, 2},
		{leaves[3], []chainhash.Hash{leaves[2], *l01}, 3},
	}

	for i, test := range tests {
		got := CheckMerkleBranch(test.leaf, test.branch, test.sideMask)
		if !got.IsEqual(&root) {
			t.Errorf("branch #%d: got %s, want %s", i, got, root)
		}
	}

	// A negative side mask yields the zero hash.
	if got := CheckMerkleBranch(leaves[0], nil, -1); !got.IsZero() {
		t.Errorf("negative side mask: got %s, want zero", got)
	}
}
