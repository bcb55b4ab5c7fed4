// Copyright (c) 2022-2026 The Meowcoin Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"io"

	"github.com/meowcoin-foundation/mewcd/chaincfg/chainhash"
)

// maxMerkleBranchLen bounds the length of a merkle branch. 2^30 leaves is far
// beyond any real parent block.
const maxMerkleBranchLen = 30

// AuxPow is a merge-mining attestation: proof that work done on a parent
// chain commits to a block of this chain. It carries the parent coinbase
// transaction, the merkle branch linking that coinbase to the parent block's
// merkle root, the branch locating this chain in a merged-mining tree, and
// the parent block's pure header.
type AuxPow struct {
	// CoinbaseTx is the parent-chain coinbase transaction carrying the
	// commitment to this chain's block hash in its signature script.
	CoinbaseTx MsgTx

	// ParentHash is the hash of the parent block the coinbase was mined in.
	ParentHash chainhash.Hash

	// CoinbaseBranch is the merkle branch proving CoinbaseTx is part of the
	// parent block identified by ParentBlock.
	CoinbaseBranch []chainhash.Hash

	// CoinbaseIndex is the side mask of CoinbaseBranch. It is zero for any
	// valid proof because the coinbase is always the first transaction.
	CoinbaseIndex int32

	// ChainBranch is the merkle branch linking this chain's block hash into
	// the merged-mining tree root committed to by the parent coinbase.
	ChainBranch []chainhash.Hash

	// ChainIndex is the side mask of ChainBranch.
	ChainIndex int32

	// ParentBlock is the pure header of the parent block whose proof of
	// work backs this block.
	ParentBlock PureBlockHeader
}

// Serialize encodes the attestation to w. The layout follows the classic
// merged-mining form: coinbase tx, parent block hash, coinbase branch,
// chain branch, parent pure header.
func (ap *AuxPow) Serialize(w io.Writer) error {
	err := ap.CoinbaseTx.Serialize(w)
	if err != nil {
		return err
	}

	err = writeElement(w, &ap.ParentHash)
	if err != nil {
		return err
	}

	err = writeMerkleBranch(w, ap.CoinbaseBranch, ap.CoinbaseIndex)
	if err != nil {
		return err
	}

	err = writeMerkleBranch(w, ap.ChainBranch, ap.ChainIndex)
	if err != nil {
		return err
	}

	return ap.ParentBlock.Serialize(w)
}

// Deserialize decodes an attestation from r into the receiver.
func (ap *AuxPow) Deserialize(r io.Reader) error {
	err := ap.CoinbaseTx.Deserialize(r)
	if err != nil {
		return err
	}

	err = readElement(r, &ap.ParentHash)
	if err != nil {
		return err
	}

	ap.CoinbaseBranch, ap.CoinbaseIndex, err = readMerkleBranch(r)
	if err != nil {
		return err
	}

	ap.ChainBranch, ap.ChainIndex, err = readMerkleBranch(r)
	if err != nil {
		return err
	}

	return ap.ParentBlock.Deserialize(r)
}

// SerializeSize returns the number of bytes it would take to serialize the
// attestation.
func (ap *AuxPow) SerializeSize() int {
	n := ap.CoinbaseTx.SerializeSize() + chainhash.HashSize + PureBlockHeaderLen
	n += VarIntSerializeSize(uint64(len(ap.CoinbaseBranch))) +
		len(ap.CoinbaseBranch)*chainhash.HashSize + 4
	n += VarIntSerializeSize(uint64(len(ap.ChainBranch))) +
		len(ap.ChainBranch)*chainhash.HashSize + 4
	return n
}

func readMerkleBranch(r io.Reader) ([]chainhash.Hash, int32, error) {
	count, err := ReadVarInt(r)
	if err != nil {
		return nil, 0, err
	}
	if count > maxMerkleBranchLen {
		return nil, 0, messageError("readMerkleBranch",
			nonSaneCountFmt("merkle branch length", count, maxMerkleBranchLen))
	}

	branch := make([]chainhash.Hash, count)
	for i := uint64(0); i < count; i++ {
		err = readElement(r, &branch[i])
		if err != nil {
			return nil, 0, err
		}
	}

	var sideMask int32
	err = readElement(r, &sideMask)
	if err != nil {
		return nil, 0, err
	}
	return branch, sideMask, nil
}

func writeMerkleBranch(w io.Writer, branch []chainhash.Hash, sideMask int32) error {
	err := WriteVarInt(w, uint64(len(branch)))
	if err != nil {
		return err
	}
	for i := range branch {
		err = writeElement(w, &branch[i])
		if err != nil {
			return err
		}
	}
	return writeElement(w, sideMask)
}
