// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2022-2026 The Meowcoin Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	"github.com/meowcoin-foundation/mewcd/chaincfg"
	"github.com/meowcoin-foundation/mewcd/wire"
)

// Block wraps a wire.MsgBlock with memory-only caches for the expensive
// structural checks, so repeated validation of the same in-memory block is
// free. The caches are never serialized.
type Block struct {
	msgBlock *wire.MsgBlock

	// Memory-only flags caching expensive checks.
	checked           bool
	checkedMerkleRoot bool
}

// NewBlock returns a new instance of a block given an underlying
// wire.MsgBlock.
func NewBlock(msgBlock *wire.MsgBlock) *Block {
	return &Block{msgBlock: msgBlock}
}

// MsgBlock returns the underlying wire.MsgBlock.
func (b *Block) MsgBlock() *wire.MsgBlock {
	return b.msgBlock
}

// CheckMerkleRoot verifies the header's merkle root commits to the block's
// transactions. The result of a successful check is cached.
func (b *Block) CheckMerkleRoot() error {
	if b.checkedMerkleRoot {
		return nil
	}

	calculated := BlockMerkleRoot(b.msgBlock)
	if !calculated.IsEqual(&b.msgBlock.Header.MerkleRoot) {
		return ruleError(ErrBadMerkleRoot, fmt.Sprintf(
			"block merkle root is invalid - block header indicates %s, but "+
				"calculated value is %s", b.msgBlock.Header.MerkleRoot, calculated))
	}

	b.checkedMerkleRoot = true
	return nil
}

// CheckSanity performs the context-free validity checks on the block: it
// must carry a coinbase first and only first, its merkle root must commit
// to its transactions, and its header must satisfy proof of work. A
// successful result is cached.
func (b *Block) CheckSanity(params *chaincfg.Params) error {
	if b.checked {
		return nil
	}

	msgBlock := b.msgBlock
	if len(msgBlock.Transactions) == 0 {
		return ruleError(ErrNoTransactions, "block does not contain any transactions")
	}
	if !msgBlock.Transactions[0].IsCoinBase() {
		return ruleError(ErrFirstTxNotCoinbase, "first transaction in block is not the coinbase")
	}
	for i, tx := range msgBlock.Transactions[1:] {
		if tx.IsCoinBase() {
			return ruleError(ErrMultipleCoinbases, fmt.Sprintf(
				"block contains second coinbase at index %d", i+1))
		}
	}

	if err := b.CheckMerkleRoot(); err != nil {
		return err
	}

	if err := CheckProofOfWork(&msgBlock.Header, params); err != nil {
		return err
	}

	b.checked = true
	return nil
}
