// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/meowcoin-foundation/mewcd/chaincfg"
	"github.com/meowcoin-foundation/mewcd/wire"
)

// TestBlockCheckMerkleRootGenesis ensures the regtest genesis block passes
// the merkle root check, both when computed and when served from the cache.
func TestBlockCheckMerkleRootGenesis(t *testing.T) {
	t.Setenv(FuzzDeterminismEnv, "") // make sure the real path runs

	params := &chaincfg.RegressionNetParams
	block := NewBlock(params.GenesisBlock)

	if err := block.CheckMerkleRoot(); err != nil {
		t.Fatalf("CheckMerkleRoot: %v", err)
	}

	// A second call hits the cache and must also succeed.
	if err := block.CheckMerkleRoot(); err != nil {
		t.Fatalf("cached CheckMerkleRoot: %v", err)
	}
}

// TestBlockCheckSanityRejects exercises the structural rejections.
func TestBlockCheckSanityRejects(t *testing.T) {
	params := &chaincfg.RegressionNetParams

	// No transactions at all.
	empty := &wire.MsgBlock{Header: params.GenesisBlock.Header}
	err := NewBlock(empty).CheckSanity(params)
	if code, ok := ruleErrorCode(err); !ok || code != ErrNoTransactions {
		t.Errorf("empty block: got %v, want ErrNoTransactions", err)
	}

	// First transaction is not a coinbase.
	nonCoinbase := wire.NewMsgTx()
	nonCoinbase.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{Hash: hashOfByte(1), Index: 0},
		Sequence:         wire.MaxTxInSequenceNum,
	})
	noCoinbaseBlock := &wire.MsgBlock{Header: params.GenesisBlock.Header}
	noCoinbaseBlock.AddTransaction(nonCoinbase)
	err = NewBlock(noCoinbaseBlock).CheckSanity(params)
	if code, ok := ruleErrorCode(err); !ok || code != ErrFirstTxNotCoinbase {
		t.Errorf("no coinbase: got %v, want ErrFirstTxNotCoinbase", err)
	}

	// Two coinbases.
	double := &wire.MsgBlock{Header: params.GenesisBlock.Header}
	double.AddTransaction(params.GenesisBlock.Transactions[0])
	double.AddTransaction(params.GenesisBlock.Transactions[0])
	err = NewBlock(double).CheckSanity(params)
	if code, ok := ruleErrorCode(err); !ok || code != ErrMultipleCoinbases {
		t.Errorf("double coinbase: got %v, want ErrMultipleCoinbases", err)
	}

	// A tampered merkle root.
	tampered := *params.GenesisBlock
	tampered.Header.MerkleRoot = hashOfByte(0xaa)
	err = NewBlock(&tampered).CheckSanity(params)
	if code, ok := ruleErrorCode(err); !ok || code != ErrBadMerkleRoot {
		t.Errorf("bad merkle root: got %v, want ErrBadMerkleRoot", err)
	}
}
