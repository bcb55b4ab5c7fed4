// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2022-2026 The Meowcoin Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"

	"github.com/pkg/errors"

	"github.com/meowcoin-foundation/mewcd/chaincfg/chainhash"
	"github.com/meowcoin-foundation/mewcd/util"
	"github.com/meowcoin-foundation/mewcd/wire"
)

const (
	// GenesisReward is the coinbase value of every genesis block.
	GenesisReward = 5000 * util.SatoshiPerMeowcoin

	// GenesisTimestamp is the headline embedded in the genesis coinbase of
	// the main network and the shared test network genesis.
	GenesisTimestamp = "The WSJ 08/28/2022 Investors Ramp Up Bets Against Stock Market"

	// Testnet4GenesisTimestamp is the headline of the freshly mined
	// testnet4 genesis template used by the genesis miner.
	Testnet4GenesisTimestamp = "Meowcoin Taproot Testnet 10/Feb/2026"

	// genesisOutputPubKey is the uncompressed public key paid by every
	// genesis coinbase.
	genesisOutputPubKey = "04678afdb0fe5548271967f1a67130b7105cd6a828e0" +
		"3909a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384d" +
		"f7ba0b8d578a4c702b6bf11d5f"
)

// opCheckSig is the script opcode that terminates the genesis output script.
const opCheckSig = 0xac

// CreateGenesisBlock assembles the genesis block for the given coinbase
// headline and header fields, mirroring the reference CreateGenesisBlock:
// the coinbase signature script pushes an empty number, the constant
// 486604799, the number 4 and the headline bytes; the output pays the
// genesis public key via a direct pay-to-pubkey script.
func CreateGenesisBlock(pszTimestamp string, timestamp uint32, nonce uint32,
	bits uint32, version int32, reward int64) *wire.MsgBlock {

	pubKey, err := hex.DecodeString(genesisOutputPubKey)
	if err != nil {
		panic(errors.Wrap(err, "invalid hard-coded genesis public key"))
	}

	// OP_0 <486604799> <4> <headline>
	scriptSig := make([]byte, 0, 9+len(pszTimestamp))
	scriptSig = append(scriptSig, 0x00)
	scriptSig = append(scriptSig, 0x04, 0xff, 0xff, 0x00, 0x1d)
	scriptSig = append(scriptSig, 0x01, 0x04)
	scriptSig = append(scriptSig, byte(len(pszTimestamp)))
	scriptSig = append(scriptSig, pszTimestamp...)

	// <pubkey> OP_CHECKSIG
	pkScript := make([]byte, 0, len(pubKey)+2)
	pkScript = append(pkScript, byte(len(pubKey)))
	pkScript = append(pkScript, pubKey...)
	pkScript = append(pkScript, opCheckSig)

	coinbaseTx := wire.NewMsgTx()
	coinbaseTx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{
			Hash:  chainhash.Hash{},
			Index: wire.MaxPrevOutIndex,
		},
		SignatureScript: scriptSig,
		Sequence:        wire.MaxTxInSequenceNum,
	})
	coinbaseTx.AddTxOut(&wire.TxOut{
		Value:    reward,
		PkScript: pkScript,
	})

	genesis := &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    wire.GenesisVersion(version),
			PrevBlock:  chainhash.Hash{},
			MerkleRoot: coinbaseTx.TxHash(), // single-tx tree: root is the txid
			Timestamp:  timestamp,
			Bits:       bits,
			Nonce:      nonce,
		},
	}
	genesis.AddTransaction(coinbaseTx)
	return genesis
}

// genesisMerkleRoot is the hash of the first transaction in the genesis
// block. Every network variant shares it because they all embed the same
// coinbase.
var genesisMerkleRoot = *chainhash.MustHashFromStr(
	"e8916cf6592c8433d598c3a5fe60a9741fd2a997b39d93af2d789cdd9d9a7390")

// genesisHash is the hash of the first block in the block chain for the main
// network.
var genesisHash = *chainhash.MustHashFromStr(
	"000000edd819220359469c54f2614b5602ebc775ea67a64602f354bdaa320f70")

// testNetGenesisHash is the hash of the first block in the block chain for
// the test networks (testnet, testnet4 and signet share one genesis).
var testNetGenesisHash = *chainhash.MustHashFromStr(
	"000000eaab417d6dfe9bd75119972e1d07ecfe8ff655bef7c2acb3d9a0eeed81")

// genesisBlock defines the genesis block of the block chain which serves as
// the public transaction ledger for the main network.
var genesisBlock = *CreateGenesisBlock(GenesisTimestamp, 1661730843, 351574, 0x1e00ffff, 4, GenesisReward)

// testNetGenesisBlock defines the genesis block shared by the test network
// variants.
var testNetGenesisBlock = *CreateGenesisBlock(GenesisTimestamp, 1661734222, 7680541, 0x1e00ffff, 4, GenesisReward)

// regTestGenesisBlock defines the genesis block of the regression test
// network.
var regTestGenesisBlock = *CreateGenesisBlock(GenesisTimestamp, 1661734578, 1, 0x207fffff, 4, GenesisReward)

// CheckGenesis recomputes the genesis block hash and merkle root of the
// given network and compares them to the pinned constants. A mismatch is
// unrecoverable chain corruption; callers abort the process on error at
// startup. Networks with a nil GenesisHash only pin the merkle root.
func CheckGenesis(p *Params) error {
	merkleRoot := p.GenesisBlock.Transactions[0].TxHash()
	if !merkleRoot.IsEqual(p.GenesisMerkleRoot) {
		return errors.Errorf("%s genesis merkle root %s does not match pinned %s",
			p.Name, merkleRoot, p.GenesisMerkleRoot)
	}

	if p.GenesisHash == nil {
		return nil
	}
	hash, err := p.GenesisBlock.BlockHash(p.ActivationTimes())
	if err != nil {
		return errors.Wrapf(err, "could not hash %s genesis block", p.Name)
	}
	if !hash.IsEqual(p.GenesisHash) {
		return errors.Errorf("%s genesis hash %s does not match pinned %s",
			p.Name, hash, p.GenesisHash)
	}
	return nil
}
