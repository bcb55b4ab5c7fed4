// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2022-2026 The Meowcoin Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/meowcoin-foundation/mewcd/util"
	"github.com/meowcoin-foundation/mewcd/wire"
)

// TestUniqueMagics ensures message start bytes are unique across networks
// that must be distinguishable on the wire. The test network variants
// deliberately share one magic.
func TestUniqueMagics(t *testing.T) {
	if MainNetParams.Net == TestNetParams.Net {
		t.Error("mainnet and testnet share message start bytes")
	}
	if MainNetParams.Net == RegressionNetParams.Net {
		t.Error("mainnet and regtest share message start bytes")
	}
	if TestNetParams.Net == RegressionNetParams.Net {
		t.Error("testnet and regtest share message start bytes")
	}
	if TestNetParams.Net != TestNet4Params.Net || TestNetParams.Net != SigNetParams.Net {
		t.Error("test network variants must share the testnet magic")
	}
}

// TestMagicValues pins the message start bytes and ports.
func TestMagicValues(t *testing.T) {
	if MainNetParams.Net != [4]byte{'M', 'E', 'W', 'C'} {
		t.Errorf("mainnet magic: got %v", MainNetParams.Net)
	}
	if TestNetParams.Net != [4]byte{'M', 'E', 'W', 'T'} {
		t.Errorf("testnet magic: got %v", TestNetParams.Net)
	}
	if RegressionNetParams.Net != [4]byte{'D', 'R', 'O', 'W'} {
		t.Errorf("regtest magic: got %v", RegressionNetParams.Net)
	}
	if MainNetParams.DefaultPort != 8788 {
		t.Errorf("mainnet port: got %d, want 8788", MainNetParams.DefaultPort)
	}
	if TestNetParams.DefaultPort != 4569 {
		t.Errorf("testnet port: got %d, want 4569", TestNetParams.DefaultPort)
	}
	if RegressionNetParams.DefaultPort != 18444 {
		t.Errorf("regtest port: got %d, want 18444", RegressionNetParams.DefaultPort)
	}
}

// TestActivationTimes pins the per-variant KAWPOW and MEOWPOW activation
// boundaries.
func TestActivationTimes(t *testing.T) {
	tests := []struct {
		params  *Params
		kawpow  uint32
		meowpow uint32
	}{
		{&MainNetParams, 1662493424, 1710799200},
		{&TestNetParams, 1661833868, 1707354000},
		{&TestNet4Params, 1661833868, 1707354000},
		{&SigNetParams, 1661833868, 1707354000},
		{&RegressionNetParams, 3582830167, 3582830167},
	}

	for _, test := range tests {
		times := test.params.ActivationTimes()
		if times.Kawpow != test.kawpow {
			t.Errorf("%s kawpow activation: got %d, want %d",
				test.params.Name, times.Kawpow, test.kawpow)
		}
		if times.Meowpow != test.meowpow {
			t.Errorf("%s meowpow activation: got %d, want %d",
				test.params.Name, times.Meowpow, test.meowpow)
		}
	}
}

// TestPowLimitBitsRoundTrip ensures every network's compact limit is the
// exact compact encoding of its target limit.
func TestPowLimitBitsRoundTrip(t *testing.T) {
	for _, params := range AllParams {
		limit := params.PowLimit[wire.PowAlgoMeowpow]
		if got := util.BigToCompact(limit); got != params.PowLimitBits {
			t.Errorf("%s: compact(powLimit) = %08x, want %08x",
				params.Name, got, params.PowLimitBits)
		}
		// The compact form itself must round trip through the codec.
		decoded := util.CompactToBig(params.PowLimitBits)
		if got := util.BigToCompact(decoded); got != params.PowLimitBits {
			t.Errorf("%s: compact(decode(PowLimitBits)) = %08x, want %08x",
				params.Name, got, params.PowLimitBits)
		}
	}
}

// TestGenesisHeaderFields pins the genesis header constants of every
// variant.
func TestGenesisHeaderFields(t *testing.T) {
	tests := []struct {
		params *Params
		time   uint32
		nonce  uint32
		bits   uint32
	}{
		{&MainNetParams, 1661730843, 351574, 0x1e00ffff},
		{&TestNetParams, 1661734222, 7680541, 0x1e00ffff},
		{&TestNet4Params, 1661734222, 7680541, 0x1e00ffff},
		{&SigNetParams, 1661734222, 7680541, 0x1e00ffff},
		{&RegressionNetParams, 1661734578, 1, 0x207fffff},
	}

	for _, test := range tests {
		header := &test.params.GenesisBlock.Header
		if header.Timestamp != test.time {
			t.Errorf("%s genesis time: got %d, want %d",
				test.params.Name, header.Timestamp, test.time)
		}
		if header.Nonce != test.nonce {
			t.Errorf("%s genesis nonce: got %d, want %d",
				test.params.Name, header.Nonce, test.nonce)
		}
		if header.Bits != test.bits {
			t.Errorf("%s genesis bits: got %08x, want %08x",
				test.params.Name, header.Bits, test.bits)
		}
		if header.Version.BaseVersion() != 4 {
			t.Errorf("%s genesis version: got %d, want 4",
				test.params.Name, header.Version.BaseVersion())
		}
		if !header.PrevBlock.IsZero() {
			t.Errorf("%s genesis prev block is not zero", test.params.Name)
		}
	}
}

// TestCheckGenesis recomputes the pinned genesis hashes and merkle roots of
// every network variant.
func TestCheckGenesis(t *testing.T) {
	for _, params := range AllParams {
		if err := CheckGenesis(params); err != nil {
			t.Errorf("CheckGenesis(%s): %v", params.Name, err)
		}
	}
}

// TestGenesisHeaderBytes pins the exact serialized form of the genesis
// headers against hand-assembled hex built from the published network field
// values (version 4, zero previous hash, merkle root e8916c…9a7390, then
// time, bits and nonce little-endian). This ties the codec and the pinned
// constants to the real chain's bytes instead of the repository's own
// output.
func TestGenesisHeaderBytes(t *testing.T) {
	const merkleLE = "90739a9ddd9c782daf939db397a9d21f74a960fea5c398d533842c59f66c91e8"
	const zeroPrevLE = "0000000000000000000000000000000000000000000000000000000000000000"

	tests := []struct {
		params *Params
		header string
	}{
		{
			// time 1661730843 (0x630c001b), bits 0x1e00ffff,
			// nonce 351574 (0x00055d56).
			&MainNetParams,
			"04000000" + zeroPrevLE + merkleLE + "1b000c63" + "ffff001e" + "565d0500",
		},
		{
			// time 1661734222 (0x630c0d4e), bits 0x1e00ffff,
			// nonce 7680541 (0x0075321d).
			&TestNetParams,
			"04000000" + zeroPrevLE + merkleLE + "4e0d0c63" + "ffff001e" + "1d327500",
		},
		{
			// time 1661734578 (0x630c0eb2), bits 0x207fffff, nonce 1.
			&RegressionNetParams,
			"04000000" + zeroPrevLE + merkleLE + "b20e0c63" + "ffff7f20" + "01000000",
		},
	}

	for _, test := range tests {
		want, err := hex.DecodeString(test.header)
		if err != nil {
			t.Fatalf("%s: invalid header hex: %v", test.params.Name, err)
		}

		var buf bytes.Buffer
		err = test.params.GenesisBlock.Header.Serialize(&buf, test.params.ActivationTimes())
		if err != nil {
			t.Fatalf("%s: Serialize: %v", test.params.Name, err)
		}
		if !bytes.Equal(buf.Bytes(), want) {
			t.Errorf("%s genesis header bytes:\ngot:  %x\nwant: %x",
				test.params.Name, buf.Bytes(), want)
		}
	}
}

// TestGenesisCoinbase pins the structure of the shared genesis coinbase.
func TestGenesisCoinbase(t *testing.T) {
	coinbase := MainNetParams.GenesisBlock.Transactions[0]
	if !coinbase.IsCoinBase() {
		t.Fatal("genesis transaction is not a coinbase")
	}
	if len(coinbase.TxOut) != 1 || coinbase.TxOut[0].Value != GenesisReward {
		t.Errorf("genesis reward: got %d, want %d",
			coinbase.TxOut[0].Value, int64(GenesisReward))
	}

	script := coinbase.TxIn[0].SignatureScript
	// OP_0, the 4-byte difficulty constant, the number 4, the headline.
	wantPrefix := []byte{0x00, 0x04, 0xff, 0xff, 0x00, 0x1d, 0x01, 0x04, byte(len(GenesisTimestamp))}
	for i, b := range wantPrefix {
		if script[i] != b {
			t.Fatalf("genesis scriptSig byte %d: got %02x, want %02x", i, script[i], b)
		}
	}
	if got := string(script[len(wantPrefix):]); got != GenesisTimestamp {
		t.Errorf("genesis headline: got %q", got)
	}

	// Every variant embeds the same coinbase, so they share one merkle
	// root.
	for _, params := range AllParams {
		root := params.GenesisBlock.Transactions[0].TxHash()
		if !root.IsEqual(&genesisMerkleRoot) {
			t.Errorf("%s genesis merkle root diverges", params.Name)
		}
	}
}

// TestParamsLookup exercises the name and magic lookups.
func TestParamsLookup(t *testing.T) {
	if ParamsForName("main") != &MainNetParams || ParamsForName("mainnet") != &MainNetParams {
		t.Error("main lookup failed")
	}
	if ParamsForName("nosuchnet") != nil {
		t.Error("unknown name did not return nil")
	}
	if ParamsForMagic(MainNetParams.Net) != &MainNetParams {
		t.Error("magic lookup failed")
	}
	if ParamsForMagic([4]byte{1, 2, 3, 4}) != nil {
		t.Error("unknown magic did not return nil")
	}
}

// TestDeployments pins the Taproot schedule.
func TestDeployments(t *testing.T) {
	for _, params := range AllParams {
		taproot := params.Deployments[DeploymentTaproot]
		if taproot.BitNumber != 2 {
			t.Errorf("%s taproot bit: got %d, want 2", params.Name, taproot.BitNumber)
		}
		if taproot.StartTime != 1788739200 {
			t.Errorf("%s taproot start: got %d", params.Name, taproot.StartTime)
		}
		if taproot.MinActivationHeight != 2115366 {
			t.Errorf("%s taproot min activation: got %d", params.Name, taproot.MinActivationHeight)
		}
		if taproot.Period != 2016 {
			t.Errorf("%s taproot period: got %d", params.Name, taproot.Period)
		}
	}
	if MainNetParams.Deployments[DeploymentTaproot].Threshold != 1815 {
		t.Error("mainnet taproot threshold must be 1815")
	}
	if TestNetParams.Deployments[DeploymentTaproot].Threshold != 1512 {
		t.Error("testnet taproot threshold must be 1512")
	}
}

// TestAddressPrefixes pins the base58 and bech32 prefixes.
func TestAddressPrefixes(t *testing.T) {
	if MainNetParams.PubKeyHashAddrID != 50 || MainNetParams.ScriptHashAddrID != 122 ||
		MainNetParams.PrivateKeyID != 112 || MainNetParams.Bech32HRPSegwit != "mewc" {
		t.Error("mainnet address prefixes diverge")
	}
	for _, params := range AllParams[1:] {
		if params.PubKeyHashAddrID != 109 || params.ScriptHashAddrID != 124 ||
			params.PrivateKeyID != 114 || params.Bech32HRPSegwit != "tmewc" {
			t.Errorf("%s address prefixes diverge", params.Name)
		}
	}
}
