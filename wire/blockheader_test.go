// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2022-2026 The Meowcoin Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/binary"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/meowcoin-foundation/mewcd/chaincfg/chainhash"
)

// testActivationTimes are the mainnet epoch boundaries.
var testActivationTimes = ActivationTimes{
	Kawpow:  1662493424,
	Meowpow: 1710799200,
}

func testHash(fill byte) chainhash.Hash {
	var hash chainhash.Hash
	for i := range hash {
		hash[i] = fill
	}
	return hash
}

// TestBlockHeaderLegacyWire verifies the pre-KAWPOW wire form: the fixed
// preamble followed by the 32-bit nonce and nothing else.
func TestBlockHeaderLegacyWire(t *testing.T) {
	header := BlockHeader{
		Version:    GenesisVersion(4),
		PrevBlock:  testHash(0x11),
		MerkleRoot: testHash(0x22),
		Timestamp:  testActivationTimes.Kawpow - 1,
		Bits:       0x1e00ffff,
		Nonce:      0xdeadbeef,
	}

	var buf bytes.Buffer
	if err := header.Serialize(&buf, testActivationTimes); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if buf.Len() != PureBlockHeaderLen {
		t.Fatalf("legacy header length: got %d, want %d", buf.Len(), PureBlockHeaderLen)
	}

	// The nonce occupies the last four bytes.
	if got := binary.LittleEndian.Uint32(buf.Bytes()[76:]); got != header.Nonce {
		t.Errorf("legacy nonce on wire: got %08x, want %08x", got, header.Nonce)
	}

	var decoded BlockHeader
	if err := decoded.Deserialize(bytes.NewReader(buf.Bytes()), testActivationTimes); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if !reflect.DeepEqual(decoded, header) {
		t.Errorf("legacy round trip mismatch:\ngot:  %s\nwant: %s",
			spew.Sdump(decoded), spew.Sdump(header))
	}
}

// TestBlockHeaderKawpowWire verifies the KAWPOW wire form: no legacy nonce,
// with height, extended nonce and mix hash following the preamble.
func TestBlockHeaderKawpowWire(t *testing.T) {
	header := BlockHeader{
		Version:    GenesisVersion(4),
		PrevBlock:  testHash(0x11),
		MerkleRoot: testHash(0x22),
		Timestamp:  testActivationTimes.Kawpow,
		Bits:       0x1b00ffff,
		Nonce:      0xdeadbeef, // memory-only; must not hit the wire
		Height:     123456,
		Nonce64:    0x0123456789abcdef,
		MixHash:    testHash(0x33),
	}

	var buf bytes.Buffer
	if err := header.Serialize(&buf, testActivationTimes); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if buf.Len() != MaxBlockHeaderPayload {
		t.Fatalf("kawpow header length: got %d, want %d", buf.Len(), MaxBlockHeaderPayload)
	}

	raw := buf.Bytes()
	if got := binary.LittleEndian.Uint32(raw[76:]); got != header.Height {
		t.Errorf("height on wire: got %d, want %d", got, header.Height)
	}
	if got := binary.LittleEndian.Uint64(raw[80:]); got != header.Nonce64 {
		t.Errorf("nonce64 on wire: got %016x, want %016x", got, header.Nonce64)
	}
	if !bytes.Equal(raw[88:120], header.MixHash[:]) {
		t.Errorf("mix hash on wire: got %x, want %x", raw[88:120], header.MixHash)
	}

	var decoded BlockHeader
	if err := decoded.Deserialize(bytes.NewReader(raw), testActivationTimes); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}

	// The legacy nonce is absent from the wire form, so it decodes as
	// zero.
	want := header
	want.Nonce = 0
	if !reflect.DeepEqual(decoded, want) {
		t.Errorf("kawpow round trip mismatch:\ngot:  %s\nwant: %s",
			spew.Sdump(decoded), spew.Sdump(want))
	}
}

// TestBlockHeaderAuxPowWire verifies that a merge-mined header keeps the
// legacy layout regardless of its timestamp and appends the attestation.
func TestBlockHeaderAuxPowWire(t *testing.T) {
	aux := &AuxPow{
		CoinbaseTx: MsgTx{
			Version: 1,
			TxIn: []*TxIn{{
				PreviousOutPoint: OutPoint{Index: MaxPrevOutIndex},
				SignatureScript:  []byte{0x01, 0x02, 0x03},
				Sequence:         MaxTxInSequenceNum,
			}},
			TxOut: []*TxOut{{Value: 50, PkScript: []byte{0x51}}},
		},
		ParentHash:     testHash(0x44),
		CoinbaseBranch: []chainhash.Hash{testHash(0x55)},
		CoinbaseIndex:  0,
		ChainBranch:    []chainhash.Hash{testHash(0x66)},
		ChainIndex:     1,
		ParentBlock: PureBlockHeader{
			Version:    7 * versionChainStart,
			PrevBlock:  testHash(0x77),
			MerkleRoot: testHash(0x88),
			Timestamp:  1700000000,
			Bits:       0x1d00ffff,
			Nonce:      42,
		},
	}

	header := BlockHeader{
		Version:    GenesisVersion(4).SetAuxpow(true),
		PrevBlock:  testHash(0x11),
		MerkleRoot: testHash(0x22),
		// Past the KAWPOW boundary: auxpow still wins the layout choice.
		Timestamp: testActivationTimes.Kawpow + 1000,
		Bits:      0x1d00ffff,
		Nonce:     7,
		AuxPow:    aux,
	}

	var buf bytes.Buffer
	if err := header.Serialize(&buf, testActivationTimes); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	// Legacy nonce right after the preamble, auxpow following.
	raw := buf.Bytes()
	if got := binary.LittleEndian.Uint32(raw[76:80]); got != header.Nonce {
		t.Errorf("auxpow header nonce on wire: got %d, want %d", got, header.Nonce)
	}
	if buf.Len() != PureBlockHeaderLen+aux.SerializeSize() {
		t.Errorf("auxpow header length: got %d, want %d",
			buf.Len(), PureBlockHeaderLen+aux.SerializeSize())
	}

	var decoded BlockHeader
	if err := decoded.Deserialize(bytes.NewReader(raw), testActivationTimes); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if !reflect.DeepEqual(decoded, header) {
		t.Errorf("auxpow round trip mismatch:\ngot:  %s\nwant: %s",
			spew.Sdump(decoded), spew.Sdump(header))
	}

	// Serialized form is stable across a decode/encode cycle.
	var buf2 bytes.Buffer
	if err := decoded.Serialize(&buf2, testActivationTimes); err != nil {
		t.Fatalf("re-Serialize: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), buf2.Bytes()) {
		t.Errorf("re-serialized header differs from original")
	}
}

// TestBlockHeaderSerializeMissingAuxPow ensures serialization refuses a
// header whose version claims auxpow without an attestation.
func TestBlockHeaderSerializeMissingAuxPow(t *testing.T) {
	header := BlockHeader{
		Version:   GenesisVersion(4).SetAuxpow(true),
		Timestamp: 1700000000,
		Bits:      0x1d00ffff,
	}
	var buf bytes.Buffer
	err := header.Serialize(&buf, testActivationTimes)
	if _, ok := err.(*MessageError); !ok {
		t.Errorf("Serialize without auxpow: got %v, want *MessageError", err)
	}
}

// TestBlockHeaderFromBytesTrailing ensures trailing bytes are rejected.
func TestBlockHeaderFromBytesTrailing(t *testing.T) {
	header := BlockHeader{
		Version:   GenesisVersion(4),
		Timestamp: 1000,
		Bits:      0x1e00ffff,
		Nonce:     1,
	}
	var buf bytes.Buffer
	if err := header.Serialize(&buf, testActivationTimes); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	if _, err := BlockHeaderFromBytes(buf.Bytes(), testActivationTimes); err != nil {
		t.Fatalf("BlockHeaderFromBytes: %v", err)
	}

	trailing := append(buf.Bytes(), 0x00)
	if _, err := BlockHeaderFromBytes(trailing, testActivationTimes); err == nil {
		t.Error("BlockHeaderFromBytes accepted trailing bytes")
	}

	truncated := buf.Bytes()[:buf.Len()-1]
	if _, err := BlockHeaderFromBytes(truncated, testActivationTimes); err == nil {
		t.Error("BlockHeaderFromBytes accepted truncated input")
	}
}

// TestBlockHeaderIsNull verifies the null-header invariant: Bits == 0.
func TestBlockHeaderIsNull(t *testing.T) {
	var header BlockHeader
	if !header.IsNull() {
		t.Error("zero-valued header must be null")
	}
	header.Bits = 0x1e00ffff
	if header.IsNull() {
		t.Error("header with bits set must not be null")
	}
}

// TestKawpowInputHash ensures the ethash seed covers exactly the six header
// fields, so nonce and mix changes leave it untouched.
func TestKawpowInputHash(t *testing.T) {
	header := BlockHeader{
		Version:    GenesisVersion(4),
		PrevBlock:  testHash(0x11),
		MerkleRoot: testHash(0x22),
		Timestamp:  1700000000,
		Bits:       0x1b00ffff,
		Height:     7500,
	}
	base := header.KawpowHeaderHash()

	mutated := header
	mutated.Nonce64 = 99
	mutated.MixHash = testHash(0x33)
	mutated.Nonce = 12345
	if got := mutated.KawpowHeaderHash(); !got.IsEqual(&base) {
		t.Error("kawpow input hash must not depend on nonces or mix hash")
	}

	mutated = header
	mutated.Height++
	if got := mutated.KawpowHeaderHash(); got.IsEqual(&base) {
		t.Error("kawpow input hash must depend on the height")
	}

	if got := header.MeowpowHeaderHash(); !got.IsEqual(&base) {
		t.Error("meowpow input layout must match kawpow's")
	}
}
