// Copyright (c) 2022-2026 The Meowcoin Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package powhash

import (
	"testing"

	"github.com/meowcoin-foundation/mewcd/chaincfg/chainhash"
)

// TestEpochNumber pins the 7500-block epoch boundaries.
func TestEpochNumber(t *testing.T) {
	tests := []struct {
		height uint64
		epoch  uint64
	}{
		{0, 0},
		{7499, 0},
		{7500, 1},
		{14999, 1},
		{15000, 2},
		{750000, 100},
	}
	for _, test := range tests {
		if got := EpochNumber(test.height); got != test.epoch {
			t.Errorf("EpochNumber(%d): got %d, want %d", test.height, got, test.epoch)
		}
	}
}

// TestPaddingWords pins the coin-specific keccak absorption constants.
func TestPaddingWords(t *testing.T) {
	if kawpowPadding[0] != 'R' || kawpowPadding[14] != 'W' {
		t.Errorf("kawpow padding diverges: %v", kawpowPadding)
	}
	if meowpowPadding[0] != 'M' || meowpowPadding[14] != 'W' {
		t.Errorf("meowpow padding diverges: %v", meowpowPadding)
	}
	if kawpowPadding == meowpowPadding {
		t.Error("kawpow and meowpow paddings must differ")
	}
}

// TestHashNoVerifyDeterminism ensures the light finalization is a pure
// function of its inputs and distinguishes the two families.
func TestHashNoVerifyDeterminism(t *testing.T) {
	var headerHash, mixHash chainhash.Hash
	for i := range headerHash {
		headerHash[i] = byte(i)
		mixHash[i] = byte(255 - i)
	}

	kp1 := KawpowNoVerify(headerHash, mixHash, 12345)
	kp2 := KawpowNoVerify(headerHash, mixHash, 12345)
	if !kp1.IsEqual(&kp2) {
		t.Error("KawpowNoVerify is not deterministic")
	}

	kpOtherNonce := KawpowNoVerify(headerHash, mixHash, 12346)
	if kp1.IsEqual(&kpOtherNonce) {
		t.Error("KawpowNoVerify ignores the nonce")
	}

	kpOtherMix := KawpowNoVerify(headerHash, chainhash.Hash{}, 12345)
	if kp1.IsEqual(&kpOtherMix) {
		t.Error("KawpowNoVerify ignores the mix digest")
	}

	mp := MeowpowNoVerify(headerHash, mixHash, 12345)
	if kp1.IsEqual(&mp) {
		t.Error("kawpow and meowpow finalization must differ")
	}
}

// TestKeccakF800Permutes ensures the permutation moves every state word for
// a non-degenerate input.
func TestKeccakF800Permutes(t *testing.T) {
	var state [25]uint32
	for i := range state {
		state[i] = uint32(i + 1)
	}
	before := state

	keccakF800(&state)
	if state == before {
		t.Fatal("keccakF800 left the state unchanged")
	}

	// Determinism.
	state2 := before
	keccakF800(&state2)
	if state != state2 {
		t.Error("keccakF800 is not deterministic")
	}
}
