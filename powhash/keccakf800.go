// Copyright (c) 2022-2026 The Meowcoin Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package powhash

import (
	"encoding/binary"

	"github.com/meowcoin-foundation/mewcd/chaincfg/chainhash"
)

// kawpowPadding and meowpowPadding are the coin-specific words that fill the
// tail of the keccak-f800 absorption state, per the respective progpow
// customizations.
var kawpowPadding = asciiWords("RAVENCOINKAWPOW")

var meowpowPadding = asciiWords("MEOWCOINMEOWPOW")

func asciiWords(s string) [15]uint32 {
	var words [15]uint32
	for i := 0; i < len(s) && i < 15; i++ {
		words[i] = uint32(s[i])
	}
	return words
}

// hashNoVerify runs the two keccak-f800 passes of the progpow finalization:
// the first derives the 64-bit seed from the header hash and nonce, the
// second folds the claimed mix digest into the final hash. No DAG access is
// required, which is what makes the mix hash usable as a light-client block
// identity.
func hashNoVerify(headerHash, mixHash chainhash.Hash, nonce uint64, padding [15]uint32) chainhash.Hash {
	var state [25]uint32

	// Seed pass: header hash, nonce, then the coin padding.
	for i := 0; i < 8; i++ {
		state[i] = binary.LittleEndian.Uint32(headerHash[i*4:])
	}
	state[8] = uint32(nonce)
	state[9] = uint32(nonce >> 32)
	for i := 0; i < 15; i++ {
		state[10+i] = padding[i]
	}
	keccakF800(&state)
	seed := uint64(state[0]) | uint64(state[1])<<32

	// Final pass: header hash, seed, mix digest, then the leading padding
	// words.
	var final [25]uint32
	for i := 0; i < 8; i++ {
		final[i] = binary.LittleEndian.Uint32(headerHash[i*4:])
	}
	final[8] = uint32(seed)
	final[9] = uint32(seed >> 32)
	for i := 0; i < 8; i++ {
		final[10+i] = binary.LittleEndian.Uint32(mixHash[i*4:])
	}
	for i := 0; i < 7; i++ {
		final[18+i] = padding[i]
	}
	keccakF800(&final)

	var out chainhash.Hash
	for i := 0; i < 8; i++ {
		binary.LittleEndian.PutUint32(out[i*4:], final[i])
	}
	return out
}

// keccakF800RoundConstants are the 22 round constants of Keccak-f[800]: the
// low 32 bits of the Keccak-f[1600] constants.
var keccakF800RoundConstants = [22]uint32{
	0x00000001, 0x00008082, 0x0000808a, 0x80008000,
	0x0000808b, 0x80000001, 0x80008081, 0x00008009,
	0x0000008a, 0x00000088, 0x80008009, 0x8000000a,
	0x8000808b, 0x0000008b, 0x00008089, 0x00008003,
	0x00008002, 0x00000080, 0x0000800a, 0x8000000a,
	0x80008081, 0x00008080,
}

// rhoOffsets are the Keccak rotation offsets reduced modulo the 32-bit lane
// size, indexed [x][y].
var rhoOffsets = [5][5]uint{
	{0, 4, 3, 9, 18},
	{1, 12, 10, 13, 2},
	{30, 6, 11, 15, 29},
	{28, 23, 25, 21, 24},
	{27, 20, 7, 8, 14},
}

func rotl(x uint32, n uint) uint32 {
	if n == 0 {
		return x
	}
	return x<<n | x>>(32-n)
}

// keccakF800 applies the 22-round Keccak-f[800] permutation in place. Lanes
// are indexed state[x+5*y].
func keccakF800(state *[25]uint32) {
	for round := 0; round < 22; round++ {
		// Theta.
		var c [5]uint32
		for x := 0; x < 5; x++ {
			c[x] = state[x] ^ state[x+5] ^ state[x+10] ^ state[x+15] ^ state[x+20]
		}
		for x := 0; x < 5; x++ {
			t := c[(x+4)%5] ^ rotl(c[(x+1)%5], 1)
			for y := 0; y < 5; y++ {
				state[x+5*y] ^= t
			}
		}

		// Rho and Pi.
		var b [25]uint32
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				b[y+5*((2*x+3*y)%5)] = rotl(state[x+5*y], rhoOffsets[x][y])
			}
		}

		// Chi.
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				state[x+5*y] = b[x+5*y] ^ (^b[(x+1)%5+5*y] & b[(x+2)%5+5*y])
			}
		}

		// Iota.
		state[0] ^= keccakF800RoundConstants[round]
	}
}
