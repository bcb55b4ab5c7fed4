// Copyright (c) 2022-2026 The Meowcoin Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package x16r implements the X16R and X16RV2 hash functions used as the
// proof of work of pre-KAWPOW blocks. Both chain sixteen 512-bit hash
// functions in an order derived from the previous block hash, then truncate
// the final digest to 256 bits.
package x16r

import (
	"crypto/sha512"

	"github.com/cxmcc/tiger"
	"github.com/jzelinskie/whirlpool"
	"gitlab.com/nitya-sattva/go-x11/blake"
	"gitlab.com/nitya-sattva/go-x11/bmw"
	"gitlab.com/nitya-sattva/go-x11/cubed"
	"gitlab.com/nitya-sattva/go-x11/echo"
	"gitlab.com/nitya-sattva/go-x11/groest"
	"gitlab.com/nitya-sattva/go-x11/jhash"
	"gitlab.com/nitya-sattva/go-x11/keccak"
	"gitlab.com/nitya-sattva/go-x11/luffa"
	"gitlab.com/nitya-sattva/go-x11/shavite"
	"gitlab.com/nitya-sattva/go-x11/simd"
	"gitlab.com/nitya-sattva/go-x11/skein"

	"github.com/meowcoin-foundation/mewcd/chaincfg/chainhash"
	"github.com/meowcoin-foundation/mewcd/crypto/fugue"
	"github.com/meowcoin-foundation/mewcd/crypto/hamsi"
	"github.com/meowcoin-foundation/mewcd/crypto/shabal"
)

// The sixteen member algorithms, in nibble order. The nibble value read from
// the previous block hash selects the algorithm of each round directly.
const (
	algoBlake = iota
	algoBmw
	algoGroestl
	algoJh
	algoKeccak
	algoSkein
	algoLuffa
	algoCubehash
	algoShavite
	algoSimd
	algoEcho
	algoHamsi
	algoFugue
	algoShabal
	algoWhirlpool
	algoSha512
)

// digestSize is the width of every intermediate digest in the chain.
const digestSize = 64

// sphDigest is the shape shared by the go-x11 digests and the in-repo
// fugue/hamsi/shabal implementations.
type sphDigest interface {
	Write(p []byte) (int, error)
	Close(dst []byte, bits uint8, bcnt uint8) error
}

// HashX16R computes the X16R hash of data. The previous block hash supplies
// the per-round algorithm schedule.
func HashX16R(data []byte, prevBlockHash *chainhash.Hash) chainhash.Hash {
	return hashChain(data, prevBlockHash, false)
}

// HashX16RV2 computes the X16RV2 hash of data. It differs from X16R by
// interposing a Tiger hash before the Keccak, Luffa and SHA-512 rounds.
func HashX16RV2(data []byte, prevBlockHash *chainhash.Hash) chainhash.Hash {
	return hashChain(data, prevBlockHash, true)
}

func hashChain(data []byte, prevBlockHash *chainhash.Hash, tigered bool) chainhash.Hash {
	in := data
	out := make([]byte, digestSize)

	for i := 0; i < 16; i++ {
		// Lowest four bits first: round 0 reads the hash's least
		// significant nibble, round 15 the sixteenth-from-last.
		algo := int(prevBlockHash.Nibble(63 - i))

		if tigered {
			switch algo {
			case algoKeccak, algoLuffa, algoSha512:
				in = tigerPad(in)
			}
		}

		switch algo {
		case algoBlake:
			sphRound(blake.New(), in, out)
		case algoBmw:
			sphRound(bmw.New(), in, out)
		case algoGroestl:
			sphRound(groest.New(), in, out)
		case algoJh:
			sphRound(jhash.New(), in, out)
		case algoKeccak:
			sphRound(keccak.New(), in, out)
		case algoSkein:
			sphRound(skein.New(), in, out)
		case algoLuffa:
			sphRound(luffa.New(), in, out)
		case algoCubehash:
			sphRound(cubed.New(), in, out)
		case algoShavite:
			sphRound(shavite.New(), in, out)
		case algoSimd:
			sphRound(simd.New(), in, out)
		case algoEcho:
			sphRound(echo.New(), in, out)
		case algoHamsi:
			sphRound(hamsi.New(), in, out)
		case algoFugue:
			sphRound(fugue.New(), in, out)
		case algoShabal:
			sphRound(shabal.New(), in, out)
		case algoWhirlpool:
			wp := whirlpool.New()
			wp.Write(in)
			copy(out, wp.Sum(nil))
		case algoSha512:
			sum := sha512.Sum512(in)
			copy(out, sum[:])
		}

		in = out
	}

	// The chain is 512 bits wide; the block hash is its low 256 bits.
	var result chainhash.Hash
	copy(result[:], out[:chainhash.HashSize])
	return result
}

// sphRound runs one 512-bit sph-style digest over in, writing 64 bytes to
// dst.
func sphRound(d sphDigest, in, dst []byte) {
	d.Write(in)
	_ = d.Close(dst, 0, 0)
}

// tigerPad hashes in with Tiger and zero-pads the 24-byte digest to the
// 64-byte chain width, matching the reference X16RV2 buffers.
func tigerPad(in []byte) []byte {
	t := tiger.New()
	t.Write(in)
	padded := make([]byte, digestSize)
	copy(padded, t.Sum(nil))
	return padded
}
