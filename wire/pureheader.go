// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2022-2026 The Meowcoin Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"

	"github.com/meowcoin-foundation/mewcd/chaincfg/chainhash"
)

// PureBlockHeaderLen is the serialized length of a pure block header:
// Version 4 bytes + PrevBlock 32 bytes + MerkleRoot 32 bytes + Timestamp
// 4 bytes + Bits 4 bytes + Nonce 4 bytes.
const PureBlockHeaderLen = 80

// PureBlockHeader is the classic Bitcoin-shaped header: the fixed preamble
// followed by the legacy 32-bit nonce. It is the projection of a BlockHeader
// used for AuxPoW parent hashing and for the identity of merge-mined and
// pre-KAWPOW blocks. Its wire form never depends on activation times.
type PureBlockHeader struct {
	// Version of the block. This is not the same as the protocol version.
	Version BlockVersion

	// Hash of the previous block header in the block chain.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Time the block was created, in Unix seconds.
	Timestamp uint32

	// Difficulty target for the block.
	Bits uint32

	// Nonce used to generate the block.
	Nonce uint32
}

// BlockHash computes the Bitcoin-style block identifier hash: the double
// sha256 of the 80-byte serialized header.
func (h *PureBlockHeader) BlockHash() chainhash.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, PureBlockHeaderLen))
	// Ignore the error returns since the only way the encode can fail is by
	// running out of memory, which causes a run-time panic.
	_ = writePureBlockHeader(buf, h)

	return chainhash.DoubleHashH(buf.Bytes())
}

// Bytes returns the 80-byte serialized form of the pure header. It is the
// raw input of the X16R-family hash functions.
func (h *PureBlockHeader) Bytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, PureBlockHeaderLen))
	_ = writePureBlockHeader(buf, h)
	return buf.Bytes()
}

// Serialize encodes the pure block header to w.
func (h *PureBlockHeader) Serialize(w io.Writer) error {
	return writePureBlockHeader(w, h)
}

// Deserialize decodes a pure block header from r into the receiver.
func (h *PureBlockHeader) Deserialize(r io.Reader) error {
	return readPureBlockHeader(r, h)
}

// readPureBlockHeader reads a pure block header from r.
func readPureBlockHeader(r io.Reader, h *PureBlockHeader) error {
	return readElements(r, &h.Version, &h.PrevBlock, &h.MerkleRoot,
		&h.Timestamp, &h.Bits, &h.Nonce)
}

// writePureBlockHeader writes a pure block header to w.
func writePureBlockHeader(w io.Writer, h *PureBlockHeader) error {
	return writeElements(w, h.Version, &h.PrevBlock, &h.MerkleRoot,
		h.Timestamp, h.Bits, h.Nonce)
}
