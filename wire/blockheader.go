// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2022-2026 The Meowcoin Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"

	"github.com/meowcoin-foundation/mewcd/chaincfg/chainhash"
	"github.com/meowcoin-foundation/mewcd/crypto/x16r"
	"github.com/meowcoin-foundation/mewcd/powhash"
)

// MaxBlockHeaderPayload is the maximum number of bytes a block header can be,
// not counting a trailing AuxPoW attestation: the fixed preamble plus the
// KAWPOW-form tail (Height 4 bytes + Nonce64 8 bytes + MixHash).
const MaxBlockHeaderPayload = 76 + 12 + chainhash.HashSize

// ActivationTimes carries the two epoch boundaries that gate the header wire
// format and hash algorithm. The reference implementation reads these from
// process-wide globals inside serialization; here they are threaded
// explicitly so multiple chains can coexist in one process.
type ActivationTimes struct {
	// Kawpow is the Unix time at which headers switch from the legacy
	// X16RV2 form to the KAWPOW form (nKAWPOWActivationTime).
	Kawpow uint32

	// Meowpow is the Unix time at which KAWPOW-form headers switch from the
	// progpow mix to the meowpow mix (nMEOWPOWActivationTime).
	Meowpow uint32
}

// UsesKawpowForm reports whether a header with the given timestamp and
// version serializes with the KAWPOW tail (height, 64-bit nonce, mix hash).
// Merge-mined headers always keep the legacy layout regardless of time.
func (t ActivationTimes) UsesKawpowForm(timestamp uint32, version BlockVersion) bool {
	return timestamp >= t.Kawpow && !version.IsAuxpow()
}

// BlockHeader defines information about a block and is used in the meowcoin
// block (MsgBlock) and headers messages. The wire layout of the tail after
// Bits depends on the header timestamp and version; see Serialize.
type BlockHeader struct {
	// Version of the block. Carries the auxpow flag and merge-mining chain
	// id in addition to the base version.
	Version BlockVersion

	// Hash of the previous block header in the block chain.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Time the block was created, in Unix seconds.
	Timestamp uint32

	// Difficulty target for the block. A header with Bits == 0 is the null
	// header.
	Bits uint32

	// Nonce is the legacy 32-bit nonce. Present on the wire only for
	// pre-KAWPOW and merge-mined headers.
	Nonce uint32

	// Height is the block height, serialized for KAWPOW-form headers so
	// verifiers can derive the DAG epoch.
	Height uint32

	// Nonce64 is the extended mining nonce of KAWPOW-form headers.
	Nonce64 uint64

	// MixHash is the ethash-family mix digest of KAWPOW-form headers.
	MixHash chainhash.Hash

	// AuxPow is the merge-mining attestation. Non-nil exactly when
	// Version.IsAuxpow().
	AuxPow *AuxPow
}

// IsNull returns whether the header is the null (uninitialised) header.
func (h *BlockHeader) IsNull() bool {
	return h.Bits == 0
}

// BlockTime returns the header timestamp as Unix seconds.
func (h *BlockHeader) BlockTime() int64 {
	return int64(h.Timestamp)
}

// PureHeader returns the Bitcoin-shaped projection of the header: the fixed
// preamble plus the legacy nonce. It is the hashing input for merge-mined and
// pre-KAWPOW identities.
func (h *BlockHeader) PureHeader() PureBlockHeader {
	return PureBlockHeader{
		Version:    h.Version,
		PrevBlock:  h.PrevBlock,
		MerkleRoot: h.MerkleRoot,
		Timestamp:  h.Timestamp,
		Bits:       h.Bits,
		Nonce:      h.Nonce,
	}
}

// SetAuxPow sets or clears the merge-mining attestation, updating the
// version flag accordingly.
func (h *BlockHeader) SetAuxPow(aux *AuxPow) {
	h.AuxPow = aux
	h.Version = h.Version.SetAuxpow(aux != nil)
}

// BlockHash computes the canonical block identifier for the given activation
// times:
//
//  1. Merge-mined headers hash as their pure-header double sha256,
//     regardless of timestamp.
//  2. Pre-KAWPOW headers hash with X16RV2 (X16RV2 activated before the
//     chain's genesis, so no canonical block ever hashes with plain X16R).
//  3. KAWPOW and MEOWPOW era headers use the ethash-family mix hash as their
//     identity; the mix is stable under light verification.
func (h *BlockHeader) BlockHash(times ActivationTimes) (chainhash.Hash, error) {
	if h.Version.IsAuxpow() {
		pure := h.PureHeader()
		return pure.BlockHash(), nil
	}

	if h.Timestamp < times.Kawpow {
		pure := h.PureHeader()
		return x16r.HashX16RV2(pure.Bytes(), &h.PrevBlock), nil
	}

	if h.Timestamp < times.Meowpow {
		mix, _, err := powhash.Kawpow(h.KawpowHeaderHash(), uint64(h.Height), h.Nonce64)
		return mix, err
	}

	mix, _, err := powhash.Meowpow(h.MeowpowHeaderHash(), uint64(h.Height), h.Nonce64)
	return mix, err
}

// PowHashFull computes the full proof-of-work hash of the header along with
// the mix digest. Pre-KAWPOW headers hash with X16R and a zero mix, matching
// the reference GetHashFull.
func (h *BlockHeader) PowHashFull(times ActivationTimes) (powHash, mixHash chainhash.Hash, err error) {
	if h.Timestamp < times.Kawpow {
		pure := h.PureHeader()
		return x16r.HashX16R(pure.Bytes(), &h.PrevBlock), chainhash.Hash{}, nil
	}

	if h.Timestamp < times.Meowpow {
		mix, final, err := powhash.Kawpow(h.KawpowHeaderHash(), uint64(h.Height), h.Nonce64)
		return final, mix, err
	}

	mix, final, err := powhash.Meowpow(h.MeowpowHeaderHash(), uint64(h.Height), h.Nonce64)
	return final, mix, err
}

// KawpowHeaderHash computes the seed of the KAWPOW computation: the double
// sha256 of the header with the mining fields (Nonce64, MixHash) and legacy
// nonce omitted.
func (h *BlockHeader) KawpowHeaderHash() chainhash.Hash {
	return h.powInputHash()
}

// MeowpowHeaderHash computes the seed of the MEOWPOW computation. The input
// layout is identical to KAWPOW's.
func (h *BlockHeader) MeowpowHeaderHash() chainhash.Hash {
	return h.powInputHash()
}

// powInputHash hashes exactly {version, prev, merkle, time, bits, height}.
func (h *BlockHeader) powInputHash() chainhash.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, 80))
	_ = writeElements(buf, h.Version, &h.PrevBlock, &h.MerkleRoot,
		h.Timestamp, h.Bits, h.Height)
	return chainhash.DoubleHashH(buf.Bytes())
}

// Serialize encodes a block header to w. The preamble is fixed; the tail is
// format-dependent:
//
//	KAWPOW form (Timestamp >= T_K and not auxpow):
//	    Height u32 | Nonce64 u64 | MixHash 32 bytes
//	legacy/AuxPoW form:
//	    Nonce u32 [ | AuxPow when the version carries the auxpow flag ]
func (h *BlockHeader) Serialize(w io.Writer, times ActivationTimes) error {
	err := writeElements(w, h.Version, &h.PrevBlock, &h.MerkleRoot,
		h.Timestamp, h.Bits)
	if err != nil {
		return err
	}

	if times.UsesKawpowForm(h.Timestamp, h.Version) {
		return writeElements(w, h.Height, h.Nonce64, &h.MixHash)
	}

	err = writeElement(w, h.Nonce)
	if err != nil {
		return err
	}
	if h.Version.IsAuxpow() {
		if h.AuxPow == nil {
			return messageError("BlockHeader.Serialize",
				"version carries the auxpow flag but no auxpow is set")
		}
		return h.AuxPow.Serialize(w)
	}
	return nil
}

// Deserialize decodes a block header from r into the receiver. Fields that
// are absent from the active wire form are reset to their zero values.
func (h *BlockHeader) Deserialize(r io.Reader, times ActivationTimes) error {
	err := readElements(r, &h.Version, &h.PrevBlock, &h.MerkleRoot,
		&h.Timestamp, &h.Bits)
	if err != nil {
		return err
	}

	if times.UsesKawpowForm(h.Timestamp, h.Version) {
		h.Nonce = 0
		h.AuxPow = nil
		return readElements(r, &h.Height, &h.Nonce64, &h.MixHash)
	}

	h.Height = 0
	h.Nonce64 = 0
	h.MixHash = chainhash.Hash{}
	err = readElement(r, &h.Nonce)
	if err != nil {
		return err
	}
	if h.Version.IsAuxpow() {
		h.AuxPow = new(AuxPow)
		return h.AuxPow.Deserialize(r)
	}
	h.AuxPow = nil
	return nil
}

// SerializeSize returns the number of bytes it would take to serialize the
// block header under the given activation times.
func (h *BlockHeader) SerializeSize(times ActivationTimes) int {
	if times.UsesKawpowForm(h.Timestamp, h.Version) {
		return MaxBlockHeaderPayload
	}
	size := PureBlockHeaderLen
	if h.Version.IsAuxpow() && h.AuxPow != nil {
		size += h.AuxPow.SerializeSize()
	}
	return size
}

// BlockHeaderFromBytes decodes a block header from the given byte slice,
// rejecting truncated input and trailing bytes.
func BlockHeaderFromBytes(b []byte, times ActivationTimes) (*BlockHeader, error) {
	r := bytes.NewReader(b)
	header := new(BlockHeader)
	if err := header.Deserialize(r, times); err != nil {
		if msgErr, ok := err.(*MessageError); ok {
			return nil, msgErr
		}
		return nil, messageError("BlockHeaderFromBytes", err.Error())
	}
	if r.Len() != 0 {
		return nil, messageError("BlockHeaderFromBytes",
			"trailing bytes after block header")
	}
	return header, nil
}

// NewBlockHeader returns a new BlockHeader using the provided version,
// previous block hash, merkle root hash, difficulty bits, and nonce with the
// remaining fields zeroed.
func NewBlockHeader(version BlockVersion, prevHash, merkleRootHash *chainhash.Hash,
	timestamp uint32, bits uint32, nonce uint32) *BlockHeader {

	return &BlockHeader{
		Version:    version,
		PrevBlock:  *prevHash,
		MerkleRoot: *merkleRootHash,
		Timestamp:  timestamp,
		Bits:       bits,
		Nonce:      nonce,
	}
}
