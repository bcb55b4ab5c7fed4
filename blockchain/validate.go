// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2022-2026 The Meowcoin Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"
	"math/big"
	"os"

	"golang.org/x/crypto/scrypt"

	"github.com/meowcoin-foundation/mewcd/chaincfg"
	"github.com/meowcoin-foundation/mewcd/chaincfg/chainhash"
	"github.com/meowcoin-foundation/mewcd/powhash"
	"github.com/meowcoin-foundation/mewcd/util"
	"github.com/meowcoin-foundation/mewcd/wire"
)

// FuzzDeterminismEnv is the environment variable that, when set to a
// non-empty value, replaces the proof-of-work check with a deterministic
// predicate over the hash so fuzzing can explore the acceptance paths.
const FuzzDeterminismEnv = "MEWCD_FUZZ_DETERMINISM"

// fuzzDeterminism reports whether deterministic fuzzing mode is active.
func fuzzDeterminism() bool {
	return os.Getenv(FuzzDeterminismEnv) != ""
}

// DeriveTarget decodes the compact difficulty bits into a target, rejecting
// encodings that are negative, zero, overflowed, or above the provided
// proof-of-work limit.
func DeriveTarget(bits uint32, powLimit *big.Int) (*big.Int, error) {
	target, negative, overflow := util.DecodeCompact(bits)
	if negative || overflow || target.Sign() == 0 || target.Cmp(powLimit) > 0 {
		return nil, ruleError(ErrBitsOutOfRange, fmt.Sprintf(
			"difficulty bits %08x decode to an out-of-range target", bits))
	}
	return target, nil
}

// CheckProofOfWorkHash verifies the given hash satisfies the claimed
// difficulty bits under the proof-of-work limit of the given algorithm.
func CheckProofOfWorkHash(hash *chainhash.Hash, bits uint32, algo wire.PowAlgo,
	params *chaincfg.Params) error {

	target, err := DeriveTarget(bits, params.PowLimit[algo])
	if err != nil {
		return err
	}

	if util.HashToBig(hash).Cmp(target) > 0 {
		return ruleError(ErrHighHash, fmt.Sprintf(
			"block hash of %s is higher than expected max of %064x",
			hash, target))
	}

	return nil
}

// checkKawPowProofOfWork is the reduced KAWPOW/MEOWPOW-era check: it
// validates that the claimed bits are within range but does not recompute
// the ethash-family hash. Full verification requires building epoch DAGs,
// which is prohibitively slow for bulk operations such as reindexing;
// network consensus and cumulative chain work provide the primary security
// guarantees. Callers that can afford a DAG use CheckProofOfWorkFull.
func checkKawPowProofOfWork(header *wire.BlockHeader, params *chaincfg.Params) error {
	_, err := DeriveTarget(header.Bits, params.PowLimit[wire.PowAlgoMeowpow])
	return err
}

// CheckProofOfWork validates the proof of work of the given header under the
// given chain parameters:
//
//   - merge-mined headers must carry a valid AuxPoW attestation whose parent
//     satisfies this header's bits under scrypt,
//   - KAWPOW and MEOWPOW era headers get the reduced bits-range check,
//   - pre-KAWPOW headers must hash (X16RV2) at or below their target.
func CheckProofOfWork(header *wire.BlockHeader, params *chaincfg.Params) error {
	times := params.ActivationTimes()

	if fuzzDeterminism() {
		hash, err := header.BlockHash(times)
		if err != nil {
			return err
		}
		if hash[31]&0x80 != 0 {
			return ruleError(ErrHighHash, "fuzz-deterministic pow check failed")
		}
		return nil
	}

	if header.Version.IsAuxpow() {
		if header.AuxPow == nil {
			return ruleError(ErrAuxPowMissing,
				"block version carries the auxpow flag but no auxpow is present")
		}
		blockHash, err := header.BlockHash(times)
		if err != nil {
			return err
		}
		err = CheckAuxPow(header.AuxPow, blockHash, params)
		if err != nil {
			return err
		}
		target, err := DeriveTarget(header.Bits, params.PowLimit[wire.PowAlgoScrypt])
		if err != nil {
			return err
		}
		parentPowHash := ScryptHash(header.AuxPow.ParentBlock.Bytes())
		if util.HashToBig(&parentPowHash).Cmp(target) > 0 {
			return ruleError(ErrAuxPowInvalid, fmt.Sprintf(
				"auxpow parent scrypt hash %s is higher than expected max of %064x",
				parentPowHash, target))
		}
		return nil
	}

	if header.Timestamp >= params.KawpowActivationTime {
		// Both the KAWPOW and MEOWPOW eras share the reduced check; the
		// eras differ only in which mix the full path would recompute.
		return checkKawPowProofOfWork(header, params)
	}

	hash, err := header.BlockHash(times)
	if err != nil {
		return err
	}
	return CheckProofOfWorkHash(&hash, header.Bits, wire.PowAlgoMeowpow, params)
}

// CheckProofOfWorkFull validates the proof of work of the given header,
// recomputing the full ethash-family hash for KAWPOW and MEOWPOW era
// headers, which requires building the epoch DAG.
func CheckProofOfWorkFull(header *wire.BlockHeader, params *chaincfg.Params) error {
	times := params.ActivationTimes()

	if header.Version.IsAuxpow() || header.Timestamp < params.KawpowActivationTime {
		return CheckProofOfWork(header, params)
	}

	target, err := DeriveTarget(header.Bits, params.PowLimit[wire.PowAlgoMeowpow])
	if err != nil {
		return err
	}

	var ok bool
	if header.Timestamp >= params.MeowpowActivationTime {
		ok, err = powhash.MeowpowVerify(header.MeowpowHeaderHash(), header.MixHash,
			uint64(header.Height), header.Nonce64, target)
	} else {
		ok, err = powhash.KawpowVerify(header.KawpowHeaderHash(), header.MixHash,
			uint64(header.Height), header.Nonce64, target)
	}
	if err != nil {
		return err
	}
	if !ok {
		return ruleError(ErrHighHash,
			"block pow hash is higher than the target or the mix digest is wrong")
	}
	return nil
}

// ScryptHash computes the scrypt proof-of-work hash used by the merge-mining
// parent chain (N=1024, r=1, p=1, with the input as its own salt).
func ScryptHash(data []byte) chainhash.Hash {
	// The only failure modes of scrypt.Key are invalid cost parameters,
	// which are constant here.
	digest, err := scrypt.Key(data, data, 1024, 1, 1, 32)
	if err != nil {
		panic(err)
	}
	var hash chainhash.Hash
	copy(hash[:], digest)
	return hash
}
