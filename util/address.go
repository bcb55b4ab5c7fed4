// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2022-2026 The Meowcoin Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/btcsuite/btcutil/base58"
	"github.com/btcsuite/btcutil/bech32"
	"github.com/pkg/errors"
)

// EncodeAddress returns the base58check encoding of a 20-byte hash160 under
// the given leading version byte. With the mainnet pubkey-hash prefix (50)
// this yields addresses starting with 'M'; with the script-hash prefix (122)
// addresses starting with 'm'.
func EncodeAddress(hash160 []byte, netID byte) (string, error) {
	if len(hash160) != 20 {
		return "", errors.Errorf("hash160 must be 20 bytes, got %d", len(hash160))
	}
	return base58.CheckEncode(hash160, netID), nil
}

// DecodeAddress decodes a base58check address, returning the hash160 payload
// and the leading version byte.
func DecodeAddress(addr string) ([]byte, byte, error) {
	decoded, netID, err := base58.CheckDecode(addr)
	if err != nil {
		return nil, 0, errors.Wrap(err, "decoded address is of unknown format")
	}
	if len(decoded) != 20 {
		return nil, 0, errors.Errorf("decoded address is of unknown size %d", len(decoded))
	}
	return decoded, netID, nil
}

// EncodeSegWitAddress encodes a witness program into a bech32 address for the
// given human-readable part ("mewc" on mainnet, "tmewc" elsewhere).
func EncodeSegWitAddress(hrp string, witnessVersion byte, witnessProgram []byte) (string, error) {
	// Group the address bytes into 5 bit groups, as this is what is used to
	// encode each character in the address string.
	converted, err := bech32.ConvertBits(witnessProgram, 8, 5, true)
	if err != nil {
		return "", errors.Wrap(err, "could not convert witness program bits")
	}

	// Concatenate the witness version and program, and encode the resulting
	// bytes using bech32 encoding.
	combined := make([]byte, len(converted)+1)
	combined[0] = witnessVersion
	copy(combined[1:], converted)
	return bech32.Encode(hrp, combined)
}

// DecodeSegWitAddress decodes a bech32 address, returning the witness version
// and program. The caller is responsible for checking the human-readable part
// against the active chain params.
func DecodeSegWitAddress(addr string) (hrp string, witnessVersion byte, witnessProgram []byte, err error) {
	hrp, data, err := bech32.Decode(addr)
	if err != nil {
		return "", 0, nil, errors.Wrap(err, "could not decode bech32 address")
	}
	if len(data) < 1 {
		return "", 0, nil, errors.New("no witness version")
	}
	regrouped, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return "", 0, nil, errors.Wrap(err, "could not regroup witness program bits")
	}
	return hrp, data[0], regrouped, nil
}
