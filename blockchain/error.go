// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2022-2026 The Meowcoin Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "fmt"

// ErrorCode identifies a kind of consensus rule violation.
type ErrorCode int

const (
	// ErrBitsOutOfRange indicates the claimed difficulty bits decode to a
	// target that is negative, zero, overflowed, or above the chain's
	// proof-of-work limit.
	ErrBitsOutOfRange ErrorCode = iota

	// ErrHighHash indicates the block hash is above the target derived
	// from the claimed difficulty bits.
	ErrHighHash

	// ErrAuxPowMissing indicates the block version carries the auxpow flag
	// but the merge-mining attestation is absent.
	ErrAuxPowMissing

	// ErrAuxPowInvalid indicates the merge-mining attestation failed
	// validation: a bad commitment, a bad merkle branch, or parent proof
	// of work that does not satisfy the claimed bits.
	ErrAuxPowInvalid

	// ErrNoTransactions indicates the block does not have at least one
	// transaction. A valid block must have at least the coinbase
	// transaction.
	ErrNoTransactions

	// ErrFirstTxNotCoinbase indicates the first transaction in a block is
	// not a coinbase transaction.
	ErrFirstTxNotCoinbase

	// ErrMultipleCoinbases indicates a block contains more than one
	// coinbase transaction.
	ErrMultipleCoinbases

	// ErrBadMerkleRoot indicates the calculated merkle root does not match
	// the expected value.
	ErrBadMerkleRoot
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrBitsOutOfRange:     "ErrBitsOutOfRange",
	ErrHighHash:           "ErrHighHash",
	ErrAuxPowMissing:      "ErrAuxPowMissing",
	ErrAuxPowInvalid:      "ErrAuxPowInvalid",
	ErrNoTransactions:     "ErrNoTransactions",
	ErrFirstTxNotCoinbase: "ErrFirstTxNotCoinbase",
	ErrMultipleCoinbases:  "ErrMultipleCoinbases",
	ErrBadMerkleRoot:      "ErrBadMerkleRoot",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// RuleError identifies a rule violation. It is used to indicate that
// processing of a block or header failed due to one of the many validation
// rules. The caller can use type assertions to determine if a failure was
// specifically due to a rule violation and access the ErrorCode field to
// ascertain the specific reason for the rule violation.
type RuleError struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	return e.Description
}

// ruleError creates a RuleError given a set of arguments.
func ruleError(c ErrorCode, desc string) RuleError {
	return RuleError{ErrorCode: c, Description: desc}
}
