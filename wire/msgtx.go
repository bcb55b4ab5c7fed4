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

const (
	// TxVersion is the current latest supported transaction version.
	TxVersion = 1

	// MaxTxInSequenceNum is the maximum sequence number the sequence field
	// of a transaction input can be.
	MaxTxInSequenceNum uint32 = 0xffffffff

	// MaxPrevOutIndex is the maximum index the index field of a previous
	// outpoint can be.
	MaxPrevOutIndex uint32 = 0xffffffff

	// maxTxPayload is a sanity bound on transaction input and output counts
	// derived from the minimum serialized size of each.
	maxTxPayload = maxAllowedAlloc / 41
)

// OutPoint defines a meowcoin data type that is used to track previous
// transaction outputs.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new meowcoin transaction outpoint point with the
// provided hash and index.
func NewOutPoint(hash *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{
		Hash:  *hash,
		Index: index,
	}
}

// TxIn defines a meowcoin transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// NewTxIn returns a new meowcoin transaction input with the provided previous
// outpoint point and signature script with a default sequence of
// MaxTxInSequenceNum.
func NewTxIn(prevOut *OutPoint, signatureScript []byte) *TxIn {
	return &TxIn{
		PreviousOutPoint: *prevOut,
		SignatureScript:  signatureScript,
		Sequence:         MaxTxInSequenceNum,
	}
}

// TxOut defines a meowcoin transaction output.
type TxOut struct {
	Value    int64
	PkScript []byte
}

// NewTxOut returns a new meowcoin transaction output with the provided
// transaction value and public key script.
func NewTxOut(value int64, pkScript []byte) *TxOut {
	return &TxOut{
		Value:    value,
		PkScript: pkScript,
	}
}

// MsgTx implements the Message interface and represents a meowcoin tx
// message. It is used to deliver transaction information in response to a
// getdata message (MsgGetData) for a given transaction.
//
// Use the AddTxIn and AddTxOut functions to build up the list of transaction
// inputs and outputs.
type MsgTx struct {
	Version  int32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// IsCoinBase determines whether or not the transaction is a coinbase: a
// special transaction with a single input that has a null previous outpoint.
func (msg *MsgTx) IsCoinBase() bool {
	if len(msg.TxIn) != 1 {
		return false
	}
	prevOut := &msg.TxIn[0].PreviousOutPoint
	return prevOut.Index == MaxPrevOutIndex && prevOut.Hash.IsZero()
}

// TxHash generates the Hash for the transaction.
func (msg *MsgTx) TxHash() chainhash.Hash {
	// Encode the transaction and calculate double sha256 on the result.
	// Ignore the error returns since the only way the encode could fail
	// is being out of memory or due to nil pointers, both of which would
	// cause a run-time panic.
	buf := bytes.NewBuffer(make([]byte, 0, msg.SerializeSize()))
	_ = msg.Serialize(buf)
	return chainhash.DoubleHashH(buf.Bytes())
}

// Serialize encodes the transaction to w using the meowcoin protocol
// encoding. Witness data is not part of the consensus core and is never
// serialized here; transaction identity is witness-independent regardless.
func (msg *MsgTx) Serialize(w io.Writer) error {
	err := writeElement(w, msg.Version)
	if err != nil {
		return err
	}

	err = WriteVarInt(w, uint64(len(msg.TxIn)))
	if err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		err = writeTxIn(w, ti)
		if err != nil {
			return err
		}
	}

	err = WriteVarInt(w, uint64(len(msg.TxOut)))
	if err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		err = writeTxOut(w, to)
		if err != nil {
			return err
		}
	}

	return writeElement(w, msg.LockTime)
}

// Deserialize decodes a transaction from r into the receiver.
func (msg *MsgTx) Deserialize(r io.Reader) error {
	err := readElement(r, &msg.Version)
	if err != nil {
		return err
	}

	count, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	if count > maxTxPayload {
		return messageError("MsgTx.Deserialize",
			nonSaneCountFmt("transaction input count", count, maxTxPayload))
	}
	msg.TxIn = make([]*TxIn, count)
	for i := uint64(0); i < count; i++ {
		ti := new(TxIn)
		err = readTxIn(r, ti)
		if err != nil {
			return err
		}
		msg.TxIn[i] = ti
	}

	count, err = ReadVarInt(r)
	if err != nil {
		return err
	}
	if count > maxTxPayload {
		return messageError("MsgTx.Deserialize",
			nonSaneCountFmt("transaction output count", count, maxTxPayload))
	}
	msg.TxOut = make([]*TxOut, count)
	for i := uint64(0); i < count; i++ {
		to := new(TxOut)
		err = readTxOut(r, to)
		if err != nil {
			return err
		}
		msg.TxOut[i] = to
	}

	return readElement(r, &msg.LockTime)
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction.
func (msg *MsgTx) SerializeSize() int {
	// Version 4 bytes + LockTime 4 bytes + serialized varint size for the
	// number of transaction inputs and outputs.
	n := 8 + VarIntSerializeSize(uint64(len(msg.TxIn))) +
		VarIntSerializeSize(uint64(len(msg.TxOut)))

	for _, ti := range msg.TxIn {
		// Outpoint hash 32 bytes + index 4 bytes + sequence 4 bytes +
		// serialized varint size for the length of SignatureScript +
		// SignatureScript bytes.
		n += 40 + VarIntSerializeSize(uint64(len(ti.SignatureScript))) +
			len(ti.SignatureScript)
	}
	for _, to := range msg.TxOut {
		// Value 8 bytes + serialized varint size for the length of
		// PkScript + PkScript bytes.
		n += 8 + VarIntSerializeSize(uint64(len(to.PkScript))) +
			len(to.PkScript)
	}

	return n
}

// NewMsgTx returns a new meowcoin tx message that conforms to the Message
// interface.
func NewMsgTx() *MsgTx {
	return &MsgTx{Version: TxVersion}
}

func readOutPoint(r io.Reader, op *OutPoint) error {
	return readElements(r, &op.Hash, &op.Index)
}

func writeOutPoint(w io.Writer, op *OutPoint) error {
	return writeElements(w, &op.Hash, op.Index)
}

func readTxIn(r io.Reader, ti *TxIn) error {
	err := readOutPoint(r, &ti.PreviousOutPoint)
	if err != nil {
		return err
	}

	ti.SignatureScript, err = ReadVarBytes(r, "transaction input signature script")
	if err != nil {
		return err
	}

	return readElement(r, &ti.Sequence)
}

func writeTxIn(w io.Writer, ti *TxIn) error {
	err := writeOutPoint(w, &ti.PreviousOutPoint)
	if err != nil {
		return err
	}

	err = WriteVarBytes(w, ti.SignatureScript)
	if err != nil {
		return err
	}

	return writeElement(w, ti.Sequence)
}

func readTxOut(r io.Reader, to *TxOut) error {
	err := readElement(r, &to.Value)
	if err != nil {
		return err
	}

	to.PkScript, err = ReadVarBytes(r, "transaction output public key script")
	return err
}

func writeTxOut(w io.Writer, to *TxOut) error {
	err := writeElement(w, to.Value)
	if err != nil {
		return err
	}

	return WriteVarBytes(w, to.PkScript)
}
