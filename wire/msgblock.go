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

// maxTxPerBlock is a sanity bound on the number of transactions a block can
// declare, derived from the minimum possible transaction size.
const maxTxPerBlock = maxAllowedAlloc / 10

// MsgBlock implements the Message interface and represents a meowcoin block
// message. It is used to deliver block and transaction information: a block
// header followed by the ordered transaction list, whose first entry is the
// coinbase.
type MsgBlock struct {
	Header       BlockHeader
	Transactions []*MsgTx
}

// AddTransaction adds a transaction to the message.
func (msg *MsgBlock) AddTransaction(tx *MsgTx) {
	msg.Transactions = append(msg.Transactions, tx)
}

// ClearTransactions removes all transactions from the message.
func (msg *MsgBlock) ClearTransactions() {
	msg.Transactions = make([]*MsgTx, 0)
}

// BlockHash computes the block identifier hash for this block; see
// BlockHeader.BlockHash.
func (msg *MsgBlock) BlockHash(times ActivationTimes) (chainhash.Hash, error) {
	return msg.Header.BlockHash(times)
}

// TxHashes returns a slice of hashes of all of transactions in this block.
func (msg *MsgBlock) TxHashes() []chainhash.Hash {
	hashList := make([]chainhash.Hash, 0, len(msg.Transactions))
	for _, tx := range msg.Transactions {
		hashList = append(hashList, tx.TxHash())
	}
	return hashList
}

// Serialize encodes the block to w: the header under the given activation
// times, then a varint transaction count and the transactions in order.
func (msg *MsgBlock) Serialize(w io.Writer, times ActivationTimes) error {
	err := msg.Header.Serialize(w, times)
	if err != nil {
		return err
	}

	err = WriteVarInt(w, uint64(len(msg.Transactions)))
	if err != nil {
		return err
	}

	for _, tx := range msg.Transactions {
		err = tx.Serialize(w)
		if err != nil {
			return err
		}
	}

	return nil
}

// Deserialize decodes a block from r into the receiver.
func (msg *MsgBlock) Deserialize(r io.Reader, times ActivationTimes) error {
	err := msg.Header.Deserialize(r, times)
	if err != nil {
		return err
	}

	txCount, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	if txCount > maxTxPerBlock {
		return messageError("MsgBlock.Deserialize",
			nonSaneCountFmt("block transaction count", txCount, maxTxPerBlock))
	}

	msg.Transactions = make([]*MsgTx, 0, txCount)
	for i := uint64(0); i < txCount; i++ {
		tx := MsgTx{}
		err := tx.Deserialize(r)
		if err != nil {
			return err
		}
		msg.Transactions = append(msg.Transactions, &tx)
	}

	return nil
}

// SerializeSize returns the number of bytes it would take to serialize the
// block under the given activation times.
func (msg *MsgBlock) SerializeSize(times ActivationTimes) int {
	n := msg.Header.SerializeSize(times) +
		VarIntSerializeSize(uint64(len(msg.Transactions)))

	for _, tx := range msg.Transactions {
		n += tx.SerializeSize()
	}

	return n
}

// Bytes returns the serialized form of the block.
func (msg *MsgBlock) Bytes(times ActivationTimes) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, msg.SerializeSize(times)))
	err := msg.Serialize(buf, times)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// NewMsgBlock returns a new meowcoin block message that conforms to the
// Message interface.
func NewMsgBlock(blockHeader *BlockHeader) *MsgBlock {
	return &MsgBlock{
		Header:       *blockHeader,
		Transactions: make([]*MsgTx, 0),
	}
}
