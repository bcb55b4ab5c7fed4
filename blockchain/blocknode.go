// Copyright (c) 2015-2017 The btcsuite developers
// Copyright (c) 2022-2026 The Meowcoin Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/meowcoin-foundation/mewcd/wire"
)

// BlockNode represents a block within the block chain index. Only the fields
// the proof-of-work core consumes are modelled: the retargeting engines walk
// parent pointers and read heights, bits, timestamps and versions; everything
// else a full index carries is opaque to this package.
type BlockNode struct {
	// Parent is the parent block for this node.
	Parent *BlockNode

	// Height is the position in the block chain.
	Height int64

	// Bits is the difficulty target of the block.
	Bits uint32

	// Timestamp is the block time in Unix seconds.
	Timestamp int64

	// Version is the block version.
	Version wire.BlockVersion
}

// NewBlockNode returns a new block node linked to the given parent, deriving
// the height from the parent chain.
func NewBlockNode(parent *BlockNode, header *wire.BlockHeader) *BlockNode {
	node := &BlockNode{
		Parent:    parent,
		Bits:      header.Bits,
		Timestamp: header.BlockTime(),
		Version:   header.Version,
	}
	if parent != nil {
		node.Height = parent.Height + 1
	}
	return node
}

// Ancestor returns the ancestor block node at the provided height by
// following the chain backwards from this node. The returned block will be
// nil when a height is requested that is after the height of the passed node
// or is less than zero.
func (node *BlockNode) Ancestor(height int64) *BlockNode {
	if height < 0 || height > node.Height {
		return nil
	}

	n := node
	for n != nil && n.Height != height {
		n = n.Parent
	}
	return n
}

// RelativeAncestor returns the ancestor block node a relative 'distance'
// blocks before this node.
func (node *BlockNode) RelativeAncestor(distance int64) *BlockNode {
	return node.Ancestor(node.Height - distance)
}
