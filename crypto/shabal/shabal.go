// Copyright (c) 2022-2026 The Meowcoin Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package shabal implements the Shabal-512 hash function, the fourteenth
// member of the X16R chain. The digest exposes the same Write/Close shape as
// the go-x11 algorithm packages.
package shabal

import "encoding/binary"

// Size is the digest size in bytes.
const Size = 64

// BlockSize is the message block size in bytes.
const BlockSize = 64

// digest holds the Shabal state: the A, B and C word arrays and the 64-bit
// block counter W.
type digest struct {
	a [12]uint32
	b [16]uint32
	c [16]uint32
	w uint64

	buf  [BlockSize]byte
	nbuf int
}

// New returns a fresh Shabal-512 digest.
func New() *digest {
	d := new(digest)
	d.Reset()
	return d
}

// Reset reinitializes the state. The initial value is derived as the
// specification prescribes: the all-zero state absorbs two prefix blocks
// whose words are the output size plus a running index, under counters -1
// and 0.
func (d *digest) Reset() {
	d.a = [12]uint32{}
	d.b = [16]uint32{}
	d.c = [16]uint32{}
	d.w = ^uint64(0) // counter of the first prefix block is -1

	var m [16]uint32
	for j := range m {
		m[j] = uint32(512 + j)
	}
	d.core(&m)
	for j := range m {
		m[j] = uint32(512 + 16 + j)
	}
	d.core(&m)

	d.nbuf = 0
}

// Size returns the digest size in bytes.
func (d *digest) Size() int { return Size }

// BlockSize returns the message block size in bytes.
func (d *digest) BlockSize() int { return BlockSize }

// Write absorbs p into the state.
func (d *digest) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		k := copy(d.buf[d.nbuf:], p)
		d.nbuf += k
		p = p[k:]
		if d.nbuf == BlockSize {
			var m [16]uint32
			decodeBlock(&m, d.buf[:])
			d.core(&m)
			d.nbuf = 0
		}
	}
	return n, nil
}

// Close pads the message, runs the three finalization rounds and writes the
// 64-byte digest to dst. The bits/bcnt arguments exist for interface
// compatibility with the go-x11 digests and must be zero.
func (d *digest) Close(dst []byte, bits uint8, bcnt uint8) error {
	_ = bits
	_ = bcnt

	d.buf[d.nbuf] = 0x80
	for i := d.nbuf + 1; i < BlockSize; i++ {
		d.buf[i] = 0
	}

	var m [16]uint32
	decodeBlock(&m, d.buf[:])

	// The padded block is processed once normally, then three more times
	// with the counter held still.
	d.core(&m)
	for i := 0; i < 3; i++ {
		d.w--
		d.core(&m)
	}

	for i, v := range d.c {
		binary.LittleEndian.PutUint32(dst[i*4:], v)
	}

	d.Reset()
	return nil
}

func decodeBlock(m *[16]uint32, b []byte) {
	for i := range m {
		m[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
}

func rotl32(x uint32, n uint) uint32 {
	return x<<n | x>>(32-n)
}

// core absorbs one message block: add the block into B, fold the counter
// into A, run the keyed permutation, then subtract the block from C and swap
// B with C.
func (d *digest) core(m *[16]uint32) {
	for i := 0; i < 16; i++ {
		d.b[i] += m[i]
	}
	d.a[0] ^= uint32(d.w)
	d.a[1] ^= uint32(d.w >> 32)

	for i := 0; i < 16; i++ {
		d.b[i] = rotl32(d.b[i], 17)
	}

	for r := 0; r < 3; r++ {
		for j := 0; j < 16; j++ {
			ai := (16*r + j) % 12
			d.a[ai] = 3*(d.a[ai]^5*rotl32(d.a[(ai+11)%12], 15)^d.c[(24-j)%16]) ^
				d.b[(j+13)%16] ^ (d.b[(j+9)%16] &^ d.b[(j+6)%16]) ^ m[j]
			d.b[j] = ^(rotl32(d.b[j], 1) ^ d.a[ai])
		}
	}

	for j := 0; j < 36; j++ {
		d.a[j%12] += d.c[(j+3)%16]
	}

	for i := 0; i < 16; i++ {
		d.c[i] -= m[i]
	}

	d.b, d.c = d.c, d.b
	d.w++
}
