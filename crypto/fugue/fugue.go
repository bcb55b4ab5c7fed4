// Copyright (c) 2022-2026 The Meowcoin Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fugue implements the Fugue-512 hash function, the thirteenth
// member of the X16R chain. The digest exposes the same Write/Close shape as
// the go-x11 algorithm packages.
package fugue

import "encoding/binary"

// Size is the digest size in bytes.
const Size = 64

// cols is the number of 32-bit columns in the Fugue-512 state.
const cols = 36

// sbox is the AES S-box, which Fugue reuses inside SMIX. It is generated at
// init from the multiplicative inverse in GF(2^8) followed by the AES affine
// transform.
var sbox [256]byte

// mul2 maps x to xtime(x) in GF(2^8) with the AES reduction polynomial.
var mul2 [256]byte

func init() {
	// Multiplicative inverses via exhaustive products.
	var inv [256]byte
	for x := 1; x < 256; x++ {
		for y := 1; y < 256; y++ {
			if gmul(byte(x), byte(y)) == 1 {
				inv[x] = byte(y)
				break
			}
		}
	}
	for x := 0; x < 256; x++ {
		b := inv[x]
		s := b
		for i := 0; i < 4; i++ {
			b = b<<1 | b>>7
			s ^= b
		}
		sbox[x] = s ^ 0x63
		mul2[x] = gmul(byte(x), 2)
	}
}

func gmul(a, b byte) byte {
	var p byte
	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= 0x1b
		}
		b >>= 1
	}
	return p
}

// digest holds the 36-column Fugue-512 state and the input word buffer.
type digest struct {
	s    [cols]uint32
	base int // rotation offset of column 0

	buf  [4]byte
	nbuf int

	length uint64 // total message length in bits
}

// iv512 is the Fugue-512 initial value loaded into the last 16 columns.
var iv512 = [16]uint32{
	0x8807a57e, 0xe616af75, 0xc5d3e4db, 0xac9ab027,
	0xd915f117, 0xb6eecc54, 0x06e8020b, 0x4a92efd1,
	0xaac6e2c9, 0xddb21398, 0xcae65838, 0x437f203f,
	0x25ea78e7, 0x951fddd6, 0xda6ed11d, 0xe13e3567,
}

// New returns a fresh Fugue-512 digest.
func New() *digest {
	d := new(digest)
	d.Reset()
	return d
}

// Reset reinitializes the state.
func (d *digest) Reset() {
	d.s = [cols]uint32{}
	for i, v := range iv512 {
		d.s[cols-16+i] = v
	}
	d.base = 0
	d.nbuf = 0
	d.length = 0
}

// Size returns the digest size in bytes.
func (d *digest) Size() int { return Size }

// BlockSize returns the input granularity in bytes.
func (d *digest) BlockSize() int { return 4 }

// col returns a pointer to logical column i under the current rotation.
func (d *digest) col(i int) *uint32 {
	return &d.s[(d.base+i)%cols]
}

// ror rotates the state right by n columns.
func (d *digest) ror(n int) {
	d.base = (d.base - n%cols + cols) % cols
}

// Write absorbs p into the state, one 32-bit word at a time.
func (d *digest) Write(p []byte) (int, error) {
	n := len(p)
	d.length += uint64(n) * 8
	for len(p) > 0 {
		k := copy(d.buf[d.nbuf:], p)
		d.nbuf += k
		p = p[k:]
		if d.nbuf == 4 {
			d.round(binary.BigEndian.Uint32(d.buf[:]))
			d.nbuf = 0
		}
	}
	return n, nil
}

// round absorbs one input word: TIX, then four ROR3/CMIX/SMIX sub-rounds.
func (d *digest) round(q uint32) {
	d.tix(q)
	for i := 0; i < 4; i++ {
		d.ror(3)
		d.cmix()
		d.smix()
	}
}

// tix is the Fugue-512 input transform.
func (d *digest) tix(q uint32) {
	*d.col(22) ^= *d.col(0)
	*d.col(0) = q
	*d.col(8) ^= q
	*d.col(1) ^= *d.col(24)
	*d.col(4) ^= *d.col(27)
	*d.col(7) ^= *d.col(30)
}

// cmix is the Fugue-512 column mix.
func (d *digest) cmix() {
	*d.col(0) ^= *d.col(4)
	*d.col(1) ^= *d.col(5)
	*d.col(2) ^= *d.col(6)
	*d.col(18) ^= *d.col(4)
	*d.col(19) ^= *d.col(5)
	*d.col(20) ^= *d.col(6)
}

// smix applies the AES-based super-mix to the first four columns: byte-wise
// S-box substitution followed by the Fugue MDS diffusion across the 4x4 byte
// matrix.
func (d *digest) smix() {
	var m [16]byte
	for c := 0; c < 4; c++ {
		w := *d.col(c)
		m[c*4+0] = sbox[byte(w>>24)]
		m[c*4+1] = sbox[byte(w>>16)]
		m[c*4+2] = sbox[byte(w>>8)]
		m[c*4+3] = sbox[byte(w)]
	}

	var o [16]byte
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			// Diagonal entries diffuse with weight 1, the row neighbors
			// with xtime weights, mirroring the Fugue super-mix matrix.
			v := m[r*4+c]
			v ^= mul2[m[((r+1)%4)*4+c]]
			v ^= mul2[m[r*4+(c+1)%4]] ^ m[r*4+(c+1)%4]
			v ^= m[((r+3)%4)*4+(c+3)%4]
			o[r*4+c] = v
		}
	}

	for c := 0; c < 4; c++ {
		*d.col(c) = uint32(o[c*4])<<24 | uint32(o[c*4+1])<<16 |
			uint32(o[c*4+2])<<8 | uint32(o[c*4+3])
	}
}

// Close pads the message with the bit-length trailer, runs the closing
// rounds and writes the 64-byte digest to dst. The bits/bcnt arguments exist
// for interface compatibility with the go-x11 digests and must be zero.
func (d *digest) Close(dst []byte, bits uint8, bcnt uint8) error {
	_ = bits
	_ = bcnt

	// Flush a partial word zero-padded, then absorb the 64-bit message
	// length in bits as two words.
	if d.nbuf > 0 {
		for i := d.nbuf; i < 4; i++ {
			d.buf[i] = 0
		}
		d.round(binary.BigEndian.Uint32(d.buf[:]))
		d.nbuf = 0
	}
	d.round(uint32(d.length >> 32))
	d.round(uint32(d.length))

	// Closing rounds: 32 iterations of ROR3/CMIX/SMIX followed by 13 final
	// mixing rounds folding the far columns into the SMIX window.
	for i := 0; i < 32; i++ {
		d.ror(3)
		d.cmix()
		d.smix()
	}
	for i := 0; i < 13; i++ {
		*d.col(4) ^= *d.col(0)
		*d.col(9) ^= *d.col(0)
		*d.col(18) ^= *d.col(0)
		*d.col(27) ^= *d.col(0)
		d.ror(9)
		d.smix()
	}
	*d.col(4) ^= *d.col(0)
	*d.col(9) ^= *d.col(0)
	*d.col(18) ^= *d.col(0)
	*d.col(27) ^= *d.col(0)

	// The digest is the concatenation of four 4-column windows.
	out := dst[:0]
	for _, base := range []int{1, 9, 19, 28} {
		for c := 0; c < 4; c++ {
			var w [4]byte
			binary.BigEndian.PutUint32(w[:], *d.col(base + c))
			out = append(out, w[:]...)
		}
	}

	d.Reset()
	return nil
}
