// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"bytes"
	"strings"
	"testing"
)

// TestEncodeAddressRoundTrip ensures base58check addresses round trip and
// carry the expected leading character for the mainnet prefixes.
func TestEncodeAddressRoundTrip(t *testing.T) {
	hash160 := make([]byte, 20)
	for i := range hash160 {
		hash160[i] = byte(i)
	}

	// Mainnet pubkey-hash prefix yields 'M' addresses, script-hash 'm'.
	tests := []struct {
		netID byte
		lead  string
	}{
		{50, "M"},
		{122, "m"},
	}

	for _, test := range tests {
		addr, err := EncodeAddress(hash160, test.netID)
		if err != nil {
			t.Fatalf("EncodeAddress: %v", err)
		}
		if !strings.HasPrefix(addr, test.lead) {
			t.Errorf("address %q does not start with %q", addr, test.lead)
		}

		decoded, netID, err := DecodeAddress(addr)
		if err != nil {
			t.Fatalf("DecodeAddress: %v", err)
		}
		if netID != test.netID {
			t.Errorf("decoded version: got %d, want %d", netID, test.netID)
		}
		if !bytes.Equal(decoded, hash160) {
			t.Errorf("decoded payload mismatch: got %x, want %x", decoded, hash160)
		}
	}

	if _, err := EncodeAddress(hash160[:19], 50); err == nil {
		t.Error("EncodeAddress accepted a short hash")
	}
}

// TestEncodeSegWitAddressRoundTrip ensures bech32 addresses round trip under
// the chain's human-readable parts.
func TestEncodeSegWitAddressRoundTrip(t *testing.T) {
	program := make([]byte, 20)
	for i := range program {
		program[i] = byte(0xa0 + i)
	}

	for _, hrp := range []string{"mewc", "tmewc"} {
		addr, err := EncodeSegWitAddress(hrp, 0, program)
		if err != nil {
			t.Fatalf("EncodeSegWitAddress: %v", err)
		}
		if !strings.HasPrefix(addr, hrp+"1") {
			t.Errorf("address %q does not carry hrp %q", addr, hrp)
		}

		gotHRP, version, gotProgram, err := DecodeSegWitAddress(addr)
		if err != nil {
			t.Fatalf("DecodeSegWitAddress: %v", err)
		}
		if gotHRP != hrp || version != 0 {
			t.Errorf("decoded hrp/version: got %q/%d, want %q/0", gotHRP, version, hrp)
		}
		if !bytes.Equal(gotProgram, program) {
			t.Errorf("decoded program mismatch: got %x, want %x", gotProgram, program)
		}
	}
}
