// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"encoding/json"
	"testing"
)

func getBit(b Bloom, bit uint) bool {
	return b[BloomByteLength-1-bit/8]&(1<<(bit%8)) != 0
}

func countBits(b Bloom) int {
	res := 0
	for bit := uint(0); bit < BloomBitLength; bit++ {
		if getBit(b, bit) {
			res++
		}
	}
	return res
}

func TestBloom_FromHashSetsBitsDerivedFromHash(t *testing.T) {
	tests := []struct {
		hash Hash
		bits []uint
	}{
		// Keccak256 of address 0x0f572e5295c57f15886f9b263e2f6d2d6c7b5ec6
		{MustHashFromString("bd2b01afcd27800b54d2179edc49e2bffde5078bb6d0b204694169b1643fb108"), []uint{1323, 431, 1319}},
		// Keccak256("abc")
		{MustHashFromString("4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"), []uint{1539, 1402, 581}},
		{Hash{}, []uint{0}},
		{Hash{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, []uint{2047}},
		{Hash{0x00, 0x01, 0x00, 0x02, 0x00, 0x03}, []uint{1, 2, 3}},
	}

	for _, test := range tests {
		bloom := BloomFromHash(test.hash)
		for _, bit := range test.bits {
			if !getBit(bloom, bit) {
				t.Errorf("bit %d not set in bloom of %v", bit, test.hash)
			}
		}
		if got, want := countBits(bloom), len(test.bits); got != want {
			t.Errorf("unexpected number of bits set for %v, got %d, want %d", test.hash, got, want)
		}
	}
}

func TestBloom_FromHashUsesOnlyLowElevenBitsOfEachWord(t *testing.T) {
	a := BloomFromHash(Hash{0x08, 0x01, 0x10, 0x01, 0xF8, 0x01})
	b := BloomFromHash(Hash{0x00, 0x01, 0x00, 0x01, 0x00, 0x01})
	if a != b {
		t.Errorf("high bits of hash words should be ignored")
	}
}

func TestBloom_OrIsUnionOfBits(t *testing.T) {
	a := BloomFromHash(Hash{0x00, 0x01, 0x00, 0x01, 0x00, 0x01})
	b := BloomFromHash(Hash{0x00, 0x02, 0x00, 0x02, 0x00, 0x02})
	c := a.Or(b)
	if !getBit(c, 1) || !getBit(c, 2) || countBits(c) != 2 {
		t.Errorf("unexpected union %v", c)
	}
	if a.Or(b) != b.Or(a) {
		t.Errorf("union should be commutative")
	}
	if a.Or(Bloom{}) != a {
		t.Errorf("empty bloom should be the identity of the union")
	}
	if countBits(a) != 1 {
		t.Errorf("union must not modify its receiver")
	}
}

func TestBloom_WithBloomedAddsBitsOfHash(t *testing.T) {
	hash := Keccak256([]byte("abc"))
	bloom := Bloom{}.WithBloomed(hash)
	if want := BloomFromHash(hash); bloom != want {
		t.Errorf("unexpected bloom, got %v, want %v", bloom, want)
	}
	if !bloom.ContainsHash(hash) {
		t.Errorf("bloom should contain added hash")
	}
}

func TestBloom_ContainsChecksAllBits(t *testing.T) {
	a := BloomFromHash(Hash{0x00, 0x01, 0x00, 0x02, 0x00, 0x03})
	b := BloomFromHash(Hash{0x00, 0x01, 0x00, 0x02, 0x00, 0x04})
	if !a.Contains(a) {
		t.Errorf("bloom should contain itself")
	}
	if a.Contains(b) || b.Contains(a) {
		t.Errorf("blooms with differing bits should not contain each other")
	}
	if !a.Or(b).Contains(a) || !a.Or(b).Contains(b) {
		t.Errorf("union should contain both inputs")
	}
	if !a.Contains(Bloom{}) {
		t.Errorf("every bloom should contain the empty bloom")
	}
}

func TestBloom_IsEmpty(t *testing.T) {
	if !(Bloom{}).IsEmpty() {
		t.Errorf("zero bloom should be empty")
	}
	if BloomFromHash(Hash{}).IsEmpty() {
		t.Errorf("bloom of a hash should not be empty")
	}
}

func TestBloom_TextEncodingCanBeParsed(t *testing.T) {
	bloom := BloomFromHash(Keccak256([]byte("abc")))
	text, err := bloom.MarshalText()
	if err != nil {
		t.Fatalf("failed to encode bloom: %v", err)
	}
	if got, want := string(text), bloom.String(); got != want {
		t.Errorf("unexpected text encoding, got %s, want %s", got, want)
	}

	var restored Bloom
	if err := restored.UnmarshalText(text); err != nil {
		t.Fatalf("failed to decode bloom: %v", err)
	}
	if restored != bloom {
		t.Errorf("unexpected decoded bloom, got %v, want %v", restored, bloom)
	}

	parsed, err := BloomFromString(string(text))
	if err != nil {
		t.Fatalf("failed to parse bloom: %v", err)
	}
	if parsed != bloom {
		t.Errorf("unexpected parsed bloom, got %v, want %v", parsed, bloom)
	}
}

func TestBloom_JsonEncodingIsHexString(t *testing.T) {
	bloom := Bloom{}
	bloom[255] = 0x01
	data, err := json.Marshal(bloom)
	if err != nil {
		t.Fatalf("failed to encode bloom: %v", err)
	}
	if len(data) != 2+2+2*BloomByteLength {
		t.Errorf("unexpected length of JSON bloom: %d", len(data))
	}
	var restored Bloom
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("failed to decode bloom: %v", err)
	}
	if restored != bloom {
		t.Errorf("unexpected decoded bloom, got %v, want %v", restored, bloom)
	}
}

func TestBloom_InvalidTextIsRejected(t *testing.T) {
	inputs := []string{"", "0x", "0x12", "zz"}
	for _, input := range inputs {
		if _, err := BloomFromString(input); err == nil {
			t.Errorf("expected parsing of %q to fail", input)
		}
	}
	var bloom Bloom
	if err := bloom.UnmarshalText([]byte("0x1234")); err == nil {
		t.Errorf("expected decoding of short bloom to fail")
	}
}
