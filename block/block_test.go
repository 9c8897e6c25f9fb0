//
// block_test.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package block

import (
	"bytes"
	"encoding/hex"
	"testing"
)

var addTests = []struct {
	b      Block
	v      uint64
	result Block
}{
	{
		b:      Block{},
		v:      5,
		result: Block{D1: 5},
	},
	{
		b:      Block{D1: 0xffffffffffffffff},
		v:      1,
		result: Block{D0: 1},
	},
	{
		b:      Block{D0: 0xffffffffffffffff, D1: 0xffffffffffffffff},
		v:      2,
		result: Block{D1: 1},
	},
	{
		b:      Block{D0: 7, D1: 0xfffffffffffffff0},
		v:      0x20,
		result: Block{D0: 8, D1: 0x10},
	},
}

func TestAdd(t *testing.T) {
	for idx, test := range addTests {
		b := test.b
		b.Add(test.v)
		if !b.Equal(test.result) {
			t.Errorf("test-%d: %v != %v", idx, b, test.result)
		}
		if p := test.b.Plus(test.v); !p.Equal(test.result) {
			t.Errorf("test-%d: Plus: %v != %v", idx, p, test.result)
		}
	}
}

func TestLayout(t *testing.T) {
	b := Block{
		D0: 0x0001020304050607,
		D1: 0x08090a0b0c0d0e0f,
	}
	expected, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	if err != nil {
		t.Fatal(err)
	}
	var d Data
	if !bytes.Equal(b.Bytes(&d), expected) {
		t.Fatalf("Bytes: %x != %x", d, expected)
	}
	if b.String() != hex.EncodeToString(expected) {
		t.Fatalf("String: %v != %x", b, expected)
	}

	var o Block
	o.SetBytes(expected)
	if !o.Equal(b) {
		t.Fatalf("SetBytes: %v != %v", o, b)
	}

	counter := New(1)
	if !bytes.Equal(counter.Bytes(&d),
		[]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}) {
		t.Fatalf("New(1): %x", d)
	}
}

func TestEncodeDecode(t *testing.T) {
	blocks := []Block{New(1), New(2), {D0: 3, D1: 4}}
	buf := make([]byte, len(blocks)*Size)
	Encode(buf, blocks)

	result := make([]Block, len(blocks))
	Decode(result, buf)
	for i := range blocks {
		if !blocks[i].Equal(result[i]) {
			t.Errorf("block %d: %v != %v", i, result[i], blocks[i])
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		s      string
		result Block
		fail   bool
	}{
		{s: "0", result: Block{}},
		{s: "5", result: New(5)},
		{s: "abc", result: New(0xabc)},
		{s: "0102030405060708090a0b0c0d0e0f10",
			result: Block{D0: 0x0102030405060708, D1: 0x090a0b0c0d0e0f10}},
		{s: "0102030405060708090a0b0c0d0e0f1011", fail: true},
		{s: "xyz", fail: true},
	}
	for idx, test := range tests {
		b, err := Parse(test.s)
		if test.fail {
			if err == nil {
				t.Errorf("test-%d: Parse(%q) succeeded", idx, test.s)
			}
			continue
		}
		if err != nil {
			t.Errorf("test-%d: Parse(%q): %v", idx, test.s, err)
			continue
		}
		if !b.Equal(test.result) {
			t.Errorf("test-%d: %v != %v", idx, b, test.result)
		}
	}
}

func TestCount(t *testing.T) {
	for n, expected := range []int{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
		1, 1, 1, 1, 2} {
		if c := Count(n); c != expected {
			t.Errorf("Count(%d)=%d, expected %d", n, c, expected)
		}
	}
}
