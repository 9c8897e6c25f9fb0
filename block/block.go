//
// block.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

// Package block implements the 128-bit value that the symmetric
// ciphers and the PRG operate on.
package block

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
)

// Size defines the block size in bytes.
const Size = 16

// Block implements a 128 bit unsigned value. D0 holds the high and
// D1 the low 64 bits. The byte layout is big-endian.
type Block struct {
	D0 uint64
	D1 uint64
}

// Data contains block data as byte array.
type Data [Size]byte

// New creates a block with the value v.
func New(v uint64) Block {
	return Block{
		D1: v,
	}
}

// Random creates a new random block.
func Random(rand io.Reader) (Block, error) {
	var buf Data
	var b Block

	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return b, err
	}
	b.SetData(&buf)
	return b, nil
}

// Parse parses the block from its hex representation. Shorter inputs
// are zero-extended from the left.
func Parse(s string) (Block, error) {
	var b Block
	if len(s) > 2*Size {
		return b, fmt.Errorf("block: value too long: %d digits", len(s))
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return b, err
	}
	var buf Data
	copy(buf[Size-len(data):], data)
	b.SetData(&buf)
	return b, nil
}

func (b Block) String() string {
	return fmt.Sprintf("%016x%016x", b.D0, b.D1)
}

// Equal test if the blocks are equal.
func (b Block) Equal(o Block) bool {
	return b.D0 == o.D0 && b.D1 == o.D1
}

// Xor xors the block with the argument block.
func (b *Block) Xor(o Block) {
	b.D0 ^= o.D0
	b.D1 ^= o.D1
}

// Add adds v to the block modulo 2^128.
func (b *Block) Add(v uint64) {
	d1 := b.D1 + v
	if d1 < b.D1 {
		b.D0++
	}
	b.D1 = d1
}

// Plus returns the block incremented by v modulo 2^128.
func (b Block) Plus(v uint64) Block {
	b.Add(v)
	return b
}

// GetData gets the block as block data.
func (b Block) GetData(buf *Data) {
	binary.BigEndian.PutUint64(buf[0:8], b.D0)
	binary.BigEndian.PutUint64(buf[8:16], b.D1)
}

// SetData sets the block from block data.
func (b *Block) SetData(data *Data) {
	b.D0 = binary.BigEndian.Uint64((*data)[0:8])
	b.D1 = binary.BigEndian.Uint64((*data)[8:16])
}

// Bytes returns the block data as bytes.
func (b Block) Bytes(buf *Data) []byte {
	b.GetData(buf)
	return buf[:]
}

// PutBytes stores the block into the first Size bytes of data.
func (b Block) PutBytes(data []byte) {
	binary.BigEndian.PutUint64(data[0:8], b.D0)
	binary.BigEndian.PutUint64(data[8:16], b.D1)
}

// SetBytes sets the block data from bytes.
func (b *Block) SetBytes(data []byte) {
	b.D0 = binary.BigEndian.Uint64(data[0:8])
	b.D1 = binary.BigEndian.Uint64(data[8:16])
}

// Encode stores the blocks into buf which must be Size*len(blocks)
// bytes long.
func Encode(buf []byte, blocks []Block) {
	for i, b := range blocks {
		b.PutBytes(buf[i*Size:])
	}
}

// Decode sets the blocks from buf which must be Size*len(blocks)
// bytes long.
func Decode(blocks []Block, buf []byte) {
	for i := range blocks {
		blocks[i].SetBytes(buf[i*Size:])
	}
}

// Count returns the number of blocks needed to hold n bytes.
func Count(n int) int {
	return (n + Size - 1) / Size
}
