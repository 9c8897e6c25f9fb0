//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package prg implements a deterministic pseudorandom generator that
// encrypts a counter sequence with a seed-keyed block cipher. The
// generator returns the next counter value that the caller threads
// into the following call so that a long stream can be generated
// incrementally without reusing counter values.
package prg

import (
	"fmt"

	"github.com/markkurossi/prg/block"
	"github.com/markkurossi/prg/env"
	"github.com/markkurossi/prg/symmetric"
)

// DefaultKind defines the cipher kind of FillAESRandom. It is CBC
// for compatibility with existing peers that generate their
// randomness with AES-CBC.
const DefaultKind = env.DefaultKind

type generator func(kind symmetric.Kind, seed, iv block.Block, count uint64,
	out []byte) error

var generators = map[symmetric.Mode]generator{
	symmetric.ECB: fillECB,
	symmetric.CBC: fillCBC,
	symmetric.CTR: fillCTR,
}

// FillPseudoRandom fills out with pseudorandom bytes derived from the
// seed and the counter count. The iv is the CBC chaining vector and
// it is not used in the ECB and CTR modes. The function returns the
// next counter value count+ceil(len(out)/block.Size). On error the
// returned counter is count.
//
// The returned counter wraps modulo 2^64 while the counter blocks
// carry into their high word, so a sequence that crosses the wrap
// point continues with blocks 2^64, 2^64+1, ... but the next call
// restarts from block 0. Callers must not advance a seed's counter
// past 2^64-1.
func FillPseudoRandom(kind symmetric.Kind, seed, iv block.Block, count uint64,
	out []byte) (uint64, error) {

	gen, ok := generators[kind.Mode()]
	if !ok || !kind.Valid() {
		return count, fmt.Errorf("%w: unsupported cipher kind %v",
			symmetric.ErrConfiguration, kind)
	}
	if len(out) == 0 {
		return count, nil
	}
	if err := gen(kind, seed, iv, count, out); err != nil {
		return count, err
	}
	return AdvanceCounter(count, out), nil
}

// FillBlocks fills the blocks out with pseudorandom data. The result
// is the same as with FillPseudoRandom over the byte layout of out.
func FillBlocks(kind symmetric.Kind, seed, iv block.Block, count uint64,
	out []block.Block) (uint64, error) {

	buf := make([]byte, len(out)*block.Size)
	next, err := FillPseudoRandom(kind, seed, iv, count, buf)
	if err != nil {
		return count, err
	}
	block.Decode(out, buf)
	return next, nil
}

// FillAESRandom fills out with pseudorandom bytes using the
// DefaultKind cipher.
func FillAESRandom(seed, iv block.Block, count uint64, out []byte) (
	uint64, error) {
	return FillPseudoRandom(DefaultKind, seed, iv, count, out)
}

// FillRandom fills out with pseudorandom bytes using the cipher kind
// of the configuration.
func FillRandom(config *env.Config, seed, iv block.Block, count uint64,
	out []byte) (uint64, error) {
	return FillPseudoRandom(config.GetKind(), seed, iv, count, out)
}

// FillSM4Random fills out with pseudorandom bytes using SM4-CBC.
func FillSM4Random(seed, iv block.Block, count uint64, out []byte) (
	uint64, error) {
	return FillPseudoRandom(symmetric.SM4CBC, seed, iv, count, out)
}

// fillCTR uses the counter as the CTR mode counter register and
// encrypts an all-zero buffer.
func fillCTR(kind symmetric.Kind, seed, _ block.Block, count uint64,
	out []byte) error {

	c, err := symmetric.NewBlocks(kind, seed, block.New(count))
	if err != nil {
		return err
	}
	defer c.Close()

	clear(out)
	return c.Encrypt(out, out)
}

// fillECB encrypts the counter sequence in place. The partial last
// block is encrypted separately since ECB blocks are independent.
func fillECB(kind symmetric.Kind, seed, iv block.Block, count uint64,
	out []byte) error {

	c, err := symmetric.NewBlocks(kind, seed, iv)
	if err != nil {
		return err
	}
	defer c.Close()

	padding := len(out) % block.Size
	if padding == 0 {
		SequenceBytes(count, out)
		return c.Encrypt(out, out)
	}

	nblock := block.Count(len(out))
	full := (nblock - 1) * block.Size
	if full > 0 {
		SequenceBytes(count, out[:full])
		if err := c.Encrypt(out[:full], out[:full]); err != nil {
			return err
		}
	}
	last, err := c.EncryptBlock(block.New(count).Plus(uint64(nblock - 1)))
	if err != nil {
		return err
	}
	var d block.Data
	copy(out[full:], last.Bytes(&d)[:padding])

	return nil
}

// fillCBC encrypts the counter sequence in place. With a partial last
// block the whole sequence is encrypted in an aligned scratch buffer
// since the last block depends on the previous ciphertext block.
func fillCBC(kind symmetric.Kind, seed, iv block.Block, count uint64,
	out []byte) error {

	c, err := symmetric.NewBlocks(kind, seed, iv)
	if err != nil {
		return err
	}
	defer c.Close()

	if len(out)%block.Size == 0 {
		SequenceBytes(count, out)
		return c.Encrypt(out, out)
	}

	scratch := make([]byte, block.Count(len(out))*block.Size)
	SequenceBytes(count, scratch)
	if err := c.Encrypt(scratch, scratch); err != nil {
		return err
	}
	copy(out, scratch)

	return nil
}
