//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package prg

import (
	"github.com/markkurossi/prg/block"
)

// Sequence writes the counter blocks count, count+1, ...,
// count+len(out)-1 to out. The counter arithmetic is modulo 2^128.
func Sequence(count uint64, out []block.Block) {
	c := block.New(count)
	for i := range out {
		out[i] = c
		c.Add(1)
	}
}

// SequenceBytes writes the counter blocks starting from count to out
// in their byte layout. Only the full blocks of out are written.
func SequenceBytes(count uint64, out []byte) {
	c := block.New(count)
	for i := 0; i+block.Size <= len(out); i += block.Size {
		c.PutBytes(out[i:])
		c.Add(1)
	}
}
