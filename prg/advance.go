//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package prg

import (
	"github.com/markkurossi/prg/block"
)

// AdvanceCounter returns the counter that FillPseudoRandom would
// return for the output buffer out, without generating any output.
// Parties that don't need the pseudorandom bytes use it to keep their
// counter synchronized with the peers that do. The counter wraps
// modulo 2^64 like the one FillPseudoRandom returns.
func AdvanceCounter(count uint64, out []byte) uint64 {
	return AdvanceCounterN(count, len(out))
}

// AdvanceCounterN advances the counter for nbytes of output. The
// result wraps modulo 2^64.
func AdvanceCounterN(count uint64, nbytes int) uint64 {
	return count + uint64(block.Count(nbytes))
}

// AdvanceCounterBlocks advances the counter for the output blocks.
func AdvanceCounterBlocks(count uint64, out []block.Block) uint64 {
	return count + uint64(len(out))
}
