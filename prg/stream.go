//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package prg

import (
	"fmt"

	"github.com/markkurossi/prg/block"
	"github.com/markkurossi/prg/symmetric"
)

const streamBlocks = 64

// Stream implements an io.Reader over the pseudorandom stream. The
// bytes read from a Stream are the same as the prefix of one
// FillPseudoRandom call with the same arguments, independently of
// how the reads are split. Stream is not safe for concurrent use.
type Stream struct {
	kind  symmetric.Kind
	seed  block.Block
	chain block.Block
	start uint64
	next  uint64
	read  uint64
	buf   []byte
	pos   int
	err   error
}

// NewStream creates a new pseudorandom stream starting from the
// counter count.
func NewStream(kind symmetric.Kind, seed, iv block.Block, count uint64) (
	*Stream, error) {

	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unsupported cipher kind %v",
			symmetric.ErrConfiguration, kind)
	}
	return &Stream{
		kind:  kind,
		seed:  seed,
		chain: iv,
		start: count,
		next:  count,
	}, nil
}

// Kind returns the stream's cipher kind.
func (s *Stream) Kind() symmetric.Kind {
	return s.kind
}

// Count returns the counter value that FillPseudoRandom would have
// returned for the bytes read so far.
func (s *Stream) Count() uint64 {
	return s.start + (s.read+block.Size-1)/block.Size
}

// Read implements io.Reader. It always fills p unless the cipher
// fails. The errors are sticky.
func (s *Stream) Read(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	var n int
	for n < len(p) {
		if s.pos >= len(s.buf) {
			if err := s.refill(); err != nil {
				s.err = err
				s.read += uint64(n)
				return n, err
			}
		}
		c := copy(p[n:], s.buf[s.pos:])
		s.pos += c
		n += c
	}
	s.read += uint64(n)
	return n, nil
}

func (s *Stream) refill() error {
	if s.buf == nil {
		s.buf = make([]byte, streamBlocks*block.Size)
	}
	next, err := FillPseudoRandom(s.kind, s.seed, s.chain, s.next, s.buf)
	if err != nil {
		return err
	}
	if s.kind.Mode() == symmetric.CBC {
		// Continue the chain from the last ciphertext block.
		s.chain.SetBytes(s.buf[len(s.buf)-block.Size:])
	}
	s.next = next
	s.pos = 0
	return nil
}
