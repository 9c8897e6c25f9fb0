//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements global environment for the PRG users.
package env

import (
	"crypto/rand"
	"io"

	"github.com/markkurossi/prg/block"
	"github.com/markkurossi/prg/symmetric"
)

// DefaultKind defines the cipher kind used when the configuration
// does not specify one.
const DefaultKind = symmetric.AES128CBC

// Config defines the global PRG configuration. Config must not be
// modified after being passed to any module. It is safe for
// concurrent use by multiple modules as they do not modify it.
type Config struct {
	// Rand is the source of entropy for seeds.
	Rand io.Reader

	// Kind is the cipher kind for pseudorandom generation. The zero
	// value selects DefaultKind.
	Kind symmetric.Kind
}

// GetRandom returns the source of entropy for seeds, ivs, and other
// cryptography operations.
func (config *Config) GetRandom() io.Reader {
	if config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// GetKind returns the cipher kind for pseudorandom generation.
func (config *Config) GetKind() symmetric.Kind {
	if config.Kind != 0 {
		return config.Kind
	}
	return DefaultKind
}

// NewSeed creates a new random seed from the configured entropy
// source.
func (config *Config) NewSeed() (block.Block, error) {
	return block.Random(config.GetRandom())
}
