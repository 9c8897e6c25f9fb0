//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package symmetric

import (
	"fmt"
	"strings"
)

// Algorithm defines the block cipher algorithm.
type Algorithm int

// Supported algorithms.
const (
	AES128 Algorithm = iota + 1
	SM4
)

var algorithms = map[Algorithm]string{
	AES128: "AES128",
	SM4:    "SM4",
}

func (a Algorithm) String() string {
	name, ok := algorithms[a]
	if ok {
		return name
	}
	return fmt.Sprintf("{Algorithm %d}", a)
}

// Mode defines the block cipher mode of operation.
type Mode int

// Supported modes.
const (
	ECB Mode = iota + 1
	CBC
	CTR
)

var modes = map[Mode]string{
	ECB: "ECB",
	CBC: "CBC",
	CTR: "CTR",
}

func (m Mode) String() string {
	name, ok := modes[m]
	if ok {
		return name
	}
	return fmt.Sprintf("{Mode %d}", m)
}

// Blocked tests if the mode requires block-aligned input.
func (m Mode) Blocked() bool {
	return m == ECB || m == CBC
}

// Kind defines the cipher algorithm and mode pair. The zero Kind is
// not a valid kind.
type Kind int

// Supported cipher kinds.
const (
	AES128ECB Kind = iota + 1
	AES128CBC
	AES128CTR
	SM4ECB
	SM4CBC
	SM4CTR
)

// Kinds lists all supported cipher kinds.
var Kinds = []Kind{
	AES128ECB, AES128CBC, AES128CTR,
	SM4ECB, SM4CBC, SM4CTR,
}

type kindInfo struct {
	name      string
	algorithm Algorithm
	mode      Mode
}

var kinds = map[Kind]kindInfo{
	AES128ECB: {"AES128_ECB", AES128, ECB},
	AES128CBC: {"AES128_CBC", AES128, CBC},
	AES128CTR: {"AES128_CTR", AES128, CTR},
	SM4ECB:    {"SM4_ECB", SM4, ECB},
	SM4CBC:    {"SM4_CBC", SM4, CBC},
	SM4CTR:    {"SM4_CTR", SM4, CTR},
}

// NewKind returns the kind for the algorithm and mode.
func NewKind(a Algorithm, m Mode) (Kind, error) {
	for k, info := range kinds {
		if info.algorithm == a && info.mode == m {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unsupported cipher %v-%v",
		ErrConfiguration, a, m)
}

// ParseKind parses the kind name. The name matching is case
// insensitive and accepts both '_' and '-' as the separator.
func ParseKind(name string) (Kind, error) {
	n := strings.ReplaceAll(strings.ToUpper(name), "-", "_")
	for k, info := range kinds {
		if info.name == n {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown cipher kind '%s'",
		ErrConfiguration, name)
}

// Valid tests if the kind is a supported cipher kind.
func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

// Algorithm returns the kind's cipher algorithm.
func (k Kind) Algorithm() Algorithm {
	return kinds[k].algorithm
}

// Mode returns the kind's mode of operation.
func (k Kind) Mode() Mode {
	return kinds[k].mode
}

func (k Kind) String() string {
	info, ok := kinds[k]
	if ok {
		return info.name
	}
	return fmt.Sprintf("{Kind %d}", k)
}
