//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package symmetric

import (
	"errors"
)

// ErrConfiguration signals an unsupported cipher kind or an invalid
// key or iv.
var ErrConfiguration = errors.New("symmetric: invalid configuration")

// ErrCrypto signals a cipher backend failure.
var ErrCrypto = errors.New("symmetric: crypto failure")

// ErrPrecondition signals invalid input or output buffers.
var ErrPrecondition = errors.New("symmetric: precondition failed")
