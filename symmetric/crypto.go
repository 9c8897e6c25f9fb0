//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package symmetric implements AES-128 and SM4 block ciphers in the
// ECB, CBC, and CTR modes of operation.
package symmetric

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/emmansun/gmsm/sm4"
	"github.com/markkurossi/prg/block"
)

// BlockSize defines the cipher block size in bytes for all supported
// kinds.
const BlockSize = block.Size

// Crypto implements a keyed cipher for one cipher kind. It owns
// separate encryption and decryption cipher contexts which are
// released with Close. Each Encrypt and Decrypt call is independent:
// the CBC chaining starts from the iv and the CTR counter register
// starts from the iv on every call. Crypto is not safe for concurrent
// use.
type Crypto struct {
	kind Kind
	key  block.Data
	iv   block.Data
	enc  cipher.Block
	dec  cipher.Block
}

// New creates a new cipher for the kind with the key and iv. Both key
// and iv must be BlockSize bytes long. The iv is unused in the ECB
// mode, the chaining vector in the CBC mode, and the initial counter
// register in the CTR mode.
func New(kind Kind, key, iv []byte) (*Crypto, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unsupported cipher kind %v",
			ErrConfiguration, kind)
	}
	if len(key) != BlockSize {
		return nil, fmt.Errorf("%w: invalid key size %d",
			ErrConfiguration, len(key))
	}
	if len(iv) != BlockSize {
		return nil, fmt.Errorf("%w: invalid iv size %d",
			ErrConfiguration, len(iv))
	}

	c := &Crypto{
		kind: kind,
	}
	copy(c.key[:], key)
	copy(c.iv[:], iv)

	var err error
	c.enc, err = newCipher(kind.Algorithm(), key)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.dec, err = newCipher(kind.Algorithm(), key)
	if err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// NewBlocks creates a new cipher for the kind with the key and iv
// blocks.
func NewBlocks(kind Kind, key, iv block.Block) (*Crypto, error) {
	var k, i block.Data
	return New(kind, key.Bytes(&k), iv.Bytes(&i))
}

// NewAESCBC creates an AES-128 cipher in the CBC mode.
func NewAESCBC(key, iv block.Block) (*Crypto, error) {
	return NewBlocks(AES128CBC, key, iv)
}

// NewSM4CBC creates an SM4 cipher in the CBC mode.
func NewSM4CBC(key, iv block.Block) (*Crypto, error) {
	return NewBlocks(SM4CBC, key, iv)
}

func newCipher(alg Algorithm, key []byte) (cipher.Block, error) {
	var b cipher.Block
	var err error

	switch alg {
	case AES128:
		b, err = aes.NewCipher(key)
	case SM4:
		b, err = sm4.NewCipher(key)
	default:
		return nil, fmt.Errorf("%w: unsupported algorithm %v",
			ErrConfiguration, alg)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return b, nil
}

// Kind returns the cipher kind.
func (c *Crypto) Kind() Kind {
	return c.kind
}

// Close releases the cipher contexts and clears the key material.
// The cipher can't be used after it is closed. Close can be called
// multiple times.
func (c *Crypto) Close() {
	c.enc = nil
	c.dec = nil
	clear(c.key[:])
	clear(c.iv[:])
}

// Encrypt encrypts src into dst. The buffers must have the same
// length and, in the ECB and CBC modes, their length must be a
// multiple of BlockSize. The dst and src can be the same buffer but
// they must not overlap otherwise.
func (c *Crypto) Encrypt(dst, src []byte) error {
	if err := c.check(dst, src); err != nil {
		return err
	}
	return c.crypt(dst, src, true)
}

// Decrypt decrypts src into dst. The buffer requirements are the
// same as with Encrypt.
func (c *Crypto) Decrypt(dst, src []byte) error {
	if err := c.check(dst, src); err != nil {
		return err
	}
	return c.crypt(dst, src, false)
}

// EncryptBlock encrypts the block b.
func (c *Crypto) EncryptBlock(b block.Block) (block.Block, error) {
	var buf block.Data
	b.GetData(&buf)
	if err := c.Encrypt(buf[:], buf[:]); err != nil {
		return block.Block{}, err
	}
	var result block.Block
	result.SetData(&buf)
	return result, nil
}

// DecryptBlock decrypts the block b.
func (c *Crypto) DecryptBlock(b block.Block) (block.Block, error) {
	var buf block.Data
	b.GetData(&buf)
	if err := c.Decrypt(buf[:], buf[:]); err != nil {
		return block.Block{}, err
	}
	var result block.Block
	result.SetData(&buf)
	return result, nil
}

// EncryptBlocks encrypts the src blocks into dst.
func (c *Crypto) EncryptBlocks(dst, src []block.Block) error {
	return c.cryptBlocks(dst, src, true)
}

// DecryptBlocks decrypts the src blocks into dst.
func (c *Crypto) DecryptBlocks(dst, src []block.Block) error {
	return c.cryptBlocks(dst, src, false)
}

func (c *Crypto) cryptBlocks(dst, src []block.Block, encrypt bool) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: block count mismatch: %d != %d",
			ErrPrecondition, len(dst), len(src))
	}
	if c.enc == nil {
		return fmt.Errorf("%w: cipher closed", ErrCrypto)
	}
	buf := make([]byte, len(src)*BlockSize)
	block.Encode(buf, src)
	if err := c.crypt(buf, buf, encrypt); err != nil {
		return err
	}
	block.Decode(dst, buf)
	return nil
}

func (c *Crypto) check(dst, src []byte) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: buffer length mismatch: %d != %d",
			ErrPrecondition, len(dst), len(src))
	}
	if c.kind.Mode().Blocked() && len(src)%BlockSize != 0 {
		return fmt.Errorf("%w: %v: input not full blocks: %d",
			ErrPrecondition, c.kind, len(src))
	}
	if c.enc == nil || c.dec == nil {
		return fmt.Errorf("%w: cipher closed", ErrCrypto)
	}
	return nil
}

func (c *Crypto) crypt(dst, src []byte, encrypt bool) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v: %v", ErrCrypto, c.kind, r)
		}
	}()
	if len(src) == 0 {
		return nil
	}

	switch c.kind.Mode() {
	case ECB:
		if encrypt {
			newECBEncrypter(c.enc).CryptBlocks(dst, src)
		} else {
			newECBDecrypter(c.dec).CryptBlocks(dst, src)
		}

	case CBC:
		if encrypt {
			cipher.NewCBCEncrypter(c.enc, c.iv[:]).CryptBlocks(dst, src)
		} else {
			cipher.NewCBCDecrypter(c.dec, c.iv[:]).CryptBlocks(dst, src)
		}

	case CTR:
		// CTR decryption is the same keystream XOR as encryption.
		if encrypt {
			cipher.NewCTR(c.enc, c.iv[:]).XORKeyStream(dst, src)
		} else {
			cipher.NewCTR(c.dec, c.iv[:]).XORKeyStream(dst, src)
		}

	default:
		return fmt.Errorf("%w: unsupported mode %v",
			ErrConfiguration, c.kind.Mode())
	}
	return nil
}
