//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package symmetric

import (
	"crypto/cipher"
)

// Electronic codebook (ECB) mode. Each block is encrypted
// independently of the others.

type ecb struct {
	b         cipher.Block
	blockSize int
}

type ecbEncrypter ecb

func newECBEncrypter(b cipher.Block) cipher.BlockMode {
	return &ecbEncrypter{
		b:         b,
		blockSize: b.BlockSize(),
	}
}

func (x *ecbEncrypter) BlockSize() int { return x.blockSize }

func (x *ecbEncrypter) CryptBlocks(dst, src []byte) {
	if len(src)%x.blockSize != 0 {
		panic("symmetric/ecb: input not full blocks")
	}
	if len(dst) < len(src) {
		panic("symmetric/ecb: output smaller than input")
	}
	for len(src) > 0 {
		x.b.Encrypt(dst[:x.blockSize], src[:x.blockSize])
		src = src[x.blockSize:]
		dst = dst[x.blockSize:]
	}
}

type ecbDecrypter ecb

func newECBDecrypter(b cipher.Block) cipher.BlockMode {
	return &ecbDecrypter{
		b:         b,
		blockSize: b.BlockSize(),
	}
}

func (x *ecbDecrypter) BlockSize() int { return x.blockSize }

func (x *ecbDecrypter) CryptBlocks(dst, src []byte) {
	if len(src)%x.blockSize != 0 {
		panic("symmetric/ecb: input not full blocks")
	}
	if len(dst) < len(src) {
		panic("symmetric/ecb: output smaller than input")
	}
	for len(src) > 0 {
		x.b.Decrypt(dst[:x.blockSize], src[:x.blockSize])
		src = src[x.blockSize:]
		dst = dst[x.blockSize:]
	}
}
