package cripta

import (
	"crypto/cipher"
	"fmt"
)

const (
	BlockSize = 8 // 64-bit block
	KeySize   = 8 // 56 key bits plus 8 parity bits, which PC-1 drops
	Rounds    = 16
)

var desNetwork = func() *FeistelNetwork {
	feistel, err := NewFeistelNetwork(newDESKeySchedule, DESRoundFunction{}, BlockSize, Rounds)
	if err != nil {
		panic(err)
	}
	return feistel
}()

// DESBlockOperate encrypts or decrypts a single 8-byte block under an 8-byte
// key. It holds no state between calls and is safe for concurrent use.
func DESBlockOperate(block []uint8, key []uint8, mode Mode) ([]uint8, error) {
	if err := checkSize("block", block, BlockSize, ErrBlockSize); err != nil {
		return nil, err
	}
	if err := checkSize("key", key, KeySize, ErrKeySize); err != nil {
		return nil, err
	}
	if !mode.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))
	}

	permuted, err := PermuteBits(block, ip[:])
	if err != nil {
		return nil, fmt.Errorf("IP permutation failed: %w", err)
	}

	feistelOutput, err := desNetwork.Process(permuted, key, mode)
	if err != nil {
		return nil, fmt.Errorf("feistel %s failed: %w", mode, err)
	}

	result, err := PermuteBits(feistelOutput, fp[:])
	if err != nil {
		return nil, fmt.Errorf("FP permutation failed: %w", err)
	}
	return result, nil
}

// DESCipher binds a key to DESBlockOperate.
type DESCipher struct {
	currentKey []uint8
}

func NewDESCipher() (*DESCipher, error) {
	return &DESCipher{}, nil
}

func (des *DESCipher) SetKey(key []uint8) error {
	if err := checkSize("key", key, KeySize, ErrKeySize); err != nil {
		return err
	}

	des.currentKey = make([]uint8, len(key))
	copy(des.currentKey, key)
	return nil
}

func (des *DESCipher) EncryptBlock(plainBlock []uint8) ([]uint8, error) {
	if des.currentKey == nil {
		return nil, fmt.Errorf("key not set. Call SetKey() before encryption")
	}
	return DESBlockOperate(plainBlock, des.currentKey, Encrypt)
}

func (des *DESCipher) DecryptBlock(cipherBlock []uint8) ([]uint8, error) {
	if des.currentKey == nil {
		return nil, fmt.Errorf("key not set. Call SetKey() before decryption")
	}
	return DESBlockOperate(cipherBlock, des.currentKey, Decrypt)
}

type desBlock struct {
	key [KeySize]uint8
}

// NewCipher returns a cipher.Block for key so the cipher can be handed to
// code written against crypto/cipher.
func NewCipher(key []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}

	c := &desBlock{}
	copy(c.key[:], key)
	return c, nil
}

func (c *desBlock) BlockSize() int { return BlockSize }

func (c *desBlock) Encrypt(dst, src []byte) { c.crypt(dst, src, Encrypt) }

func (c *desBlock) Decrypt(dst, src []byte) { c.crypt(dst, src, Decrypt) }

func (c *desBlock) crypt(dst, src []byte, mode Mode) {
	if len(src) < BlockSize {
		panic("cripta: input not full block")
	}
	if len(dst) < BlockSize {
		panic("cripta: output not full block")
	}

	out, err := DESBlockOperate(src[:BlockSize], c.key[:], mode)
	if err != nil {
		panic("cripta: " + err.Error())
	}
	copy(dst, out)
}
