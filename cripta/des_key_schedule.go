package cripta

import (
	"fmt"
)

const (
	registerSize = 7
	roundKeySize = 6
)

// DESKeySchedule derives the sixteen 48-bit round keys of one cipher call.
//
// The 56-bit register produced by PC-1 is treated as two 28-bit halves that
// are rotated independently. Encryption rotates left and then applies PC-2;
// decryption applies PC-2 first and then rotates right by the mirrored
// amount, so it produces the encryption keys in reverse order without
// storing them.
type DESKeySchedule struct {
	register [registerSize]uint8
	mode     Mode
	round    int
}

func NewDESKeySchedule(masterKey []uint8, mode Mode) (*DESKeySchedule, error) {
	if err := checkSize("key", masterKey, KeySize, ErrKeySize); err != nil {
		return nil, err
	}
	if !mode.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))
	}

	ks := &DESKeySchedule{mode: mode}
	if err := permuteInto(ks.register[:], masterKey, pc1[:]); err != nil {
		return nil, fmt.Errorf("PC1 permutation failed: %w", err)
	}
	return ks, nil
}

func newDESKeySchedule(masterKey []uint8, mode Mode) (IKeySchedule, error) {
	ks, err := NewDESKeySchedule(masterKey, mode)
	if err != nil {
		return nil, err
	}
	return ks, nil
}

func (ks *DESKeySchedule) NextRoundKey() ([]uint8, error) {
	if ks.round >= Rounds {
		return nil, fmt.Errorf("%w: all %d round keys already derived", ErrScheduleExhausted, Rounds)
	}
	round := ks.round

	var err error
	if ks.mode == Encrypt {
		if err = ks.rotate(keyShifts[round], RotateKeyLeft); err != nil {
			return nil, fmt.Errorf("left rotation failed in round %d: %w", round, err)
		}
	}

	roundKey := make([]uint8, roundKeySize)
	if err = permuteInto(roundKey, ks.register[:], pc2[:]); err != nil {
		return nil, fmt.Errorf("PC2 permutation failed in round %d: %w", round, err)
	}

	if ks.mode == Decrypt {
		if err = ks.rotate(keyShifts[Rounds-1-round], RotateKeyRight); err != nil {
			return nil, fmt.Errorf("right rotation failed in round %d: %w", round, err)
		}
	}

	ks.round++
	return roundKey, nil
}

func (ks *DESKeySchedule) rotate(times int, rotateOnce func([]uint8) error) error {
	for i := 0; i < times; i++ {
		if err := rotateOnce(ks.register[:]); err != nil {
			return err
		}
	}
	return nil
}

// RoundKeys returns every round key of masterKey in the order mode uses them.
func RoundKeys(masterKey []uint8, mode Mode) ([][]uint8, error) {
	ks, err := NewDESKeySchedule(masterKey, mode)
	if err != nil {
		return nil, err
	}

	roundKeys := make([][]uint8, 0, Rounds)
	for round := 0; round < Rounds; round++ {
		roundKey, err := ks.NextRoundKey()
		if err != nil {
			return nil, err
		}
		roundKeys = append(roundKeys, roundKey)
	}
	return roundKeys, nil
}

// RotateKeyLeft rotates both 28-bit halves of a 7-byte key register left by
// one bit. The halves meet in the middle of byte 3, so each carry is moved
// separately:
//
//	in  : 01100111 01000111 00011100 0010|1001 00010110 10111101 01011000
//	out : 11001110 10001110 00111000 0100|0010 00101101 01111010 10110001
func RotateKeyLeft(reg []uint8) error {
	if err := checkSize("key register", reg, registerSize, ErrRegisterSize); err != nil {
		return err
	}

	carryLeft := (reg[0] & 0x80) >> 3
	reg[0] = reg[0]<<1 | reg[1]>>7
	reg[1] = reg[1]<<1 | reg[2]>>7
	reg[2] = reg[2]<<1 | reg[3]>>7

	carryRight := (reg[3] & 0x08) >> 3
	reg[3] = (reg[3]<<1|reg[4]>>7)&^0x10 | carryLeft

	reg[4] = reg[4]<<1 | reg[5]>>7
	reg[5] = reg[5]<<1 | reg[6]>>7
	reg[6] = reg[6]<<1 | carryRight
	return nil
}

// RotateKeyRight is the inverse of RotateKeyLeft.
func RotateKeyRight(reg []uint8) error {
	if err := checkSize("key register", reg, registerSize, ErrRegisterSize); err != nil {
		return err
	}

	carryRight := (reg[6] & 0x01) << 3
	reg[6] = reg[6]>>1 | reg[5]<<7
	reg[5] = reg[5]>>1 | reg[4]<<7
	reg[4] = reg[4]>>1 | reg[3]<<7

	carryLeft := (reg[3] & 0x10) << 3
	reg[3] = (reg[3]>>1|reg[2]<<7)&^0x08 | carryRight

	reg[2] = reg[2]>>1 | reg[1]<<7
	reg[1] = reg[1]>>1 | reg[0]<<7
	reg[0] = reg[0]>>1 | carryLeft
	return nil
}
