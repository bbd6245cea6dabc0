package cripta

import (
	"fmt"
)

// FeistelNetwork runs a balanced Feistel construction. It keeps no key
// material: each Process call starts its own key schedule, so one network
// can serve concurrent callers.
type FeistelNetwork struct {
	newKeySchedule KeyScheduleFactory
	roundFunction  IRoundFunction

	blockSize   int
	roundsCount int
}

func NewFeistelNetwork(
	keyScheduleFactory KeyScheduleFactory,
	roundFunctionImpl IRoundFunction,
	blockSize int,
	roundsCount int,
) (*FeistelNetwork, error) {

	if keyScheduleFactory == nil {
		return nil, fmt.Errorf("key schedule factory cannot be nil")
	}
	if roundFunctionImpl == nil {
		return nil, fmt.Errorf("round function implementation cannot be nil")
	}
	if blockSize < 0 || roundsCount < 0 {
		return nil, fmt.Errorf("block size and rounds count cannot be negative")
	}
	if blockSize%2 != 0 {
		return nil, fmt.Errorf("block size must be even for Feistel network")
	}

	fBlockSize := blockSize
	if fBlockSize == 0 {
		fBlockSize = BlockSize
	}

	fRoundsCount := roundsCount
	if fRoundsCount == 0 {
		fRoundsCount = Rounds
	}

	return &FeistelNetwork{
		newKeySchedule: keyScheduleFactory,
		roundFunction:  roundFunctionImpl,
		blockSize:      fBlockSize,
		roundsCount:    fRoundsCount,
	}, nil
}

func (fn *FeistelNetwork) BlockSize() int {
	return fn.blockSize
}

func (fn *FeistelNetwork) RoundsCount() int {
	return fn.roundsCount
}

// Process transforms one block. Both modes go through the same rounds; mode
// only picks the order in which the schedule emits round keys.
func (fn *FeistelNetwork) Process(block []uint8, key []uint8, mode Mode) ([]uint8, error) {
	if err := checkSize("block", block, fn.blockSize, ErrBlockSize); err != nil {
		return nil, err
	}

	schedule, err := fn.newKeySchedule(key, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to start key schedule: %w", err)
	}

	left, right := fn.splitBlock(block)

	for round := 0; round < fn.roundsCount; round++ {
		roundKey, err := schedule.NextRoundKey()
		if err != nil {
			return nil, fmt.Errorf("round key derivation failed in round %d: %w", round, err)
		}

		functionOutput, err := fn.roundFunction.Apply(right, roundKey)
		if err != nil {
			return nil, fmt.Errorf("round function error in round %d: %w", round, err)
		}

		newRight, err := XORBytes(left, functionOutput)
		if err != nil {
			return nil, fmt.Errorf("xor operation failed in round %d: %w", round, err)
		}

		left, right = right, newRight
	}

	// Undo the swap of the last round.
	left, right = right, left

	return fn.combineBlocks(left, right), nil
}

func (fn *FeistelNetwork) splitBlock(block []uint8) ([]uint8, []uint8) {
	half := len(block) / 2
	left := make([]uint8, half)
	copy(left, block[:half])
	right := make([]uint8, half)
	copy(right, block[half:])
	return left, right
}

func (fn *FeistelNetwork) combineBlocks(left []uint8, right []uint8) []uint8 {
	combined := make([]uint8, len(left)+len(right))
	copy(combined, left)
	copy(combined[len(left):], right)
	return combined
}
