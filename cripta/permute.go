package cripta

import "fmt"

// PermuteBits builds a new bit string whose i-th bit (MSB first) is bit
// rule[i] of value. Positions in rule are 1-indexed.
//
// The output is ceil(len(rule)/8) bytes long; when len(rule) is not a
// multiple of 8 the unused low bits of the last byte are zero.
func PermuteBits(value []uint8, rule []int) ([]uint8, error) {
	result := make([]uint8, (len(rule)+7)/8)
	if err := permuteInto(result, value, rule); err != nil {
		return nil, err
	}
	return result, nil
}

// permuteInto is PermuteBits writing into a caller-owned buffer, so the
// fixed-size arrays of the cipher can be filled without an extra copy.
func permuteInto(dst []uint8, value []uint8, rule []int) error {
	sourceBits := len(value) * 8
	for _, pos := range rule {
		if pos < 1 || pos > sourceBits {
			return fmt.Errorf("%w: position %d, source has %d bits", ErrIndexOutOfRange, pos, sourceBits)
		}
	}
	if len(dst)*8 < len(rule) {
		return &SizeError{What: "permutation output", Expected: (len(rule) + 7) / 8, Actual: len(dst), Kind: ErrLengthMismatch}
	}

	for i, pos := range rule {
		if getBit(value, pos-1) {
			setBit(dst, i)
		} else {
			clearBit(dst, i)
		}
	}
	return nil
}
