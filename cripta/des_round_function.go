package cripta

import "fmt"

const halfSize = BlockSize / 2

// DESRoundFunction is the Feistel function f(R, K): expansion, key mixing,
// S-box substitution and the P permutation.
type DESRoundFunction struct{}

func (DESRoundFunction) Apply(inputBlock []uint8, roundKey []uint8) ([]uint8, error) {
	if err := checkSize("round input", inputBlock, halfSize, ErrLengthMismatch); err != nil {
		return nil, err
	}

	expanded, err := PermuteBits(inputBlock, expansion[:])
	if err != nil {
		return nil, fmt.Errorf("expansion failed: %w", err)
	}

	mixed, err := XORBytes(expanded, roundKey)
	if err != nil {
		return nil, fmt.Errorf("key mixing failed: %w", err)
	}

	substituted := substitute(mixed)

	output, err := PermuteBits(substituted[:], roundPermutation[:])
	if err != nil {
		return nil, fmt.Errorf("P permutation failed: %w", err)
	}
	return output, nil
}

// substitute feeds eight 6-bit groups of a 48-bit value through the S-boxes
// and packs the 4-bit results two per byte, high nibble first.
func substitute(mixed []uint8) [halfSize]uint8 {
	var v uint64
	for _, b := range mixed[:roundKeySize] {
		v = v<<8 | uint64(b)
	}

	var out [halfSize]uint8
	for j := range sboxes {
		group := (v >> (42 - 6*j)) & 0x3F
		s := sboxes[j][group]
		if j%2 == 0 {
			out[j/2] = s << 4
		} else {
			out[j/2] |= s
		}
	}
	return out
}
