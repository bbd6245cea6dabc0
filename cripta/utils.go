package cripta

import (
	"fmt"
	"strings"
)

func getBit(data []uint8, bit int) bool {
	return data[bit/8]&(0x80>>(bit%8)) != 0
}

func setBit(data []uint8, bit int) {
	data[bit/8] |= 0x80 >> (bit % 8)
}

func clearBit(data []uint8, bit int) {
	data[bit/8] &^= 0x80 >> (bit % 8)
}

// XORBytes returns a ^ b. Both operands must have the same length.
func XORBytes(a []uint8, b []uint8) ([]uint8, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: len(a) = %d, len(b) = %d", ErrLengthMismatch, len(a), len(b))
	}

	result := make([]uint8, len(a))
	for i := range a {
		result[i] = a[i] ^ b[i]
	}
	return result, nil
}

// FormatBinary renders data as space separated 8-bit groups.
func FormatBinary(data []uint8) string {
	groups := make([]string, len(data))
	for i, b := range data {
		groups[i] = fmt.Sprintf("%08b", b)
	}
	return strings.Join(groups, " ")
}
