package cripta

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func mustHex(t testing.TB, s string) []uint8 {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

func TestRotateKeyLeft(t *testing.T) {
	// in  : 01100111 01000111 00011100 00101001 00010110 10111101 01011000
	// out : 11001110 10001110 00111000 01000010 00101101 01111010 10110001
	reg := []uint8{103, 71, 28, 41, 22, 189, 88}
	if err := RotateKeyLeft(reg); err != nil {
		t.Fatalf("RotateKeyLeft: %v", err)
	}
	if want := []uint8{206, 142, 56, 66, 45, 122, 177}; !bytes.Equal(reg, want) {
		t.Errorf("got %v, want %v", reg, want)
	}
}

func TestRotateKeyRight(t *testing.T) {
	// in  : 01100111 01000111 00011100 00111001 00010110 10111101 01011000
	// out : 10110011 10100011 10001110 00010100 10001011 01011110 10101100
	reg := []uint8{103, 71, 28, 57, 22, 189, 88}
	if err := RotateKeyRight(reg); err != nil {
		t.Fatalf("RotateKeyRight: %v", err)
	}
	if want := []uint8{179, 163, 142, 20, 139, 94, 172}; !bytes.Equal(reg, want) {
		t.Errorf("got %v, want %v", reg, want)
	}
}

func TestRotateKeyFullCycle(t *testing.T) {
	original := []uint8{0x80, 0x00, 0x00, 0x08, 0x00, 0x00, 0x01}
	reg := append([]uint8(nil), original...)

	for i := 0; i < 28; i++ {
		if err := RotateKeyLeft(reg); err != nil {
			t.Fatalf("RotateKeyLeft: %v", err)
		}
		if i < 27 && bytes.Equal(reg, original) {
			t.Fatalf("register repeated after %d rotations", i+1)
		}
	}
	if !bytes.Equal(reg, original) {
		t.Fatalf("28 left rotations gave %08b, want %08b", reg, original)
	}

	if err := RotateKeyLeft(reg); err != nil {
		t.Fatalf("RotateKeyLeft: %v", err)
	}
	if err := RotateKeyRight(reg); err != nil {
		t.Fatalf("RotateKeyRight: %v", err)
	}
	if !bytes.Equal(reg, original) {
		t.Errorf("right rotation does not undo left rotation: %08b", reg)
	}
}

func TestRotateKeyWrongSize(t *testing.T) {
	for _, size := range []int{0, 6, 8} {
		reg := make([]uint8, size)
		for name, rotate := range map[string]func([]uint8) error{
			"left":  RotateKeyLeft,
			"right": RotateKeyRight,
		} {
			err := rotate(reg)
			if !errors.Is(err, ErrRegisterSize) {
				t.Errorf("%s rotation of %d bytes: expected ErrRegisterSize, got %v", name, size, err)
			}
		}
	}
}

func TestRoundKeysKnownAnswer(t *testing.T) {
	key := mustHex(t, "133457799BBCDFF1")

	roundKeys, err := RoundKeys(key, Encrypt)
	if err != nil {
		t.Fatalf("RoundKeys: %v", err)
	}
	if len(roundKeys) != Rounds {
		t.Fatalf("got %d round keys, want %d", len(roundKeys), Rounds)
	}
	if want := mustHex(t, "1B02EFFC7072"); !bytes.Equal(roundKeys[0], want) {
		t.Errorf("K1 = %x, want %x", roundKeys[0], want)
	}
	if want := mustHex(t, "CB3D8B0E17F5"); !bytes.Equal(roundKeys[15], want) {
		t.Errorf("K16 = %x, want %x", roundKeys[15], want)
	}
}

func TestRoundKeysDecryptOrderIsReversed(t *testing.T) {
	keys := []string{"133457799BBCDFF1", "0000000000000000", "6B657969736F6B6B", "FEDCBA9876543210"}

	for _, k := range keys {
		t.Run(k, func(t *testing.T) {
			key := mustHex(t, k)

			forward, err := RoundKeys(key, Encrypt)
			if err != nil {
				t.Fatalf("encrypt schedule: %v", err)
			}
			backward, err := RoundKeys(key, Decrypt)
			if err != nil {
				t.Fatalf("decrypt schedule: %v", err)
			}

			for round := 0; round < Rounds; round++ {
				if !bytes.Equal(backward[round], forward[Rounds-1-round]) {
					t.Errorf("decrypt round %d: got %x, want %x", round, backward[round], forward[Rounds-1-round])
				}
			}
		})
	}
}

func TestKeyScheduleExhausted(t *testing.T) {
	ks, err := NewDESKeySchedule(mustHex(t, "133457799BBCDFF1"), Encrypt)
	if err != nil {
		t.Fatalf("NewDESKeySchedule: %v", err)
	}
	for round := 0; round < Rounds; round++ {
		if _, err := ks.NextRoundKey(); err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
	}
	if _, err := ks.NextRoundKey(); !errors.Is(err, ErrScheduleExhausted) {
		t.Errorf("expected ErrScheduleExhausted, got %v", err)
	}
}

func TestNewDESKeyScheduleRejectsBadInput(t *testing.T) {
	if _, err := NewDESKeySchedule([]uint8("short"), Encrypt); !errors.Is(err, ErrKeySize) {
		t.Errorf("short key: expected ErrKeySize, got %v", err)
	}
	if _, err := NewDESKeySchedule([]uint8("keyisokk"), Mode(7)); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("bad mode: expected ErrInvalidMode, got %v", err)
	}
}

func TestParityBitsAreIgnored(t *testing.T) {
	key := mustHex(t, "133457799BBCDFF1")
	flipped := make([]uint8, len(key))
	for i, b := range key {
		flipped[i] = b ^ 0x01
	}

	a, err := RoundKeys(key, Encrypt)
	if err != nil {
		t.Fatalf("RoundKeys: %v", err)
	}
	b, err := RoundKeys(flipped, Encrypt)
	if err != nil {
		t.Fatalf("RoundKeys: %v", err)
	}
	for round := range a {
		if !bytes.Equal(a[round], b[round]) {
			t.Fatalf("round %d key depends on parity bits", round)
		}
	}
}
