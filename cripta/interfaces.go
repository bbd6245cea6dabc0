package cripta

// Mode selects the direction of a cipher call. Encryption and decryption
// share the permutation network and differ only in the order the key
// schedule hands out round keys.
type Mode int

const (
	Encrypt Mode = iota
	Decrypt
)

func (m Mode) String() string {
	switch m {
	case Encrypt:
		return "Encrypt"
	case Decrypt:
		return "Decrypt"
	default:
		return "Unknown"
	}
}

func (m Mode) valid() bool {
	return m == Encrypt || m == Decrypt
}

// IKeySchedule yields round keys one at a time, in the order the network
// consumes them.
type IKeySchedule interface {
	NextRoundKey() ([]uint8, error)
}

// KeyScheduleFactory starts a fresh schedule for a single cipher call.
type KeyScheduleFactory func(masterKey []uint8, mode Mode) (IKeySchedule, error)

type IRoundFunction interface {
	Apply(inputBlock []uint8, roundKey []uint8) ([]uint8, error)
}

type ISymmetricCipher interface {
	SetKey(key []uint8) error
	EncryptBlock(plainBlock []uint8) ([]uint8, error)
	DecryptBlock(cipherBlock []uint8) ([]uint8, error)
}
