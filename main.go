package main

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/zeroclock/toyssl/cripta"
)

/*
Encrypt one block (hex in, hex out)
go run . -e -k 133457799BBCDFF1 0123456789ABCDEF

Decrypt it again
go run . -d -k 133457799BBCDFF1 85E813540F0AB405

Text key and text block, base64 output, with round keys dumped
go run . -e -kf text -k keyisokk -if text -of base64 -v abcdefgh

Blocks and keys are exactly 8 bytes. There is no padding or chaining:
callers that need more than one block must build that themselves.
*/

var errUsage = errors.New("usage")

func main() {
	log.SetFlags(0)
	log.SetPrefix("[toyssl] ")

	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, errUsage) {
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// run parses args and processes a single block, writing the result to stdout
func run(args []string, stdout io.Writer, stderr io.Writer) error {
	flags := flag.NewFlagSet("toyssl", flag.ContinueOnError)
	flags.SetOutput(stderr)

	encryptFlag := flags.Bool("e", false, "Encrypt the block")
	decryptFlag := flags.Bool("d", false, "Decrypt the block")
	keyFlag := flags.String("k", "", "8-byte key")
	keyFormatFlag := flags.String("kf", "hex", "Key format: hex, base64, text")
	inputFormatFlag := flags.String("if", "hex", "Block format: hex, base64, text")
	outputFormatFlag := flags.String("of", "hex", "Output format: hex, base64, text")
	verboseFlag := flags.Bool("v", false, "Dump the initial permutation and round keys")

	if err := flags.Parse(args); err != nil {
		return errUsage
	}

	if *encryptFlag == *decryptFlag || flags.NArg() != 1 || *keyFlag == "" {
		fmt.Fprintln(stderr, "Usage:")
		fmt.Fprintln(stderr, "  Encrypt: toyssl -e -k <key> <block>")
		fmt.Fprintln(stderr, "  Decrypt: toyssl -d -k <key> <block>")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
		return errUsage
	}

	mode := cripta.Encrypt
	if *decryptFlag {
		mode = cripta.Decrypt
	}

	key, err := decodeInput(*keyFormatFlag, *keyFlag, cripta.KeySize)
	if err != nil {
		return fmt.Errorf("key: %w", err)
	}

	block, err := decodeInput(*inputFormatFlag, flags.Arg(0), cripta.BlockSize)
	if err != nil {
		return fmt.Errorf("block: %w", err)
	}

	if *verboseFlag {
		if err := dumpSchedule(stdout, block, key, mode); err != nil {
			return err
		}
	}

	result, err := cripta.DESBlockOperate(block, key, mode)
	if err != nil {
		return fmt.Errorf("%s failed: %w", mode, err)
	}

	output, err := encodeOutput(*outputFormatFlag, result)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, output)
	return nil
}

// decodeInput converts a command line value into exactly expectedLength bytes
func decodeInput(format string, value string, expectedLength int) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch format {
	case "hex":
		data, err = hex.DecodeString(value)
	case "base64":
		data, err = base64.StdEncoding.DecodeString(value)
	case "text":
		data = []byte(value)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", format, err)
	}

	if len(data) != expectedLength {
		return nil, fmt.Errorf("invalid length: expected %d bytes, got %d", expectedLength, len(data))
	}
	return data, nil
}

// encodeOutput renders the processed block
func encodeOutput(format string, data []byte) (string, error) {
	switch format {
	case "hex":
		return hex.EncodeToString(data), nil
	case "base64":
		return base64.StdEncoding.EncodeToString(data), nil
	case "text":
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown format: %s", format)
	}
}

// dumpSchedule prints the round keys in the order mode consumes them
func dumpSchedule(w io.Writer, block []byte, key []byte, mode cripta.Mode) error {
	roundKeys, err := cripta.RoundKeys(key, mode)
	if err != nil {
		return fmt.Errorf("key schedule: %w", err)
	}

	fmt.Fprintf(w, "Mode: %s\n", mode)
	fmt.Fprintf(w, "Block: %s\n", cripta.FormatBinary(block))
	for round, roundKey := range roundKeys {
		fmt.Fprintf(w, "K%-2d: %s\n", round+1, cripta.FormatBinary(roundKey))
	}
	return nil
}
