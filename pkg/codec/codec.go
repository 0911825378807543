// Package codec converts scalar values into ABI-style 32-byte words and
// produces keccak-256 content hashes over them, matching the encodings the
// on-chain contracts expect.
package codec

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
)

// WordSize is the width of one ABI word in bytes.
const WordSize = 32

// EmptyBytesHash is keccak256 of the empty byte array. HashBytes returns it
// directly for empty input instead of hashing.
const EmptyBytesHash = "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"

var (
	ErrMalformedHex     = errors.New("malformed hex input")
	ErrUnsupportedValue = errors.New("unsupported value")
	ErrOverflow         = errors.New("value does not fit in 256 bits")
)

var minInt256 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 255))

// StripHexPrefix removes a single leading "0x" if present.
func StripHexPrefix(input string) string {
	return strings.TrimPrefix(input, "0x")
}

// HexToBytes parses a hex string with or without the 0x prefix.
// Empty input and "0x" both yield an empty sequence.
func HexToBytes(input string) ([]byte, error) {
	stripped := StripHexPrefix(input)
	if stripped == "" {
		return []byte{}, nil
	}
	b, err := hexutil.Decode("0x" + stripped)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrMalformedHex, input, err)
	}
	return b, nil
}

// BytesToHex returns the 0x-prefixed lowercase hex form of b.
func BytesToHex(b []byte) string {
	return hexutil.Encode(b)
}

// EncodeArgs encodes each value as one left-padded 32-byte word and
// concatenates the words in input order.
func EncodeArgs(values ...any) ([]byte, error) {
	out := make([]byte, 0, len(values)*WordSize)
	for i, v := range values {
		n, err := ToBigInt(v)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out = append(out, math.U256Bytes(n)...)
	}
	return out, nil
}

// EncodeArgsNoPadding is EncodeArgs without word padding: every value
// contributes its minimal big-endian bytes. Negative values keep the full
// two's complement word.
func EncodeArgsNoPadding(values ...any) ([]byte, error) {
	var out []byte
	for i, v := range values {
		n, err := ToBigInt(v)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		switch {
		case n.Sign() < 0:
			out = append(out, math.U256Bytes(n)...)
		case n.Sign() == 0:
			out = append(out, 0)
		default:
			out = append(out, n.Bytes()...)
		}
	}
	return out, nil
}

// ToBigInt converts a scalar into the integer EncodeArgs would encode.
// The result is range checked against the signed/unsigned 256-bit bounds.
func ToBigInt(value any) (*big.Int, error) {
	literal, err := toLiteral(value)
	if err != nil {
		return nil, err
	}
	n, err := parseLiteral(literal)
	if err != nil {
		return nil, err
	}
	if n.Sign() >= 0 && n.BitLen() > 256 {
		return nil, fmt.Errorf("%w: %s", ErrOverflow, literal)
	}
	if n.Sign() < 0 && n.Cmp(minInt256) < 0 {
		return nil, fmt.Errorf("%w: %s", ErrOverflow, literal)
	}
	return n, nil
}

func toLiteral(value any) (string, error) {
	switch v := value.(type) {
	case bool:
		if v {
			return "1", nil
		}
		return "0", nil
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case *big.Int:
		if v == nil {
			return "", fmt.Errorf("%w: nil *big.Int", ErrUnsupportedValue)
		}
		return v.String(), nil
	case big.Int:
		return v.String(), nil
	case common.Address:
		return v.Hex(), nil
	case common.Hash:
		return v.Hex(), nil
	case string:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
	}
}

// parseLiteral reads a 0x hex literal or a signed decimal literal.
func parseLiteral(literal string) (*big.Int, error) {
	s := strings.TrimSpace(literal)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits := s[2:]
		if digits == "" {
			return new(big.Int), nil
		}
		n, ok := new(big.Int).SetString(digits, 16)
		if !ok {
			return nil, fmt.Errorf("%w: %w %q", ErrUnsupportedValue, ErrMalformedHex, literal)
		}
		return n, nil
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: not a numeric literal %q", ErrUnsupportedValue, literal)
	}
	return n, nil
}

// AddressToWord left-pads an address to a 32-byte word. The input is not
// validated; a malformed address gives a malformed word.
func AddressToWord(address string) string {
	return "0x000000000000000000000000" + StripHexPrefix(address)
}

// HashString is keccak256 over the UTF-8 bytes of input.
func HashString(input string) string {
	return crypto.Keccak256Hash([]byte(input)).Hex()
}

// HashBytes is keccak256 over the bytes encoded by input.
func HashBytes(input string) (string, error) {
	if StripHexPrefix(input) == "" {
		return EmptyBytesHash, nil
	}
	b, err := HexToBytes(input)
	if err != nil {
		return "", err
	}
	return crypto.Keccak256Hash(b).Hex(), nil
}

// AddressesAreEqual compares two addresses ignoring case and the 0x prefix.
// An empty address never equals anything.
func AddressesAreEqual(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(StripHexPrefix(a), StripHexPrefix(b))
}
