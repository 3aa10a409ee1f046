package model

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/math"
)

// ParseBigInt parses a non-negative decimal or 0x-prefixed hex integer of at
// most 256 bits.
func ParseBigInt(input string) (*big.Int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty integer")
	}
	value, ok := math.ParseBig256(input)
	if !ok || value.Sign() < 0 {
		return nil, fmt.Errorf("invalid integer: %s", input)
	}
	return value, nil
}
