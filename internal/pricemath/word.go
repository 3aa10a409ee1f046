package pricemath

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// Word converts x to a 256-bit word. Negative values and values of 2^256 or
// more are rejected.
func Word(x *big.Int) (*uint256.Int, error) {
	if x == nil || x.Sign() < 0 {
		return nil, fmt.Errorf("%w: %v", ErrOverflow, x)
	}
	w, overflow := uint256.FromBig(x)
	if overflow {
		return nil, fmt.Errorf("%w: %d bits", ErrOverflow, x.BitLen())
	}
	return w, nil
}
