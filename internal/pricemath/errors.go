package pricemath

import "errors"

var (
	// ErrDomain is returned for a non-positive or non-finite price or sqrt price.
	ErrDomain = errors.New("value outside function domain")
	// ErrDivisionByZero is returned for a zero-width price range.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrPriceOutOfRange is returned by Mint when the current price is outside [low, upp].
	ErrPriceOutOfRange = errors.New("current price outside position range")
	// ErrOverflow is returned when a value does not fit a 256-bit word.
	ErrOverflow = errors.New("value overflows uint256")
	// ErrInvalidTickSpacing is returned for a non-positive tick spacing.
	ErrInvalidTickSpacing = errors.New("tick spacing must be positive")
)
