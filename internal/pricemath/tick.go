package pricemath

import "fmt"

// AlignTick rounds tick down onto the spacing grid, then clamps it to the
// usable range of that grid.
func AlignTick(tick, spacing int) (int, error) {
	if spacing <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTickSpacing, spacing)
	}

	aligned := floorToSpacing(tick, spacing)
	minUsable := -floorToSpacing(-MinTick, spacing)
	maxUsable := floorToSpacing(MaxTick, spacing)
	if aligned < minUsable {
		return minUsable, nil
	}
	if aligned > maxUsable {
		return maxUsable, nil
	}
	return aligned, nil
}

func floorToSpacing(tick, spacing int) int {
	q := tick / spacing
	if tick%spacing != 0 && tick < 0 {
		q--
	}
	return q * spacing
}
