package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidColumn marks a numeric column whose declared precision and
// scale cannot produce a bound. Derivation stops on the first one.
var ErrInvalidColumn = errors.New("invalid column descriptor")

// Bound holds the inclusive limits implied by a declared precision and
// scale. The values are exact digit strings, never floats: precision 5
// scale 2 gives "999.99" / "-999.99".
type Bound struct {
	Upper       string
	Lower       string
	OnlyInteger bool
}

// ComputeBound builds the bound for an exact numeric column. The upper
// limit is precision nines with the decimal point placed scale digits
// from the right; precision 2 scale 2 yields ".99".
func ComputeBound(precision, scale int) (Bound, error) {
	if precision <= 0 {
		return Bound{}, fmt.Errorf("%w: precision must be positive, got %d", ErrInvalidColumn, precision)
	}
	if scale < 0 {
		return Bound{}, fmt.Errorf("%w: scale must not be negative, got %d", ErrInvalidColumn, scale)
	}
	if scale > precision {
		return Bound{}, fmt.Errorf("%w: scale %d exceeds precision %d", ErrInvalidColumn, scale, precision)
	}

	digits := strings.Repeat("9", precision)
	upper := digits
	if scale > 0 {
		cut := precision - scale
		upper = digits[:cut] + "." + digits[cut:]
	}

	return Bound{
		Upper:       upper,
		Lower:       "-" + upper,
		OnlyInteger: scale == 0,
	}, nil
}
