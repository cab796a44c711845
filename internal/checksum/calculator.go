package checksum

import (
	"errors"
	"fmt"
)

// ErrNotDigits is returned when the weighted range contains a non-digit byte.
var ErrNotDigits = errors.New("input contains non-digit characters")

// ErrTooShort is returned when the input has fewer digits than there are weights.
var ErrTooShort = errors.New("input shorter than weight vector")

// identifierWeights are the positional weights of the 11-digit national identifier.
var identifierWeights = [...]int{9, 7, 3, 1, 9, 7, 3, 1, 9, 7}

// Weighted computes modulo-10 weighted digit checksums.
//
// Weighted is a small value type and is safe for concurrent use by multiple goroutines.
// The weight slice is never modified after construction.
type Weighted struct {
	weights []int
}

// New returns the calculator used by the national identifier: weights
// 9,7,3,1,9,7,3,1,9,7 applied to the first ten digits.
func New() Weighted {
	return Weighted{weights: identifierWeights[:]}
}

// NewWeighted creates a calculator with a custom weight vector.
func NewWeighted(weights ...int) Weighted {
	w := make([]int, len(weights))
	copy(w, weights)
	return Weighted{weights: w}
}

// Len returns the number of weighted positions.
func (c Weighted) Len() int {
	return len(c.weights)
}

// Sum computes the weighted sum over the leading Len() digits.
// Bytes beyond the weighted range are ignored.
func (c Weighted) Sum(digits string) (int, error) {
	if len(digits) < len(c.weights) {
		return 0, fmt.Errorf("%w: need %d digits, got %d", ErrTooShort, len(c.weights), len(digits))
	}

	sum := 0
	for i, w := range c.weights {
		ch := digits[i]
		if !isDigit(ch) {
			return 0, fmt.Errorf("%w: position %d", ErrNotDigits, i)
		}
		sum += w * int(ch-'0')
	}
	return sum, nil
}

// CheckDigit returns Sum(digits) mod 10.
func (c Weighted) CheckDigit(digits string) (int, error) {
	sum, err := c.Sum(digits)
	if err != nil {
		return 0, err
	}
	return sum % 10, nil
}

// Verify reports whether digits is exactly Len()+1 ASCII digits and its final
// digit equals the check digit of the preceding ones.
func (c Weighted) Verify(digits string) bool {
	if len(digits) != len(c.weights)+1 {
		return false
	}
	last := digits[len(digits)-1]
	if !isDigit(last) {
		return false
	}
	check, err := c.CheckDigit(digits)
	if err != nil {
		return false
	}
	return check == int(last-'0')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
