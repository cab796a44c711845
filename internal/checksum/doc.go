// Package checksum implements positional weighted checksums over decimal digits.
//
// The national identifier carries a self-check digit in its last position:
//
//	check = (9*d0 + 7*d1 + 3*d2 + 1*d3 + 9*d4 + 7*d5 + 3*d6 + 1*d7 + 9*d8 + 7*d9) mod 10
//
// and the number is well formed only when check equals d10.
//
// # Example Usage
//
//	calc := checksum.New()
//	digit, err := calc.CheckDigit("4405140135") // 9
//	ok := calc.Verify("44051401359")             // true
//
// # Thread Safety
//
// Weighted is safe for concurrent use by multiple goroutines.
package checksum
