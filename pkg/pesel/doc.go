// Package pesel validates and decodes 11-digit national identification numbers.
//
// An identifier packs a birth date, a serial number, the holder's sex and a
// check digit into eleven decimal digits:
//
//	Y Y C M D D S S S X K
//	| | | | | | | | | | +-- check digit (weighted sum mod 10)
//	| | | | | | | | | +---- sex: even = female, odd = male
//	| | | | | | +-+-+------ serial
//	| | | | +-+------------ day of month
//	| | | +---------------- month units digit
//	| | +------------------ century selector (century + month tens parity)
//	+-+-------------------- two-digit year
//
// # Century Selector
//
// The third digit encodes both the century and whether the month is 1–9 or
// 10–12:
//
//	8, 9 -> 1800s    0, 1 -> 1900s    2, 3 -> 2000s
//	4, 5 -> 2100s    6, 7 -> 2200s
//
// An even selector means the month is the fourth digit itself; an odd selector
// means the month is ten plus the fourth digit.
//
// # Entry Points
//
//   - IsValid: structural check only (length, digits, checksum)
//   - TryParse: best-effort decode, reports failure as false
//   - Parse: strict decode, returns ErrMissingInput or ErrMalformedInput
//
// Every function is pure and safe for concurrent use by multiple goroutines.
package pesel
