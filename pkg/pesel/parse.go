package pesel

import (
	"errors"
	"time"

	"github.com/vvka-141/pesel/internal/checksum"
)

// Length is the number of digits in an identifier.
const Length = 11

// Rejection reasons. They surface only as the Reason text of a ParseError;
// callers match on ErrMalformedInput.
var (
	errLength       = errors.New("must be exactly 11 characters")
	errNotDigits    = errors.New("must contain only digits 0-9")
	errChecksum     = errors.New("check digit does not match")
	errMonthRange   = errors.New("month out of range")
	errDayRange     = errors.New("day out of range")
	errCalendarDate = errors.New("not a calendar date")
	errPrefixLength = errors.New("prefix must be exactly 10 digits")
)

var weights = checksum.New()

// IsValid reports whether value is exactly 11 ASCII digits whose check digit
// matches. It does not decode the birth date; use TryParse for that.
func IsValid(value string) bool {
	return checkStructure(value) == nil
}

// TryParse decodes value. It returns false when value is not valid or when its
// date fields do not form a real calendar date.
func TryParse(value string) (Identifier, bool) {
	if checkStructure(value) != nil {
		return Identifier{}, false
	}
	id, err := decode(value)
	if err != nil {
		return Identifier{}, false
	}
	return id, true
}

// Parse decodes value. An empty value fails with ErrMissingInput; any value
// TryParse would reject fails with ErrMalformedInput. The returned error is a
// *ParseError in both cases.
func Parse(value string) (Identifier, error) {
	if value == "" {
		return Identifier{}, &ParseError{Err: ErrMissingInput}
	}
	if err := checkStructure(value); err != nil {
		return Identifier{}, malformed(value, err)
	}
	id, err := decode(value)
	if err != nil {
		return Identifier{}, malformed(value, err)
	}
	return id, nil
}

// ParseRef is Parse for callers that model an optional input as a pointer.
// A nil pointer fails with ErrMissingInput.
func ParseRef(value *string) (Identifier, error) {
	if value == nil {
		return Identifier{}, &ParseError{Err: ErrMissingInput}
	}
	return Parse(*value)
}

// MustParse is like Parse but panics on error.
func MustParse(value string) Identifier {
	id, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return id
}

// CheckDigit returns the check digit for a 10-digit prefix. Appending it to
// the prefix yields a string accepted by IsValid.
func CheckDigit(prefix string) (int, error) {
	if len(prefix) != Length-1 {
		return 0, malformed(prefix, errPrefixLength)
	}
	if !isDigitsOnly(prefix) {
		return 0, malformed(prefix, errNotDigits)
	}
	return weights.CheckDigit(prefix)
}

func malformed(value string, reason error) *ParseError {
	return &ParseError{Input: value, Reason: reason.Error(), Err: ErrMalformedInput}
}

// checkStructure runs the length, character and checksum checks in order.
func checkStructure(value string) error {
	if len(value) != Length {
		return errLength
	}
	if !isDigitsOnly(value) {
		return errNotDigits
	}
	if !weights.Verify(value) {
		return errChecksum
	}
	return nil
}

func isDigitsOnly(value string) bool {
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}

// decode assumes value passed checkStructure.
func decode(value string) (Identifier, error) {
	birthDate, err := decodeBirthDate(value)
	if err != nil {
		return Identifier{}, err
	}
	return Identifier{
		raw:       value,
		birthDate: birthDate,
		sex:       decodeSex(value),
	}, nil
}

func digitAt(value string, i int) int {
	return int(value[i] - '0')
}

func decodeSex(value string) Sex {
	if digitAt(value, 9)%2 == 0 {
		return SexFemale
	}
	return SexMale
}

func decodeBirthDate(value string) (time.Time, error) {
	year := decodeYear(value)
	month := decodeMonth(value)
	day, err := decodeDay(value)
	if err != nil {
		return time.Time{}, err
	}
	if month < 1 || month > 12 {
		return time.Time{}, errMonthRange
	}

	// time.Date normalizes overflow (Feb 30 -> Mar 2); a changed field means
	// the triple was not a real date.
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return time.Time{}, errCalendarDate
	}
	return date, nil
}

func decodeYear(value string) int {
	yy := digitAt(value, 0)*10 + digitAt(value, 1)
	return centuryBase(digitAt(value, 2)) + yy
}

func centuryBase(selector int) int {
	switch selector {
	case 8, 9:
		return 1800
	case 0, 1:
		return 1900
	case 2, 3:
		return 2000
	case 4, 5:
		return 2100
	default:
		return 2200
	}
}

func decodeMonth(value string) int {
	month := digitAt(value, 3)
	if digitAt(value, 2)%2 == 1 {
		return 10 + month
	}
	return month
}

func decodeDay(value string) (int, error) {
	day := digitAt(value, 4)*10 + digitAt(value, 5)
	if day < 1 || day > 31 {
		return 0, errDayRange
	}
	return day, nil
}
