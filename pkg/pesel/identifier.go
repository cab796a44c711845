package pesel

import "time"

// Identifier is a validated, decoded national identification number.
// Its zero value is not a valid identifier; see IsZero.
//
// Identifier is immutable and safe to copy and share between goroutines.
type Identifier struct {
	raw       string
	birthDate time.Time
	sex       Sex
}

// Value returns the original 11-digit string.
func (id Identifier) Value() string {
	return id.raw
}

// BirthDate returns the decoded birth date at midnight UTC.
func (id Identifier) BirthDate() time.Time {
	return id.birthDate
}

// Sex returns the decoded sex.
func (id Identifier) Sex() Sex {
	return id.sex
}

// String returns the original 11-digit string.
func (id Identifier) String() string {
	return id.raw
}

// IsZero reports whether id is the zero value (not produced by a parse).
func (id Identifier) IsZero() bool {
	return id.raw == ""
}

// Equal reports whether both identifiers carry the same number.
func (id Identifier) Equal(other Identifier) bool {
	return id.raw == other.raw
}

// MarshalText implements encoding.TextMarshaler. An identifier encodes as its
// raw digit string, so it travels through JSON and YAML as a plain string.
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.raw), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (id *Identifier) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
