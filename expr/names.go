package expr

import (
	"errors"
	"fmt"
)

// MaxNameLength is the longest accepted variable name.
const MaxNameLength = 50

// Name validation errors.
var (
	// ErrEmptyName is returned for an empty variable name.
	ErrEmptyName = errors.New("empty variable name")

	// ErrNameTooLong is returned for names longer than MaxNameLength.
	ErrNameTooLong = errors.New("variable name too long")

	// ErrReservedName is returned when a name collides with an operator keyword.
	ErrReservedName = errors.New("variable name is a reserved keyword")

	// ErrInvalidName is returned for names outside [A-Za-z][A-Za-z0-9_]*.
	ErrInvalidName = errors.New("invalid variable name")
)

var reserved = map[string]bool{
	"and": true,
	"or":  true,
	"not": true,
	"xor": true,
}

// IsReserved reports whether name is an operator keyword. The comparison is
// case-sensitive: "And" is a legal variable name, "and" is not.
func IsReserved(name string) bool {
	return reserved[name]
}

// CheckName validates a variable name for programmatic construction of Var
// nodes. The parser cannot produce an invalid name, but expressions built
// directly through the API can.
func CheckName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: %q has %d characters, limit is %d", ErrNameTooLong, name, len(name), MaxNameLength)
	}
	if IsReserved(name) {
		return fmt.Errorf("%w: %q", ErrReservedName, name)
	}
	if !isLetter(rune(name[0])) {
		return fmt.Errorf("%w: %q must start with a letter", ErrInvalidName, name)
	}
	for _, r := range name[1:] {
		if !isLetter(r) && !isDigit(r) && r != '_' {
			return fmt.Errorf("%w: %q contains %q", ErrInvalidName, name, r)
		}
	}
	return nil
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
