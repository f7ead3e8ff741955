package policy

import "unicode"

// Profile describes the character composition of a password.
type Profile struct {
	HasLower   bool
	HasUpper   bool
	HasDigit   bool
	HasSymbol  bool
	TypesCount int
	Length     int
}

// Scan derives the character profile of a password. Scanning is rune-based;
// anything that is not a letter in lower or upper case and not a digit counts
// as a symbol.
func Scan(password string) Profile {
	var p Profile

	for _, r := range password {
		p.Length++

		switch {
		case unicode.IsLower(r):
			p.HasLower = true
		case unicode.IsUpper(r):
			p.HasUpper = true
		case unicode.IsDigit(r):
			p.HasDigit = true
		default:
			p.HasSymbol = true
		}
	}

	for _, has := range []bool{p.HasLower, p.HasUpper, p.HasDigit, p.HasSymbol} {
		if has {
			p.TypesCount++
		}
	}

	return p
}
