package macro

// Register validation constants.
const (
	// MinLetterRegister is the first valid letter register.
	MinLetterRegister = 'a'
	// MaxLetterRegister is the last valid letter register.
	MaxLetterRegister = 'z'
	// MinDigitRegister is the first valid digit register.
	MinDigitRegister = '0'
	// MaxDigitRegister is the last valid digit register.
	MaxDigitRegister = '9'
)

// IsValidRegister returns true if r is a valid register name.
// Valid registers are lowercase letters (a-z) and digits (0-9).
func IsValidRegister(r rune) bool {
	return IsLetterRegister(r) || IsDigitRegister(r)
}

// IsLetterRegister returns true if r is a letter register (a-z).
func IsLetterRegister(r rune) bool {
	return r >= MinLetterRegister && r <= MaxLetterRegister
}

// IsDigitRegister returns true if r is a digit register (0-9).
func IsDigitRegister(r rune) bool {
	return r >= MinDigitRegister && r <= MaxDigitRegister
}

// IsAppendRegister returns true if r is an uppercase letter (A-Z), which
// appends to the corresponding lowercase register.
func IsAppendRegister(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// NormalizeRegister converts a register to its canonical form.
// Uppercase letters are converted to lowercase; invalid registers return 0.
func NormalizeRegister(r rune) rune {
	if IsAppendRegister(r) {
		return r - 'A' + 'a'
	}
	if IsValidRegister(r) {
		return r
	}
	return 0
}

// AllRegisters returns all valid registers, letters first.
func AllRegisters() []rune {
	result := make([]rune, 0, 36)
	for r := rune(MinLetterRegister); r <= MaxLetterRegister; r++ {
		result = append(result, r)
	}
	for r := rune(MinDigitRegister); r <= MaxDigitRegister; r++ {
		result = append(result, r)
	}
	return result
}
