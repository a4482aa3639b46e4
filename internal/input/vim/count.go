package vim

import "math"

// MaxCount caps count prefixes so that long digit runs cannot overflow.
const MaxCount = math.MaxInt32

// MaxRepeat caps commands that expand into one event per repetition,
// such as j, k and '.'. Counts passed through to the editor are not capped.
const MaxRepeat = 10000

// repeatCount clamps count to [1, MaxRepeat].
func repeatCount(count int) int {
	if count < 1 {
		return 1
	}
	if count > MaxRepeat {
		return MaxRepeat
	}
	return count
}

// IsCountStart returns true if the character could start a count.
// Note: '0' cannot start a count (it's a motion to line start).
func IsCountStart(r rune) bool {
	return r >= '1' && r <= '9'
}

// IsCountDigit returns true if the character is a digit valid in a count.
func IsCountDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// ParseCountFromRunes parses a count from a sequence of runes.
// Returns the count value and the number of runes consumed.
func ParseCountFromRunes(runes []rune) (count int, consumed int) {
	if len(runes) == 0 {
		return 0, 0
	}

	// First character must be 1-9 (0 is a motion)
	if !IsCountStart(runes[0]) {
		return 0, 0
	}

	count = int(runes[0] - '0')
	consumed = 1

	for i := 1; i < len(runes); i++ {
		if !IsCountDigit(runes[i]) {
			break
		}
		digit := int(runes[i] - '0')
		if count > (MaxCount-digit)/10 {
			count = MaxCount
		} else {
			count = count*10 + digit
		}
		consumed++
	}

	return count, consumed
}

// CombineCounts multiplies two counts together with overflow protection.
// This is used when both a pre-operator count and post-operator count exist.
// e.g., "2d3w" = delete (2*3=6) words
func CombineCounts(count1, count2 int) int {
	if count1 <= 0 {
		count1 = 1
	}
	if count2 <= 0 {
		count2 = 1
	}

	if count1 > MaxCount/count2 {
		return MaxCount
	}

	return count1 * count2
}
