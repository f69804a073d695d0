package errors

import "unicode"

// MaxGenus bounds the genus accepted from external input. The search space
// grows super-exponentially with genus; anything beyond this would not finish
// in any realistic amount of time, so requests above it are rejected rather
// than started.
const MaxGenus = 16

// ValidateGenus validates a genus received from external input (CLI flags or
// API paths). Zero and negative values are rejected here; callers that want
// an empty result for genus zero should not route through this check.
func ValidateGenus(genus int) error {
	if genus < 1 {
		return New(ErrCodeInvalidGenus, "genus must be at least 1, got %d", genus)
	}
	if genus > MaxGenus {
		return New(ErrCodeInvalidGenus, "genus too large (max %d), got %d", MaxGenus, genus)
	}
	return nil
}

// ValidateWordString validates the letter rendering of a braid word before it
// is parsed: non-empty, reasonable length, lowercase letters only.
func ValidateWordString(s string) error {
	if s == "" {
		return New(ErrCodeInvalidWord, "braid word cannot be empty")
	}

	const maxWordLength = 256
	if len(s) > maxWordLength {
		return New(ErrCodeInvalidWord, "braid word too long (max %d letters)", maxWordLength)
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidWord, "braid word contains control characters")
		}
		if r < 'a' || r > 'z' {
			return New(ErrCodeInvalidWord, "braid word letters must be in 'a'..'z', got %q", r)
		}
	}

	return nil
}
