package mpw

import "fmt"

// RenderPassword maps seed bytes through the patterns of t. The first seed
// byte picks the pattern; byte i+1 picks the character at position i from
// that position's class.
func RenderPassword(seed *SiteSeed, t Template) (string, error) {
	patterns, ok := t.patterns()
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownTemplate, uint32(t))
	}
	if seed == nil {
		return "", fmt.Errorf("%w: site seed is nil", ErrInvalidInput)
	}

	var password string
	err := seed.s.view(func(b []byte) error {
		pattern := patterns[int(b[0])%len(patterns)]
		// Seed bytes are never reused.
		if len(pattern) >= len(b) {
			return fmt.Errorf("%w: pattern needs %d seed bytes, have %d", ErrInvalidInput, len(pattern)+1, len(b))
		}

		out := make([]byte, len(pattern))
		defer Wipe(out)
		for i := 0; i < len(pattern); i++ {
			chars, ok := characterClasses[pattern[i]]
			if !ok {
				return fmt.Errorf("%w: %s has undefined class %q", ErrUnknownTemplate, t, pattern[i])
			}
			out[i] = chars[int(b[i+1])%len(chars)]
		}
		password = string(out)
		return nil
	})
	if err != nil {
		return "", err
	}
	return password, nil
}
