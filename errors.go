package mpw

import "errors"

// Input errors are returned before any derivation work starts.
var (
	// ErrInvalidInput indicates a required field is empty, not valid UTF-8,
	// or otherwise malformed. The caller should re-prompt.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownTemplate indicates a template identifier outside the fixed set.
	ErrUnknownTemplate = errors.New("unknown template")
)

// Derivation errors.
var (
	// ErrDerivation indicates the key-stretching or keyed-hash step failed.
	// No secret material is returned alongside it.
	ErrDerivation = errors.New("key derivation failed")

	// ErrReleased indicates a secret handle was used or released after
	// Release had already wiped it.
	ErrReleased = errors.New("secret already released")
)

var errNoSerialize = errors.New("secret handles cannot be serialized")
