// Package mpw derives site passwords from a full name and a master
// password using the Master Password scheme.
//
// Derivation runs in three stateless steps:
//
//	key, err := mpw.DeriveMasterKey("Robert Lee Mitchell", masterPassword)
//	seed, err := mpw.DeriveSiteSeed(key, "masterpasswordapp.com", mpw.DefaultCounter)
//	password, err := mpw.RenderPassword(seed, mpw.TemplateLong)
//
// The master key is scrypt(N=32768, r=8, p=2) over the master password,
// salted with the scoped full name. The site seed is HMAC-SHA256 keyed with
// the master key over the scoped site name and counter. Rendering indexes
// fixed character-class alphabets with seed bytes. All parameters and tables
// are fixed; changing any of them changes every password.
//
// # Secret handles
//
// MasterKey and SiteSeed own their bytes. Release zeroes them in place and
// must be called once per handle:
//
//	defer key.Release()
//
// Handles print as "redacted" and refuse to marshal. Nothing in this
// package logs, stores, or caches secret material.
//
// # Errors
//
// Failures wrap one of ErrInvalidInput, ErrDerivation, ErrUnknownTemplate
// or ErrReleased; test with errors.Is. No function returns secret material
// together with an error.
package mpw
