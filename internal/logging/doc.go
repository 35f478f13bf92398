// Package logging provides leveled output for the mpw command.
//
// Verbosity is controlled by two flags:
//
//   - --verbose: shows info messages
//   - --debug: shows info and debug messages
//
// Warnings and errors are always shown. Everything is written to stderr
// unless Out is set, because stdout carries generated passwords.
//
// Never pass a master password, key, or seed to a log method. The secret
// handles of package mpw print as "redacted", so an accidental %v is
// harmless, but plain byte slices and strings are not protected.
//
//	log := logging.Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Deriving master key for %s", fullName)
package logging
