// Package config stores the defaults of the mpw command in a TOML file.
//
// The file holds the full name, the default template, and the default
// counter. It never holds a master password, key, seed, or per-site
// setting:
//
//	full_name = "Robert Lee Mitchell"
//	template = "long"
//	counter = 1
//
// A missing file is not an error; Load returns an empty Config.
package config
