package main

// options holds the flags shared by the password commands
type options struct {
	FullName   string
	Template   string
	Counter    uint32
	ConfigPath string
	Verbose    bool
	Debug      bool
}

// settings are the options after flags, environment and config file have
// been merged
type settings struct {
	FullName string
	Template string
	Counter  uint32
}
