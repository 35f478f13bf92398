package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

func getPassphrase(prompt string) ([]byte, error) {
	if envPass := os.Getenv(PassphraseEnvVar); envPass != "" {
		return []byte(envPass), nil
	}

	fd, closeTerminal, err := terminalFd()
	if err != nil {
		return nil, err
	}
	defer closeTerminal()

	fmt.Fprint(os.Stderr, prompt)
	passphrase, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, err
	}

	return passphrase, nil
}

// terminalFd returns the terminal to prompt on: stdin when it is one,
// otherwise the controlling terminal, so piped input still gets a prompt.
func terminalFd() (int, func() error, error) {
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		return fd, func() error { return nil }, nil
	}

	tty, err := os.Open("/dev/tty")
	if err != nil {
		return -1, nil, fmt.Errorf("no terminal to prompt on; set %s", PassphraseEnvVar)
	}
	return int(tty.Fd()), tty.Close, nil
}
