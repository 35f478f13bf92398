package main

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// hardenProcess keeps the master password and keys out of core dumps.
func hardenProcess() error {
	// Also blocks ptrace attach by other unprivileged processes.
	if err := unix.Prctl(unix.PR_SET_DUMPABLE, 0, 0, 0, 0); err != nil {
		return fmt.Errorf("failed to set PR_SET_DUMPABLE: %w", err)
	}

	rlimit := unix.Rlimit{Cur: 0, Max: 0}
	if err := unix.Setrlimit(unix.RLIMIT_CORE, &rlimit); err != nil {
		return fmt.Errorf("failed to set RLIMIT_CORE to 0: %w", err)
	}

	return nil
}
