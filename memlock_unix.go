//go:build linux || darwin || freebsd || netbsd || openbsd

package mpw

import (
	"os"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// mlock does not nest: one munlock releases the whole page no matter how
// many buffers on it asked for the lock. Small secrets routinely share a
// page, so locks are counted per page and a page is only unlocked when the
// last buffer on it is released.
var (
	pageMu    sync.Mutex
	pageLocks = map[uintptr]int{}
	pageSize  = uintptr(os.Getpagesize())
)

// lockMemory keeps the pages backing b out of swap. It reports whether the
// lock was taken; RLIMIT_MEMLOCK exhaustion is not an error.
func lockMemory(b []byte) bool {
	if len(b) == 0 {
		return false
	}

	pageMu.Lock()
	defer pageMu.Unlock()

	if unix.Mlock(b) != nil {
		return false
	}
	forEachPage(b, func(page uintptr, _ []byte) {
		pageLocks[page]++
	})
	return true
}

// unlockMemory drops b's hold on its pages, unlocking each page no other
// locked buffer still uses.
func unlockMemory(b []byte) {
	if len(b) == 0 {
		return
	}

	pageMu.Lock()
	defer pageMu.Unlock()

	forEachPage(b, func(page uintptr, part []byte) {
		pageLocks[page]--
		if pageLocks[page] > 0 {
			return
		}
		delete(pageLocks, page)
		_ = unix.Munlock(part)
	})
}

// forEachPage calls fn with the start address of every page b spans and the
// part of b that lies on it.
func forEachPage(b []byte, fn func(page uintptr, part []byte)) {
	start := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	n := uintptr(len(b))

	for off := uintptr(0); off < n; {
		page := (start + off) &^ (pageSize - 1)
		end := page + pageSize - start
		if end > n {
			end = n
		}
		fn(page, b[off:end])
		off = end
	}
}
