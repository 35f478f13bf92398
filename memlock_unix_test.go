//go:build linux || darwin || freebsd || netbsd || openbsd

package mpw

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageOf(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b))) &^ (pageSize - 1)
}

func TestUnlockMemory_KeepsSharedPageLocked(t *testing.T) {
	buf := make([]byte, 128)
	first, second := buf[:64], buf[64:]
	if pageOf(first) != pageOf(buf[127:]) {
		t.Skip("buffer straddles a page boundary")
	}
	page := pageOf(first)

	if !lockMemory(first) {
		t.Skip("mlock not permitted")
	}
	require.True(t, lockMemory(second))

	pageMu.Lock()
	assert.Equal(t, 2, pageLocks[page])
	pageMu.Unlock()

	unlockMemory(first)
	pageMu.Lock()
	assert.Equal(t, 1, pageLocks[page], "page must stay locked while second holds it")
	pageMu.Unlock()

	unlockMemory(second)
	pageMu.Lock()
	_, ok := pageLocks[page]
	pageMu.Unlock()
	assert.False(t, ok)
}

func TestForEachPage_SplitsAtPageBoundaries(t *testing.T) {
	buf := make([]byte, 3*int(pageSize))

	var total int
	var pages []uintptr
	forEachPage(buf, func(page uintptr, part []byte) {
		total += len(part)
		pages = append(pages, page)
		assert.LessOrEqual(t, uintptr(len(part)), pageSize)
	})

	assert.Equal(t, len(buf), total)
	assert.GreaterOrEqual(t, len(pages), 3)
	assert.LessOrEqual(t, len(pages), 4)
	for i := 1; i < len(pages); i++ {
		assert.Equal(t, pages[i-1]+pageSize, pages[i])
	}
}
