//go:build !windows

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

// Mmap maps size bytes of fd read-only starting at offset.
func Mmap(fd *os.File, offset int64, size int64) ([]byte, error) {
	return unix.Mmap(int(fd.Fd()), offset, int(size), unix.PROT_READ, unix.MAP_SHARED)
}

func Munmap(b []byte) error {
	return unix.Munmap(b)
}
