//go:build windows

package mmap

import (
	"os"
	"syscall"
	"unsafe"
)

// Mmap maps size bytes of fd read-only starting at offset.
func Mmap(fd *os.File, offset int64, size int64) ([]byte, error) {
	maxsize := size + offset
	handle, err := syscall.CreateFileMapping(syscall.Handle(fd.Fd()), nil,
		syscall.PAGE_READONLY, uint32(maxsize>>32), uint32(maxsize&0xffffffff), nil)
	if err != nil {
		return nil, os.NewSyscallError("CreateFileMapping", err)
	}

	addr, err := syscall.MapViewOfFile(handle, syscall.FILE_MAP_READ,
		uint32(offset>>32), uint32(offset&0xffffffff), uintptr(size))
	if addr == 0 {
		return nil, os.NewSyscallError("MapViewOfFile", err)
	}

	if err := syscall.CloseHandle(handle); err != nil {
		return nil, os.NewSyscallError("CloseHandle", err)
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func Munmap(b []byte) error {
	return syscall.UnmapViewOfFile(uintptr(unsafe.Pointer(&b[0])))
}
