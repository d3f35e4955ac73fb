//go:build windows

package common

import (
	"os"
	"syscall"
	"time"
)

// CreationTime returns the file's creation time from the Win32 attribute data.
func CreationTime(path string) (time.Time, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	attr, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(0, attr.CreationTime.Nanoseconds()), true
}
