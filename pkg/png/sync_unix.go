//go:build linux || freebsd

package png

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync flushes file data without forcing a metadata-only journal
// update. On Linux and FreeBSD fdatasync() gives sufficient durability for
// a subsequent rename.
func fdatasync(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
