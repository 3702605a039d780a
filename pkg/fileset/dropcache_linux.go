package fileset

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// DropCaches asks the kernel to drop cached pages for each file so that the
// following reads start cold. Advisory only; the kernel is free to keep the
// pages around.
func DropCaches(paths []string) error {
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrapf(err, "open %v", path)
		}

		if err := unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_DONTNEED); err != nil {
			_ = f.Close()

			return errors.Wrapf(err, "fadvise %v", path)
		}

		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}
