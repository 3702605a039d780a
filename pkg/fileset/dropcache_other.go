//go:build !linux

package fileset

// DropCaches is a no-op on platforms without posix_fadvise.
func DropCaches(paths []string) error {
	return nil
}
