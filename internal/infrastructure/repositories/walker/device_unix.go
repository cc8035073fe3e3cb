//go:build unix

package walker

import (
	"io/fs"
	"syscall"
)

// deviceOf returns the filesystem device number backing the file, used to
// detect mount boundaries during the walk.
func deviceOf(info fs.FileInfo) (uint64, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, false
	}
	return uint64(stat.Dev), true
}
