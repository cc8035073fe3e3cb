//go:build !unix

package walker

import "io/fs"

// deviceOf has no device information on this platform, so mount boundaries
// cannot be detected and the walk descends everywhere.
func deviceOf(_ fs.FileInfo) (uint64, bool) {
	return 0, false
}
