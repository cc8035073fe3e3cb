package repositories

import "context"

// DiscoveryRepository enumerates git working copies under a root directory.
type DiscoveryRepository interface {
	// Discover walks the tree below root and returns the working-copy
	// paths found, in walk order. When crossFilesystems is false the walk
	// refuses to descend across filesystem mount boundaries.
	Discover(ctx context.Context, root string, crossFilesystems bool) ([]string, error)
}
