package walker

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/gilesorr/gitchk/internal/domain/entities"
	"github.com/gilesorr/gitchk/internal/domain/repositories"
)

// DiscoveryRepository walks a directory tree collecting git working copies.
type DiscoveryRepository struct{}

// NewDiscoveryRepository creates a filesystem-walking DiscoveryRepository.
func NewDiscoveryRepository() *DiscoveryRepository {
	return &DiscoveryRepository{}
}

var _ repositories.DiscoveryRepository = (*DiscoveryRepository)(nil)

// Discover walks the tree below root and returns every directory holding
// the metadata subdirectory, validated by opening it as a repository. The
// walk never descends into metadata trees, and with crossFilesystems false
// it refuses to cross mount boundaries (device-number comparison).
func (it *DiscoveryRepository) Discover(
	ctx context.Context, root string, crossFilesystems bool,
) ([]string, error) {
	root = entities.NormalizePath(root)

	rootInfo, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot discover under %q: %w", root, err)
	}
	if !rootInfo.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", root)
	}

	rootDev, haveDev := deviceOf(rootInfo)

	var found []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			logger.Debugf("skipping %s: %v", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}

		if d.Name() == entities.VCSMetaDir {
			parent := filepath.Dir(path)
			if _, openErr := git.PlainOpen(parent); openErr == nil {
				found = append(found, parent)
			} else {
				logger.Debugf("%s has metadata but is not openable: %v", parent, openErr)
			}
			return fs.SkipDir
		}

		if !crossFilesystems && haveDev && path != root {
			info, statErr := d.Info()
			if statErr != nil {
				return fs.SkipDir
			}
			if dev, ok := deviceOf(info); ok && dev != rootDev {
				return fs.SkipDir // mount boundary
			}
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("discovery walk failed: %w", walkErr)
	}

	return found, nil
}
