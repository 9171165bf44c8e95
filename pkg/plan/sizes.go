package plan

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	gferrors "github.com/graphforge/graphforge/pkg/errors"
)

// FileSize is one row of the post-run size report.
type FileSize struct {
	Path  string // path relative to the walked directory root
	Bytes int64
}

// MB returns the size in mebibytes.
func (f FileSize) MB() float64 {
	return float64(f.Bytes) / (1024 * 1024)
}

// Sizes walks dir and reports the size of every .txt file under it, sorted
// by path. A missing directory is an IO_ERROR: the report only makes sense
// after a plan run has produced output.
func Sizes(dir string) ([]FileSize, error) {
	var sizes []FileSize

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = path
		}
		sizes = append(sizes, FileSize{Path: rel, Bytes: info.Size()})
		return nil
	})
	if err != nil {
		return nil, gferrors.Wrap(gferrors.ErrCodeIO, err, "walk %s", dir)
	}

	sort.Slice(sizes, func(i, j int) bool { return sizes[i].Path < sizes[j].Path })
	return sizes, nil
}
