package filesystem

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// VisitFunc is called for every entry below the walk root. name is the
// entry's path relative to the root, slash-separated.
type VisitFunc func(name string, info os.FileInfo) error

// Walk visits every file and directory below root in lexical order, hidden
// entries included. The root itself is not visited. Return filepath.SkipDir
// from visit to skip a directory.
func Walk(fsys afero.Fs, root string, visit VisitFunc) error {
	return afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		return visit(filepath.ToSlash(rel), info)
	})
}
