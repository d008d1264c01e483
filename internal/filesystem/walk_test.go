package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, fs afero.Fs, root string, files []string) {
	t.Helper()
	for _, file := range files {
		path := filepath.Join(root, filepath.FromSlash(file))
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, afero.WriteFile(fs, path, []byte("test"), 0644))
	}
}

func regularFiles(t *testing.T, fs afero.Fs, root string) []string {
	t.Helper()
	var names []string
	err := Walk(fs, root, func(name string, info os.FileInfo) error {
		if info.Mode().IsRegular() {
			names = append(names, name)
		}
		return nil
	})
	require.NoError(t, err)
	return names
}

func TestWalk_RelativeNamesInLexicalOrder(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTree(t, fs, "/project", []string{"src/index.js", "package.json", "public/index.html", "src/App.js"})

	var visited []string
	err := Walk(fs, "/project", func(name string, info os.FileInfo) error {
		if info.IsDir() {
			name += "/"
		}
		visited = append(visited, name)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"package.json",
		"public/",
		"public/index.html",
		"src/",
		"src/App.js",
		"src/index.js",
	}, visited)
}

func TestWalk_IncludesHiddenEntries(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTree(t, fs, "/project", []string{".env", ".config/settings", "visible.txt"})

	assert.Equal(t, []string{".config/settings", ".env", "visible.txt"}, regularFiles(t, fs, "/project"))
}

func TestWalk_SkipDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTree(t, fs, "/project", []string{"node_modules/react/index.js", "src/App.js"})

	var visited []string
	err := Walk(fs, "/project", func(name string, info os.FileInfo) error {
		if info.IsDir() && name == "node_modules" {
			return filepath.SkipDir
		}
		visited = append(visited, name)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"src", "src/App.js"}, visited)
}

func TestWalk_VisitorErrorStops(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTree(t, fs, "/project", []string{"a.txt", "b.txt"})

	boom := errors.New("boom")
	var visited int
	err := Walk(fs, "/project", func(name string, info os.FileInfo) error {
		visited++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, visited)
}

func TestWalk_OnDisk(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, afero.NewOsFs(), dir, []string{"file1.txt", "dir1/file2.txt", "dir1/subdir/file3.txt", "dir2/file4.txt"})

	assert.Equal(t, []string{"dir1/file2.txt", "dir1/subdir/file3.txt", "dir2/file4.txt", "file1.txt"}, regularFiles(t, afero.NewOsFs(), dir))
}

func TestWalk_MissingRoot(t *testing.T) {
	err := Walk(afero.NewMemMapFs(), "/does/not/exist", func(string, os.FileInfo) error { return nil })
	assert.Error(t, err)
}
