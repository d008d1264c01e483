package materialize_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/filesystem"
	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/generator"
	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/logger"
	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/materialize"
	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/templates"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialize_WritesEveryEntry(t *testing.T) {
	base := filepath.Join(t.TempDir(), "uber-clone")
	table := templates.UberClone()

	m := materialize.New(afero.NewOsFs(), materialize.Options{})
	report, err := m.Materialize(context.Background(), base, table)
	require.NoError(t, err)
	assert.Len(t, report.Written(), len(table))

	for _, entry := range table {
		got, err := os.ReadFile(filepath.Join(base, filepath.FromSlash(entry.Path)))
		require.NoError(t, err, entry.Path)
		assert.Equal(t, entry.Content, string(got), entry.Path)
	}
}

func TestMaterialize_CreatesMissingDirectories(t *testing.T) {
	fs := afero.NewMemMapFs()
	m := materialize.New(fs, materialize.Options{})

	_, err := m.Materialize(context.Background(), "/work/deep/base", templates.UberFrontend())
	require.NoError(t, err)

	for _, dir := range []string{"/work/deep/base", "/work/deep/base/styles", "/work/deep/base/pages", "/work/deep/base/components"} {
		isDir, err := afero.IsDir(fs, dir)
		require.NoError(t, err, dir)
		assert.True(t, isDir, dir)
	}
}

func TestMaterialize_Idempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	table := templates.UberFrontend()

	var lines []string
	m := materialize.New(fs, materialize.Options{OnWrite: func(p string) { lines = append(lines, p) }})

	_, err := m.Materialize(context.Background(), "/work", table)
	require.NoError(t, err)

	// Scribble over one file; the second run must restore it.
	require.NoError(t, afero.WriteFile(fs, "/work/pages/index.jsx", []byte("local edits that are much longer than before ..."), 0644))

	_, err = m.Materialize(context.Background(), "/work", table)
	require.NoError(t, err)

	assert.Len(t, lines, 2*len(table), "each run reports every file")

	var files []string
	require.NoError(t, filesystem.Walk(fs, "/work", func(name string, info os.FileInfo) error {
		if !info.IsDir() {
			files = append(files, name)
		}
		return nil
	}))
	assert.Len(t, files, len(table))

	for _, entry := range table {
		got, err := afero.ReadFile(fs, "/work/"+entry.Path)
		require.NoError(t, err)
		assert.Equal(t, entry.Content, string(got), entry.Path)
	}
}

func TestMaterialize_OnWriteInTableOrder(t *testing.T) {
	table := templates.UberFrontend()

	var lines []string
	m := materialize.New(afero.NewMemMapFs(), materialize.Options{OnWrite: func(p string) { lines = append(lines, p) }})

	_, err := m.Materialize(context.Background(), "/app", table)
	require.NoError(t, err)

	require.Len(t, lines, 17)
	for i, entry := range table {
		assert.Equal(t, filepath.Join("/app", filepath.FromSlash(entry.Path)), lines[i])
	}
}

func TestMaterialize_ReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	called := false
	m := materialize.New(fs, materialize.Options{OnWrite: func(string) { called = true }})

	report, err := m.Materialize(context.Background(), "/locked", templates.UberClone())
	require.Error(t, err)
	assert.False(t, called)
	assert.Empty(t, report.Written())

	failed, ok := report.Failure()
	require.True(t, ok)
	assert.Equal(t, filepath.Join("/locked", "package.json"), failed.Path)
}

func TestMaterialize_PartialFailureReported(t *testing.T) {
	base := t.TempDir()

	// A file named "src" blocks every entry under src/.
	require.NoError(t, os.WriteFile(filepath.Join(base, "src"), []byte("blocker"), 0644))

	m := materialize.New(afero.NewOsFs(), materialize.Options{})
	report, err := m.Materialize(context.Background(), base, templates.UberClone())
	require.Error(t, err)

	// package.json, tailwind.config.js, postcss.config.js, public/index.html
	assert.Equal(t, []string{
		filepath.Join(base, "package.json"),
		filepath.Join(base, "tailwind.config.js"),
		filepath.Join(base, "postcss.config.js"),
		filepath.Join(base, "public", "index.html"),
	}, report.Written())

	failed, ok := report.Failure()
	require.True(t, ok)
	assert.Equal(t, filepath.Join(base, "src", "index.css"), failed.Path)

	// Nothing is rolled back
	_, err = os.Stat(filepath.Join(base, "public", "index.html"))
	assert.NoError(t, err)
}

func TestMaterialize_RejectsEscapingPaths(t *testing.T) {
	fs := afero.NewMemMapFs()
	m := materialize.New(fs, materialize.Options{})

	table := templates.Table{
		{Path: "ok.txt", Content: "fine"},
		{Path: "../escape.txt", Content: "nope"},
	}

	_, err := m.Materialize(context.Background(), "/base", table)
	require.Error(t, err)
	assert.True(t, errors.Is(err, templates.ErrInvalidPath))

	exists, _ := afero.Exists(fs, "/base/ok.txt")
	assert.False(t, exists, "nothing is written when the table is invalid")
}

func TestMaterialize_FileMode(t *testing.T) {
	base := t.TempDir()
	m := materialize.New(afero.NewOsFs(), materialize.Options{Mode: 0600})

	_, err := m.Materialize(context.Background(), base, templates.Table{{Path: "secret.txt", Content: "x"}})
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(base, "secret.txt"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestMaterialize_DebugLogging(t *testing.T) {
	var buf bytes.Buffer
	m := materialize.New(afero.NewMemMapFs(), materialize.Options{Logger: logger.NewLogger(logger.LevelDebug, &buf)})

	_, err := m.Materialize(context.Background(), "/out", templates.Table{{Path: "a.txt", Content: "abc"}})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "file written | base=/out path=/out/a.txt bytes=3")
	assert.Contains(t, buf.String(), "tree materialized")
}

func TestMaterialize_ReportType(t *testing.T) {
	m := materialize.New(afero.NewMemMapFs(), materialize.Options{})
	report, err := m.Materialize(context.Background(), "/x", templates.Table{{Path: "a", Content: ""}})
	require.NoError(t, err)

	assert.IsType(t, &generator.Report{}, report)
	assert.Equal(t, int64(0), report.TotalBytes())
	assert.Len(t, report.Written(), 1)
}
