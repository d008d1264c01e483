package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrPathEscapesRoot is returned when an operation's relative path would
// resolve outside of its root directory.
var ErrPathEscapesRoot = errors.New("path escapes root directory")

// Operation represents a file system operation that can be validated and executed.
//
// Validate checks if the operation would succeed without executing it. It has
// no side effects on disk.
//
// Execute performs the actual operation. This should only be called after Validate succeeds.
//
// Description returns a human-readable description for output (e.g., "Create src/App.js (234 bytes)").
type Operation interface {
	Validate(ctx context.Context) error
	Execute(ctx context.Context) error
	Description() string
}

// FileOperation is an Operation that produces exactly one file.
// The executor uses it to fill in per-file results.
type FileOperation interface {
	Operation
	TargetPath() string
	Size() int
}

// WriteFileOp writes a file at Root/Path.
//
// Validation behavior:
//   - Rejects paths that are empty, absolute or climb out of Root
//   - Allows empty content (zero bytes) but rejects nil content
//
// Execution behavior:
//   - Creates the file's own missing parent directories
//   - Writes the full content, replacing any existing file
type WriteFileOp struct {
	Fs      afero.Fs    // Target filesystem (defaults to the OS filesystem)
	Root    string      // Base directory the path is resolved against
	Path    string      // Slash-separated path relative to Root
	Content []byte      // File content (can be empty, must not be nil)
	Mode    fs.FileMode // File permissions for newly created files (e.g., 0644)
}

func (op *WriteFileOp) Validate(ctx context.Context) error {
	target, err := op.target()
	if err != nil {
		return err
	}

	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", target)
	}
	return nil
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	target, err := op.target()
	if err != nil {
		return err
	}

	dir := filepath.Dir(target)
	if err := op.fs().MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dir, err)
	}

	mode := op.Mode
	if mode == 0 {
		mode = 0644
	}
	if err := afero.WriteFile(op.fs(), target, op.Content, mode); err != nil {
		return fmt.Errorf("cannot write %s: %w", target, err)
	}
	return nil
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Create %s (%d bytes)", op.TargetPath(), len(op.Content))
}

// TargetPath returns Root joined with Path. It does not check containment;
// use Validate for that.
func (op *WriteFileOp) TargetPath() string {
	return filepath.Join(op.Root, filepath.FromSlash(op.Path))
}

// Size returns the number of content bytes the operation writes.
func (op *WriteFileOp) Size() int {
	return len(op.Content)
}

func (op *WriteFileOp) target() (string, error) {
	rel := filepath.FromSlash(op.Path)
	if !filepath.IsLocal(rel) || filepath.Clean(rel) == "." {
		return "", fmt.Errorf("%w: %q", ErrPathEscapesRoot, op.Path)
	}
	return filepath.Join(op.Root, rel), nil
}

func (op *WriteFileOp) fs() afero.Fs {
	if op.Fs == nil {
		return afero.NewOsFs()
	}
	return op.Fs
}
