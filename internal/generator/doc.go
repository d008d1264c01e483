// Package generator provides the file operations that turn a template table
// into files on disk, and the executor that runs them in order.
//
// # Operations
//
// Every write is described as an Operation. Operations are validated as a
// batch before any of them runs, so a bad path or a nil content stops the
// run before the first byte hits the disk:
//
//	ops := []generator.Operation{
//	    &generator.WriteFileOp{Fs: fs, Root: base, Path: "src/App.js", Content: app, Mode: 0644},
//	    &generator.WriteFileOp{Fs: fs, Root: base, Path: "src/index.css", Content: css, Mode: 0644},
//	}
//
//	report, err := generator.Execute(ctx, ops, generator.ExecuteOptions{})
//
// # Partial failure
//
// Execution is not transactional. When a write fails the remaining
// operations are abandoned and nothing already written is removed. The
// returned Report lists every attempted operation with its outcome, so the
// caller can tell exactly which files made it to disk.
package generator
