// Package materialize writes a template table to disk.
package materialize

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/generator"
	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/logger"
	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/templates"
	"github.com/spf13/afero"
)

// Options configures a Materializer.
type Options struct {
	Mode   fs.FileMode   // Permissions for new files (default 0644)
	Logger logger.Logger // Debug logging (default: silent)

	// OnWrite is called with the full path of each file right after it is
	// written, in table order. Nil means no per-file console output.
	OnWrite func(path string)
}

// Materializer turns template tables into files under a base directory.
type Materializer struct {
	fs   afero.Fs
	opts Options
}

// New creates a materializer writing to fsys.
func New(fsys afero.Fs, opts Options) *Materializer {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if opts.Mode == 0 {
		opts.Mode = 0644
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewSilentLogger()
	}
	return &Materializer{fs: fsys, opts: opts}
}

// Materialize writes every entry of table under base, creating missing
// directories on the way and overwriting existing files. Writes happen in
// table order. The first I/O error stops the run; files already written are
// left in place and listed in the returned report.
func (m *Materializer) Materialize(ctx context.Context, base string, table templates.Table) (*generator.Report, error) {
	if err := table.Validate(); err != nil {
		return &generator.Report{}, err
	}

	log := m.opts.Logger.WithFields(logger.F("base", base))

	ops := make([]generator.Operation, 0, len(table))
	for _, entry := range table {
		ops = append(ops, &generator.WriteFileOp{
			Fs:      m.fs,
			Root:    base,
			Path:    entry.Path,
			Content: []byte(entry.Content),
			Mode:    m.opts.Mode,
		})
	}

	report, err := generator.Execute(ctx, ops, generator.ExecuteOptions{
		OnResult: func(r generator.Result) {
			if !r.OK() {
				return
			}
			log.Debug("file written", logger.F("path", r.Path), logger.F("bytes", r.Bytes))
			if m.opts.OnWrite != nil {
				m.opts.OnWrite(r.Path)
			}
		},
	})
	if err != nil {
		fields := []logger.Field{logger.F("written", len(report.Written()))}
		if failed, ok := report.Failure(); ok {
			fields = append(fields, logger.F("path", failed.Path))
		}
		log.Error("materialize aborted", fields...)
		return report, fmt.Errorf("materializing %s: %w", displayBase(base), err)
	}

	log.Debug("tree materialized", logger.F("files", len(report.Results)), logger.F("bytes", report.TotalBytes()))
	return report, nil
}

func displayBase(base string) string {
	if base == "" {
		return "."
	}
	return base
}
