// Package project runs a complete generation: template table to disk, then
// optionally to a zip archive.
package project

import (
	"context"
	"fmt"

	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/archive"
	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/generator"
	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/logger"
	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/materialize"
	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/templates"
)

// Plan describes one generation run.
type Plan struct {
	Name    string          // Used in log fields only
	Table   templates.Table // Files to write, in order
	BaseDir string          // Output directory; created when missing
	Archive string          // Zip file to produce after writing; empty for none
}

// Result is the outcome of a run. Report is set even when Scaffold fails
// part way, so callers can tell which files were written.
type Result struct {
	Report       *generator.Report
	ArchivePath  string
	ArchiveBytes int64
}

// Scaffolder scaffolds new projects from template tables
type Scaffolder struct {
	materializer *materialize.Materializer
	packager     *archive.Packager
	logger       logger.Logger
}

// NewScaffolder creates a new project scaffolder. packager may be nil when
// no plan asks for an archive.
func NewScaffolder(m *materialize.Materializer, p *archive.Packager, log logger.Logger) *Scaffolder {
	if log == nil {
		log = logger.NewSilentLogger()
	}
	return &Scaffolder{materializer: m, packager: p, logger: log}
}

// Scaffold writes the plan's table under BaseDir and, when requested, packs
// the result. Packing starts only after every file write has returned; if
// any write fails no archive is produced.
func (s *Scaffolder) Scaffold(ctx context.Context, plan Plan) (*Result, error) {
	log := s.logger.WithFields(logger.F("project", plan.Name))

	log.Debug("materializing", logger.F("base", plan.BaseDir), logger.F("files", len(plan.Table)))
	report, err := s.materializer.Materialize(ctx, plan.BaseDir, plan.Table)
	result := &Result{Report: report}
	if err != nil {
		return result, err
	}

	if plan.Archive != "" {
		if s.packager == nil {
			return result, fmt.Errorf("plan requests archive %s but no packager is configured", plan.Archive)
		}

		log.Debug("packing", logger.F("archive", plan.Archive))
		size, err := s.packager.Pack(ctx, plan.BaseDir, plan.Archive)
		if err != nil {
			return result, fmt.Errorf("packing %s: %w", plan.Archive, err)
		}
		result.ArchivePath = plan.Archive
		result.ArchiveBytes = size
	}

	log.Info("project generated",
		logger.F("files", len(report.Written())),
		logger.F("bytes", report.TotalBytes()),
		logger.F("archive", result.ArchivePath),
	)
	return result, nil
}
