package commands

import (
	"context"
	"fmt"

	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/archive"
	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/config"
	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/logger"
	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/materialize"
	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/output"
	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/project"
	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/templates"
	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// GenerateUberCloneCmd creates the root command of the generate-uber-clone binary
func GenerateUberCloneCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := newRootCmd(
		"generate-uber-clone",
		"Generate the Uber clone React project and zip it",
		`Writes a React + Tailwind + Mapbox ride-booking demo into ./uber-clone/
and packs it into ./uber-clone.zip at maximum compression.

Existing files are overwritten. Files are written silently; the final line
reports the archive size in bytes.

Example:
  generate-uber-clone`,
		flags,
	)

	cmd.Run = func(cmd *cobra.Command, args []string) {
		cfg, log, err := setup(flags)
		if err != nil {
			fail(err, nil)
		}

		result, err := runClone(context.Background(), cfg, log)
		if err != nil {
			fail(err, result.Report)
		}

		output.Success(fmt.Sprintf("%s created successfully! Total bytes: %d", result.ArchivePath, result.ArchiveBytes))
		output.Verbose(fmt.Sprintf("Archive size: %s", humanize.Bytes(uint64(result.ArchiveBytes))))
	}

	return cmd
}

// runClone writes the uber-clone kit and packs it into the configured archive.
func runClone(ctx context.Context, cfg *config.Config, log logger.Logger) (*project.Result, error) {
	mode, err := cfg.Files.FileMode()
	if err != nil {
		return &project.Result{}, err
	}

	fs := afero.NewOsFs()
	m := materialize.New(fs, materialize.Options{
		Mode:   mode,
		Logger: log,
		OnWrite: func(path string) {
			output.Verbose("Created: " + path)
		},
	})
	p := archive.NewPackager(fs, log).WithLevel(cfg.Clone.CompressionLevel)

	return project.NewScaffolder(m, p, log).Scaffold(ctx, project.Plan{
		Name:    templates.UberCloneKit,
		Table:   templates.UberClone(),
		BaseDir: cfg.Clone.BaseDir,
		Archive: cfg.Clone.Archive,
	})
}
