package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/config"
	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/logger"
	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/materialize"
	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/output"
	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/project"
	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/templates"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// SetupFrontendCmd creates the root command of the setup-uber-frontend binary
func SetupFrontendCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := newRootCmd(
		"setup-uber-frontend",
		"Scaffold the Uber clone Next.js frontend in the current directory",
		`Writes a Next.js + Tailwind ride-booking frontend (pages, components,
styles and configs) directly into the current directory.

Existing files are overwritten. Each file is reported as "Created: <path>".

Example:
  mkdir uber-frontend && cd uber-frontend
  setup-uber-frontend`,
		flags,
	)

	cmd.Run = func(cmd *cobra.Command, args []string) {
		cfg, log, err := setup(flags)
		if err != nil {
			fail(err, nil)
		}

		result, err := runFrontend(context.Background(), cfg, log)
		if err != nil {
			fail(err, result.Report)
		}

		output.Success("Uber Clone frontend scaffold complete!")
	}

	return cmd
}

// runFrontend writes the uber-frontend kit into the configured directory,
// defaulting to the working directory.
func runFrontend(ctx context.Context, cfg *config.Config, log logger.Logger) (*project.Result, error) {
	mode, err := cfg.Files.FileMode()
	if err != nil {
		return &project.Result{}, err
	}

	base := cfg.Frontend.BaseDir
	if base == "" {
		base, err = os.Getwd()
		if err != nil {
			return &project.Result{}, fmt.Errorf("cannot determine working directory: %w", err)
		}
	}

	m := materialize.New(afero.NewOsFs(), materialize.Options{
		Mode:    mode,
		Logger:  log,
		OnWrite: output.Created,
	})

	return project.NewScaffolder(m, nil, log).Scaffold(ctx, project.Plan{
		Name:    templates.UberFrontendKit,
		Table:   templates.UberFrontend(),
		BaseDir: base,
	})
}
