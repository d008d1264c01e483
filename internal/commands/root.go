package commands

import (
	"fmt"
	"os"

	uberclone "github.com/Sambuddha007/Uber-Clone-Frontend"
	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/config"
	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/generator"
	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/logger"
	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/output"
	"github.com/spf13/cobra"
)

// globalFlags are shared by both generator binaries.
type globalFlags struct {
	verbose    bool
	configPath string
}

// newRootCmd creates the bare command shell used by each generator binary.
// Generators take no positional arguments.
func newRootCmd(use, short, long string, flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     use,
		Short:   short,
		Long:    long,
		Args:    cobra.NoArgs,
		Version: uberclone.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(flags.verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Optional YAML file overriding generator defaults")

	return cmd
}

// setup loads configuration and builds the debug logger for a run.
func setup(flags *globalFlags) (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, nil, err
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}

	log := logger.NewLogger(level, os.Stderr)
	if flags.verbose {
		log.SetLevel(logger.LevelDebug)
	}
	return cfg, log, nil
}

// fail prints err and what had been written before it, then exits.
func fail(err error, report *generator.Report) {
	reportFailure(err, report)
	os.Exit(1)
}

// reportFailure prints err, followed by the files that had been written
// before it. Nothing is rolled back, so those files stay on disk.
func reportFailure(err error, report *generator.Report) {
	output.Error(err.Error())
	if report == nil {
		return
	}
	written := report.Written()
	if len(written) == 0 {
		return
	}
	output.Info(fmt.Sprintf("%d file(s) were written before the failure:", len(written)))
	for _, path := range written {
		output.Step(path)
	}
}
