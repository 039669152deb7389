// Command addrgen generates distinct address kinds over uintptr, each carrying the full
// addr.MemoryAddr method set, from a declarative config. It is normally run through
// go:generate.
package main

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/vkngwrapper/memaddr/internal/addrgen"
	"golang.org/x/exp/slog"
)

type rootOptions struct {
	configPath string
	output     string
	dryRun     bool
	verbose    bool
}

func newRootCommand(fs afero.Fs) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "addrgen",
		Short:         "Generate address kinds implementing addr.MemoryAddr",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			generator := addrgen.New(logger, fs)
			_, err := generator.Run(opts.configPath, addrgen.RunOptions{
				Output: opts.output,
				DryRun: opts.dryRun,
				Stdout: cmd.OutOrStdout(),
			})
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "addrgen.yaml", "Path to the addrgen config file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Override the output file named in the config")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the generated source instead of writing it")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every generated type")

	return cmd
}

func main() {
	cmd := newRootCommand(afero.NewOsFs())
	if err := cmd.Execute(); err != nil {
		slog.Error("addrgen failed", slog.Any("error", err))
		os.Exit(1)
	}
}
