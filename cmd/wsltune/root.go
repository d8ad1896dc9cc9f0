package main

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/five82/wsltune/internal/app"
	"github.com/five82/wsltune/internal/theme"
)

// cliIO carries the streams and logger every command writes to.
type cliIO struct {
	stdin  io.Reader
	stdout io.Writer
	logger *log.Logger
	signal theme.Signal // nil uses the terminal background
}

type rootFlags struct {
	configPath string
	verbose    bool
}

func (f *rootFlags) options(streams cliIO) app.Options {
	return app.Options{
		ConfigPath: f.configPath,
		Verbose:    f.verbose,
		Logger:     streams.logger,
		Signal:     streams.signal,
	}
}

func newRootCommand(streams cliIO) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "wsltune",
		Short: "Tune WSL2 virtual machine settings",
		Long: `wsltune edits the .wslconfig file that sizes and configures the WSL2
virtual machine: memory, swap, processors, networking and the
experimental switches.

Run without a subcommand to open the interactive editor.

Examples:
  wsltune                          Open the editor
  wsltune show                     Print the current settings as JSON
  wsltune set memory=16GB swap=4   Change values and save
  wsltune export                   Print the .wslconfig text
  wsltune reset                    Write the defaults`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), flags.options(streams))
		},
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default is $HOME/.config/wsltune/config.toml)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newExportCommand(flags, streams),
		newShowCommand(flags, streams),
		newSetCommand(flags, streams),
		newApplyCommand(flags, streams),
		newResetCommand(flags, streams),
		newUsageCommand(streams),
		newThemeCommand(flags, streams),
	)
	return root
}
