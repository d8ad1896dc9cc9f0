package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/wsltune/internal/app"
	"github.com/five82/wsltune/internal/bytesize"
	"github.com/five82/wsltune/internal/settings"
	"github.com/five82/wsltune/internal/theme"
	"github.com/five82/wsltune/internal/wslconfig"
)

func newExportCommand(flags *rootFlags, streams cliIO) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the .wslconfig text for the current settings",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			env, err := app.Open(flags.options(streams))
			if err != nil {
				return err
			}
			_, err = io.WriteString(streams.stdout, env.Facade.ExportConfig())
			return err
		},
	}
}

func newShowCommand(flags *rootFlags, streams cliIO) *cobra.Command {
	return &cobra.Command{
		Use:   "show [field...]",
		Short: "Print the current settings as JSON, or selected fields",
		Long: `Print the settings loaded from .wslconfig.

Without arguments the whole record is printed as JSON. With arguments, each
named field is printed as name=value. Fields may be given by their settings
name (memoryLimit) or their .wslconfig key (memory).`,
		RunE: func(_ *cobra.Command, args []string) error {
			env, err := app.Open(flags.options(streams))
			if err != nil {
				return err
			}
			current := env.Facade.GetConfig()

			if len(args) == 0 {
				enc := json.NewEncoder(streams.stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(current)
			}
			for _, name := range args {
				f, err := resolveField(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(streams.stdout, "%s=%s\n", f.Name, f.Value(current))
			}
			return nil
		},
	}
}

func newSetCommand(flags *rootFlags, streams cliIO) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "set key=value...",
		Short: "Change settings and save .wslconfig",
		Long: `Assign one or more settings and write the result.

Keys are settings names (memoryLimit) or .wslconfig keys (memory). Sizes
accept 8, 8GB or 2048MB; booleans accept true/false; strings are stored
as given. All assignments are checked before anything is written.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			env, err := app.Open(flags.options(streams))
			if err != nil {
				return err
			}

			for _, arg := range args {
				name, raw, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("expected key=value, got %q", arg)
				}
				f, err := resolveField(strings.TrimSpace(name))
				if err != nil {
					return err
				}
				if err := env.Facade.Set(f.Name, raw); err != nil {
					return err
				}
				env.Logger.Debug("set", "field", f.Name, "value", raw)
			}

			if dryRun {
				_, err := io.WriteString(streams.stdout, env.Facade.ExportConfig())
				return err
			}
			if err := env.Facade.Save(); err != nil {
				return err
			}
			env.Logger.Info("saved", "path", env.Facade.Path(), "summary", env.Facade.Snapshot().Summary())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print the resulting .wslconfig instead of saving")
	return cmd
}

func newApplyCommand(flags *rootFlags, streams cliIO) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <file|->",
		Short: "Merge a JSON object of settings and save .wslconfig",
		Long: `Merge a JSON object such as {"memoryLimit": 16, "firewall": false} into the
current settings and write the result. Fields that are absent are left
alone and values are stored as given. Use - to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			payload, err := readPayload(args[0], streams.stdin)
			if err != nil {
				return err
			}
			partial, err := settings.DecodePartial(payload)
			if err != nil {
				return err
			}

			env, err := app.Open(flags.options(streams))
			if err != nil {
				return err
			}
			env.Facade.SetConfig(partial)
			if err := env.Facade.Save(); err != nil {
				return err
			}
			env.Logger.Info("saved", "path", env.Facade.Path(), "summary", env.Facade.Snapshot().Summary())
			return nil
		},
	}
}

func newResetCommand(flags *rootFlags, streams cliIO) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Write the default settings to .wslconfig",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			env, err := app.Open(flags.options(streams))
			if err != nil {
				return err
			}
			env.Facade.ResetToDefault()
			if err := env.Facade.Save(); err != nil {
				return err
			}
			env.Logger.Info("reset to defaults", "path", env.Facade.Path())
			return nil
		},
	}
}

func newUsageCommand(streams cliIO) *cobra.Command {
	return &cobra.Command{
		Use:   "usage <used> <total>",
		Short: "Format a used/total byte pair",
		Example: `  wsltune usage 524288000 838860800
  500 MB / 800 MB (63%)`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			u := bytesize.Format(args[0], args[1])
			_, err := fmt.Fprintf(streams.stdout, "%s (%d%%)\n", u.Text, u.Percent)
			return err
		},
	}
}

func newThemeCommand(flags *rootFlags, streams cliIO) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light]",
		Short:     "Print the editor theme, or save a new one",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(theme.Dark), string(theme.Light)},
		RunE: func(_ *cobra.Command, args []string) error {
			env, err := app.Open(flags.options(streams))
			if err != nil {
				return err
			}

			if len(args) == 0 {
				_, err := fmt.Fprintln(streams.stdout, env.Resolver.Initialize())
				return err
			}

			v, ok := theme.Parse(args[0])
			if !ok {
				return fmt.Errorf("unknown theme %q (want dark or light)", args[0])
			}
			if err := env.Resolver.SetTheme(v); err != nil {
				return err
			}
			env.Logger.Info("theme saved", "theme", v, "prefs", env.Config.PrefsPath)
			return nil
		},
	}
}

// resolveField accepts a settings name or a .wslconfig key.
func resolveField(name string) (settings.Field, error) {
	if f, ok := settings.Lookup(name); ok {
		return f, nil
	}
	if f, ok := wslconfig.FieldForKey(name); ok {
		return f, nil
	}
	return settings.Field{}, &settings.FieldError{Field: name, Err: settings.ErrUnknownField}
}

func readPayload(arg string, stdin io.Reader) ([]byte, error) {
	if arg == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return data, nil
}
