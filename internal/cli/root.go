package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mithrel/smgrid/internal/config"
	"github.com/mithrel/smgrid/internal/wire"
)

type ctxKey string

const appKey ctxKey = "app"

// configKeyAnnotation prefixes command annotations that bind a local flag to
// a config key, e.g. "config:width" = "wrap.width".
const configKeyAnnotation = "config:"

// Execute builds the root command and runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the Cobra root command and wires dependencies.
func NewRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "smgrid",
		Short:         "smgrid: fixed-width text blocks for source-map grids",
		SilenceUsage:  true, // don't show usage on runtime errors
		SilenceErrors: true, // let main print errors once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}
			applyConfigFlagOverrides(cmd, v, flagBindings(cmd))
			// config subcommands must run even when the current file is broken
			checkErr := config.CheckConfigValidity(v)
			if checkErr != nil && !isConfigCmd(cmd) {
				return checkErr
			}
			cfg, err := config.Decode(v)
			if err != nil {
				return err
			}
			app, err := wire.BuildApp(cmd.Context(), cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			app.ConfigErr = checkErr
			if f := v.ConfigFileUsed(); f != "" {
				app.Log.Printf("config: %s", f)
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, appKey, app))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (toml)")
	cmd.PersistentFlags().StringP("output", "o", "plain", "output format: plain|json|ndjson")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log progress to stderr")
	cmd.PersistentFlags().Bool("indent", false, "indent JSON output")

	cmd.AddCommand(newSanitizeCmd())
	cmd.AddCommand(newWrapCmd())
	cmd.AddCommand(newSourceCmd())
	cmd.AddCommand(newIntCmd())
	cmd.AddCommand(newGridCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCompletionCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

// flagBindings collects flag-to-key bindings for persistent flags and the
// running command's annotations.
func flagBindings(cmd *cobra.Command) map[string]string {
	extra := map[string]string{
		"output":  "output",
		"verbose": "verbose",
		"indent":  "json.indent",
	}
	for k, key := range cmd.Annotations {
		if name, ok := strings.CutPrefix(k, configKeyAnnotation); ok {
			extra[name] = key
		}
	}
	return extra
}

func isConfigCmd(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" && c.HasParent() {
			return true
		}
	}
	return false
}

func getApp(cmd *cobra.Command) *wire.App {
	v := cmd.Context().Value(appKey)
	if v == nil {
		fmt.Fprintln(os.Stderr, "internal error: app not initialized")
		os.Exit(1)
	}
	return v.(*wire.App)
}
