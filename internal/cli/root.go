// Package cli implements the nativetheme command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tOgg1/nativetheme/internal/config"
	"github.com/tOgg1/nativetheme/internal/logging"
	"github.com/tOgg1/nativetheme/internal/resolver"
)

// flagBindings maps config keys to the persistent flags that override them.
var flagBindings = map[string]string{
	"logging.level":       "log-level",
	"logging.format":      "log-format",
	"theme.platform":      "platform",
	"theme.appearance":    "appearance",
	"theme.accent":        "accent",
	"theme.probe_timeout": "probe-timeout",
}

// app carries state shared by all commands of one invocation.
type app struct {
	configFile string
	loader     *config.Loader
	cfg        *config.Config
	resolver   *resolver.Resolver
}

// Execute runs the root command.
func Execute(version string) error {
	cmd, err := newRootCmd(version)
	if err != nil {
		return err
	}
	return cmd.Execute()
}

func newRootCmd(version string) (*cobra.Command, error) {
	a := &app{loader: config.NewLoader()}

	var output string
	cmd := &cobra.Command{
		Use:   "nativetheme",
		Short: "Resolve the native window theme for this platform",
		Long: `nativetheme detects the host platform, reads its appearance and accent
preferences and prints the resulting window chrome and control palette.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.init(); err != nil {
				return err
			}
			cmd.SetContext(logging.WithContext(cmd.Context(), logging.Component("resolver")))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}
			return a.runResolve(cmd.Context(), cmd.OutOrStdout(), format, false)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default is $HOME/.config/nativetheme/config.yaml)")
	flags.String("log-level", "", "override logging level (debug, info, warn, error)")
	flags.String("log-format", "", "override logging format (json, console)")
	flags.String("platform", "", "resolve for another platform: macos|windows|linux")
	flags.String("appearance", "", "force appearance: auto|light|dark")
	flags.String("accent", "", "force accent color (#RRGGBB)")
	flags.Duration("probe-timeout", 0, "bound for each native preference query")
	if err := bindFlags(a.loader, flags); err != nil {
		return nil, err
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(formatTable), "output format: table|json|yaml")

	cmd.AddCommand(
		newResolveCmd(a),
		newProbeCmd(a),
		newPreviewCmd(a),
		newPlatformsCmd(a),
	)
	return cmd, nil
}

// bindFlags lets each flag in flagBindings override its config key.
func bindFlags(loader *config.Loader, flags *pflag.FlagSet) error {
	for key, name := range flagBindings {
		if err := loader.BindFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}
	return nil
}

// init loads configuration, sets up logging and builds the resolver.
func (a *app) init() error {
	if a.configFile != "" {
		a.loader.SetConfigFile(a.configFile)
	}

	cfg, err := a.loader.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	logging.Init(cfg.LoggingOptions())
	logger := logging.Component("cli")
	if used := a.loader.ConfigFileUsed(); used != "" {
		logger.Debug().Str("config_file", used).Msg("loaded config file")
	}

	opts, err := cfg.ResolverOptions()
	if err != nil {
		return fmt.Errorf("invalid theme config: %w", err)
	}
	a.resolver = resolver.New(opts...)
	return nil
}
