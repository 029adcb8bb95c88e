package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sheikhrachel/go-life/logging"
	"github.com/sheikhrachel/go-life/utils"
)

// Version of the golife command
const Version = "0.3.0"

const envPrefix = "GOLIFE"

// flagKeys maps command-line flag names to configuration keys
var flagKeys = map[string]string{
	"renderer":             "renderer",
	"frame-rate":           "frame_rate",
	"max-generations":      "max_generations",
	"stop-on-stagnation":   "stop_on_stagnation",
	"stagnation-threshold": "stagnation_threshold",
	"density":              "random_density",
	"seed":                 "seed",
	"workers":              "workers",
	"log-level":            "log.level",
	"log-format":           "log.format",
}

// app carries the state shared by every subcommand of one invocation
type app struct {
	v   *viper.Viper
	cfg utils.Config
	log *logging.Logger
}

// NewRootCmd builds the golife command tree with a fresh configuration
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "golife",
		Short: "Conway's Game of Life on a bounded board",
		Long: `golife simulates Conway's Game of Life on a rectangular board whose border
cells never change. Boards are read from stdin as rows*cols whitespace-separated
0/1 values, seeded from a named pattern, or filled at random.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initConfig,
	}

	root.PersistentFlags().StringP("config", "c", "", "config file (yaml, json or toml)")
	root.PersistentFlags().String("log-level", "", "log level: DEBUG, INFO, WARN, ERROR")
	root.PersistentFlags().String("log-format", "", "log format: text or json")

	root.AddCommand(
		newRunCmd(a),
		newIterateCmd(a),
		newBatchCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	utils.SetDefaults(a.v)

	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		if err := utils.ReadConfigFile(a.v, cfgFile); err != nil {
			return err
		}
	}

	a.v.SetEnvPrefix(envPrefix)
	// GOLIFE_LOG_LEVEL for log.level
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
			bindErr = a.v.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return errors.Wrap(bindErr, "[initConfig] failed to bind flags")
	}

	cfg, err := utils.FromViper(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.NewLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	a.log.Debug("configuration loaded", "config_file", a.v.ConfigFileUsed(), "renderer", cfg.Renderer)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the golife version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "golife "+Version)
		},
	}
}
