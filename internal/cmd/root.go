package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"pkt.systems/pslog"

	"github.com/Dallionking/stepper-tabs/internal/config"
	"github.com/Dallionking/stepper-tabs/internal/logx"
)

var (
	cfgFile   string
	verbose   bool
	noColor   bool
	configErr error
)

var rootCmd = &cobra.Command{
	Use:   "stepper",
	Short: "Stepper tabs for the terminal",
	Long: `Stepper: a horizontally scrollable strip of labeled steps.

Shows a sequence of steps, highlights the selected one and lets you
click or type earlier steps to jump back to them.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
		// Replace the environment logger so --verbose and logLevel apply.
		log := logx.Console(cmd.ErrOrStderr(), viper.GetString("logLevel"), noColor)
		cmd.SetContext(pslog.ContextWithLogger(cmd.Context(), log))
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute runs the root command with ctx available to every subcommand.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./stepper.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color output")
}

func initConfig() {
	v := viper.GetViper()
	config.SetDefaults(v)
	config.BindEnv(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("stepper")
		v.SetConfigType("yaml")
		for _, p := range config.SearchPaths() {
			v.AddConfigPath(p)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			configErr = fmt.Errorf("reading config: %w", err)
		}
	}
	if verbose {
		v.Set("logLevel", "debug")
	}
}

// loadConfig returns the validated settings for the current invocation.
func loadConfig() (*config.Config, error) {
	if configErr != nil {
		return nil, configErr
	}
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}
	cfg.StepsFile = config.ResolvePath(viper.ConfigFileUsed(), cfg.StepsFile)
	return cfg, nil
}
