package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"pkt.systems/pslog"

	"github.com/Dallionking/stepper-tabs/internal/config"
	"github.com/Dallionking/stepper-tabs/internal/logx"
	"github.com/Dallionking/stepper-tabs/internal/tui/views"
)

var (
	runFlat     bool
	runNoInput  bool
	runSelected int
)

var runCmd = &cobra.Command{
	Use:   "run [label...]",
	Short: "Launch the interactive stepper",
	Long: `Show the steps as a scrollable tab strip.

Steps come from the positional labels, from --file, or from a
steps.yaml found in the working directory or one of its parents.

Use --until N to only accept taps on the first N steps, or
--no-input to disable taps altogether. The arrow keys always move
the selection.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("flat") {
			viper.Set("procedural", !runFlat)
		}
		if cmd.Flags().Changed("no-input") {
			viper.Set("inputEnabled", !runNoInput)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("file") {
			// Flag paths are relative to the working directory, not the config file.
			file, _ := cmd.Flags().GetString("file")
			if cfg.StepsFile, err = filepath.Abs(file); err != nil {
				return fmt.Errorf("resolving --file: %w", err)
			}
		}
		tabCfg, err := cfg.TabConfig()
		if err != nil {
			return fmt.Errorf("building tab config: %w", err)
		}

		doc, path, err := resolveSteps(args, cfg)
		if err != nil {
			return fmt.Errorf("loading steps: %w", err)
		}
		if cmd.Flags().Changed("selected") {
			doc.Selected = runSelected - 1
		}

		log, closeLog, err := tuiLogger(cfg)
		if err != nil {
			return err
		}
		defer closeLog()
		log = logx.WithSteps(log, doc.Title, len(doc.Steps))

		var watchPath string
		if cfg.Watch {
			if path == "" {
				return fmt.Errorf("--watch needs steps from a file, not labels")
			}
			watchPath = path
		}

		pslog.Ctx(cmd.Context()).Debug("starting stepper", "steps", len(doc.Steps), "file", path, "bounded", cfg.Bounded())
		return views.RunStepper(cmd.Context(), doc, tabCfg, watchPath, log)
	},
}

// tuiLogger opens the log file for the TUI session. Without one, logs are
// discarded so nothing is written over the alternate screen.
func tuiLogger(cfg *config.Config) (pslog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return logx.Discard(), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return logx.Structured(f, cfg.LogLevel), func() { _ = f.Close() }, nil
}

func init() {
	f := runCmd.Flags()
	f.StringP("file", "f", "", "YAML step file")
	f.BoolVar(&runFlat, "flat", false, "flat mode: no numbering, only the selected tab is highlighted")
	f.Int("until", config.NoBound, "only accept taps on steps before this index")
	f.BoolVar(&runNoInput, "no-input", false, "ignore taps")
	f.Bool("watch", false, "reload the step file when it changes")
	f.IntVar(&runSelected, "selected", 1, "initially selected step (1-based)")
	f.String("log-file", "", "write structured logs to this file")

	_ = viper.BindPFlag("stepsFile", f.Lookup("file"))
	_ = viper.BindPFlag("allowInputUntil", f.Lookup("until"))
	_ = viper.BindPFlag("watch", f.Lookup("watch"))
	_ = viper.BindPFlag("logFile", f.Lookup("log-file"))

	rootCmd.AddCommand(runCmd)
}
