package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dallionking/stepper-tabs/internal/config"
	"github.com/Dallionking/stepper-tabs/internal/tui/styles"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Display the settings the stepper would run with, after merging
defaults, the config file and STEPPER_* environment variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		source := viper.ConfigFileUsed()
		if source == "" {
			source = "(defaults)"
		}

		fmt.Fprintln(out, styles.Title.Render("Configuration"))
		fmt.Fprintln(out)
		fmt.Fprintln(out, styles.Label.Render("FILE")+"       "+styles.Value.Render(source))
		fmt.Fprintln(out, styles.Label.Render("MODE")+"       "+styles.Value.Render(modeName(cfg)))
		fmt.Fprintln(out, styles.Label.Render("INPUT")+"      "+styles.Value.Render(inputSummary(cfg)))
		fmt.Fprintln(out, styles.Label.Render("STEPS")+"      "+styles.Value.Render(orNone(cfg.StepsFile)))
		fmt.Fprintln(out, styles.Label.Render("WATCH")+"      "+styles.Value.Render(fmt.Sprintf("%t", cfg.Watch)))
		fmt.Fprintln(out, styles.Label.Render("LOG")+"        "+styles.Value.Render(cfg.LogLevel+" → "+orNone(cfg.LogFile)))
		fmt.Fprintln(out)

		fmt.Fprintln(out, styles.Divider(50))
		fmt.Fprintln(out)

		fmt.Fprintln(out, styles.Subtitle.Render("Colors"))
		fmt.Fprintln(out, styles.Label.Render("  SELECTED")+"   "+styles.Swatch(lipgloss.Color(cfg.Colors.Selected)))
		fmt.Fprintln(out, styles.Label.Render("  UNSELECTED")+" "+styles.Swatch(lipgloss.Color(cfg.Colors.Unselected)))
		fmt.Fprintln(out, styles.Label.Render("  SURFACE")+"    "+styles.Swatch(lipgloss.Color(cfg.Colors.Surface)))
		return nil
	},
}

func modeName(cfg *config.Config) string {
	if cfg.Procedural {
		return "procedural"
	}
	return "flat"
}

func inputSummary(cfg *config.Config) string {
	switch {
	case cfg.Bounded() && cfg.AllowInputUntil == 0:
		return "no taps accepted"
	case cfg.Bounded():
		return fmt.Sprintf("taps on steps 1-%d", cfg.AllowInputUntil)
	case cfg.InputEnabled:
		return "enabled"
	default:
		return "disabled"
	}
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

func init() {
	rootCmd.AddCommand(configCmd)
}
