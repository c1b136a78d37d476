package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"pkt.systems/pslog"

	"github.com/Dallionking/stepper-tabs/internal/stepper"
	"github.com/Dallionking/stepper-tabs/internal/tui/components"
)

var (
	renderFile     string
	renderSelected int
	renderWidth    int
	renderTaps     []int
)

var renderCmd = &cobra.Command{
	Use:   "render [label...]",
	Short: "Print the tab strip once",
	Long: `Render the strip for a given selection and print it.

--tap replays taps (1-based) in order before rendering, going through
the same gating as the interactive stepper. Rejected taps are logged
and leave the selection unchanged.

With --width the strip is cut to that many columns and scrolled so
the selected tab is centered.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if renderFile != "" {
			cfg.StepsFile = renderFile
		}
		tabCfg, err := cfg.TabConfig()
		if err != nil {
			return fmt.Errorf("building tab config: %w", err)
		}

		doc, _, err := resolveSteps(args, cfg)
		if err != nil {
			return fmt.Errorf("loading steps: %w", err)
		}
		if cmd.Flags().Changed("selected") {
			doc.Selected = renderSelected - 1
		}
		state, err := doc.State()
		if err != nil {
			return err
		}

		log := pslog.Ctx(cmd.Context())
		p := stepper.NewPresenter(state, tabCfg)
		for _, tap := range renderTaps {
			if p.Tap(tap - 1) {
				log.Debug("tap accepted", "tab", tap, "selected", state.Selected()+1)
				continue
			}
			log.Warn("tap rejected", "tab", tap, "selected", state.Selected()+1)
		}

		strip := components.StepperTabs{
			Tabs:   p.Tabs(),
			Config: tabCfg,
			Width:  renderWidth,
		}
		strip.Offset = strip.CenterOffset(state.Selected())

		fmt.Fprintln(cmd.OutOrStdout(), strip.Render())
		return nil
	},
}

func init() {
	f := renderCmd.Flags()
	f.StringVarP(&renderFile, "file", "f", "", "YAML step file")
	f.IntVar(&renderSelected, "selected", 1, "selected step (1-based)")
	f.IntVar(&renderWidth, "width", 0, "viewport width in columns (0 renders the whole strip)")
	f.IntSliceVar(&renderTaps, "tap", nil, "taps to replay before rendering (1-based, repeatable)")
	rootCmd.AddCommand(renderCmd)
}
