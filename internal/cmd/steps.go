package cmd

import (
	"fmt"

	"github.com/Dallionking/stepper-tabs/internal/config"
	"github.com/Dallionking/stepper-tabs/internal/stepfile"
)

// resolveSteps picks the step source for a command: positional labels win,
// then the configured steps file, then a steps.yaml found above the working
// directory. The returned path is empty when the steps came from labels.
func resolveSteps(labels []string, cfg *config.Config) (*stepfile.Document, string, error) {
	if len(labels) > 0 {
		return stepfile.FromLabels(labels), "", nil
	}

	path := cfg.StepsFile
	if path == "" {
		found, err := config.FindStepsFile()
		if err != nil {
			return nil, "", fmt.Errorf("no steps given and %w", err)
		}
		path = found
	}

	doc, err := stepfile.Load(path)
	if err != nil {
		return nil, "", err
	}
	return doc, path, nil
}
