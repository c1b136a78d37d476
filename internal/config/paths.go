package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultStepsFile is the file name looked up when no steps are given.
const DefaultStepsFile = "steps.yaml"

// FindStepsFile walks up from the current working directory looking for a
// directory that contains steps.yaml. Returns the absolute path or an error
// if not found.
func FindStepsFile() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return findUp(dir, DefaultStepsFile)
}

func findUp(dir, name string) (string, error) {
	for {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root without finding the file.
			return "", fmt.Errorf("%s not found in any parent directory", name)
		}
		dir = parent
	}
}

// ResolvePath makes p absolute. Relative paths are resolved against the
// directory of the config file in use, or the working directory when there is
// none.
func ResolvePath(configFile, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	if configFile != "" {
		return filepath.Join(filepath.Dir(configFile), p)
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// SearchPaths returns the directories searched for stepper.yaml, in order.
func SearchPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "stepper"))
	}
	return paths
}
