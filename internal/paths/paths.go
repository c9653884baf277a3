// Package paths resolves the data directory location for the CLI.
package paths

import (
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/scriptorium/pkg/types"
)

// EnvDataDir is the environment variable overriding the data directory.
const EnvDataDir = "SCRIPTORIUM_DATA_DIR"

// ResolveDataDir returns the data directory following the precedence chain:
// flag > SCRIPTORIUM_DATA_DIR env > configured value > $(CWD)/.scriptorium.
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, types.DefaultDataDir), nil
}
