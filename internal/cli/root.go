// Package cli defines the cobra command tree for the bpos binary.
package cli

import (
	"os"

	"github.com/example/bpos/internal/config"
	"github.com/example/bpos/internal/wire"
)

// configDir returns the directory holding .bpos/. BPOS_HOME overrides the
// user home directory.
func configDir() (string, error) {
	if dir := os.Getenv("BPOS_HOME"); dir != "" {
		return dir, nil
	}
	return os.UserHomeDir()
}

// configureWire loads the config if present and hands it to the wire layer.
// A missing config is fine for local CLI use; defaults apply.
func configureWire() *config.Config {
	dir, err := configDir()
	if err != nil {
		return nil
	}
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return nil
	}
	wire.Configure(cfg)
	return cfg
}
