// Package config loads the client's environment configuration. The analysis
// service base address is the only required knob; everything else about the
// workflow is session state.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// AnalyzerURL is the base address of the analysis service, e.g.
	// http://localhost:5000.
	AnalyzerURL string `env:"ANALYZER_API_URL,required"`

	// ExportDir is where exported report documents are written.
	ExportDir string `env:"ANALYZER_EXPORT_DIR" envDefault:"."`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
