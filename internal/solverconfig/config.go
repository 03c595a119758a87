// Package solverconfig loads the non-semantic knobs a solve run can be
// tuned with — log level and whether statistics collection is enabled —
// from a YAML file, the way the teacher's TrainingConfig loader does
// (viper reading the file, then unmarshalling into a plain struct).
package solverconfig

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the knobs a solve run reads at startup. None of it
// changes search semantics — only how the run is observed.
type Config struct {
	LogLevel      string `mapstructure:"log_level"`
	StatsEnabled  bool   `mapstructure:"stats_enabled"`
	TieBreakOrder string `mapstructure:"tie_break_order"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{LogLevel: "info", StatsEnabled: true, TieBreakOrder: "cat_hits_then_lex"}
}

// FromYaml loads a Config from path. There was no reason to hand-roll a
// YAML reader when viper already resolves file type and location.
func FromYaml(path string) (*Config, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))

	if err := vp.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := vp.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
