package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure. Every report option has a config-file and
// environment counterpart; CLI flags override both.
type Global struct {
	Separator        string  `mapstructure:"separator" yaml:"separator"`
	Encoding         string  `mapstructure:"encoding" yaml:"encoding"`
	OutDir           string  `mapstructure:"out_dir" yaml:"out_dir"`
	MaxHistColumns   int     `mapstructure:"max_hist_columns" yaml:"max_hist_columns"`
	TopKCategories   int     `mapstructure:"top_k_categories" yaml:"top_k_categories"`
	Title            string  `mapstructure:"title" yaml:"title"`
	JSONSummary      bool    `mapstructure:"json_summary" yaml:"json_summary"`
	XLSXSummary      bool    `mapstructure:"xlsx_summary" yaml:"xlsx_summary"`
	Plots            bool    `mapstructure:"plots" yaml:"plots"`
	MinQualityScore  float64 `mapstructure:"min_quality_score" yaml:"min_quality_score"`
	FailOnLowQuality bool    `mapstructure:"fail_on_low_quality" yaml:"fail_on_low_quality"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.edascope/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".edascope")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (applied by the caller) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("EDASCOPE")
	v.AutomaticEnv()

	v.SetDefault("separator", ",")
	v.SetDefault("encoding", "utf-8")
	v.SetDefault("out_dir", "reports")
	v.SetDefault("max_hist_columns", 6)
	v.SetDefault("top_k_categories", 5)
	v.SetDefault("title", "EDA report")
	v.SetDefault("json_summary", false)
	v.SetDefault("xlsx_summary", false)
	v.SetDefault("plots", true)
	v.SetDefault("min_quality_score", 0.5)
	v.SetDefault("fail_on_low_quality", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".edascope")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
