package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config carries the settings of the indexer service. Values come from an
// optional default_settings file next to the binary, overridden by DSCVR_*
// environment variables (DSCVR_INDEXER_PORT overrides indexer.port).
type Config struct {
	Common  CommonConfig  `mapstructure:"common"`
	Indexer IndexerConfig `mapstructure:"indexer"`
}

type CommonConfig struct {
	// BaseDir is the application data directory. The index directory and the
	// metadata database live underneath it.
	BaseDir  string `mapstructure:"base_dir"`
	LogLevel string `mapstructure:"log_level"`
}

type IndexerConfig struct {
	Host               string `mapstructure:"host"`
	Port               int    `mapstructure:"port"`
	IndexDirectoryName string `mapstructure:"index_directory_name"`
	DBFileName         string `mapstructure:"db_file_name"`
	MetricsPort        int    `mapstructure:"metrics_port"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("default_settings")
	v.AddConfigPath(".")

	v.SetEnvPrefix("DSCVR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("common.log_level", "info")
	v.SetDefault("indexer.host", "127.0.0.1")
	v.SetDefault("indexer.port", 50051)
	v.SetDefault("indexer.index_directory_name", "index")
	v.SetDefault("indexer.db_file_name", "metadata.sqlite")
	v.SetDefault("indexer.metrics_port", 0)

	if err := v.ReadInConfig(); err != nil {
		// The settings file is optional; the environment can carry everything.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read settings file: %w", err)
		}
	}

	// AutomaticEnv resolves keys lazily; bind the known keys explicitly so
	// Unmarshal sees environment-only values too.
	for _, key := range []string{
		"common.base_dir",
		"common.log_level",
		"indexer.host",
		"indexer.port",
		"indexer.index_directory_name",
		"indexer.db_file_name",
		"indexer.metrics_port",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Common.BaseDir == "" {
		return fmt.Errorf("common.base_dir is required")
	}
	if c.Indexer.Port <= 0 || c.Indexer.Port > 65535 {
		return fmt.Errorf("indexer.port %d out of range", c.Indexer.Port)
	}
	if c.Indexer.IndexDirectoryName == "" {
		return fmt.Errorf("indexer.index_directory_name is required")
	}
	if c.Indexer.DBFileName == "" {
		return fmt.Errorf("indexer.db_file_name is required")
	}
	return nil
}

// Addr is the listen address of the gRPC server.
func (c *IndexerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
