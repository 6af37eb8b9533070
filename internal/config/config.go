// Package config loads the runtime configuration from a config file
// and STUDIO_-prefixed environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the server needs to start.
type Config struct {
	Addr string `mapstructure:"addr"`
	Dev  bool   `mapstructure:"dev"`

	SanityProjectID  string `mapstructure:"sanity_project_id"`
	SanityDataset    string `mapstructure:"sanity_dataset"`
	SanityAPIVersion string `mapstructure:"sanity_api_version"`
	SanityToken      string `mapstructure:"sanity_token"`
	SanityBaseURL    string `mapstructure:"sanity_base_url"`

	PreviewSecret string `mapstructure:"preview_secret"`
	SessionSecret string `mapstructure:"session_secret"`
	SecureCookies bool   `mapstructure:"secure_cookies"`

	RedisAddr string        `mapstructure:"redis_addr"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`
}

// Load reads the optional config file plus the environment. A missing
// config file is fine; a malformed one is not.
func Load(cfgFile string) (Config, error) {
	v := viper.New()

	// Every key needs a default so AutomaticEnv can feed Unmarshal.
	v.SetDefault("addr", ":8080")
	v.SetDefault("dev", false)
	v.SetDefault("sanity_project_id", "")
	v.SetDefault("sanity_dataset", "production")
	v.SetDefault("sanity_api_version", "2024-01-01")
	v.SetDefault("sanity_token", "")
	v.SetDefault("sanity_base_url", "")
	v.SetDefault("preview_secret", "")
	v.SetDefault("session_secret", "")
	v.SetDefault("redis_addr", "")
	v.SetDefault("cache_ttl", time.Minute)
	v.SetDefault("secure_cookies", true)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("studio")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("STUDIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if cfgFile != "" {
			return Config{}, fmt.Errorf("config file %s not found: %w", cfgFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	return cfg, nil
}

// Validate checks the fields the server cannot run without.
func (c Config) Validate() error {
	if c.SanityProjectID == "" {
		return fmt.Errorf("sanity project id is required (STUDIO_SANITY_PROJECT_ID)")
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("session secret is required (STUDIO_SESSION_SECRET)")
	}
	return nil
}
