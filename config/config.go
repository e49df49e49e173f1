package config

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	StoreMemory    = "memory"
	StoreFirestore = "firestore"
)

type Config struct {
	Port            string   `mapstructure:"port"`
	GinMode         string   `mapstructure:"gin_mode"`
	LogLevel        string   `mapstructure:"log_level"`
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	Store           string   `mapstructure:"store"`
	GCPProject      string   `mapstructure:"gcp_project"`
	CredentialsFile string   `mapstructure:"credentials_file"`
}

// Load reads configuration from CB_-prefixed env vars with sane local-dev
// defaults (in-memory store, debug logging).
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("cb")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "debug")
	v.SetDefault("log_level", "debug")
	v.SetDefault("allowed_origins", "http://localhost:3000")
	v.SetDefault("store", StoreMemory)
	v.SetDefault("gcp_project", "")
	v.SetDefault("credentials_file", "")

	cfg := &Config{
		Port:            v.GetString("port"),
		GinMode:         v.GetString("gin_mode"),
		LogLevel:        v.GetString("log_level"),
		AllowedOrigins:  strings.Split(v.GetString("allowed_origins"), ";"),
		Store:           v.GetString("store"),
		GCPProject:      v.GetString("gcp_project"),
		CredentialsFile: v.GetString("credentials_file"),
	}
	return cfg, nil
}
