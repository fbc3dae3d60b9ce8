// Package config resolves meshgen's configuration from the config file,
// environment, and flags via viper.
package config

import (
	"github.com/meshforge/meshgen/pkg/types"
	"github.com/spf13/viper"
)

// DefaultOutputDir is the output directory used when none is configured.
const DefaultOutputDir = "manifests"

// Config holds the resolved settings for one invocation.
type Config struct {
	// Directory generated manifests are written to
	OutputDir string `yaml:"output_dir"`

	// Namespace used when --namespace is not given
	DefaultNamespace string `yaml:"default_namespace"`

	// Domain used when --domain is not given
	DefaultDomain string `yaml:"default_domain"`
}

// SetDefaults registers the built-in defaults with viper. Call once
// before reading any config value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetDefault("default_namespace", types.DefaultNamespace)
	v.SetDefault("default_domain", "")
}

// Load resolves the configuration from the given viper instance.
// Precedence is flags > environment > config file > defaults, which
// viper handles as long as flags are bound to the matching keys.
func Load(v *viper.Viper) *Config {
	return &Config{
		OutputDir:        v.GetString("output_dir"),
		DefaultNamespace: v.GetString("default_namespace"),
		DefaultDomain:    v.GetString("default_domain"),
	}
}
