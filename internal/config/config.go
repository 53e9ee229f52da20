package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"catalogtree/converter/internal/domain"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "CATALOGTREE"

// Config holds all configuration for the application
type Config struct {
	Source  SourceConfig       `mapstructure:"source"`
	Output  OutputConfig       `mapstructure:"output"`
	Catalog CatalogConfig      `mapstructure:"catalog"`
	Patches []domain.PatchRule `mapstructure:"patches"`
	Log     LogConfig          `mapstructure:"log"`
}

// SourceConfig describes where the source document comes from
type SourceConfig struct {
	Path    string `mapstructure:"path"`    // File path or http(s) URL
	Format  string `mapstructure:"format"`  // auto, json, markdown
	Timeout int    `mapstructure:"timeout"` // Seconds, remote sources only
	Proxy   string `mapstructure:"proxy"`   // Optional proxy URL for remote sources
}

// OutputConfig describes where the generated tree is written
type OutputConfig struct {
	Path       string `mapstructure:"path"`
	RelativeTo string `mapstructure:"relative_to"` // executable or cwd
}

// CatalogConfig holds the fixed root node of the generated tree
type CatalogConfig struct {
	RootTitle string `mapstructure:"root_title"`
	RootSlug  string `mapstructure:"root_slug"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load builds the configuration from defaults, an optional config file,
// CATALOGTREE_* environment variables and command line flags.
func Load(args []string) (*Config, error) {
	v := viper.New()

	flags := pflag.NewFlagSet("catalogtree", pflag.ContinueOnError)
	configFile := flags.String("config", "", "path to a config file (yaml, json or toml)")
	flags.String("source", "", "source document path or http(s) URL")
	flags.String("output", "", "output JSON path")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, flag := range map[string]string{
		"source.path": "source",
		"output.path": "output",
		"log.level":   "log-level",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("error binding flag %s: %w", flag, err)
		}
	}

	if *configFile != "" {
		v.SetConfigFile(*configFile)
	} else {
		v.SetConfigName("catalogtree")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("source.path", "catalog.md")
	v.SetDefault("source.format", domain.SourceFormatAuto.String())
	v.SetDefault("source.timeout", 30)
	v.SetDefault("source.proxy", "")

	v.SetDefault("output.path", filepath.Join("frontend", "js", "catalog", "catalog_taxonomy_full_generated.json"))
	v.SetDefault("output.relative_to", "executable")

	v.SetDefault("catalog.root_title", "Каталог товаров")
	v.SetDefault("catalog.root_slug", "catalog")

	patches := make([]map[string]any, 0, len(domain.DefaultPatchRules))
	for _, rule := range domain.DefaultPatchRules {
		patches = append(patches, map[string]any{
			"pattern":     rule.Pattern,
			"replacement": rule.Replacement,
		})
	}
	v.SetDefault("patches", patches)

	v.SetDefault("log.level", "info")
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Source.Path) == "" {
		return fmt.Errorf("source.path must not be empty")
	}
	if strings.TrimSpace(c.Output.Path) == "" {
		return fmt.Errorf("output.path must not be empty")
	}
	if !domain.SourceFormat(c.Source.Format).IsValid() {
		return fmt.Errorf("unknown source.format %q", c.Source.Format)
	}
	switch c.Output.RelativeTo {
	case "executable", "cwd":
	default:
		return fmt.Errorf("unknown output.relative_to %q (want executable or cwd)", c.Output.RelativeTo)
	}
	return nil
}

// OutputPath returns the absolute destination of the generated tree.
// Relative paths are anchored at the executable's directory unless
// output.relative_to is "cwd".
func (c *Config) OutputPath() (string, error) {
	if filepath.IsAbs(c.Output.Path) {
		return c.Output.Path, nil
	}

	if c.Output.RelativeTo == "cwd" {
		return filepath.Abs(c.Output.Path)
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path: %w", err)
	}

	return filepath.Join(filepath.Dir(exe), c.Output.Path), nil
}
