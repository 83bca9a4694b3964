package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vampirenirmal/pitchforge/internal/generator"
)

type Config struct {
	Data       DataConfig       `yaml:"data" validate:"required"`
	Generation generator.Params `yaml:"generation" validate:"required"`
	Limits     Limits           `yaml:"limits" validate:"required"`
}

// DataConfig locates the reference data files, all relative to Dir. The pool
// and matrix are required; the audience and advertiser tables are optional
// and only gate the enrichment stage.
type DataConfig struct {
	Dir                 string `yaml:"dir" validate:"required"`
	PoolFile            string `yaml:"pool_file" validate:"required,datafile"`
	MatrixFile          string `yaml:"matrix_file" validate:"required,datafile"`
	AudienceWeightsFile string `yaml:"audience_weights_file"`
	AudienceGroupsFile  string `yaml:"audience_groups_file"`
	AdvertisersFile     string `yaml:"advertisers_file"`
}

// HasAppealData reports whether all three enrichment tables are configured.
func (d DataConfig) HasAppealData() bool {
	return d.AudienceWeightsFile != "" && d.AudienceGroupsFile != "" && d.AdvertisersFile != ""
}

// Load reads the config file, applies env overrides and validates. An empty
// path resolves through PITCHFORGE_CONFIG and the XDG locations; when no
// file exists at a resolved default location, the built-in defaults are
// used. An explicitly given path must exist.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	explicit := path != ""
	if path == "" {
		path = getConfigPath()
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		cfg := Default()
		applyEnvOverrides(cfg)
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the reference configuration: the shipped data file names
// and the typical generation parameters.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Dir:                 "data",
			PoolFile:            "tags.json",
			MatrixFile:          "compatibility.json",
			AudienceWeightsFile: "audience_weights.json",
			AudienceGroupsFile:  "audience_groups.json",
			AdvertisersFile:     "advertisers.json",
		},
		Generation: generator.Params{
			MinScore:      3.0,
			NumGenres:     2,
			NumThemes:     2,
			NumFinales:    1,
			NumSupport:    generator.IntPtr(1),
			AddAntagonist: generator.BoolPtr(true),
		},
		Limits: DefaultLimits(),
	}
}

func getConfigPath() string {
	if path := os.Getenv("PITCHFORGE_CONFIG"); path != "" {
		return path
	}
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "pitchforge", "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "pitchforge", "config.yaml")
}

func applyEnvOverrides(cfg *Config) {
	if dir := os.Getenv("PITCHFORGE_DATA_DIR"); dir != "" {
		cfg.Data.Dir = expandTilde(dir)
	}
}

// expandTilde expands a leading ~ to the user's home directory.
func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

func (c *Config) validate() error {
	c.Data.Dir = expandTilde(c.Data.Dir)

	if c.Limits.BatchSize == 0 {
		c.Limits = DefaultLimits()
	}

	validate := validator.New()

	// Data files are loaded through the sandboxed filesystem, so here we
	// only require a relative, non-empty path.
	validate.RegisterValidation("datafile", func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		return v != "" && !filepath.IsAbs(v)
	})

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}
