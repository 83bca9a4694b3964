package config

import (
	"strings"
	"testing"
)

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "default config valid",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name: "missing data dir",
			mutate: func(c *Config) {
				c.Data.Dir = ""
			},
			wantErr: true,
			errMsg:  "Dir",
		},
		{
			name: "missing pool file",
			mutate: func(c *Config) {
				c.Data.PoolFile = ""
			},
			wantErr: true,
			errMsg:  "PoolFile",
		},
		{
			name: "absolute matrix path rejected",
			mutate: func(c *Config) {
				c.Data.MatrixFile = "/etc/passwd"
			},
			wantErr: true,
			errMsg:  "MatrixFile",
		},
		{
			name: "missing generation min score",
			mutate: func(c *Config) {
				c.Generation.MinScore = 0
			},
			wantErr: true,
			errMsg:  "MinScore",
		},
		{
			name: "missing support target",
			mutate: func(c *Config) {
				c.Generation.NumSupport = nil
			},
			wantErr: true,
			errMsg:  "NumSupport",
		},
		{
			name: "max attempts out of range",
			mutate: func(c *Config) {
				c.Limits.MaxAttempts = 11
			},
			wantErr: true,
			errMsg:  "MaxAttempts",
		},
		{
			name: "optional enrichment files may be empty",
			mutate: func(c *Config) {
				c.Data.AudienceWeightsFile = ""
				c.Data.AudienceGroupsFile = ""
				c.Data.AdvertisersFile = ""
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("validate() error = %v, want error containing %q", err, tt.errMsg)
			}
		})
	}
}

func TestDefaultLimitsApplied(t *testing.T) {
	cfg := Default()
	cfg.Limits = Limits{}

	if err := cfg.validate(); err != nil {
		t.Fatalf("validate() error = %v, want defaults to fill empty limits", err)
	}
	if cfg.Limits.BatchSize != DefaultLimits().BatchSize {
		t.Errorf("BatchSize = %d, want default %d", cfg.Limits.BatchSize, DefaultLimits().BatchSize)
	}
	if cfg.Limits.MinAcceptScore != 44.0 {
		t.Errorf("MinAcceptScore = %v, want reference 44.0", cfg.Limits.MinAcceptScore)
	}
}

func TestHasAppealData(t *testing.T) {
	cfg := Default()
	if !cfg.Data.HasAppealData() {
		t.Error("default config should carry all enrichment tables")
	}
	cfg.Data.AdvertisersFile = ""
	if cfg.Data.HasAppealData() {
		t.Error("HasAppealData() = true with a missing table")
	}
}

func TestDefaultGenerationParamsValid(t *testing.T) {
	if err := Default().Generation.Validate(); err != nil {
		t.Errorf("default generation params invalid: %v", err)
	}
	if got := Default().Generation; !*got.AddAntagonist || *got.NumSupport != 1 {
		t.Errorf("unexpected defaults: %+v", got)
	}
}
