package config

type Limits struct {
	MaxAttempts    int             `yaml:"max_attempts" validate:"required,min=1,max=10"`
	MinAcceptScore float64         `yaml:"min_accept_score" validate:"required,gt=0"`
	BatchSize      int             `yaml:"batch_size" validate:"required,min=1,max=50"`
	MaxConcurrent  int             `yaml:"max_concurrent" validate:"required,min=1,max=32"`
	RateLimit      RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig paces batch run starts. Zero disables pacing.
type RateLimitConfig struct {
	RunsPerMinute int `yaml:"runs_per_minute" validate:"min=0,max=1000"`
	BurstSize     int `yaml:"burst_size" validate:"min=0,max=100"`
}

func DefaultLimits() Limits {
	return Limits{
		MaxAttempts:    3,
		MinAcceptScore: 44.0,
		BatchSize:      6,
		MaxConcurrent:  3,
		RateLimit: RateLimitConfig{
			RunsPerMinute: 0,
			BurstSize:     0,
		},
	}
}
