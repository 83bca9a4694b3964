package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/vampirenirmal/pitchforge/internal/appeal"
	"github.com/vampirenirmal/pitchforge/internal/config"
	"github.com/vampirenirmal/pitchforge/internal/generator"
	"github.com/vampirenirmal/pitchforge/internal/storage"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to config file (default: $PITCHFORGE_CONFIG or XDG location)")
		dataDir    = flag.String("data", "", "override the reference data directory")
		count      = flag.Int("count", 0, "number of ideas to generate (default: config batch size)")
		seed       = flag.Int64("seed", 0, "random seed, 0 for time-based")
		enrich     = flag.Bool("enrich", true, "attach audience and advertiser enrichment")
		logLevel   = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	setupLogging(*logLevel)

	if err := run(*configPath, *dataDir, *count, *seed, *enrich); err != nil {
		slog.Error("pitchforge failed", "error", err)
		os.Exit(1)
	}
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}

func run(configPath, dataDir string, count int, seed int64, enrich bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}
	if count <= 0 {
		count = cfg.Limits.BatchSize
	}

	fs := storage.NewFileSystem(cfg.Data.Dir)

	pool, err := fs.LoadPool(cfg.Data.PoolFile)
	if err != nil {
		return err
	}
	matrix, err := fs.LoadMatrix(cfg.Data.MatrixFile)
	if err != nil {
		return err
	}
	slog.Info("reference data loaded",
		"categories", len(pool),
		"matrix_rows", len(matrix),
	)

	var opts []generator.Option
	if seed != 0 {
		opts = append(opts, generator.WithRand(rand.New(rand.NewSource(seed))))
	}
	engine := generator.NewEngine(matrix, opts...)

	batchCfg := generator.BatchConfig{
		Count:         count,
		MaxConcurrent: cfg.Limits.MaxConcurrent,
		Retry: generator.RetryConfig{
			MaxAttempts:    cfg.Limits.MaxAttempts,
			MinAcceptScore: cfg.Limits.MinAcceptScore,
		},
	}
	if rpm := cfg.Limits.RateLimit.RunsPerMinute; rpm > 0 {
		burst := cfg.Limits.RateLimit.BurstSize
		if burst < 1 {
			burst = 1
		}
		batchCfg.Limiter = rate.NewLimiter(rate.Limit(float64(rpm)/60.0), burst)
	}

	ideas, err := engine.GenerateBatch(context.Background(), pool, cfg.Generation, batchCfg)
	if err != nil {
		return fmt.Errorf("generating batch: %w", err)
	}

	if enrich && cfg.Data.HasAppealData() {
		if err := enrichIdeas(fs, cfg.Data, ideas); err != nil {
			// Enrichment is a soft concern: degrade to plain ideas.
			slog.Warn("skipping enrichment", "error", err)
		}
	}

	out, err := json.MarshalIndent(ideas, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func enrichIdeas(fs *storage.FileSystem, data config.DataConfig, ideas []*generator.Idea) error {
	weights, err := fs.LoadAudienceWeights(data.AudienceWeightsFile)
	if err != nil {
		return err
	}
	groups, err := fs.LoadAudienceGroups(data.AudienceGroupsFile)
	if err != nil {
		return err
	}
	roster, err := fs.LoadRoster(data.AdvertisersFile)
	if err != nil {
		return err
	}

	for _, idea := range ideas {
		result := appeal.RunCalculation(idea.Selection(), weights, groups, roster)
		if result.Results == nil {
			slog.Warn("enrichment skipped for idea",
				"idea_id", idea.ID,
				"validation_errors", result.Validation.Errors,
			)
			continue
		}
		if result.Results.Error != "" {
			slog.Warn("enrichment failed for idea",
				"idea_id", idea.ID,
				"error", result.Results.Error,
			)
			continue
		}
		idea.InterestedAudiences = result.Results.InterestedAudiences
		idea.UsedAudienceFallback = result.Results.UsedAudienceFallback
		idea.UsedAdvertiserFallback = result.Results.UsedAdvertiserFallback
		idea.TopAdvertisers = make([]generator.AdvertiserScore, 0, len(result.Results.TopAdvertisers))
		for _, m := range result.Results.TopAdvertisers {
			idea.TopAdvertisers = append(idea.TopAdvertisers, generator.AdvertiserScore{Name: m.Name, Score: m.Score})
		}
	}
	return nil
}
