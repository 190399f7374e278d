package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"recap/internal/cache"
	"recap/internal/config"
	"recap/internal/insights"
	"recap/internal/logging"
	"recap/internal/queue"
	"recap/internal/recap"
	"recap/internal/riot"
	"recap/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	logger := logging.Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf("config load failed: %v", err)
		os.Exit(1)
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Errorf("invalid redis url: %v", err)
		os.Exit(1)
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	var archive recap.Archive
	if cfg.DBURL != "" {
		pool, err := store.NewPool(ctx, cfg.DBURL)
		if err != nil {
			logger.Errorf("db connection failed: %v", err)
			os.Exit(1)
		}
		defer pool.Close()

		recaps := store.NewRecapArchive(pool)
		if err := recaps.Migrate(ctx); err != nil {
			logger.Errorf("db migration failed: %v", err)
			os.Exit(1)
		}
		archive = recaps
	}

	var model insights.Generator
	if cfg.BedrockModel != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			logger.Warnf("aws config load failed, using local insights only: %v", err)
		} else {
			model = insights.NewBedrockGenerator(awsCfg, cfg.BedrockModel)
		}
	}

	svc := recap.NewService(
		riot.NewClient(cfg.RiotAPIKey),
		cache.New(redisClient, cfg.RecapTTL),
		archive,
		riot.NewChampionNames(),
		model,
	)

	proc := recap.NewProcessor(ctx, svc)
	q := queue.NewRedisQueue(redisClient)

	logger.Infof("starting recap worker: queue=%s workers=%d", cfg.RedisQueue, cfg.WorkerCount)
	if err := q.Consume(ctx, cfg.RedisQueue, cfg.WorkerCount, cfg.JobBuffer, proc.Handle); err != nil && ctx.Err() == nil {
		logger.Errorf("queue consumption ended: %v", err)
		os.Exit(1)
	}
}
