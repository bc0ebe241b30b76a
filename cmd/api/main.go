// @title Cadence API
// @description Habit recurrence, streak and statistics engine
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"time"

	"github.com/limbo/cadence/internal/api"
	"github.com/limbo/cadence/internal/cache"
	"github.com/limbo/cadence/internal/repository"
	"github.com/limbo/cadence/internal/reward"
	"github.com/limbo/cadence/internal/service"
	"github.com/limbo/cadence/internal/tracker"
	"github.com/limbo/cadence/pkg/cleanup"
	"github.com/limbo/cadence/pkg/config"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	habitsRepo := repository.NewHabitsRepo(&dbCfg)
	checksRepo := repository.NewChecksRepo(&dbCfg)
	tasksRepo := repository.NewTasksRepo(&dbCfg)

	var sink tracker.RewardSink = tracker.NopSink{}
	if url := cfg.GetString("AMQP_URL"); url != "" {
		amqpSink, err := reward.NewAMQPSink(url)
		if err != nil {
			log.Fatal("connecting reward sink error: " + err.Error())
		}
		cleanup.Register(&cleanup.Job{
			Name: "closing reward sink",
			F:    amqpSink.Close,
		})
		sink = amqpSink
	}

	var statsCache service.StatsCache = cache.Nop{}
	if addr := cfg.GetString("REDIS_ADDR"); addr != "" {
		redisCache := cache.NewRedis(addr, cfg.GetString("REDIS_PASSWORD"), cfg.GetInt("REDIS_DB", 0))
		if err := redisCache.Ping(context.Background()); err != nil {
			log.Fatal("pinging stats cache error: " + err.Error())
		}
		cleanup.Register(&cleanup.Job{
			Name: "closing stats cache",
			F:    redisCache.Close,
		})
		statsCache = redisCache
	}

	serv := api.New(&api.ServicesList{
		HabitsService: service.NewHabitsService(habitsRepo),
		ChecksService: service.NewChecksService(habitsRepo, checksRepo, sink, statsCache, time.Now),
		StatsService:  service.NewStatsService(habitsRepo, checksRepo, statsCache, time.Now),
		TasksService:  service.NewTasksService(tasksRepo, time.Now),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
