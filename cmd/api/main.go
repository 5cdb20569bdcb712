package main

import (
	"context"

	"Lee_Blog/internal/config"
	"Lee_Blog/internal/model"
	"Lee_Blog/internal/pkg"
	"Lee_Blog/internal/repository/mysql"
	"Lee_Blog/internal/repository/redis"
	"Lee_Blog/internal/router"
	"Lee_Blog/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	if err := pkg.InitLogger(cfg.LogLevel, cfg.LogFile); err != nil {
		panic(err)
	}
	pkg.SetJWTSecret(cfg.AccessSecret, cfg.RefreshSecret)

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		pkg.Log.Fatal("mysql init failed", zap.Error(err))
	}

	// 自动建表（开发阶段 OK）
	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Post{},
		&model.Comment{},
		&model.Follow{},
		&model.FollowOutbox{},
	); err != nil {
		pkg.Log.Fatal("auto migrate failed", zap.Error(err))
	}

	// 页面缓存优先用 redis，连不上就退回进程内缓存
	var cache pkg.PageCache = pkg.NewMemoryPageCache()
	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		pkg.Log.Warn("redis unavailable, using in-memory page cache", zap.Error(err))
	} else {
		cache = redis.NewPageCacheRepository(redis.Client)
		defer redis.Close()
	}

	// 关注事件投递：配了 kafka 就发 kafka，否则只打日志
	sender := service.Sender(service.LogSender)
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		})
		if err != nil {
			pkg.Log.Warn("kafka producer init failed, falling back to log sender", zap.Error(err))
		} else {
			sender = service.KafkaSender(producer)
			defer producer.Close()
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.NewOutboxRelayer(mysql.DB, sender).Run(ctx)

	r := router.InitRouter(mysql.DB, cfg, cache)
	if err := r.Run(cfg.Addr); err != nil {
		pkg.Log.Fatal("server exited", zap.Error(err))
	}
}
