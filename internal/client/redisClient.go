package client

import (
	"context"
	"log"

	"github.com/anujthakur2004/Fashion-Hub/internal/config"

	"github.com/redis/go-redis/v9"
)

func InitRedisClient(cfg *config.Redis) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("failed to connect to redis:", err)
	}

	return client
}
