package redis

import (
	"context"

	"ViewTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

var RedisDBInteraction *redis.Client

func Load() {
	RedisDBInteraction = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       0,
	})

	if _, err := RedisDBInteraction.Ping(context.Background()).Result(); err != nil {
		hlog.Info("RedisDBInteraction", err)
	}
}
