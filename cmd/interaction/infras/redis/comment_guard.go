package redis

import (
	"context"
	"crypto/md5"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	commentRateLimitKeyTemplate = "comment_rate_limit:%d"
	commentHashKeyTemplate      = "comment_hash:%d:%s"
)

func RateLimitKey(userId int64) string {
	return fmt.Sprintf(commentRateLimitKeyTemplate, userId)
}

func GetCommentRateLimit(ctx context.Context, key string) (int64, error) {
	countStr, err := RedisDBInteraction.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get comment rate limit: %w", err)
	}

	count, err := strconv.ParseInt(countStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse comment rate limit: %w", err)
	}

	return count, nil
}

// IncrementCommentRateLimit bumps the per-user counter and refreshes
// its expiry atomically through a pipeline.
func IncrementCommentRateLimit(ctx context.Context, key string, expireSeconds int64) error {
	pipe := RedisDBInteraction.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, time.Duration(expireSeconds)*time.Second)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to increment comment rate limit: %w", err)
	}
	return nil
}

// CheckDuplicateComment reports whether the same content hash is still
// inside the window set by StoreCommentHash.
func CheckDuplicateComment(ctx context.Context, userId int64, content string) (bool, error) {
	key := fmt.Sprintf(commentHashKeyTemplate, userId, generateContentHash(content))

	exists, err := RedisDBInteraction.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check duplicate comment: %w", err)
	}
	return exists > 0, nil
}

func StoreCommentHash(ctx context.Context, userId int64, content string, timeWindow int) error {
	key := fmt.Sprintf(commentHashKeyTemplate, userId, generateContentHash(content))

	if err := RedisDBInteraction.Set(ctx, key, "1", time.Duration(timeWindow)*time.Second).Err(); err != nil {
		return fmt.Errorf("failed to store comment hash: %w", err)
	}
	return nil
}

func generateContentHash(content string) string {
	hash := md5.Sum([]byte(content))
	return fmt.Sprintf("%x", hash)
}
