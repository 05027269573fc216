package github

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/gan0622/DevForFun/internal/domain/github"
	"github.com/gan0622/DevForFun/pkg/logger"
)

// RepoCache caches repository listings per username. Misses and cache
// failures look the same to the caller; a broken cache never breaks a lookup.
type RepoCache interface {
	Get(ctx context.Context, username string) ([]github.Repo, bool)
	Set(ctx context.Context, username string, repos []github.Repo)
}

type redisRepoCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewRedisRepoCache(rdb *redis.Client, ttl time.Duration, log logger.Logger) RepoCache {
	return &redisRepoCache{rdb: rdb, ttl: ttl, logger: log}
}

func (c *redisRepoCache) key(username string) string {
	return "github:repos:" + username
}

func (c *redisRepoCache) Get(ctx context.Context, username string) ([]github.Repo, bool) {
	data, err := c.rdb.Get(ctx, c.key(username)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("github repo cache read failed", zap.String("username", username), zap.Error(err))
		}
		return nil, false
	}

	var repos []github.Repo
	if err := json.Unmarshal(data, &repos); err != nil {
		c.logger.Warn("github repo cache entry corrupt", zap.String("username", username), zap.Error(err))
		return nil, false
	}
	return repos, true
}

func (c *redisRepoCache) Set(ctx context.Context, username string, repos []github.Repo) {
	data, err := json.Marshal(repos)
	if err != nil {
		c.logger.Warn("github repo cache marshal failed", zap.String("username", username), zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, c.key(username), data, c.ttl).Err(); err != nil {
		c.logger.Warn("github repo cache write failed", zap.String("username", username), zap.Error(err))
	}
}
