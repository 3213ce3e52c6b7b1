package cache

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/suchimauz/enrollee-queue-bot/internal/config"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/out"
)

// LRUCacheAdapter хранит результаты проверки ФИО по спискам абитуриентов
// Ключ - нормализованное ФИО, значение - найден абитуриент в списках или нет
type LRUCacheAdapter struct {
	cache  *lru.Cache[string, bool]
	mu     sync.RWMutex
	logger out.LoggerPort
}

func NewLRUCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*LRUCacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	cache, err := lru.New[string, bool](cfg.Cache.Size)
	if err != nil {
		logger.Error("cache.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.Size,
		})
		return nil, err
	}

	return &LRUCacheAdapter{
		cache:  cache,
		logger: logger.WithModule("CacheAdapter"),
	}, nil
}

func (c *LRUCacheAdapter) GetRosterCheck(ctx context.Context, key string) (bool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	valid, exists := c.cache.Get(key)
	if !exists {
		c.logger.Debug("cache.roster.miss", out.LogFields{
			"key": key,
		})
		return false, false
	}

	c.logger.Debug("cache.roster.hit", out.LogFields{
		"key":   key,
		"valid": valid,
	})
	return valid, true
}

func (c *LRUCacheAdapter) StoreRosterCheck(ctx context.Context, key string, valid bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.roster.store", out.LogFields{
		"key":   key,
		"valid": valid,
	})

	c.cache.Add(key, valid)
}

func (c *LRUCacheAdapter) InvalidateRosterCache(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Info("cache.roster.invalidate", out.LogFields{
		"entries": c.cache.Len(),
	})

	c.cache.Purge()
}
