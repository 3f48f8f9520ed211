package cache

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/equipped-hq/tradein-service/internal/metrics"
	"github.com/equipped-hq/tradein-service/internal/repository"
)

type TradeInRepository interface {
	GetAllActive(ctx context.Context) ([]*repository.TradeIn, error)
}

// TradeInCache keeps active (non-terminal) trade-ins in memory. Terminal
// trade-ins are evicted on write.
type TradeInCache struct {
	mu     sync.RWMutex
	cache  map[string]*repository.TradeIn
	repo   TradeInRepository
	logger *zap.Logger
}

func NewTradeInCache(repo TradeInRepository, logger *zap.Logger) *TradeInCache {
	return &TradeInCache{
		cache:  make(map[string]*repository.TradeIn),
		repo:   repo,
		logger: logger,
	}
}

func (c *TradeInCache) LoadInitialData(ctx context.Context) error {
	items, err := c.repo.GetAllActive(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range items {
		itemCopy := *item
		c.cache[item.ID] = &itemCopy
	}
	metrics.TradeInCacheItems.Set(float64(len(c.cache)))
	c.logger.Info("loaded active trade-ins into cache", zap.Int("count", len(c.cache)))
	return nil
}

func (c *TradeInCache) Get(tradeInID string) (*repository.TradeIn, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, found := c.cache[tradeInID]
	if !found {
		return nil, false
	}
	itemCopy := *item
	return &itemCopy, true
}

func (c *TradeInCache) Set(item *repository.TradeIn) {
	if !isActiveStatus(item.Status) {
		c.Delete(item.ID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	itemCopy := *item
	c.cache[item.ID] = &itemCopy
	metrics.TradeInCacheItems.Set(float64(len(c.cache)))
}

func (c *TradeInCache) Delete(tradeInID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.cache[tradeInID]; found {
		delete(c.cache, tradeInID)
		metrics.TradeInCacheItems.Set(float64(len(c.cache)))
	}
}

func isActiveStatus(status string) bool {
	return status != "credited" && status != "disputed"
}
