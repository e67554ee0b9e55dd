package repo

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"user-management-api/internal/lib"
	"user-management-api/internal/lib/sl"
	"user-management-api/internal/models"
)

const managersCacheKey = "user-management:managers"

type managerLister interface {
	List(ctx context.Context) ([]*models.Manager, error)
}

// CachedManagerLister serves the manager list from a KV store. Managers are
// only written by the startup seeder, which calls Invalidate after inserting.
// Cache failures are logged and fall through to the database.
type CachedManagerLister struct {
	log  *slog.Logger
	next managerLister
	kv   KV
	ttl  time.Duration
}

func NewCachedManagerLister(log *slog.Logger, next managerLister, kv KV, ttl time.Duration) *CachedManagerLister {
	return &CachedManagerLister{
		log:  log,
		next: next,
		kv:   kv,
		ttl:  ttl,
	}
}

func (c *CachedManagerLister) List(ctx context.Context) ([]*models.Manager, error) {
	raw, err := c.kv.Get(ctx, managersCacheKey)
	if err == nil {
		var managers []*models.Manager
		if err := json.Unmarshal([]byte(raw), &managers); err == nil {
			return managers, nil
		}
		c.log.Warn("dropping malformed managers cache entry")
	} else if !errors.Is(err, ErrCacheMiss) {
		c.log.Warn("managers cache read failed", sl.Err(err))
	}

	managers, err := c.next.List(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(managers)
	if err != nil {
		return managers, nil
	}
	if err := c.kv.Set(ctx, managersCacheKey, string(payload), c.ttl); err != nil {
		c.log.Warn("managers cache write failed", sl.Err(err))
	}

	return managers, nil
}

// Invalidate drops the cached list so the next List reads the database.
func (c *CachedManagerLister) Invalidate(ctx context.Context) error {
	const op = "manager_cache.Invalidate"

	if err := c.kv.Del(ctx, managersCacheKey); err != nil {
		return lib.Err(op, err)
	}

	return nil
}
