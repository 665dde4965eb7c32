// Copyright (c) 2026 Our Philly. All rights reserved.

package area

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/ourphilly/ourphilly/internal/platform/constants"
	"github.com/ourphilly/ourphilly/internal/platform/validate"
	"github.com/ourphilly/ourphilly/pkg/slug"
	"github.com/ourphilly/ourphilly/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	cache  *redis.Client
	logger *slog.Logger
}

func NewService(repo Repository, cache *redis.Client, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (service *Service) ListAll(context context.Context) ([]*Area, error) {
	return service.repo.ListAll(context)
}

func (service *Service) GetBySlug(context context.Context, slugValue string) (*Area, error) {
	return service.repo.FindBySlug(context, slugValue)
}

// Name resolves an area ID to its display name through the Redis cache.
//
// Cache trouble is logged and ignored: a miss or a dead Redis simply falls
// through to the database. Area names change essentially never, so the TTL
// is generous.
func (service *Service) Name(context context.Context, id string) (string, error) {
	key := constants.RedisPrefixAreaName + id

	name, err := service.cache.Get(context, key).Result()
	if err == nil {
		return name, nil
	}
	if !errors.Is(err, redis.Nil) {
		service.logger.Warn("area_name_cache_read_failed", slog.String("error", err.Error()))
	}

	area, err := service.repo.FindByID(context, id)
	if err != nil {
		return "", err
	}

	if err := service.cache.Set(context, key, area.Name, constants.AreaNameCacheTTL).Err(); err != nil {
		service.logger.Warn("area_name_cache_write_failed", slog.String("error", err.Error()))
	}
	return area.Name, nil
}

// CreateInput holds the fields a new area is registered with.
type CreateInput struct {
	Name      string
	SortOrder int
}

func (service *Service) Create(context context.Context, input CreateInput) (*Area, error) {
	v := &validate.Validator{}
	v.Required("name", input.Name).
		MaxLen("name", input.Name, 80)
	if err := v.Err(); err != nil {
		return nil, err
	}

	area := &Area{
		ID:        uuidv7.New(),
		Name:      input.Name,
		Slug:      slug.From(input.Name),
		SortOrder: input.SortOrder,
	}
	if err := service.repo.Create(context, area); err != nil {
		return nil, err
	}

	service.logger.Info("area_created", slog.String("area_id", area.ID), slog.String("slug", area.Slug))
	return area, nil
}

func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	// Drop the cached name so a recreated area never serves a stale one.
	key := constants.RedisPrefixAreaName + id
	if err := service.cache.Del(context, key).Err(); err != nil {
		service.logger.Warn("area_name_cache_evict_failed", slog.String("error", err.Error()))
	}
	return nil
}
