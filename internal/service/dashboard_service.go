package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/repository"
)

const (
	kpiCacheKey = "dashboard:kpis"
	kpiCacheTTL = 60 * time.Second
)

// KPIs summarizes dashboard counters.
type KPIs struct {
	Headcount      int64 `json:"headcount"`
	PendingLeave   int64 `json:"pending_leave"`
	OpenApplicants int64 `json:"open_applicants"`
}

// KPICache stores computed KPIs for a short window.
type KPICache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// redisKPICache backs KPICache with go-redis.
type redisKPICache struct {
	client *redis.Client
}

// NewRedisKPICache wraps a redis client as a KPICache.
func NewRedisKPICache(client *redis.Client) KPICache {
	return &redisKPICache{client: client}
}

func (c *redisKPICache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.client.Get(ctx, key).Bytes()
}

func (c *redisKPICache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// DashboardService computes landing-page KPIs with short-lived caching.
type DashboardService struct {
	employees  repository.EmployeeRepository
	leaves     repository.LeaveRepository
	applicants repository.ApplicantRepository
	cache      KPICache
	logger     *zap.Logger
}

// NewDashboardService constructs the service.
func NewDashboardService(
	employees repository.EmployeeRepository,
	leaves repository.LeaveRepository,
	applicants repository.ApplicantRepository,
	cache KPICache,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		employees:  employees,
		leaves:     leaves,
		applicants: applicants,
		cache:      cache,
		logger:     logger,
	}
}

// KPIs returns dashboard counters, serving from cache when fresh. Cache
// failures fall back to recomputing; they never fail the request.
func (s *DashboardService) KPIs(ctx context.Context) (*KPIs, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, kpiCacheKey); err == nil {
			var cached KPIs
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	headcount, err := s.employees.CountByStatus(ctx, domain.EmployeeStatusActive)
	if err != nil {
		return nil, err
	}
	pending, err := s.leaves.CountPending(ctx)
	if err != nil {
		return nil, err
	}
	open, err := s.applicants.CountOpen(ctx)
	if err != nil {
		return nil, err
	}

	kpis := &KPIs{Headcount: headcount, PendingLeave: pending, OpenApplicants: open}
	if s.cache != nil {
		if raw, err := json.Marshal(kpis); err == nil {
			if err := s.cache.Set(ctx, kpiCacheKey, raw, kpiCacheTTL); err != nil {
				s.logger.Warn("kpi cache write failed", zap.Error(err))
			}
		}
	}
	return kpis, nil
}
