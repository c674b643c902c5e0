package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

const readinessTimeout = 3 * time.Second

// HealthHandler handles GET /health, the liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// CheckFunc reports whether one dependency is reachable.
type CheckFunc func(ctx context.Context) error

// HealthDependenciesHandler handles GET /health/ready, the readiness probe.
// Only dependencies registered with one of the With* methods are checked, so
// optional components that are switched off do not fail readiness.
type HealthDependenciesHandler struct {
	checks map[string]CheckFunc
}

func NewHealthDependenciesHandler() *HealthDependenciesHandler {
	return &HealthDependenciesHandler{checks: make(map[string]CheckFunc)}
}

// WithCheck registers an arbitrary named check.
func (h *HealthDependenciesHandler) WithCheck(name string, fn CheckFunc) *HealthDependenciesHandler {
	h.checks[name] = fn
	return h
}

// WithPostgres pings the pool behind db.
func (h *HealthDependenciesHandler) WithPostgres(db *gorm.DB) *HealthDependenciesHandler {
	return h.WithCheck("postgres", func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})
}

// WithRedis pings the idempotency cache.
func (h *HealthDependenciesHandler) WithRedis(rdb *redis.Client) *HealthDependenciesHandler {
	return h.WithCheck("redis", func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
}

// WithMongo runs a ping command against the audit database.
func (h *HealthDependenciesHandler) WithMongo(db *mongo.Database) *HealthDependenciesHandler {
	return h.WithCheck("mongodb", func(ctx context.Context) error {
		return db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
	})
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	deps := make(map[string]dependencyStatus, len(names))
	healthy := true
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			deps[name] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
			continue
		}
		deps[name] = dependencyStatus{Status: "ok"}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
