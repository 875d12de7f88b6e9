package health

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Adeakim/lincride/internal/pkg/database"
	"github.com/Adeakim/lincride/internal/pkg/logger"
	"github.com/Adeakim/lincride/internal/pkg/nats"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// PostgresHealthChecker checks PostgreSQL connection health
type PostgresHealthChecker struct {
	client *database.PostgresClient
}

// NewPostgresHealthChecker creates a new PostgreSQL health checker
func NewPostgresHealthChecker(client *database.PostgresClient) *PostgresHealthChecker {
	return &PostgresHealthChecker{client: client}
}

func (p *PostgresHealthChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	return p.client.GetDB().PingContext(ctx)
}

// RedisHealthChecker checks Redis connection health
type RedisHealthChecker struct {
	client *database.RedisClient
}

// NewRedisHealthChecker creates a new Redis health checker
func NewRedisHealthChecker(client *database.RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

func (r *RedisHealthChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.GetClient().Ping(ctx).Err()
}

// NATSHealthChecker checks NATS connection health. The broker is an optional
// dependency, so an absent client reports healthy.
type NATSHealthChecker struct {
	client *nats.Client
}

// NewNATSHealthChecker creates a new NATS health checker
func NewNATSHealthChecker(client *nats.Client) *NATSHealthChecker {
	return &NATSHealthChecker{client: client}
}

func (n *NATSHealthChecker) CheckHealth(ctx context.Context) error {
	if n.client == nil {
		return nil
	}
	conn := n.client.GetConn()
	if conn == nil || !conn.IsConnected() {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "NATS not connected")
	}
	return nil
}

// HealthService manages health checks for multiple dependencies
type HealthService struct {
	checkers map[string]HealthChecker
	logger   *logger.ZapLogger
}

// NewHealthService creates a new health service
func NewHealthService(zapLogger *logger.ZapLogger) *HealthService {
	return &HealthService{
		checkers: make(map[string]HealthChecker),
		logger:   zapLogger,
	}
}

// AddChecker registers a health checker for a dependency
func (h *HealthService) AddChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	GoVersion    string                    `json:"go_version"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// CheckAllHealth performs health checks on all registered dependencies
func (h *HealthService) CheckAllHealth(ctx context.Context) HealthResponse {
	response := HealthResponse{
		Status:       "healthy",
		Timestamp:    time.Now(),
		GoVersion:    runtime.Version(),
		Dependencies: make(map[string]DependencyInfo),
	}

	for name, checker := range h.checkers {
		if err := checker.CheckHealth(ctx); err != nil {
			h.logger.Error("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))

			response.Dependencies[name] = DependencyInfo{
				Status: "unhealthy",
				Error:  err.Error(),
			}
			response.Status = "unhealthy"
		} else {
			response.Dependencies[name] = DependencyInfo{
				Status: "healthy",
			}
		}
	}

	return response
}

// RegisterHealthEndpoints registers the health check endpoints
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, healthService *HealthService) {
	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   serviceName,
			"timestamp": time.Now(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		response := healthService.CheckAllHealth(ctx)
		response.Service = serviceName

		statusCode := http.StatusOK
		if response.Status == "unhealthy" {
			statusCode = http.StatusServiceUnavailable
		}
		return c.JSON(statusCode, response)
	})

	e.GET("/health/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "alive",
			"service": serviceName,
		})
	})
}
