package http

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/translate-service/internal/circuitbreaker"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker reports whether a dependency is usable.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthCheckFunc adapts a function to HealthChecker.
type HealthCheckFunc func(ctx context.Context) error

// Check calls f.
func (f HealthCheckFunc) Check(ctx context.Context) error {
	return f(ctx)
}

type dependency struct {
	name     string
	checker  HealthChecker
	critical bool
}

// HealthHandler serves the liveness and readiness probes.
//
// Only critical dependencies fail readiness. Optional ones, such as the job
// history database or missing provider credentials, turn the status to
// "degraded" while translation requests keep being served.
type HealthHandler struct {
	deps     []dependency
	breakers map[string]*circuitbreaker.CircuitBreaker
}

// NewHealthHandler creates a HealthHandler with no dependencies.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{breakers: make(map[string]*circuitbreaker.CircuitBreaker)}
}

// RegisterChecker adds a dependency whose failure makes the service unready.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	h.deps = append(h.deps, dependency{name: name, checker: checker, critical: true})
}

// RegisterOptional adds a dependency whose failure only degrades the service.
func (h *HealthHandler) RegisterOptional(name string, checker HealthChecker) {
	h.deps = append(h.deps, dependency{name: name, checker: checker})
}

// RegisterCircuitBreaker reports the breaker's stats under "<name>_circuit".
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	h.breakers[name] = cb
}

// Register mounts /healthz and /readyz.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe endpoint.
// @Summary     Liveness probe
// @Description Returns OK if the process is running.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles the readiness probe endpoint.
// @Summary     Readiness probe
// @Description Checks the scratch directory, provider credentials and job history storage. Only the scratch directory is required; the others report "degraded".
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "Service is ready, possibly degraded"
// @Failure     503 {object} map[string]interface{} "A required dependency is failing"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	status, state := http.StatusOK, "ok"
	checks := make(map[string]interface{}, len(h.deps)+len(h.breakers))

	for _, dep := range h.deps {
		err := dep.checker.Check(ctx)
		if err == nil {
			checks[dep.name] = "ok"
			continue
		}
		checks[dep.name] = err.Error()
		if dep.critical {
			status, state = http.StatusServiceUnavailable, "unavailable"
		} else if state == "ok" {
			state = "degraded"
		}
	}

	names := make([]string, 0, len(h.breakers))
	for name := range h.breakers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		stats := h.breakers[name].GetStats()
		checks[name+"_circuit"] = stats
		if !stats.IsHealthy && state == "ok" {
			state = "degraded"
		}
	}

	if len(checks) == 0 {
		checks["service"] = "ok"
	}

	c.JSON(status, gin.H{"status": state, "checks": checks})
}
