package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pratyay/profile-service/internal/api/dto"
	"github.com/pratyay/profile-service/internal/core/cache"
	"github.com/pratyay/profile-service/internal/core/docdb"
)

// Component states reported by the health endpoint.
const (
	ComponentUp       = "up"
	ComponentDown     = "down"
	ComponentDisabled = "disabled"
)

const probeTimeout = 2 * time.Second

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	cacheClient cache.Client
	docDBClient docdb.Client
}

// NewHealthHandler creates a new HealthHandler. cacheClient may be nil when
// caching is disabled.
func NewHealthHandler(cacheClient cache.Client, docDBClient docdb.Client) *HealthHandler {
	return &HealthHandler{
		cacheClient: cacheClient,
		docDBClient: docDBClient,
	}
}

func (h *HealthHandler) docDBState(ctx context.Context) string {
	if h.docDBClient == nil || !h.docDBClient.Ping(ctx) {
		return ComponentDown
	}
	return ComponentUp
}

func (h *HealthHandler) cacheState(ctx context.Context) string {
	if h.cacheClient == nil {
		return ComponentDisabled
	}
	if err := h.cacheClient.Ping(ctx); err != nil {
		return ComponentDown
	}
	return ComponentUp
}

// Health handles the /health endpoint.
// @Summary Health check
// @Description Always returns 200 with status "ok", plus the state of each component
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service running"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), probeTimeout)
	defer cancel()

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status: "ok",
		Components: map[string]string{
			"docdb": h.docDBState(ctx),
			"cache": h.cacheState(ctx),
		},
	})
}

// Ready handles the /ready endpoint.
// @Summary Readiness check
// @Description Returns 200 if the document store (and the cache, when enabled) answer a ping
// @Tags Health
// @Produce json
// @Success 200 {object} dto.StatusResponse "Service ready"
// @Failure 503 {object} dto.StatusResponse "Service not ready"
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), probeTimeout)
	defer cancel()

	if h.docDBState(ctx) != ComponentUp {
		c.JSON(http.StatusServiceUnavailable, dto.StatusResponse{
			Status: "not ready",
			Reason: "docdb unavailable",
		})
		return
	}

	if h.cacheState(ctx) == ComponentDown {
		c.JSON(http.StatusServiceUnavailable, dto.StatusResponse{
			Status: "not ready",
			Reason: "cache unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Status: "ready"})
}

// Live handles the /live endpoint.
// @Summary Liveness check
// @Description Returns 200 if the service is alive
// @Tags Health
// @Produce json
// @Success 200 {object} dto.StatusResponse "Service alive"
// @Router /live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "alive"})
}
