package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
	corehealth "github.com/sportsynce/product-service/internal/core/health"
)

type healthHandler struct {
	readiness corehealth.ReadinessChecker
}

func newHealthHandler(r corehealth.ReadinessChecker) *healthHandler {
	return &healthHandler{readiness: r}
}

func (h *healthHandler) IsReady(c *gin.Context) {
	// Detailed JSON for humans, plain text for probes.
	if c.Query("format") == "json" || c.GetHeader("Accept") == "application/json" {
		status := h.readiness.GetStatus()
		if status.Ready {
			c.JSON(http.StatusOK, status)
		} else {
			c.JSON(http.StatusServiceUnavailable, status)
		}
		return
	}

	if h.readiness.IsReady() {
		c.String(http.StatusOK, "ready")
	} else {
		c.String(http.StatusServiceUnavailable, "not ready")
	}
}

func (h *healthHandler) IsLive(c *gin.Context) {
	c.String(http.StatusOK, "alive")
}
