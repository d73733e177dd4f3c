package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readyz probes the collection service and, when configured, the database.
func (h *Handler) Readyz(c *gin.Context) {
	failures := gin.H{}
	for _, chk := range h.checks {
		if err := chk.Check(c.Request.Context()); err != nil {
			log.WithError(err).WithField("dependency", chk.Name).Warn("readiness check failed")
			failures[chk.Name] = err.Error()
		}
	}

	if len(failures) > 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "errors": failures})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
