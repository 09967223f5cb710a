package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KEswar-045/station-status-service/internal/ingest"
	"github.com/KEswar-045/station-status-service/internal/models"
)

// RegisterDataRoutes registers the serving-path endpoint.
//
// GET /data — full event history plus the live-status view, computed
// at request time. An empty store returns empty arrays, not an error.
func RegisterDataRoutes(r gin.IRoutes, svc *ingest.Service) {
	r.GET("/data", func(c *gin.Context) {
		res, err := svc.Query(c.Request.Context())
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, models.ErrStoreUnavailable) {
				status = http.StatusServiceUnavailable
			}
			c.JSON(status, gin.H{"status": "error", "message": "query failed"})
			return
		}
		c.JSON(http.StatusOK, res)
	})
}
