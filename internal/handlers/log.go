package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KEswar-045/station-status-service/internal/ingest"
	"github.com/KEswar-045/station-status-service/internal/models"
)

// RegisterLogRoutes registers the ingestion-path endpoint.
//
// POST /log — JSON body carrying station_id (or tableId/table), event,
// optional time and event_id.
// GET /log — same fields as query parameters, for stations that can
// only issue simple GETs.
//
// Durable: success is returned only after the store write committed.
func RegisterLogRoutes(r gin.IRoutes, svc *ingest.Service) {
	handler := func(c *gin.Context) {
		res, err := svc.Ingest(c.Request.Context(), submissionSource(c), c.GetHeader("Idempotency-Key"))
		switch {
		case errors.Is(err, models.ErrInvalidField):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		case errors.Is(err, models.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "event store unavailable"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "ingestion failed"})
		default:
			c.JSON(http.StatusOK, gin.H{
				"status":      "success",
				"message":     "event logged",
				"sequence_id": res.Record.SequenceID,
				"duplicate":   res.Duplicate,
			})
		}
	}

	r.POST("/log", handler)
	r.GET("/log", handler)
}

// submissionSource prefers a structured JSON body and falls back to
// flat query parameters when no usable body is present.
func submissionSource(c *gin.Context) ingest.Source {
	if c.Request.Method == http.MethodPost {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err == nil && len(body) > 0 {
			return ingest.BodySource(body)
		}
	}
	return ingest.QuerySource(c.Request.URL.Query())
}
