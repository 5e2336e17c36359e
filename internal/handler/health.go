// internal/handler/health.go
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"salon-manager/internal/storage"
)

type HealthHandler struct {
	db storage.Pinger
}

func NewHealthHandler(db storage.Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	c.JSON(http.StatusOK, gin.H{
		"status":    "Server is running",
		"timestamp": time.Now().UTC(),
		"database":  h.db.Ping(ctx) == nil,
	})
}
