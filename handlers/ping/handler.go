package ping

import (
	"context"
	"net/http"
	"time"

	"blog-backend/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	pingDB func(ctx context.Context) error
}

func New(pingDB func(ctx context.Context) error) *Handler {
	return &Handler{pingDB: pingDB}
}

// HandlePing répond pong si la base de données est joignable
// @Summary Health check
// @Description Answers pong when the database is reachable
// @Tags health
// @Produce json
// @Success 200 {object} utils.Response
// @Failure 503 {object} utils.Response
// @Router /ping [get]
func (h *Handler) HandlePing(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.pingDB(ctx); err != nil {
		utils.LogError(err, "Database ping failed")
		utils.SendError(c, http.StatusServiceUnavailable, "database unreachable")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Ping successful", gin.H{
		"message": "pong",
	})
}
