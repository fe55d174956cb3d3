package v1

import (
	"net/http"

	"resume-parser-api/internal/delivery/http/response"
	"resume-parser-api/internal/domain"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC domain.HealthUsecase
}

func NewHealthHandler(public gin.IRoutes, healthUC domain.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}

	public.GET("/health", handler.Check)
}

// Check godoc
// @Summary      Health check
// @Description  Liveness probe. Does not call the completion API.
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response{data=map[string]string}
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	response.Success(c, http.StatusOK, "System operational", h.healthUC.Check(c.Request.Context()))
}
