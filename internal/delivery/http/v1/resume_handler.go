package v1

import (
	"net/http"

	"resume-parser-api/internal/domain"
	"resume-parser-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

// NewResumeHandler registers the resume parsing routes (public, no auth required)
func NewResumeHandler(public gin.IRoutes, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{
		resumeUC: resumeUC,
	}

	public.POST("/parse-resume", handler.ParseResume)
}

// ParseResume godoc
// @Summary      Parse resume text
// @Description  Extracts structured fields from raw resume text. Always answers 200: blank input and every extraction failure yield the blank extraction.
// @Tags         resume
// @Accept       json
// @Produce      json
// @Param        request  body      domain.ParseResumeRequest  true  "Resume text"
// @Success      200      {object}  domain.ResumeExtraction
// @Router       /parse-resume [post]
func (h *ResumeHandler) ParseResume(c *gin.Context) {
	var req domain.ParseResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Unreadable parse-resume body, returning blank extraction",
			"error", err,
			"request_id", c.GetString(string(domain.KeyRequestID)),
		)
		c.JSON(http.StatusOK, domain.BlankExtraction())
		return
	}

	c.JSON(http.StatusOK, h.resumeUC.ParseResume(c.Request.Context(), req.ResumeText))
}
