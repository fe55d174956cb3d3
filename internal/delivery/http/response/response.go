package response

import (
	"resume-parser-api/internal/domain"

	"github.com/gin-gonic/gin"
)

// Response is the envelope for every route except /parse-resume, which
// answers with the bare extraction.
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     *Detail     `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Detail describes a failure without leaking internals.
type Detail struct {
	Kind string `json:"kind,omitempty"`
}

func Success(c *gin.Context, code int, message string, data interface{}) {
	write(c, code, Response{Success: true, Message: message, Data: data})
}

// Error sends a failure envelope. detail may be nil.
func Error(c *gin.Context, code int, message string, detail *Detail) {
	write(c, code, Response{Message: message, Error: detail})
}

func write(c *gin.Context, code int, body Response) {
	body.RequestID = c.GetString(string(domain.KeyRequestID))
	c.JSON(code, body)
}
