package billtext

import (
	"errors"

	"github.com/billboard-app/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/bills/:id/text")
	g.GET("", h.text)
	g.GET("/summarized", h.summarized)
	g.GET("/sources", h.sources)
}

func (h *Handler) handleErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBillNotFound):
		response.NotFoundMsg(c, "Bill not found")
	case errors.Is(err, ErrTextNotFound):
		response.NotFoundMsg(c, "Text not available")
	case errors.Is(err, ErrSummarizerDown):
		response.ServiceUnavailable(c, "summarization unavailable, try again later")
	default:
		response.InternalError(c, err)
	}
}

// GET /bills/:id/text
func (h *Handler) text(c *gin.Context) {
	bill, text, err := h.svc.Text(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleErr(c, err)
		return
	}
	response.OK(c, textResponse{Bill: bill.ID, Text: text})
}

// GET /bills/:id/text/summarized
func (h *Handler) summarized(c *gin.Context) {
	bill, result, err := h.svc.Summarized(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleErr(c, err)
		return
	}
	response.OK(c, summaryResponse{
		Bill:       bill.ID,
		Summary:    result.Summary,
		TokenCount: result.TokenCount,
	})
}

// GET /bills/:id/text/sources
func (h *Handler) sources(c *gin.Context) {
	src, err := h.svc.Sources(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleErr(c, err)
		return
	}
	response.OK(c, src)
}
