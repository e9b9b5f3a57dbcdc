package comment

import (
	"errors"

	"github.com/billboard-app/core/internal/middleware"
	"github.com/billboard-app/core/internal/models"
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
	rg.GET("/bills/:id/comments", h.listByBill)
	rg.POST("/bills/:id/comments", authMW, h.create)

	g := rg.Group("/comments", authMW)
	g.PATCH("/:id", h.update)
	g.DELETE("/:id", h.delete)
	g.POST("/:id/like", h.like)
	g.POST("/:id/dislike", h.dislike)
}

func (h *Handler) handleErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errBillNotFound):
		response.NotFoundMsg(c, "Bill not found")
	case errors.Is(err, errCommentNotFound):
		response.NotFoundMsg(c, "Comment not found")
	case errors.Is(err, errNotAuthor):
		response.ForbiddenMsg(c, "only the author can do that")
	default:
		response.InternalError(c, err)
	}
}

// GET /bills/:id/comments
func (h *Handler) listByBill(c *gin.Context) {
	viewerID := ""
	if identity := middleware.CurrentIdentity(c); identity != nil {
		viewerID = h.svc.ResolveViewer(identity.Subject)
	}
	comments, err := h.svc.ListByBill(c.Param("id"), viewerID)
	if err != nil {
		h.handleErr(c, err)
		return
	}
	response.OK(c, comments)
}

// POST /bills/:id/comments
func (h *Handler) create(c *gin.Context) {
	var dto CreateCommentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cm, err := h.svc.Create(c.Param("id"), middleware.CurrentIdentity(c), dto.Text)
	if err != nil {
		h.handleErr(c, err)
		return
	}
	response.Created(c, cm)
}

// PATCH /comments/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdateCommentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cm, err := h.svc.Update(c.Param("id"), middleware.CurrentIdentity(c).Subject, dto.Text)
	if err != nil {
		h.handleErr(c, err)
		return
	}
	response.OK(c, cm)
}

// DELETE /comments/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id"), middleware.CurrentIdentity(c).Subject); err != nil {
		h.handleErr(c, err)
		return
	}
	response.NoContent(c)
}

// POST /comments/:id/like
func (h *Handler) like(c *gin.Context) {
	h.interact(c, models.InteractionLike)
}

// POST /comments/:id/dislike
func (h *Handler) dislike(c *gin.Context) {
	h.interact(c, models.InteractionDislike)
}

func (h *Handler) interact(c *gin.Context, kind models.InteractionKind) {
	cm, err := h.svc.Interact(c.Param("id"), middleware.CurrentIdentity(c).Subject, kind)
	if err != nil {
		h.handleErr(c, err)
		return
	}
	response.OK(c, cm)
}
