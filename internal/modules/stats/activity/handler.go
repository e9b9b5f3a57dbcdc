package activity

import (
	"errors"

	"github.com/billboard-app/core/internal/middleware"
	"github.com/billboard-app/core/internal/models"
	"github.com/billboard-app/core/internal/modules/account"
	"github.com/billboard-app/core/internal/pkg/pagination"
	"github.com/billboard-app/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc        *Service
	accountSvc *account.Service
}

func NewHandler(svc *Service, accountSvc *account.Service) *Handler {
	return &Handler{svc: svc, accountSvc: accountSvc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	bills := rg.Group("/bills", authMW)
	bills.POST("/:id/view", h.recordView)
	bills.PUT("/:id/like", h.like)
	bills.PUT("/:id/unlike", h.unlike)
	bills.GET("/:id/liked", h.liked)

	me := rg.Group("/me", authMW)
	me.GET("/view-history", h.viewHistory)
	me.GET("/activity-stats", h.stats)
}

func (h *Handler) currentUser(c *gin.Context) *models.UserModel {
	user, err := h.accountSvc.GetOrCreate(middleware.CurrentIdentity(c))
	if err != nil {
		response.InternalError(c, err)
		return nil
	}
	return user
}

func (h *Handler) handleErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errBillNotFound):
		response.NotFoundMsg(c, "Bill not found")
	case errors.Is(err, errNotLiked):
		response.NotFoundMsg(c, "Not liked")
	default:
		response.InternalError(c, err)
	}
}

// POST /bills/:id/view
func (h *Handler) recordView(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	if err := h.svc.RecordView(user.ID, c.Param("id")); err != nil {
		h.handleErr(c, err)
		return
	}
	response.NoContent(c)
}

// GET /me/view-history
func (h *Handler) viewHistory(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	out, pag, err := h.svc.ViewHistory(user.ID, pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, out, pag)
}

// PUT /bills/:id/like
func (h *Handler) like(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	if err := h.svc.Like(user.ID, c.Param("id")); err != nil {
		h.handleErr(c, err)
		return
	}
	response.NoContent(c)
}

// PUT /bills/:id/unlike
func (h *Handler) unlike(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	if err := h.svc.Unlike(user.ID, c.Param("id")); err != nil {
		h.handleErr(c, err)
		return
	}
	response.NoContent(c)
}

// GET /bills/:id/liked
func (h *Handler) liked(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	liked, err := h.svc.Liked(user.ID, c.Param("id"))
	if err != nil {
		h.handleErr(c, err)
		return
	}
	response.OK(c, gin.H{"liked": liked})
}

// GET /me/activity-stats
func (h *Handler) stats(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	stats, err := h.svc.StatsFor(user.ID, user.Subject)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, stats)
}
