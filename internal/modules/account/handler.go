package account

import (
	"bufio"
	"encoding/json"
	"errors"
	"strings"

	"github.com/billboard-app/core/internal/middleware"
	"github.com/billboard-app/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/expertise-tags", h.listExpertiseTags)
	rg.POST("/webhooks/auth0-logs", h.auth0LogStream)

	me := rg.Group("/me", authMW)
	me.GET("", h.me)
	me.POST("/profile", h.updateProfile)
	me.POST("/expertise-tags", h.setExpertiseTags)
	me.DELETE("", h.deleteAccount)
	me.GET("/notifications", h.notifications)
	me.POST("/notifications/:id/read", h.markNotificationRead)

	rg.GET("/users/search", authMW, h.search)
}

// GET /me
func (h *Handler) me(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	user, err := h.svc.GetOrCreate(identity)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, user)
}

// POST /me/profile
func (h *Handler) updateProfile(c *gin.Context) {
	var dto UpdateProfileDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	identity := middleware.CurrentIdentity(c)
	if _, err := h.svc.GetOrCreate(identity); err != nil {
		response.InternalError(c, err)
		return
	}
	user, err := h.svc.UpdateProfile(identity.Subject, &dto)
	if err != nil {
		if errors.Is(err, ErrNameTaken) {
			response.Conflict(c, "name already taken")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, user)
}

// GET /expertise-tags
func (h *Handler) listExpertiseTags(c *gin.Context) {
	response.OK(c, gin.H{"tags": ExpertiseTags})
}

// POST /me/expertise-tags
func (h *Handler) setExpertiseTags(c *gin.Context) {
	var dto SetExpertiseTagsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	identity := middleware.CurrentIdentity(c)
	if _, err := h.svc.GetOrCreate(identity); err != nil {
		response.InternalError(c, err)
		return
	}
	user, err := h.svc.SetExpertiseTags(identity.Subject, dto.Tags)
	if err != nil {
		if errors.Is(err, ErrInvalidTag) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, user)
}

// GET /users/search?q=
func (h *Handler) search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		response.OK(c, []gin.H{})
		return
	}
	users, err := h.svc.Search(q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	items := make([]gin.H, 0, len(users))
	for _, u := range users {
		items = append(items, gin.H{"name": u.Name, "avatar": u.Avatar})
	}
	response.OK(c, items)
}

// DELETE /me
func (h *Handler) deleteAccount(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if err := h.svc.DeleteAccount(c.Request.Context(), identity.Subject); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.NotFoundMsg(c, "user not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

// GET /me/notifications
func (h *Handler) notifications(c *gin.Context) {
	user, err := h.svc.GetOrCreate(middleware.CurrentIdentity(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	items, err := h.svc.Notifications(user.ID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// POST /me/notifications/:id/read
func (h *Handler) markNotificationRead(c *gin.Context) {
	user, err := h.svc.GetOrCreate(middleware.CurrentIdentity(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if err := h.svc.MarkNotificationRead(user.ID, c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMsg(c, "notification not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

// POST /webhooks/auth0-logs — identity-provider log stream. Each line is a
// JSON log event; "sdu" events carry a user already deleted upstream.
func (h *Handler) auth0LogStream(c *gin.Context) {
	deleted := make([]string, 0)
	scanner := bufio.NewScanner(c.Request.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var event auth0LogEvent
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			continue
		}
		if event.Data.Type != "sdu" {
			continue
		}
		subject := event.Data.UserID
		if subject == "" {
			continue
		}
		ok, err := h.svc.DeleteBySubject(subject)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		if ok {
			deleted = append(deleted, subject)
		}
	}
	if err := scanner.Err(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.OK(c, gin.H{"status": "ok", "deleted_users": deleted})
}
