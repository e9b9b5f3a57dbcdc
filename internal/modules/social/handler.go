package social

import (
	"errors"

	"github.com/billboard-app/core/internal/middleware"
	"github.com/billboard-app/core/internal/models"
	"github.com/billboard-app/core/internal/modules/account"
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
	users := rg.Group("/users", authMW)
	users.GET("/:name", h.profile)
	users.POST("/:name/follow", h.follow)
	users.DELETE("/:name/follow", h.unfollow)
	users.GET("/:name/is-following", h.isFollowing)
	users.POST("/:name/block", h.block)
	users.DELETE("/:name/block", h.unblock)

	me := rg.Group("/me", authMW)
	me.GET("/following", h.following)
	me.GET("/followers", h.followers)
	me.GET("/followed-bills", h.followedBills)

	rg.GET("/following-feed", authMW, h.feed)

	members := rg.Group("/members", authMW)
	members.POST("/:bioguideId/follow", h.followMember)
	members.DELETE("/:bioguideId/follow", h.unfollowMember)
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
	case errors.Is(err, errUserNotFound):
		response.NotFoundMsg(c, "User not found")
	case errors.Is(err, errMemberNotFound):
		response.NotFoundMsg(c, "Member not found")
	case errors.Is(err, errSelfFollow):
		response.BadRequest(c, "cannot follow yourself")
	case errors.Is(err, errSelfBlock):
		response.BadRequest(c, "cannot block yourself")
	case errors.Is(err, errNotFollowing):
		response.NotFoundMsg(c, "Not following")
	case errors.Is(err, errNotBlocked):
		response.NotFoundMsg(c, "Not blocked")
	case errors.Is(err, errBlocked):
		response.ForbiddenMsg(c, "blocked")
	default:
		response.InternalError(c, err)
	}
}

// GET /users/:name
func (h *Handler) profile(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	profile, err := h.svc.Profile(user.ID, c.Param("name"))
	if err != nil {
		h.handleErr(c, err)
		return
	}
	response.OK(c, profile)
}

// POST /users/:name/follow
func (h *Handler) follow(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	if err := h.svc.Follow(user, c.Param("name")); err != nil {
		h.handleErr(c, err)
		return
	}
	response.NoContent(c)
}

// DELETE /users/:name/follow
func (h *Handler) unfollow(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	if err := h.svc.Unfollow(user, c.Param("name")); err != nil {
		h.handleErr(c, err)
		return
	}
	response.NoContent(c)
}

// GET /users/:name/is-following
func (h *Handler) isFollowing(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	following, err := h.svc.IsFollowing(user, c.Param("name"))
	if err != nil {
		h.handleErr(c, err)
		return
	}
	response.OK(c, gin.H{"is_following": following})
}

// GET /me/following
func (h *Handler) following(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	out, err := h.svc.Following(user.ID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, out)
}

// GET /me/followers
func (h *Handler) followers(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	out, err := h.svc.Followers(user.ID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, out)
}

// GET /me/followed-bills
func (h *Handler) followedBills(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	out, err := h.svc.FollowedBills(user.ID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, out)
}

// POST /users/:name/block
func (h *Handler) block(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	if err := h.svc.Block(user, c.Param("name")); err != nil {
		h.handleErr(c, err)
		return
	}
	response.NoContent(c)
}

// DELETE /users/:name/block
func (h *Handler) unblock(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	if err := h.svc.Unblock(user, c.Param("name")); err != nil {
		h.handleErr(c, err)
		return
	}
	response.NoContent(c)
}

// GET /following-feed
func (h *Handler) feed(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	feed, err := h.svc.Feed(user.ID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, feed)
}

// POST /members/:bioguideId/follow
func (h *Handler) followMember(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	if err := h.svc.FollowMember(user.ID, c.Param("bioguideId")); err != nil {
		h.handleErr(c, err)
		return
	}
	response.NoContent(c)
}

// DELETE /members/:bioguideId/follow
func (h *Handler) unfollowMember(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	if err := h.svc.UnfollowMember(user.ID, c.Param("bioguideId")); err != nil {
		h.handleErr(c, err)
		return
	}
	response.NoContent(c)
}
