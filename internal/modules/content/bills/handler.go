package bills

import (
	"errors"
	"strings"

	"github.com/billboard-app/core/internal/middleware"
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
	g := rg.Group("/bills")
	g.GET("/trending", h.trending)
	g.GET("/recommended", authMW, h.recommended)
	g.GET("/:id", h.detail)

	rg.GET("/members/:bioguideId", h.member)
}

// GET /bills/trending?categories=a,b
func (h *Handler) trending(c *gin.Context) {
	var categories []string
	if raw := strings.TrimSpace(c.Query("categories")); raw != "" {
		categories = strings.Split(raw, ",")
	}
	out, err := h.svc.Trending(categories)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, out)
}

// GET /bills/recommended
func (h *Handler) recommended(c *gin.Context) {
	user, err := h.accountSvc.GetOrCreate(middleware.CurrentIdentity(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	out, err := h.svc.Recommended(user.ID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, out)
}

// GET /bills/:id
func (h *Handler) detail(c *gin.Context) {
	bill, err := h.svc.Detail(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrBillNotFound) {
			response.NotFoundMsg(c, "Bill not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, bill)
}

// GET /members/:bioguideId
func (h *Handler) member(c *gin.Context) {
	member, sponsored, err := h.svc.Member(c.Param("bioguideId"))
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			response.NotFoundMsg(c, "Member not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{
		"member":            member,
		"cosponsored_bills": sponsored,
	})
}
