package app

import (
	"net/http"

	"github.com/billboard-app/core/internal/middleware"
	"github.com/billboard-app/core/internal/modules/account"
	"github.com/billboard-app/core/internal/modules/content/bills"
	"github.com/billboard-app/core/internal/modules/content/billtext"
	"github.com/billboard-app/core/internal/modules/content/comment"
	"github.com/billboard-app/core/internal/modules/processing/summary"
	"github.com/billboard-app/core/internal/modules/social"
	"github.com/billboard-app/core/internal/modules/stats/activity"
	"github.com/billboard-app/core/internal/pkg/auth0"
	"github.com/billboard-app/core/internal/pkg/congress"
	pkgredis "github.com/billboard-app/core/internal/pkg/redis"
	"github.com/billboard-app/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(rc *pkgredis.Client, congressClient *congress.Client) {
	r := a.router
	db := a.db

	verifier := auth0.NewVerifier(a.cfg.Auth0)
	authMW := middleware.Auth(verifier)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{
			"ok":      0,
			"code":    http.StatusMethodNotAllowed,
			"message": "method not allowed",
		})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.OptionalAuth(verifier))
	api.Use(middleware.RateLimit(rc.Raw()))
	api.Use(middleware.Idempotence(rc))

	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })
	api.GET("/uptime", func(c *gin.Context) {
		up := a.uptime()
		c.JSON(http.StatusOK, gin.H{
			"timestamp": up.Milliseconds(),
			"humanize":  humanizeDuration(up),
		})
	})
	api.GET("/jobs", authMW, func(c *gin.Context) {
		response.OK(c, a.sched.List())
	})
	api.POST("/jobs/:name/run", authMW, func(c *gin.Context) {
		if err := a.sched.Run(c.Param("name")); err != nil {
			response.NotFoundMsg(c, err.Error())
			return
		}
		response.NoContent(c)
	})

	engine := summary.NewEngine(
		summary.NewOpenAIClient(a.cfg.OpenAI),
		a.cfg.Summary.TokenBudget,
		a.cfg.Summary.MaxLength,
	)

	accountSvc := account.NewService(db, auth0.NewManagement(a.cfg.Auth0))
	account.NewHandler(accountSvc).RegisterRoutes(api, authMW)

	billsSvc := bills.NewService(db, congressClient)
	bills.NewHandler(billsSvc, accountSvc).RegisterRoutes(api, authMW)

	billtext.NewHandler(billtext.NewService(db, congressClient, engine)).RegisterRoutes(api, authMW)
	comment.NewHandler(comment.NewService(db)).RegisterRoutes(api, authMW)
	social.NewHandler(social.NewService(db), accountSvc).RegisterRoutes(api, authMW)
	activity.NewHandler(activity.NewService(db), accountSvc).RegisterRoutes(api, authMW)
}
