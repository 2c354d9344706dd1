package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gazette-press/gazette/internal/infrastructure/config"
	"github.com/gazette-press/gazette/internal/interfaces/http/middleware"
)

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Converted article images are served straight off the media directory.
	r.engine.Static("/media", r.mediaBasePath)

	r.setupAuthRoutes()
	r.setupAccountRoutes()
	r.setupArticleRoutes()
	r.setupPlanRoutes()
}

func (r *Router) setupAuthRoutes() {
	auth := r.engine.Group("/auth")
	{
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/refresh", r.authHandler.RefreshToken)
		auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
	}
}

func (r *Router) setupAccountRoutes() {
	accounts := r.engine.Group("/accounts")
	accounts.Use(r.authMiddleware.RequireAuth())
	{
		accounts.POST("", r.accountHandler.Create)
		accounts.GET("", r.accountHandler.List)
		accounts.GET("/:id", r.accountHandler.Get)
		accounts.PUT("/:id", r.accountHandler.Update)
		accounts.DELETE("/:id", r.accountHandler.Delete)
	}
}

func (r *Router) setupArticleRoutes() {
	articles := r.engine.Group("/articles")
	articles.Use(r.authMiddleware.RequireAuth())
	{
		articles.POST("", r.articleHandler.Create)
		articles.GET("", r.articleHandler.List)
		articles.GET("/:id", r.articleHandler.Get)
		articles.PUT("/:id", r.articleHandler.Update)
		articles.DELETE("/:id", r.articleHandler.Delete)
	}
}

// setupPlanRoutes configures plan routes. Deliberately no POST or DELETE:
// plan lifecycle is bound to the reader account.
func (r *Router) setupPlanRoutes() {
	plans := r.engine.Group("/plans")
	plans.Use(r.authMiddleware.RequireAuth())
	{
		plans.GET("", r.planHandler.List)
		plans.GET("/:id", r.planHandler.Get)
		plans.PUT("/:id", r.planHandler.Update)
	}
}
