// Package http wires the HTTP surface: repositories, use cases, handlers,
// middleware, and routes.
package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	accountUC "github.com/gazette-press/gazette/internal/application/account/usecases"
	articleUC "github.com/gazette-press/gazette/internal/application/article/usecases"
	planUC "github.com/gazette-press/gazette/internal/application/plan/usecases"
	"github.com/gazette-press/gazette/internal/infrastructure/auth"
	"github.com/gazette-press/gazette/internal/infrastructure/config"
	"github.com/gazette-press/gazette/internal/infrastructure/queue"
	"github.com/gazette-press/gazette/internal/infrastructure/render"
	"github.com/gazette-press/gazette/internal/infrastructure/repository"
	"github.com/gazette-press/gazette/internal/infrastructure/storage"
	"github.com/gazette-press/gazette/internal/interfaces/http/handlers"
	"github.com/gazette-press/gazette/internal/interfaces/http/middleware"
	"github.com/gazette-press/gazette/internal/shared/db"
	"github.com/gazette-press/gazette/internal/shared/logger"
)

// Router holds the configured engine and handlers.
type Router struct {
	engine         *gin.Engine
	authHandler    *handlers.AuthHandler
	accountHandler *handlers.AccountHandler
	articleHandler *handlers.ArticleHandler
	planHandler    *handlers.PlanHandler
	authMiddleware *middleware.AuthMiddleware
	mediaBasePath  string
	logger         logger.Interface
}

// NewRouter creates the HTTP router with all dependencies wired.
func NewRouter(database *gorm.DB, taskQueue *queue.RedisTaskQueue, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	verticalRepo := repository.NewVerticalRepository(database, log)
	accountRepo := repository.NewAccountRepository(database, log)
	planRepo := repository.NewPlanRepository(database, verticalRepo, log)
	articleRepo := repository.NewArticleRepository(database, verticalRepo, log)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	tokens := auth.NewTokenAdapter(jwtService)
	txManager := db.NewTransactionManager(database)
	store := storage.NewLocalDiskStore(cfg.Storage.BasePath, cfg.Storage.BaseURL, log)
	renderer := render.NewMarkdownRenderer()

	registerReaderUC := accountUC.NewRegisterReaderUseCase(accountRepo, planRepo, hasher, txManager, taskQueue, log)
	createAccountUC := accountUC.NewCreateAccountUseCase(accountRepo, planRepo, hasher, txManager, taskQueue, log)
	loginUC := accountUC.NewLoginUseCase(accountRepo, hasher, tokens, log)
	refreshTokenUC := accountUC.NewRefreshTokenUseCase(accountRepo, tokens, log)
	getAccountUC := accountUC.NewGetAccountUseCase(accountRepo, log)
	listAccountsUC := accountUC.NewListAccountsUseCase(accountRepo, log)
	updateAccountUC := accountUC.NewUpdateAccountUseCase(accountRepo, hasher, log)
	deleteAccountUC := accountUC.NewDeleteAccountUseCase(accountRepo, log)

	createArticleUC := articleUC.NewCreateArticleUseCase(articleRepo, accountRepo, store, taskQueue, log)
	getArticleUC := articleUC.NewGetArticleUseCase(articleRepo, accountRepo, planRepo, renderer, store, log)
	listArticlesUC := articleUC.NewListArticlesUseCase(articleRepo, accountRepo, planRepo, store, log)
	updateArticleUC := articleUC.NewUpdateArticleUseCase(articleRepo, accountRepo, store, taskQueue, log)
	deleteArticleUC := articleUC.NewDeleteArticleUseCase(articleRepo, store, log)

	getPlanUC := planUC.NewGetPlanUseCase(planRepo, accountRepo, log)
	listPlansUC := planUC.NewListPlansUseCase(planRepo, accountRepo, log)
	updatePlanUC := planUC.NewUpdatePlanUseCase(planRepo, accountRepo, log)

	return &Router{
		engine:         engine,
		authHandler:    handlers.NewAuthHandler(registerReaderUC, loginUC, refreshTokenUC, getAccountUC, log),
		accountHandler: handlers.NewAccountHandler(createAccountUC, getAccountUC, listAccountsUC, updateAccountUC, deleteAccountUC, log),
		articleHandler: handlers.NewArticleHandler(createArticleUC, getArticleUC, listArticlesUC, updateArticleUC, deleteArticleUC, log),
		planHandler:    handlers.NewPlanHandler(getPlanUC, listPlansUC, updatePlanUC, log),
		authMiddleware: middleware.NewAuthMiddleware(jwtService, accountRepo, log),
		mediaBasePath:  store.BasePath(),
		logger:         log,
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
