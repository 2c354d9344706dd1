package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Context keys
	ContextKeyAccountID   = "account_id"
	ContextKeyAccountUUID = "account_uuid"
	ContextKeyRole        = "role"

	// Database table names
	TableAccounts         = "accounts"
	TableArticles         = "articles"
	TablePlans            = "plans"
	TableVerticals        = "verticals"
	TableArticleVerticals = "article_verticals"
	TablePlanVerticals    = "plan_verticals"
)
