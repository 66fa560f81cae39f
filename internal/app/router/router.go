package router

import (
	"github.com/gin-gonic/gin"

	authhandler "dreamjournal/internal/feature/auth/transport/handler"
	dreamhandler "dreamjournal/internal/feature/dreams/transport/handler"
	insightshandler "dreamjournal/internal/feature/insights/transport/handler"
	verificationhandler "dreamjournal/internal/feature/verification/transport/handler"
	"dreamjournal/internal/platform/http/handler"
	jwtmw "dreamjournal/internal/platform/jwt"
)

// NewRouter mounts every route. Listing entries uses optional auth so
// anonymous visitors get an empty journal instead of 401; every mutation
// requires a token.
func NewRouter(auth *authhandler.AuthHandler, dreams *dreamhandler.DreamHandler,
	verification *verificationhandler.VerificationHandler,
	insights *insightshandler.InsightsHandler) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", handler.Health)
	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)

	r.POST("/verification/send", verification.Send)
	r.POST("/verification/verify", verification.Verify)
	r.GET("/verification/status", verification.Status)

	r.GET("/dreams", jwtmw.AuthOptional(), dreams.List)

	protected := r.Group("/")
	protected.Use(jwtmw.AuthRequired())
	{
		protected.GET("/me", auth.Me)
		protected.POST("/dreams", dreams.Create)
		protected.PUT("/dreams/:id", dreams.Update)
		protected.DELETE("/dreams/:id", dreams.Delete)
		protected.POST("/dreams/:id/interpretation", insights.Interpret)
		protected.POST("/account/link", auth.LinkAccounts)
		protected.GET("/account/linkable", auth.LinkableAccounts)
	}

	return r
}
