package auth

import (
	"collabtime-api/core/cache"
	"collabtime-api/core/database"
	"collabtime-api/core/middleware"
	"collabtime-api/modules/auth/controller"
	"collabtime-api/modules/auth/repository"
	"collabtime-api/modules/auth/router"
	"collabtime-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the auth module and registers routes
func Init(e *echo.Echo, db database.Database, c cache.ICache, mw *middleware.Middleware) {
	repo := repository.NewUserRepository(db)
	svc := service.NewAuthService(repo, c)
	ctrl := controller.NewAuthController(svc)
	rtr := router.NewAuthRouter(ctrl)

	rtr.Setup(e, mw)
}
