package team

import (
	"collabtime-api/core/config"
	"collabtime-api/core/database"
	"collabtime-api/core/middleware"
	"collabtime-api/modules/team/controller"
	"collabtime-api/modules/team/repository"
	"collabtime-api/modules/team/router"
	"collabtime-api/modules/team/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the team module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewTeamRepository(db)
	svc := service.NewTeamService(repo)
	avatars := service.NewAvatarService(config.Get().S3)
	ctrl := controller.NewTeamController(svc, avatars)
	rtr := router.NewTeamRouter(ctrl)

	rtr.Setup(e, mw)
}
