package scheduler

import (
	"collabtime-api/core/cache"
	"collabtime-api/core/database"
	"collabtime-api/core/middleware"
	"collabtime-api/modules/scheduler/controller"
	"collabtime-api/modules/scheduler/repository"
	"collabtime-api/modules/scheduler/router"
	"collabtime-api/modules/scheduler/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the scheduler module and registers routes
func Init(e *echo.Echo, db database.Database, c cache.ICache, mw *middleware.Middleware) {
	repo := repository.NewParticipantRepository(db)
	svc := service.NewSchedulerService(repo, c)
	ctrl := controller.NewSchedulerController(svc)
	rtr := router.NewSchedulerRouter(ctrl)

	rtr.Setup(e, mw)
}
