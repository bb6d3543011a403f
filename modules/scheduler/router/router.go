package router

import (
	"collabtime-api/core/middleware"
	"collabtime-api/modules/scheduler/controller"

	"github.com/labstack/echo/v4"
)

// SchedulerRouter handles slot finder routes
type SchedulerRouter struct {
	SchedulerController *controller.SchedulerController
}

// NewSchedulerRouter creates a new router
func NewSchedulerRouter(schedulerController *controller.SchedulerController) *SchedulerRouter {
	return &SchedulerRouter{
		SchedulerController: schedulerController,
	}
}

// Setup registers scheduler routes
func (r *SchedulerRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	teamRoutes := privateRoutes.Group("/teams", mw.AuthMiddleware())
	teamRoutes.POST("/:id/find-slots", r.SchedulerController.FindSlots)
	teamRoutes.GET("/:id/status", r.SchedulerController.TeamStatus)
}
