package router

import (
	"collabtime-api/core/middleware"
	"collabtime-api/modules/team/controller"

	"github.com/labstack/echo/v4"
)

// TeamRouter handles team routes
type TeamRouter struct {
	TeamController *controller.TeamController
}

// NewTeamRouter creates a new router
func NewTeamRouter(teamController *controller.TeamController) *TeamRouter {
	return &TeamRouter{
		TeamController: teamController,
	}
}

// Setup registers team routes
func (r *TeamRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	teamRoutes := privateRoutes.Group("/teams", mw.AuthMiddleware())
	teamRoutes.POST("", r.TeamController.CreateTeam)
	teamRoutes.GET("", r.TeamController.GetMyTeams)
	teamRoutes.GET("/:id", r.TeamController.GetTeam)
	teamRoutes.PUT("/:id", r.TeamController.UpdateTeam)
	teamRoutes.DELETE("/:id", r.TeamController.DeleteTeam)

	teamRoutes.POST("/:id/members", r.TeamController.AddMember)
	teamRoutes.GET("/:id/members", r.TeamController.GetMembers)
	teamRoutes.POST("/:id/groups", r.TeamController.CreateGroup)
	teamRoutes.GET("/:id/groups", r.TeamController.GetGroups)

	memberRoutes := privateRoutes.Group("/members", mw.AuthMiddleware())
	memberRoutes.PUT("/:id", r.TeamController.UpdateMember)
	memberRoutes.DELETE("/:id", r.TeamController.RemoveMember)
	memberRoutes.POST("/:id/avatar-upload", r.TeamController.PresignAvatar)

	groupRoutes := privateRoutes.Group("/groups", mw.AuthMiddleware())
	groupRoutes.DELETE("/:id", r.TeamController.DeleteGroup)
}
