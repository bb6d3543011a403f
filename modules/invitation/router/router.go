package router

import (
	"collabtime-api/core/middleware"
	"collabtime-api/modules/invitation/controller"

	"github.com/labstack/echo/v4"
)

// InvitationRouter handles invitation routes
type InvitationRouter struct {
	InvitationController *controller.InvitationController
}

// NewInvitationRouter creates a new router
func NewInvitationRouter(invitationController *controller.InvitationController) *InvitationRouter {
	return &InvitationRouter{
		InvitationController: invitationController,
	}
}

// Setup registers invitation routes
func (r *InvitationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	teamRoutes := privateRoutes.Group("/teams", mw.AuthMiddleware())
	teamRoutes.POST("/:id/invitations", r.InvitationController.CreateInvitation)
	teamRoutes.GET("/:id/invitations", r.InvitationController.GetTeamInvitations)

	invitationRoutes := privateRoutes.Group("/invitations", mw.AuthMiddleware())
	invitationRoutes.POST("/:code/accept", r.InvitationController.AcceptInvitation)
	invitationRoutes.DELETE("/:id", r.InvitationController.RevokeInvitation)
}
