package invitation

import (
	"collabtime-api/core/constants"
	"collabtime-api/core/database"
	"collabtime-api/core/middleware"
	"collabtime-api/core/worker"
	"collabtime-api/modules/invitation/controller"
	"collabtime-api/modules/invitation/repository"
	"collabtime-api/modules/invitation/router"
	"collabtime-api/modules/invitation/service"
	"collabtime-api/modules/invitation/task"
	teamRepository "collabtime-api/modules/team/repository"

	"github.com/labstack/echo/v4"
)

// Init initializes the invitation module, registers routes and the
// background email handler
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewInvitationRepository(db)
	teamRepo := teamRepository.NewTeamRepository(db)
	svc := service.NewInvitationService(repo, teamRepo, worker.GetClient())
	ctrl := controller.NewInvitationController(svc)
	rtr := router.NewInvitationRouter(ctrl)

	worker.HandleFunc(constants.TaskTypeInvitationEmail, task.HandleInvitationEmail)
	rtr.Setup(e, mw)
}
