package controller

import (
	"collabtime-api/core/controller"
	"collabtime-api/core/errors"
	"collabtime-api/modules/scheduler/dto"
	"collabtime-api/modules/scheduler/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SchedulerController handles slot finder HTTP requests
type SchedulerController struct {
	controller.BaseController
	SchedulerService service.SchedulerServiceInterface
}

// NewSchedulerController creates a new controller
func NewSchedulerController(svc service.SchedulerServiceInterface) *SchedulerController {
	return &SchedulerController{
		BaseController:   controller.NewBaseController(),
		SchedulerService: svc,
	}
}

// FindSlots handles POST /teams/:id/find-slots
// @Summary Find meeting slots
// @Description Rank candidate meeting windows across the team's timezones
// @Tags Scheduler
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body dto.FindSlotsRequest true "Search options"
// @Success 200 {object} dto.FindSlotsResponse
// @Failure 400 {object} errors.AppError
// @Router /private/teams/{id}/find-slots [post]
func (c *SchedulerController) FindSlots(ctx echo.Context) error {
	teamID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid team ID")
	}

	var req dto.FindSlotsRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.SchedulerService.FindSlots(ctx.Request().Context(), teamID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Slots found")
}

// TeamStatus handles GET /teams/:id/status
// @Summary Current team status
// @Description Classify each member as working, starting soon, ending soon, or off
// @Tags Scheduler
// @Security BearerAuth
// @Produce json
// @Param id path string true "Team ID"
// @Param viewer_timezone query string false "Viewer timezone (IANA), defaults to UTC"
// @Success 200 {object} dto.TeamStatusResponse
// @Failure 400 {object} errors.AppError
// @Router /private/teams/{id}/status [get]
func (c *SchedulerController) TeamStatus(ctx echo.Context) error {
	teamID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid team ID")
	}

	viewerTz := ctx.QueryParam("viewer_timezone")

	result, appErr := c.SchedulerService.TeamStatus(ctx.Request().Context(), teamID, viewerTz)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
