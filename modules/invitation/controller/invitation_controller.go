package controller

import (
	"collabtime-api/core/constants"
	"collabtime-api/core/controller"
	"collabtime-api/core/errors"
	"collabtime-api/core/utils"
	"collabtime-api/modules/invitation/dto"
	"collabtime-api/modules/invitation/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// InvitationController handles invitation HTTP requests
type InvitationController struct {
	controller.BaseController
	InvitationService service.InvitationServiceInterface
}

// NewInvitationController creates a new controller
func NewInvitationController(svc service.InvitationServiceInterface) *InvitationController {
	return &InvitationController{
		BaseController:    controller.NewBaseController(),
		InvitationService: svc,
	}
}

// claimsFromContext extracts JWT claims set by the auth middleware
func (c *InvitationController) claimsFromContext(ctx echo.Context) (*utils.TokenClaims, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}

	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}

	return claims, nil
}

// CreateInvitation handles POST /teams/:id/invitations
// @Summary Invite someone to a team
// @Tags Invitation
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body dto.CreateInvitationRequest true "Invitee email"
// @Success 200 {object} dto.InvitationResponse
// @Failure 403 {object} errors.AppError
// @Router /private/teams/{id}/invitations [post]
func (c *InvitationController) CreateInvitation(ctx echo.Context) error {
	claims, err := c.claimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	teamID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid team id")
	}

	var req dto.CreateInvitationRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.InvitationService.CreateInvitation(ctx.Request().Context(), claims.UserID, teamID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Invitation sent")
}

// GetTeamInvitations handles GET /teams/:id/invitations
// @Summary List a team's invitations
// @Tags Invitation
// @Security BearerAuth
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {array} dto.InvitationResponse
// @Router /private/teams/{id}/invitations [get]
func (c *InvitationController) GetTeamInvitations(ctx echo.Context) error {
	claims, err := c.claimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	teamID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid team id")
	}

	result, appErr := c.InvitationService.GetTeamInvitations(ctx.Request().Context(), claims.UserID, teamID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// AcceptInvitation handles POST /invitations/:code/accept
// @Summary Accept an invitation
// @Tags Invitation
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param code path string true "Invitation code"
// @Param request body dto.AcceptInvitationRequest true "Member profile"
// @Success 200 {object} dto.InvitationResponse
// @Failure 404 {object} errors.AppError
// @Router /private/invitations/{code}/accept [post]
func (c *InvitationController) AcceptInvitation(ctx echo.Context) error {
	claims, err := c.claimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	code := ctx.Param("code")
	if code == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Missing invitation code")
	}

	var req dto.AcceptInvitationRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.InvitationService.AcceptInvitation(ctx.Request().Context(), claims.UserID, claims.Email, code, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Invitation accepted")
}

// RevokeInvitation handles DELETE /invitations/:id
// @Summary Revoke a pending invitation
// @Tags Invitation
// @Security BearerAuth
// @Param id path string true "Invitation ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.AppError
// @Router /private/invitations/{id} [delete]
func (c *InvitationController) RevokeInvitation(ctx echo.Context) error {
	claims, err := c.claimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	invitationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid invitation id")
	}

	if appErr := c.InvitationService.RevokeInvitation(ctx.Request().Context(), claims.UserID, invitationID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Invitation revoked")
}
