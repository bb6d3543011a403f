package controller

import (
	"collabtime-api/core/constants"
	"collabtime-api/core/controller"
	"collabtime-api/core/errors"
	"collabtime-api/core/utils"
	"collabtime-api/modules/team/dto"
	"collabtime-api/modules/team/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TeamController handles team HTTP requests
type TeamController struct {
	controller.BaseController
	TeamService   service.TeamServiceInterface
	AvatarService service.AvatarServiceInterface
}

// NewTeamController creates a new controller
func NewTeamController(svc service.TeamServiceInterface, avatars service.AvatarServiceInterface) *TeamController {
	return &TeamController{
		BaseController: controller.NewBaseController(),
		TeamService:    svc,
		AvatarService:  avatars,
	}
}

// getUserIDFromContext extracts user ID from JWT context
func (c *TeamController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}

	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}

	return claims.UserID, nil
}

// CreateTeam handles POST /teams
// @Summary Create a team
// @Tags Team
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTeamRequest true "Team details"
// @Success 200 {object} dto.TeamResponse
// @Failure 400 {object} errors.AppError
// @Router /private/teams [post]
func (c *TeamController) CreateTeam(ctx echo.Context) error {
	ownerID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreateTeamRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.TeamService.CreateTeam(ctx.Request().Context(), ownerID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Team created successfully")
}

// GetTeam handles GET /teams/:id
// @Summary Get a team
// @Tags Team
// @Security BearerAuth
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} dto.TeamResponse
// @Failure 404 {object} errors.AppError
// @Router /private/teams/{id} [get]
func (c *TeamController) GetTeam(ctx echo.Context) error {
	teamID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid team ID")
	}

	result, appErr := c.TeamService.GetTeamByID(ctx.Request().Context(), teamID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetMyTeams handles GET /teams
// @Summary List my teams
// @Tags Team
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.TeamResponse
// @Router /private/teams [get]
func (c *TeamController) GetMyTeams(ctx echo.Context) error {
	ownerID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.TeamService.GetMyTeams(ctx.Request().Context(), ownerID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// UpdateTeam handles PUT /teams/:id
// @Summary Update a team
// @Tags Team
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body dto.UpdateTeamRequest true "Updated fields"
// @Success 200 {object} dto.TeamResponse
// @Router /private/teams/{id} [put]
func (c *TeamController) UpdateTeam(ctx echo.Context) error {
	ownerID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	teamID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid team ID")
	}

	var req dto.UpdateTeamRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.TeamService.UpdateTeam(ctx.Request().Context(), teamID, ownerID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Team updated successfully")
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Tags Team
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Success 200 {object} map[string]string
// @Router /private/teams/{id} [delete]
func (c *TeamController) DeleteTeam(ctx echo.Context) error {
	ownerID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	teamID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid team ID")
	}

	if appErr := c.TeamService.DeleteTeam(ctx.Request().Context(), teamID, ownerID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Team deleted successfully")
}

// AddMember handles POST /teams/:id/members
// @Summary Add a member
// @Tags Team
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body dto.MemberRequest true "Member details"
// @Success 200 {object} dto.MemberResponse
// @Failure 400 {object} errors.AppError
// @Router /private/teams/{id}/members [post]
func (c *TeamController) AddMember(ctx echo.Context) error {
	teamID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid team ID")
	}

	var req dto.MemberRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.TeamService.AddMember(ctx.Request().Context(), teamID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Member added successfully")
}

// GetMembers handles GET /teams/:id/members
// @Summary List team members
// @Tags Team
// @Security BearerAuth
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {array} dto.MemberResponse
// @Router /private/teams/{id}/members [get]
func (c *TeamController) GetMembers(ctx echo.Context) error {
	teamID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid team ID")
	}

	result, appErr := c.TeamService.GetMembers(ctx.Request().Context(), teamID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// UpdateMember handles PUT /members/:id
// @Summary Update a member
// @Tags Team
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param request body dto.MemberRequest true "Updated fields"
// @Success 200 {object} dto.MemberResponse
// @Router /private/members/{id} [put]
func (c *TeamController) UpdateMember(ctx echo.Context) error {
	memberID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid member ID")
	}

	var req dto.MemberRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.TeamService.UpdateMember(ctx.Request().Context(), memberID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Member updated successfully")
}

// RemoveMember handles DELETE /members/:id
// @Summary Remove a member
// @Tags Team
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {object} map[string]string
// @Router /private/members/{id} [delete]
func (c *TeamController) RemoveMember(ctx echo.Context) error {
	memberID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid member ID")
	}

	if appErr := c.TeamService.RemoveMember(ctx.Request().Context(), memberID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Member removed successfully")
}

// PresignAvatar handles POST /members/:id/avatar-upload
// @Summary Presign an avatar upload
// @Description Returns a presigned S3 PUT URL the browser uploads to directly
// @Tags Team
// @Security BearerAuth
// @Produce json
// @Param id path string true "Member ID"
// @Param content_type query string true "Avatar content type"
// @Success 200 {object} dto.AvatarUploadResponse
// @Router /private/members/{id}/avatar-upload [post]
func (c *TeamController) PresignAvatar(ctx echo.Context) error {
	memberID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid member ID")
	}

	contentType := ctx.QueryParam("content_type")

	uploadURL, publicURL, expiresIn, appErr := c.AvatarService.PresignAvatarUpload(ctx.Request().Context(), memberID, contentType)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, &dto.AvatarUploadResponse{
		UploadURL: uploadURL,
		PublicURL: publicURL,
		ExpiresIn: expiresIn,
	}, "Upload URL created")
}

// CreateGroup handles POST /teams/:id/groups
// @Summary Create a member group
// @Tags Team
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body dto.GroupRequest true "Group details"
// @Success 200 {object} dto.GroupResponse
// @Router /private/teams/{id}/groups [post]
func (c *TeamController) CreateGroup(ctx echo.Context) error {
	teamID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid team ID")
	}

	var req dto.GroupRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.TeamService.CreateGroup(ctx.Request().Context(), teamID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Group created successfully")
}

// GetGroups handles GET /teams/:id/groups
// @Summary List member groups
// @Tags Team
// @Security BearerAuth
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {array} dto.GroupResponse
// @Router /private/teams/{id}/groups [get]
func (c *TeamController) GetGroups(ctx echo.Context) error {
	teamID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid team ID")
	}

	result, appErr := c.TeamService.GetGroups(ctx.Request().Context(), teamID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// DeleteGroup handles DELETE /groups/:id
// @Summary Delete a member group
// @Tags Team
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Success 200 {object} map[string]string
// @Router /private/groups/{id} [delete]
func (c *TeamController) DeleteGroup(ctx echo.Context) error {
	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid group ID")
	}

	if appErr := c.TeamService.DeleteGroup(ctx.Request().Context(), groupID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Group deleted successfully")
}
