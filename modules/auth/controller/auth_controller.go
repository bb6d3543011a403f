package controller

import (
	"strings"

	"collabtime-api/core/controller"
	"collabtime-api/core/errors"
	"collabtime-api/core/utils"
	"collabtime-api/modules/auth/dto"
	"collabtime-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// AuthController handles authentication HTTP requests
type AuthController struct {
	controller.BaseController
	AuthService service.AuthServiceInterface
}

// NewAuthController creates a new controller
func NewAuthController(svc service.AuthServiceInterface) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		AuthService:    svc,
	}
}

// Register handles POST /auth/register
// @Summary Register an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account details"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} errors.AppError
// @Router /public/auth/register [post]
func (c *AuthController) Register(ctx echo.Context) error {
	var req dto.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.AuthService.Register(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Account created successfully")
}

// Login handles POST /auth/login
// @Summary Sign in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} errors.AppError
// @Router /public/auth/login [post]
func (c *AuthController) Login(ctx echo.Context) error {
	var req dto.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.AuthService.Login(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Signed in successfully")
}

// Logout handles POST /auth/logout
// @Summary Sign out
// @Tags Auth
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /private/auth/logout [post]
func (c *AuthController) Logout(ctx echo.Context) error {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return c.Unauthorized(errors.ErrInvalidTokenFormat, "Invalid authorization header")
	}

	if appErr := c.AuthService.Logout(ctx.Request().Context(), parts[1]); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Signed out successfully")
}

// GoogleLogin handles GET /auth/google
// @Summary Begin Google OAuth
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.GoogleLoginResponse
// @Router /public/auth/google [get]
func (c *AuthController) GoogleLogin(ctx echo.Context) error {
	state := utils.GenerateRandomString(24)

	return c.SuccessResponse(ctx, &dto.GoogleLoginResponse{
		AuthURL: c.AuthService.GoogleLoginURL(state),
	}, "Success")
}

// GoogleCallback handles GET /auth/google/callback
// @Summary Complete Google OAuth
// @Tags Auth
// @Produce json
// @Param code query string true "Authorization code"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} errors.AppError
// @Router /public/auth/google/callback [get]
func (c *AuthController) GoogleCallback(ctx echo.Context) error {
	code := ctx.QueryParam("code")
	if code == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Missing authorization code")
	}

	result, appErr := c.AuthService.GoogleCallback(ctx.Request().Context(), code)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Signed in successfully")
}
