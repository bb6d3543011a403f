package service

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"collabtime-api/core/cache"
	appconfig "collabtime-api/core/config"
	"collabtime-api/core/errors"
	"collabtime-api/core/logger"
	"collabtime-api/core/utils"
	"collabtime-api/modules/auth/dto"
	"collabtime-api/modules/auth/entity"
	"collabtime-api/modules/auth/repository"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// AuthService handles registration, login, and Google OAuth
type AuthService struct {
	repo        repository.UserRepositoryInterface
	cache       cache.ICache
	oauthConfig *oauth2.Config
}

// AuthServiceInterface defines the service contract
type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, *errors.AppError)
	Logout(ctx context.Context, token string) *errors.AppError
	GoogleLoginURL(state string) string
	GoogleCallback(ctx context.Context, code string) (*dto.TokenResponse, *errors.AppError)
}

// NewAuthService creates a new auth service
func NewAuthService(repo repository.UserRepositoryInterface, c cache.ICache) AuthServiceInterface {
	googleCfg := appconfig.Get().Google

	return &AuthService{
		repo:  repo,
		cache: c,
		oauthConfig: &oauth2.Config{
			ClientID:     googleCfg.ClientID,
			ClientSecret: googleCfg.ClientSecret,
			RedirectURL:  googleCfg.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (s *AuthService) issueTokens(user *entity.User) (*dto.TokenResponse, *errors.AppError) {
	accessToken, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		logger.Error("AuthService:issueTokens:GenerateToken", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to issue token", err)
	}

	refreshToken, err := utils.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		logger.Error("AuthService:issueTokens:GenerateRefreshToken", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to issue refresh token", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.ToUserResponse(user),
	}, nil
}

// Register creates an account and signs the user in
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, *errors.AppError) {
	if req.Email == "" || req.Password == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "email and password are required", nil)
	}

	existing, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check existing user", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "email already registered", nil)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("AuthService:Register:HashPassword", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	user, err := s.repo.CreateUser(ctx, &entity.User{
		Email:    req.Email,
		Password: hashed,
		Name:     req.Name,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create user", err)
	}

	return s.issueTokens(user)
}

// Login checks credentials and issues tokens
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, *errors.AppError) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get user", err)
	}
	if user == nil || !utils.ComparePassword(user.Password, req.Password) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid email or password", nil)
	}

	return s.issueTokens(user)
}

// Logout blacklists the presented token until it would have expired anyway
func (s *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	claims, err := utils.ValidateAndParseToken(token)
	if err != nil {
		return errors.NewAppError(errors.ErrUnauthorized, "invalid token", err)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}

	if err := s.cache.BlacklistToken(ctx, token, ttl); err != nil {
		logger.Error("AuthService:Logout:BlacklistToken", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to blacklist token", err)
	}

	return nil
}

// GoogleLoginURL builds the OAuth consent URL for the browser to follow
func (s *AuthService) GoogleLoginURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

type googleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleCallback exchanges the authorization code, upserts the user, and
// issues our own tokens
func (s *AuthService) GoogleCallback(ctx context.Context, code string) (*dto.TokenResponse, *errors.AppError) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		logger.Error("AuthService:GoogleCallback:Exchange", err)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "failed to exchange authorization code", err)
	}

	client := s.oauthConfig.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		logger.Error("AuthService:GoogleCallback:UserInfo", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to fetch user info", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewAppError(errors.ErrInternalServer, "user info request failed", nil)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to decode user info", err)
	}

	user, err := s.repo.GetUserByGoogleID(ctx, info.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up user", err)
	}

	if user == nil {
		// Link to an existing account by email, or create a fresh one.
		user, err = s.repo.GetUserByEmail(ctx, info.Email)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up user", err)
		}
		if user != nil {
			if err := s.repo.LinkGoogleID(ctx, user.ID, info.ID); err != nil {
				return nil, errors.NewAppError(errors.ErrInternalServer, "failed to link google account", err)
			}
		} else {
			user, err = s.repo.CreateUser(ctx, &entity.User{
				Email:    info.Email,
				Password: utils.GenerateRandomString(32),
				Name:     info.Name,
				GoogleID: &info.ID,
			})
			if err != nil {
				return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create user", err)
			}
		}
	}

	return s.issueTokens(user)
}
