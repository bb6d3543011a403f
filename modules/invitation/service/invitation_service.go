package service

import (
	"context"
	"time"

	"collabtime-api/core/constants"
	"collabtime-api/core/errors"
	"collabtime-api/core/logger"
	"collabtime-api/core/utils"
	"collabtime-api/core/worker"
	"collabtime-api/modules/invitation/dto"
	"collabtime-api/modules/invitation/entity"
	"collabtime-api/modules/invitation/repository"
	"collabtime-api/modules/invitation/task"
	teamEntity "collabtime-api/modules/team/entity"
	teamRepository "collabtime-api/modules/team/repository"

	"github.com/google/uuid"
)

const invitationTTL = 7 * 24 * time.Hour

// InvitationService manages team invitations
type InvitationService struct {
	repo     repository.InvitationRepositoryInterface
	teamRepo teamRepository.TeamRepositoryInterface
	worker   *worker.Client
}

// InvitationServiceInterface defines the service contract
type InvitationServiceInterface interface {
	CreateInvitation(ctx context.Context, userID, teamID uuid.UUID, req *dto.CreateInvitationRequest) (*dto.InvitationResponse, *errors.AppError)
	GetTeamInvitations(ctx context.Context, userID, teamID uuid.UUID) ([]dto.InvitationResponse, *errors.AppError)
	AcceptInvitation(ctx context.Context, userID uuid.UUID, userEmail, code string, req *dto.AcceptInvitationRequest) (*dto.InvitationResponse, *errors.AppError)
	RevokeInvitation(ctx context.Context, userID, invitationID uuid.UUID) *errors.AppError
}

// NewInvitationService creates a new service instance
func NewInvitationService(
	repo repository.InvitationRepositoryInterface,
	teamRepo teamRepository.TeamRepositoryInterface,
	w *worker.Client,
) InvitationServiceInterface {
	return &InvitationService{
		repo:     repo,
		teamRepo: teamRepo,
		worker:   w,
	}
}

// ownedTeam loads a team and checks the caller owns it.
func (s *InvitationService) ownedTeam(ctx context.Context, userID, teamID uuid.UUID) (*teamEntity.Team, *errors.AppError) {
	team, err := s.teamRepo.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load team", err)
	}
	if team == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Team not found", nil)
	}
	if team.OwnerID != userID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Only the team owner can manage invitations", nil)
	}
	return team, nil
}

func (s *InvitationService) CreateInvitation(ctx context.Context, userID, teamID uuid.UUID, req *dto.CreateInvitationRequest) (*dto.InvitationResponse, *errors.AppError) {
	team, appErr := s.ownedTeam(ctx, userID, teamID)
	if appErr != nil {
		return nil, appErr
	}

	existing, err := s.repo.GetPendingInvitation(ctx, teamID, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check existing invitations", err)
	}
	if existing != nil && !existing.Expired(time.Now()) {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "A pending invitation already exists for this email", nil)
	}

	inv := &entity.Invitation{
		TeamID:    teamID,
		Email:     req.Email,
		Code:      utils.GenerateInviteCode(constants.InviteCodeLength),
		Status:    entity.InvitationPending,
		InvitedBy: userID,
		ExpiresAt: time.Now().Add(invitationTTL),
	}

	created, err := s.repo.CreateInvitation(ctx, inv)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create invitation", err)
	}

	emailTask, err := task.NewInvitationEmailTask(task.InvitationEmailPayload{
		Email:    created.Email,
		TeamName: team.Name,
		Code:     created.Code,
	})
	if err != nil {
		logger.Error("InvitationService:CreateInvitation:BuildTask", err)
	} else if err := s.worker.Enqueue(ctx, emailTask); err != nil {
		// The invitation stays valid; the code can still be shared manually.
		logger.Error("InvitationService:CreateInvitation:Enqueue", err)
	}

	return dto.ToInvitationResponse(created), nil
}

func (s *InvitationService) GetTeamInvitations(ctx context.Context, userID, teamID uuid.UUID) ([]dto.InvitationResponse, *errors.AppError) {
	if _, appErr := s.ownedTeam(ctx, userID, teamID); appErr != nil {
		return nil, appErr
	}

	invs, err := s.repo.GetInvitationsByTeamID(ctx, teamID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list invitations", err)
	}

	return dto.ToInvitationResponses(invs), nil
}

func (s *InvitationService) AcceptInvitation(ctx context.Context, userID uuid.UUID, userEmail, code string, req *dto.AcceptInvitationRequest) (*dto.InvitationResponse, *errors.AppError) {
	inv, err := s.repo.GetInvitationByCode(ctx, code)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load invitation", err)
	}
	if inv == nil || inv.Status != entity.InvitationPending {
		return nil, errors.NewAppError(errors.ErrNotFound, "Invitation not found", nil)
	}
	if inv.Expired(time.Now()) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invitation has expired", nil)
	}
	if inv.Email != userEmail {
		return nil, errors.NewAppError(errors.ErrForbidden, "Invitation was issued for a different email address", nil)
	}

	if _, err := time.LoadLocation(req.Timezone); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidTimezone, "Unknown timezone: "+req.Timezone, err)
	}
	if req.WorkingHoursStart < 0 || req.WorkingHoursStart > 23 ||
		req.WorkingHoursEnd < 0 || req.WorkingHoursEnd > 23 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Working hours must be in [0, 23]", nil)
	}

	member := &teamEntity.TeamMember{
		TeamID:            inv.TeamID,
		UserID:            &userID,
		DisplayName:       req.DisplayName,
		Title:             req.Title,
		Timezone:          req.Timezone,
		WorkingHoursStart: req.WorkingHoursStart,
		WorkingHoursEnd:   req.WorkingHoursEnd,
	}
	if _, err := s.teamRepo.AddMember(ctx, member); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to join team", err)
	}

	if err := s.repo.UpdateInvitationStatus(ctx, inv.ID, entity.InvitationAccepted); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update invitation", err)
	}
	inv.Status = entity.InvitationAccepted

	return dto.ToInvitationResponse(inv), nil
}

func (s *InvitationService) RevokeInvitation(ctx context.Context, userID, invitationID uuid.UUID) *errors.AppError {
	inv, err := s.repo.GetInvitationByID(ctx, invitationID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to load invitation", err)
	}
	if inv == nil {
		return errors.NewAppError(errors.ErrNotFound, "Invitation not found", nil)
	}

	if _, appErr := s.ownedTeam(ctx, userID, inv.TeamID); appErr != nil {
		return appErr
	}
	if inv.Status != entity.InvitationPending {
		return errors.NewAppError(errors.ErrInvalidInput, "Only pending invitations can be revoked", nil)
	}

	if err := s.repo.UpdateInvitationStatus(ctx, inv.ID, entity.InvitationRevoked); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to revoke invitation", err)
	}

	return nil
}
