package repository

import (
	"context"
	"database/sql"

	"collabtime-api/core/database"
	"collabtime-api/core/logger"
	"collabtime-api/modules/invitation/entity"

	"github.com/google/uuid"
)

// InvitationRepository handles invitation database operations
type InvitationRepository struct {
	DB database.Database
}

// NewInvitationRepository creates a new repository instance
func NewInvitationRepository(db database.Database) *InvitationRepository {
	return &InvitationRepository{DB: db}
}

// InvitationRepositoryInterface defines the repository contract
type InvitationRepositoryInterface interface {
	CreateInvitation(ctx context.Context, inv *entity.Invitation) (*entity.Invitation, error)
	GetInvitationByID(ctx context.Context, id uuid.UUID) (*entity.Invitation, error)
	GetInvitationByCode(ctx context.Context, code string) (*entity.Invitation, error)
	GetPendingInvitation(ctx context.Context, teamID uuid.UUID, email string) (*entity.Invitation, error)
	GetInvitationsByTeamID(ctx context.Context, teamID uuid.UUID) ([]entity.Invitation, error)
	UpdateInvitationStatus(ctx context.Context, id uuid.UUID, status entity.InvitationStatus) error
}

func (r *InvitationRepository) CreateInvitation(ctx context.Context, inv *entity.Invitation) (*entity.Invitation, error) {
	query := `
		INSERT INTO invitations (team_id, email, code, status, invited_by, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, team_id, email, code, status, invited_by, expires_at, created_at, updated_at
	`

	var created entity.Invitation
	err := r.DB.GetContext(ctx, &created, query,
		inv.TeamID, inv.Email, inv.Code, inv.Status, inv.InvitedBy, inv.ExpiresAt)
	if err != nil {
		logger.Error("InvitationRepository:CreateInvitation", err)
		return nil, err
	}

	return &created, nil
}

func (r *InvitationRepository) GetInvitationByID(ctx context.Context, id uuid.UUID) (*entity.Invitation, error) {
	query := `
		SELECT id, team_id, email, code, status, invited_by, expires_at, created_at, updated_at
		FROM invitations WHERE id = $1
	`

	var inv entity.Invitation
	err := r.DB.GetContext(ctx, &inv, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("InvitationRepository:GetInvitationByID", err)
		return nil, err
	}

	return &inv, nil
}

func (r *InvitationRepository) GetInvitationByCode(ctx context.Context, code string) (*entity.Invitation, error) {
	query := `
		SELECT id, team_id, email, code, status, invited_by, expires_at, created_at, updated_at
		FROM invitations WHERE code = $1
	`

	var inv entity.Invitation
	err := r.DB.GetContext(ctx, &inv, query, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("InvitationRepository:GetInvitationByCode", err)
		return nil, err
	}

	return &inv, nil
}

func (r *InvitationRepository) GetPendingInvitation(ctx context.Context, teamID uuid.UUID, email string) (*entity.Invitation, error) {
	query := `
		SELECT id, team_id, email, code, status, invited_by, expires_at, created_at, updated_at
		FROM invitations
		WHERE team_id = $1 AND email = $2 AND status = 'pending'
	`

	var inv entity.Invitation
	err := r.DB.GetContext(ctx, &inv, query, teamID, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("InvitationRepository:GetPendingInvitation", err)
		return nil, err
	}

	return &inv, nil
}

func (r *InvitationRepository) GetInvitationsByTeamID(ctx context.Context, teamID uuid.UUID) ([]entity.Invitation, error) {
	query := `
		SELECT id, team_id, email, code, status, invited_by, expires_at, created_at, updated_at
		FROM invitations
		WHERE team_id = $1
		ORDER BY created_at DESC
	`

	var invs []entity.Invitation
	err := r.DB.SelectContext(ctx, &invs, query, teamID)
	if err != nil {
		logger.Error("InvitationRepository:GetInvitationsByTeamID", err)
		return nil, err
	}

	return invs, nil
}

func (r *InvitationRepository) UpdateInvitationStatus(ctx context.Context, id uuid.UUID, status entity.InvitationStatus) error {
	query := `
		UPDATE invitations SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	err := r.DB.ExecContext(ctx, query, status, id)
	if err != nil {
		logger.Error("InvitationRepository:UpdateInvitationStatus", err)
		return err
	}

	return nil
}
