package repository

import (
	"context"
	"database/sql"

	"collabtime-api/core/database"
	"collabtime-api/core/logger"
	"collabtime-api/modules/team/entity"

	"github.com/google/uuid"
)

// TeamRepository handles team, member, and group database operations
type TeamRepository struct {
	DB database.Database
}

// NewTeamRepository creates a new repository instance
func NewTeamRepository(db database.Database) *TeamRepository {
	return &TeamRepository{DB: db}
}

// TeamRepositoryInterface defines the repository contract
type TeamRepositoryInterface interface {
	// Teams
	CreateTeam(ctx context.Context, team *entity.Team) (*entity.Team, error)
	GetTeamByID(ctx context.Context, id uuid.UUID) (*entity.Team, error)
	GetTeamBySlug(ctx context.Context, slug string) (*entity.Team, error)
	GetTeamsByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]entity.Team, error)
	UpdateTeam(ctx context.Context, team *entity.Team) error
	DeleteTeam(ctx context.Context, id uuid.UUID) error

	// Members
	AddMember(ctx context.Context, member *entity.TeamMember) (*entity.TeamMember, error)
	GetMemberByID(ctx context.Context, id uuid.UUID) (*entity.TeamMember, error)
	GetMembersByTeamID(ctx context.Context, teamID uuid.UUID) ([]entity.TeamMember, error)
	UpdateMember(ctx context.Context, member *entity.TeamMember) error
	RemoveMember(ctx context.Context, id uuid.UUID) error

	// Groups
	CreateGroup(ctx context.Context, group *entity.MemberGroup) (*entity.MemberGroup, error)
	GetGroupsByTeamID(ctx context.Context, teamID uuid.UUID) ([]entity.MemberGroup, error)
	DeleteGroup(ctx context.Context, id uuid.UUID) error
}

// ===================== Teams =====================

func (r *TeamRepository) CreateTeam(ctx context.Context, team *entity.Team) (*entity.Team, error) {
	query := `
		INSERT INTO teams (name, slug, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, slug, owner_id, created_at, updated_at
	`

	var created entity.Team
	err := r.DB.GetContext(ctx, &created, query, team.Name, team.Slug, team.OwnerID)
	if err != nil {
		logger.Error("TeamRepository:CreateTeam", err)
		return nil, err
	}

	return &created, nil
}

func (r *TeamRepository) GetTeamByID(ctx context.Context, id uuid.UUID) (*entity.Team, error) {
	query := `
		SELECT id, name, slug, owner_id, created_at, updated_at
		FROM teams WHERE id = $1
	`

	var team entity.Team
	err := r.DB.GetContext(ctx, &team, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("TeamRepository:GetTeamByID", err)
		return nil, err
	}

	return &team, nil
}

func (r *TeamRepository) GetTeamBySlug(ctx context.Context, slug string) (*entity.Team, error) {
	query := `
		SELECT id, name, slug, owner_id, created_at, updated_at
		FROM teams WHERE slug = $1
	`

	var team entity.Team
	err := r.DB.GetContext(ctx, &team, query, slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("TeamRepository:GetTeamBySlug", err)
		return nil, err
	}

	return &team, nil
}

func (r *TeamRepository) GetTeamsByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]entity.Team, error) {
	query := `
		SELECT id, name, slug, owner_id, created_at, updated_at
		FROM teams
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	var teams []entity.Team
	err := r.DB.SelectContext(ctx, &teams, query, ownerID)
	if err != nil {
		logger.Error("TeamRepository:GetTeamsByOwnerID", err)
		return nil, err
	}

	return teams, nil
}

func (r *TeamRepository) UpdateTeam(ctx context.Context, team *entity.Team) error {
	query := `
		UPDATE teams
		SET name = $1, slug = $2, updated_at = NOW()
		WHERE id = $3
	`

	err := r.DB.ExecContext(ctx, query, team.Name, team.Slug, team.ID)
	if err != nil {
		logger.Error("TeamRepository:UpdateTeam", err)
	}
	return err
}

func (r *TeamRepository) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	err := r.DB.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		logger.Error("TeamRepository:DeleteTeam", err)
	}
	return err
}

// ===================== Members =====================

func (r *TeamRepository) AddMember(ctx context.Context, member *entity.TeamMember) (*entity.TeamMember, error) {
	query := `
		INSERT INTO team_members (team_id, user_id, display_name, title, timezone,
		                          working_hours_start, working_hours_end, group_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, team_id, user_id, display_name, title, timezone,
		          working_hours_start, working_hours_end, group_id, avatar_url,
		          created_at, updated_at
	`

	var created entity.TeamMember
	err := r.DB.GetContext(ctx, &created, query,
		member.TeamID, member.UserID, member.DisplayName, member.Title, member.Timezone,
		member.WorkingHoursStart, member.WorkingHoursEnd, member.GroupID)
	if err != nil {
		logger.Error("TeamRepository:AddMember", err)
		return nil, err
	}

	return &created, nil
}

func (r *TeamRepository) GetMemberByID(ctx context.Context, id uuid.UUID) (*entity.TeamMember, error) {
	query := `
		SELECT id, team_id, user_id, display_name, title, timezone,
		       working_hours_start, working_hours_end, group_id, avatar_url,
		       created_at, updated_at
		FROM team_members WHERE id = $1
	`

	var member entity.TeamMember
	err := r.DB.GetContext(ctx, &member, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("TeamRepository:GetMemberByID", err)
		return nil, err
	}

	return &member, nil
}

func (r *TeamRepository) GetMembersByTeamID(ctx context.Context, teamID uuid.UUID) ([]entity.TeamMember, error) {
	query := `
		SELECT id, team_id, user_id, display_name, title, timezone,
		       working_hours_start, working_hours_end, group_id, avatar_url,
		       created_at, updated_at
		FROM team_members
		WHERE team_id = $1
		ORDER BY display_name ASC
	`

	var members []entity.TeamMember
	err := r.DB.SelectContext(ctx, &members, query, teamID)
	if err != nil {
		logger.Error("TeamRepository:GetMembersByTeamID", err)
		return nil, err
	}

	return members, nil
}

func (r *TeamRepository) UpdateMember(ctx context.Context, member *entity.TeamMember) error {
	query := `
		UPDATE team_members
		SET display_name = $1, title = $2, timezone = $3,
		    working_hours_start = $4, working_hours_end = $5,
		    group_id = $6, avatar_url = $7, updated_at = NOW()
		WHERE id = $8
	`

	err := r.DB.ExecContext(ctx, query,
		member.DisplayName, member.Title, member.Timezone,
		member.WorkingHoursStart, member.WorkingHoursEnd,
		member.GroupID, member.AvatarURL, member.ID)
	if err != nil {
		logger.Error("TeamRepository:UpdateMember", err)
	}
	return err
}

func (r *TeamRepository) RemoveMember(ctx context.Context, id uuid.UUID) error {
	err := r.DB.ExecContext(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		logger.Error("TeamRepository:RemoveMember", err)
	}
	return err
}

// ===================== Groups =====================

func (r *TeamRepository) CreateGroup(ctx context.Context, group *entity.MemberGroup) (*entity.MemberGroup, error) {
	query := `
		INSERT INTO member_groups (team_id, name)
		VALUES ($1, $2)
		RETURNING id, team_id, name, created_at, updated_at
	`

	var created entity.MemberGroup
	err := r.DB.GetContext(ctx, &created, query, group.TeamID, group.Name)
	if err != nil {
		logger.Error("TeamRepository:CreateGroup", err)
		return nil, err
	}

	return &created, nil
}

func (r *TeamRepository) GetGroupsByTeamID(ctx context.Context, teamID uuid.UUID) ([]entity.MemberGroup, error) {
	query := `
		SELECT id, team_id, name, created_at, updated_at
		FROM member_groups
		WHERE team_id = $1
		ORDER BY name ASC
	`

	var groups []entity.MemberGroup
	err := r.DB.SelectContext(ctx, &groups, query, teamID)
	if err != nil {
		logger.Error("TeamRepository:GetGroupsByTeamID", err)
		return nil, err
	}

	return groups, nil
}

func (r *TeamRepository) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	err := r.DB.ExecContext(ctx, `DELETE FROM member_groups WHERE id = $1`, id)
	if err != nil {
		logger.Error("TeamRepository:DeleteGroup", err)
	}
	return err
}
