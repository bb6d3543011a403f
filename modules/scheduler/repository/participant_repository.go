package repository

import (
	"context"

	"collabtime-api/core/database"
	"collabtime-api/core/logger"
	"collabtime-api/modules/scheduler/entity"

	"github.com/google/uuid"
)

// ParticipantRepository loads the plain participant view the slot finder
// consumes; it never writes.
type ParticipantRepository struct {
	DB database.Database
}

func NewParticipantRepository(db database.Database) *ParticipantRepository {
	return &ParticipantRepository{DB: db}
}

// ParticipantRepositoryInterface defines the repository contract
type ParticipantRepositoryInterface interface {
	GetTeamParticipants(ctx context.Context, teamID uuid.UUID, groupID *uuid.UUID) ([]entity.Participant, error)
}

type participantRow struct {
	ID                uuid.UUID  `db:"id"`
	DisplayName       string     `db:"display_name"`
	Title             *string    `db:"title"`
	Timezone          string     `db:"timezone"`
	WorkingHoursStart int        `db:"working_hours_start"`
	WorkingHoursEnd   int        `db:"working_hours_end"`
	GroupID           *uuid.UUID `db:"group_id"`
}

// GetTeamParticipants returns the members of a team, optionally restricted to
// one group. Group filtering happens here, before the finder runs; the
// finder treats all supplied members uniformly.
func (r *ParticipantRepository) GetTeamParticipants(ctx context.Context, teamID uuid.UUID, groupID *uuid.UUID) ([]entity.Participant, error) {
	query := `
		SELECT id, display_name, title, timezone, working_hours_start, working_hours_end, group_id
		FROM team_members
		WHERE team_id = $1
	`
	args := []any{teamID}
	if groupID != nil {
		query += ` AND group_id = $2`
		args = append(args, *groupID)
	}
	query += ` ORDER BY display_name ASC, id ASC`

	var rows []participantRow
	if err := r.DB.SelectContext(ctx, &rows, query, args...); err != nil {
		logger.Error("ParticipantRepository:GetTeamParticipants", err)
		return nil, err
	}

	participants := make([]entity.Participant, 0, len(rows))
	for _, row := range rows {
		p := entity.Participant{
			ID:                row.ID.String(),
			DisplayName:       row.DisplayName,
			Timezone:          row.Timezone,
			WorkingHoursStart: row.WorkingHoursStart,
			WorkingHoursEnd:   row.WorkingHoursEnd,
		}
		if row.Title != nil {
			p.Title = *row.Title
		}
		if row.GroupID != nil {
			gid := row.GroupID.String()
			p.GroupID = &gid
		}
		participants = append(participants, p)
	}

	return participants, nil
}
