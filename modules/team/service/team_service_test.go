package service

import (
	"context"
	"strings"
	"testing"

	"collabtime-api/core/errors"
	"collabtime-api/modules/team/dto"
	"collabtime-api/modules/team/entity"
	"collabtime-api/modules/team/repository"

	"github.com/google/uuid"
	"github.com/matryer/is"
)

// fakeTeamRepo overrides only the methods a test needs; calling anything
// else panics through the embedded nil interface.
type fakeTeamRepo struct {
	repository.TeamRepositoryInterface

	teamsBySlug map[string]*entity.Team
	teamsByID   map[uuid.UUID]*entity.Team
	created     []*entity.Team
	members     []*entity.TeamMember
}

func (f *fakeTeamRepo) GetTeamBySlug(_ context.Context, s string) (*entity.Team, error) {
	return f.teamsBySlug[s], nil
}

func (f *fakeTeamRepo) GetTeamByID(_ context.Context, id uuid.UUID) (*entity.Team, error) {
	return f.teamsByID[id], nil
}

func (f *fakeTeamRepo) CreateTeam(_ context.Context, t *entity.Team) (*entity.Team, error) {
	t.ID = uuid.New()
	f.created = append(f.created, t)
	return t, nil
}

func (f *fakeTeamRepo) AddMember(_ context.Context, m *entity.TeamMember) (*entity.TeamMember, error) {
	m.ID = uuid.New()
	f.members = append(f.members, m)
	return m, nil
}

func TestCreateTeam(t *testing.T) {
	ownerID := uuid.New()

	t.Run("slugifies the team name", func(t *testing.T) {
		is := is.New(t)
		repo := &fakeTeamRepo{teamsBySlug: map[string]*entity.Team{}}
		svc := NewTeamService(repo)

		team, appErr := svc.CreateTeam(context.Background(), ownerID, &dto.CreateTeamRequest{Name: "Platform Infra Team"})
		is.True(appErr == nil)
		is.Equal(team.Slug, "platform-infra-team")
		is.Equal(team.OwnerID, ownerID)
	})

	t.Run("suffixes the slug on collision", func(t *testing.T) {
		is := is.New(t)
		repo := &fakeTeamRepo{teamsBySlug: map[string]*entity.Team{
			"design": {Name: "Design"},
		}}
		svc := NewTeamService(repo)

		team, appErr := svc.CreateTeam(context.Background(), ownerID, &dto.CreateTeamRequest{Name: "Design"})
		is.True(appErr == nil)
		is.True(team.Slug != "design")
		is.True(strings.HasPrefix(team.Slug, "design-"))
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		is := is.New(t)
		svc := NewTeamService(&fakeTeamRepo{})

		_, appErr := svc.CreateTeam(context.Background(), ownerID, &dto.CreateTeamRequest{Name: ""})
		is.True(appErr != nil)
		is.Equal(appErr.Code, errors.ErrInvalidInput)
	})
}

func TestAddMemberValidation(t *testing.T) {
	teamID := uuid.New()
	repo := &fakeTeamRepo{teamsByID: map[uuid.UUID]*entity.Team{
		teamID: {Name: "Core"},
	}}
	svc := NewTeamService(repo)

	valid := func() *dto.MemberRequest {
		return &dto.MemberRequest{
			DisplayName:       "Dana",
			Timezone:          "Europe/Berlin",
			WorkingHoursStart: 9,
			WorkingHoursEnd:   17,
		}
	}

	t.Run("accepts a valid member", func(t *testing.T) {
		is := is.New(t)
		m, appErr := svc.AddMember(context.Background(), teamID, valid())
		is.True(appErr == nil)
		is.Equal(m.Timezone, "Europe/Berlin")
	})

	t.Run("rejects an unknown timezone", func(t *testing.T) {
		is := is.New(t)
		req := valid()
		req.Timezone = "Mars/Olympus_Mons"
		_, appErr := svc.AddMember(context.Background(), teamID, req)
		is.True(appErr != nil)
		is.Equal(appErr.Code, errors.ErrInvalidTimezone)
	})

	t.Run("rejects out-of-range working hours", func(t *testing.T) {
		is := is.New(t)
		req := valid()
		req.WorkingHoursEnd = 24
		_, appErr := svc.AddMember(context.Background(), teamID, req)
		is.True(appErr != nil)
		is.Equal(appErr.Code, errors.ErrInvalidInput)
	})

	t.Run("allows a window that wraps midnight", func(t *testing.T) {
		is := is.New(t)
		req := valid()
		req.WorkingHoursStart = 22
		req.WorkingHoursEnd = 6
		m, appErr := svc.AddMember(context.Background(), teamID, req)
		is.True(appErr == nil)
		is.Equal(m.WorkingHoursStart, 22)
		is.Equal(m.WorkingHoursEnd, 6)
	})

	t.Run("rejects a missing display name", func(t *testing.T) {
		is := is.New(t)
		req := valid()
		req.DisplayName = ""
		_, appErr := svc.AddMember(context.Background(), teamID, req)
		is.True(appErr != nil)
		is.Equal(appErr.Code, errors.ErrInvalidInput)
	})

	t.Run("rejects an unknown team", func(t *testing.T) {
		is := is.New(t)
		_, appErr := svc.AddMember(context.Background(), uuid.New(), valid())
		is.True(appErr != nil)
		is.Equal(appErr.Code, errors.ErrNotFound)
	})
}
