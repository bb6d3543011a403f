package service

import (
	"context"
	"testing"
	"time"

	"collabtime-api/core/errors"
	"collabtime-api/modules/invitation/dto"
	"collabtime-api/modules/invitation/entity"
	"collabtime-api/modules/invitation/repository"
	teamEntity "collabtime-api/modules/team/entity"
	teamRepository "collabtime-api/modules/team/repository"

	"github.com/google/uuid"
	"github.com/matryer/is"
)

type fakeInvitationRepo struct {
	repository.InvitationRepositoryInterface

	byCode  map[string]*entity.Invitation
	byID    map[uuid.UUID]*entity.Invitation
	pending map[string]*entity.Invitation
	updates map[uuid.UUID]entity.InvitationStatus
}

func (f *fakeInvitationRepo) GetInvitationByCode(_ context.Context, code string) (*entity.Invitation, error) {
	return f.byCode[code], nil
}

func (f *fakeInvitationRepo) GetInvitationByID(_ context.Context, id uuid.UUID) (*entity.Invitation, error) {
	return f.byID[id], nil
}

func (f *fakeInvitationRepo) GetPendingInvitation(_ context.Context, _ uuid.UUID, email string) (*entity.Invitation, error) {
	return f.pending[email], nil
}

func (f *fakeInvitationRepo) UpdateInvitationStatus(_ context.Context, id uuid.UUID, status entity.InvitationStatus) error {
	if f.updates == nil {
		f.updates = map[uuid.UUID]entity.InvitationStatus{}
	}
	f.updates[id] = status
	return nil
}

type fakeTeamRepo struct {
	teamRepository.TeamRepositoryInterface

	teams   map[uuid.UUID]*teamEntity.Team
	members []*teamEntity.TeamMember
}

func (f *fakeTeamRepo) GetTeamByID(_ context.Context, id uuid.UUID) (*teamEntity.Team, error) {
	return f.teams[id], nil
}

func (f *fakeTeamRepo) AddMember(_ context.Context, m *teamEntity.TeamMember) (*teamEntity.TeamMember, error) {
	m.ID = uuid.New()
	f.members = append(f.members, m)
	return m, nil
}

func pendingInvitation(teamID uuid.UUID, email, code string) *entity.Invitation {
	inv := &entity.Invitation{
		TeamID:    teamID,
		Email:     email,
		Code:      code,
		Status:    entity.InvitationPending,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	inv.ID = uuid.New()
	return inv
}

func TestCreateInvitationGuards(t *testing.T) {
	ownerID := uuid.New()
	teamID := uuid.New()
	teams := &fakeTeamRepo{teams: map[uuid.UUID]*teamEntity.Team{
		teamID: {Name: "Core", OwnerID: ownerID},
	}}

	t.Run("only the owner can invite", func(t *testing.T) {
		is := is.New(t)
		svc := NewInvitationService(&fakeInvitationRepo{}, teams, nil)

		_, appErr := svc.CreateInvitation(context.Background(), uuid.New(), teamID, &dto.CreateInvitationRequest{Email: "x@example.com"})
		is.True(appErr != nil)
		is.Equal(appErr.Code, errors.ErrForbidden)
	})

	t.Run("unknown team", func(t *testing.T) {
		is := is.New(t)
		svc := NewInvitationService(&fakeInvitationRepo{}, teams, nil)

		_, appErr := svc.CreateInvitation(context.Background(), ownerID, uuid.New(), &dto.CreateInvitationRequest{Email: "x@example.com"})
		is.True(appErr != nil)
		is.Equal(appErr.Code, errors.ErrNotFound)
	})

	t.Run("duplicate pending invitation", func(t *testing.T) {
		is := is.New(t)
		repo := &fakeInvitationRepo{pending: map[string]*entity.Invitation{
			"x@example.com": pendingInvitation(teamID, "x@example.com", "abc"),
		}}
		svc := NewInvitationService(repo, teams, nil)

		_, appErr := svc.CreateInvitation(context.Background(), ownerID, teamID, &dto.CreateInvitationRequest{Email: "x@example.com"})
		is.True(appErr != nil)
		is.Equal(appErr.Code, errors.ErrAlreadyExists)
	})
}

func TestAcceptInvitation(t *testing.T) {
	teamID := uuid.New()
	userID := uuid.New()

	profile := func() *dto.AcceptInvitationRequest {
		return &dto.AcceptInvitationRequest{
			DisplayName:       "Sam",
			Timezone:          "America/New_York",
			WorkingHoursStart: 9,
			WorkingHoursEnd:   17,
		}
	}

	t.Run("joins the team and marks the invitation accepted", func(t *testing.T) {
		is := is.New(t)
		inv := pendingInvitation(teamID, "sam@example.com", "join-me")
		repo := &fakeInvitationRepo{byCode: map[string]*entity.Invitation{"join-me": inv}}
		teams := &fakeTeamRepo{}
		svc := NewInvitationService(repo, teams, nil)

		resp, appErr := svc.AcceptInvitation(context.Background(), userID, "sam@example.com", "join-me", profile())
		is.True(appErr == nil)
		is.Equal(resp.Status, entity.InvitationAccepted)
		is.Equal(repo.updates[inv.ID], entity.InvitationAccepted)

		is.Equal(len(teams.members), 1)
		member := teams.members[0]
		is.Equal(member.TeamID, teamID)
		is.Equal(*member.UserID, userID)
		is.Equal(member.Timezone, "America/New_York")
	})

	t.Run("unknown code", func(t *testing.T) {
		is := is.New(t)
		svc := NewInvitationService(&fakeInvitationRepo{}, &fakeTeamRepo{}, nil)

		_, appErr := svc.AcceptInvitation(context.Background(), userID, "sam@example.com", "nope", profile())
		is.True(appErr != nil)
		is.Equal(appErr.Code, errors.ErrNotFound)
	})

	t.Run("expired invitation", func(t *testing.T) {
		is := is.New(t)
		inv := pendingInvitation(teamID, "sam@example.com", "stale")
		inv.ExpiresAt = time.Now().Add(-time.Hour)
		repo := &fakeInvitationRepo{byCode: map[string]*entity.Invitation{"stale": inv}}
		svc := NewInvitationService(repo, &fakeTeamRepo{}, nil)

		_, appErr := svc.AcceptInvitation(context.Background(), userID, "sam@example.com", "stale", profile())
		is.True(appErr != nil)
		is.Equal(appErr.Code, errors.ErrInvalidInput)
	})

	t.Run("wrong email", func(t *testing.T) {
		is := is.New(t)
		inv := pendingInvitation(teamID, "sam@example.com", "join-me")
		repo := &fakeInvitationRepo{byCode: map[string]*entity.Invitation{"join-me": inv}}
		svc := NewInvitationService(repo, &fakeTeamRepo{}, nil)

		_, appErr := svc.AcceptInvitation(context.Background(), userID, "other@example.com", "join-me", profile())
		is.True(appErr != nil)
		is.Equal(appErr.Code, errors.ErrForbidden)
	})

	t.Run("already accepted", func(t *testing.T) {
		is := is.New(t)
		inv := pendingInvitation(teamID, "sam@example.com", "used")
		inv.Status = entity.InvitationAccepted
		repo := &fakeInvitationRepo{byCode: map[string]*entity.Invitation{"used": inv}}
		svc := NewInvitationService(repo, &fakeTeamRepo{}, nil)

		_, appErr := svc.AcceptInvitation(context.Background(), userID, "sam@example.com", "used", profile())
		is.True(appErr != nil)
		is.Equal(appErr.Code, errors.ErrNotFound)
	})

	t.Run("invalid timezone in profile", func(t *testing.T) {
		is := is.New(t)
		inv := pendingInvitation(teamID, "sam@example.com", "join-me")
		repo := &fakeInvitationRepo{byCode: map[string]*entity.Invitation{"join-me": inv}}
		svc := NewInvitationService(repo, &fakeTeamRepo{}, nil)

		req := profile()
		req.Timezone = "Not/AZone"
		_, appErr := svc.AcceptInvitation(context.Background(), userID, "sam@example.com", "join-me", req)
		is.True(appErr != nil)
		is.Equal(appErr.Code, errors.ErrInvalidTimezone)
	})
}

func TestRevokeInvitation(t *testing.T) {
	ownerID := uuid.New()
	teamID := uuid.New()
	teams := &fakeTeamRepo{teams: map[uuid.UUID]*teamEntity.Team{
		teamID: {Name: "Core", OwnerID: ownerID},
	}}

	t.Run("owner revokes a pending invitation", func(t *testing.T) {
		is := is.New(t)
		inv := pendingInvitation(teamID, "sam@example.com", "join-me")
		repo := &fakeInvitationRepo{byID: map[uuid.UUID]*entity.Invitation{inv.ID: inv}}
		svc := NewInvitationService(repo, teams, nil)

		appErr := svc.RevokeInvitation(context.Background(), ownerID, inv.ID)
		is.True(appErr == nil)
		is.Equal(repo.updates[inv.ID], entity.InvitationRevoked)
	})

	t.Run("non-owner cannot revoke", func(t *testing.T) {
		is := is.New(t)
		inv := pendingInvitation(teamID, "sam@example.com", "join-me")
		repo := &fakeInvitationRepo{byID: map[uuid.UUID]*entity.Invitation{inv.ID: inv}}
		svc := NewInvitationService(repo, teams, nil)

		appErr := svc.RevokeInvitation(context.Background(), uuid.New(), inv.ID)
		is.True(appErr != nil)
		is.Equal(appErr.Code, errors.ErrForbidden)
	})

	t.Run("accepted invitations cannot be revoked", func(t *testing.T) {
		is := is.New(t)
		inv := pendingInvitation(teamID, "sam@example.com", "join-me")
		inv.Status = entity.InvitationAccepted
		repo := &fakeInvitationRepo{byID: map[uuid.UUID]*entity.Invitation{inv.ID: inv}}
		svc := NewInvitationService(repo, teams, nil)

		appErr := svc.RevokeInvitation(context.Background(), ownerID, inv.ID)
		is.True(appErr != nil)
		is.Equal(appErr.Code, errors.ErrInvalidInput)
	})
}
