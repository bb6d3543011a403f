package service

import (
	"context"
	"fmt"
	"time"

	"collabtime-api/core/errors"
	"collabtime-api/core/utils"
	"collabtime-api/modules/team/dto"
	"collabtime-api/modules/team/entity"
	"collabtime-api/modules/team/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// TeamService handles team business logic
type TeamService struct {
	repo repository.TeamRepositoryInterface
}

// TeamServiceInterface defines the service contract
type TeamServiceInterface interface {
	CreateTeam(ctx context.Context, ownerID uuid.UUID, req *dto.CreateTeamRequest) (*dto.TeamResponse, *errors.AppError)
	GetTeamByID(ctx context.Context, id uuid.UUID) (*dto.TeamResponse, *errors.AppError)
	GetMyTeams(ctx context.Context, ownerID uuid.UUID) ([]dto.TeamResponse, *errors.AppError)
	UpdateTeam(ctx context.Context, teamID, ownerID uuid.UUID, req *dto.UpdateTeamRequest) (*dto.TeamResponse, *errors.AppError)
	DeleteTeam(ctx context.Context, teamID, ownerID uuid.UUID) *errors.AppError

	AddMember(ctx context.Context, teamID uuid.UUID, req *dto.MemberRequest) (*dto.MemberResponse, *errors.AppError)
	GetMembers(ctx context.Context, teamID uuid.UUID) ([]dto.MemberResponse, *errors.AppError)
	UpdateMember(ctx context.Context, memberID uuid.UUID, req *dto.MemberRequest) (*dto.MemberResponse, *errors.AppError)
	RemoveMember(ctx context.Context, memberID uuid.UUID) *errors.AppError

	CreateGroup(ctx context.Context, teamID uuid.UUID, req *dto.GroupRequest) (*dto.GroupResponse, *errors.AppError)
	GetGroups(ctx context.Context, teamID uuid.UUID) ([]dto.GroupResponse, *errors.AppError)
	DeleteGroup(ctx context.Context, groupID uuid.UUID) *errors.AppError
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface) TeamServiceInterface {
	return &TeamService{repo: repo}
}

// validateMember checks the timezone against the IANA catalog and the
// working hours against [0,23] before anything is stored; the scheduler
// relies on this being done up front.
func validateMember(req *dto.MemberRequest) *errors.AppError {
	if req.DisplayName == "" {
		return errors.NewAppError(errors.ErrInvalidInput, "display name is required", nil)
	}
	if _, err := time.LoadLocation(req.Timezone); err != nil || req.Timezone == "" {
		return errors.NewAppError(errors.ErrInvalidTimezone, fmt.Sprintf("unknown timezone %q", req.Timezone), err)
	}
	if req.WorkingHoursStart < 0 || req.WorkingHoursStart > 23 ||
		req.WorkingHoursEnd < 0 || req.WorkingHoursEnd > 23 {
		return errors.NewAppError(errors.ErrInvalidInput, "working hours must be within [0,23]", nil)
	}
	return nil
}

// CreateTeam creates a team with a unique subdomain slug
func (s *TeamService) CreateTeam(ctx context.Context, ownerID uuid.UUID, req *dto.CreateTeamRequest) (*dto.TeamResponse, *errors.AppError) {
	if req.Name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "team name is required", nil)
	}

	teamSlug := slug.Make(req.Name)
	existing, err := s.repo.GetTeamBySlug(ctx, teamSlug)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check team slug", err)
	}
	if existing != nil {
		teamSlug = fmt.Sprintf("%s-%s", teamSlug, utils.GenerateID())
	}

	team := &entity.Team{
		Name:    req.Name,
		Slug:    teamSlug,
		OwnerID: ownerID,
	}

	created, err := s.repo.CreateTeam(ctx, team)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create team", err)
	}

	return dto.ToTeamResponse(created), nil
}

// GetTeamByID retrieves a team by ID
func (s *TeamService) GetTeamByID(ctx context.Context, id uuid.UUID) (*dto.TeamResponse, *errors.AppError) {
	team, err := s.repo.GetTeamByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get team", err)
	}
	if team == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "team not found", nil)
	}

	return dto.ToTeamResponse(team), nil
}

// GetMyTeams retrieves all teams owned by a user
func (s *TeamService) GetMyTeams(ctx context.Context, ownerID uuid.UUID) ([]dto.TeamResponse, *errors.AppError) {
	teams, err := s.repo.GetTeamsByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get teams", err)
	}

	result := make([]dto.TeamResponse, 0, len(teams))
	for _, t := range teams {
		result = append(result, *dto.ToTeamResponse(&t))
	}

	return result, nil
}

// UpdateTeam updates team details
func (s *TeamService) UpdateTeam(ctx context.Context, teamID, ownerID uuid.UUID, req *dto.UpdateTeamRequest) (*dto.TeamResponse, *errors.AppError) {
	team, err := s.repo.GetTeamByID(ctx, teamID)
	if err != nil || team == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "team not found", err)
	}

	if team.OwnerID != ownerID {
		return nil, errors.NewAppError(errors.ErrForbidden, "not authorized", nil)
	}

	if req.Name != "" && req.Name != team.Name {
		team.Name = req.Name
		team.Slug = slug.Make(req.Name)
	}

	if err := s.repo.UpdateTeam(ctx, team); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update team", err)
	}

	return s.GetTeamByID(ctx, teamID)
}

// DeleteTeam deletes a team
func (s *TeamService) DeleteTeam(ctx context.Context, teamID, ownerID uuid.UUID) *errors.AppError {
	team, err := s.repo.GetTeamByID(ctx, teamID)
	if err != nil || team == nil {
		return errors.NewAppError(errors.ErrNotFound, "team not found", err)
	}

	if team.OwnerID != ownerID {
		return errors.NewAppError(errors.ErrForbidden, "not authorized", nil)
	}

	if err := s.repo.DeleteTeam(ctx, teamID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete team", err)
	}

	return nil
}

// AddMember adds a member to a team
func (s *TeamService) AddMember(ctx context.Context, teamID uuid.UUID, req *dto.MemberRequest) (*dto.MemberResponse, *errors.AppError) {
	if appErr := validateMember(req); appErr != nil {
		return nil, appErr
	}

	team, err := s.repo.GetTeamByID(ctx, teamID)
	if err != nil || team == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "team not found", err)
	}

	member := &entity.TeamMember{
		TeamID:            teamID,
		DisplayName:       req.DisplayName,
		Timezone:          req.Timezone,
		WorkingHoursStart: req.WorkingHoursStart,
		WorkingHoursEnd:   req.WorkingHoursEnd,
	}
	if req.Title != "" {
		member.Title = &req.Title
	}
	if req.GroupID != "" {
		gid, parseErr := uuid.Parse(req.GroupID)
		if parseErr != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid group id", parseErr)
		}
		member.GroupID = &gid
	}

	created, err := s.repo.AddMember(ctx, member)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to add member", err)
	}

	return dto.ToMemberResponse(created), nil
}

// GetMembers lists a team's members
func (s *TeamService) GetMembers(ctx context.Context, teamID uuid.UUID) ([]dto.MemberResponse, *errors.AppError) {
	members, err := s.repo.GetMembersByTeamID(ctx, teamID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get members", err)
	}

	result := make([]dto.MemberResponse, 0, len(members))
	for _, m := range members {
		result = append(result, *dto.ToMemberResponse(&m))
	}

	return result, nil
}

// UpdateMember updates a member's profile and schedule fields
func (s *TeamService) UpdateMember(ctx context.Context, memberID uuid.UUID, req *dto.MemberRequest) (*dto.MemberResponse, *errors.AppError) {
	if appErr := validateMember(req); appErr != nil {
		return nil, appErr
	}

	member, err := s.repo.GetMemberByID(ctx, memberID)
	if err != nil || member == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "member not found", err)
	}

	member.DisplayName = req.DisplayName
	member.Timezone = req.Timezone
	member.WorkingHoursStart = req.WorkingHoursStart
	member.WorkingHoursEnd = req.WorkingHoursEnd
	if req.Title != "" {
		member.Title = &req.Title
	}
	if req.GroupID != "" {
		gid, parseErr := uuid.Parse(req.GroupID)
		if parseErr != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid group id", parseErr)
		}
		member.GroupID = &gid
	} else {
		member.GroupID = nil
	}

	if err := s.repo.UpdateMember(ctx, member); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update member", err)
	}

	return dto.ToMemberResponse(member), nil
}

// RemoveMember removes a member from their team
func (s *TeamService) RemoveMember(ctx context.Context, memberID uuid.UUID) *errors.AppError {
	member, err := s.repo.GetMemberByID(ctx, memberID)
	if err != nil || member == nil {
		return errors.NewAppError(errors.ErrNotFound, "member not found", err)
	}

	if err := s.repo.RemoveMember(ctx, memberID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to remove member", err)
	}

	return nil
}

// CreateGroup creates a member group within a team
func (s *TeamService) CreateGroup(ctx context.Context, teamID uuid.UUID, req *dto.GroupRequest) (*dto.GroupResponse, *errors.AppError) {
	if req.Name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "group name is required", nil)
	}

	team, err := s.repo.GetTeamByID(ctx, teamID)
	if err != nil || team == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "team not found", err)
	}

	group, err := s.repo.CreateGroup(ctx, &entity.MemberGroup{TeamID: teamID, Name: req.Name})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create group", err)
	}

	return dto.ToGroupResponse(group), nil
}

// GetGroups lists a team's member groups
func (s *TeamService) GetGroups(ctx context.Context, teamID uuid.UUID) ([]dto.GroupResponse, *errors.AppError) {
	groups, err := s.repo.GetGroupsByTeamID(ctx, teamID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get groups", err)
	}

	result := make([]dto.GroupResponse, 0, len(groups))
	for _, g := range groups {
		result = append(result, *dto.ToGroupResponse(&g))
	}

	return result, nil
}

// DeleteGroup deletes a member group
func (s *TeamService) DeleteGroup(ctx context.Context, groupID uuid.UUID) *errors.AppError {
	if err := s.repo.DeleteGroup(ctx, groupID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete group", err)
	}
	return nil
}
