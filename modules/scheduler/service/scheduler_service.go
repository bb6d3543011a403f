package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"collabtime-api/core/cache"
	"collabtime-api/core/constants"
	"collabtime-api/core/errors"
	"collabtime-api/core/logger"
	"collabtime-api/modules/scheduler/dto"
	"collabtime-api/modules/scheduler/entity"
	"collabtime-api/modules/scheduler/repository"

	"github.com/google/uuid"
)

// SchedulerService loads participants, runs the slot finder, and memoizes
// results in redis for the short window during which UTC offsets cannot
// have changed.
type SchedulerService struct {
	repo   repository.ParticipantRepositoryInterface
	cache  cache.ICache
	finder *SlotFinder
}

// SchedulerServiceInterface defines the service contract
type SchedulerServiceInterface interface {
	FindSlots(ctx context.Context, teamID uuid.UUID, req *dto.FindSlotsRequest) (*dto.FindSlotsResponse, *errors.AppError)
	TeamStatus(ctx context.Context, teamID uuid.UUID, viewerTz string) (*dto.TeamStatusResponse, *errors.AppError)
}

// NewSchedulerService creates a new scheduler service
func NewSchedulerService(repo repository.ParticipantRepositoryInterface, c cache.ICache) SchedulerServiceInterface {
	return &SchedulerService{
		repo:   repo,
		cache:  c,
		finder: NewSlotFinder(),
	}
}

// FindSlots runs the slot finder for a team
func (s *SchedulerService) FindSlots(ctx context.Context, teamID uuid.UUID, req *dto.FindSlotsRequest) (*dto.FindSlotsResponse, *errors.AppError) {
	var groupID *uuid.UUID
	if req.GroupID != "" {
		gid, err := uuid.Parse(req.GroupID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid group id", err)
		}
		groupID = &gid
	}

	participants, err := s.repo.GetTeamParticipants(ctx, teamID, groupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load team members", err)
	}

	opts := entity.FinderOptions{
		Participants:   participants,
		ViewerTimezone: req.ViewerTimezone,
		MinDuration:    req.MinDuration,
		MaxDuration:    req.MaxDuration,
		AllowFlexHours: req.AllowFlexHours,
		FlexRange:      req.FlexRange,
	}

	cacheKey := s.cacheKey(teamID, opts)
	if s.cache != nil {
		var cached entity.FinderResult
		hit, err := s.cache.GetJSON(ctx, cacheKey, &cached)
		if err != nil {
			logger.Warn("SchedulerService:FindSlots:cache get failed", "error", err)
		}
		if hit {
			return dto.ToFindSlotsResponse(teamID.String(), &cached), nil
		}
	}

	result, appErr := s.finder.FindMeetingSlots(opts)
	if appErr != nil {
		return nil, appErr
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cacheKey, result, constants.SlotCacheTTLSeconds*time.Second); err != nil {
			logger.Warn("SchedulerService:FindSlots:cache set failed", "error", err)
		}
	}

	return dto.ToFindSlotsResponse(teamID.String(), result), nil
}

// cacheKey hashes the participant set and options together with the current
// half-hour bucket; offsets cannot change inside one bucket, so a cached
// result stays valid for the bucket's lifetime.
func (s *SchedulerService) cacheKey(teamID uuid.UUID, opts entity.FinderOptions) string {
	bucket := s.finder.Clock().UTC().Truncate(30 * time.Minute).Unix()
	raw, _ := json.Marshal(opts)
	sum := sha256.Sum256(raw)
	return fmt.Sprintf("%s%s:%d:%s", constants.RedisKeySlotResult, teamID, bucket, hex.EncodeToString(sum[:8]))
}

// TeamStatus classifies every member of a team as working, starting soon,
// ending soon, or off, in the viewer's frame of reference
func (s *SchedulerService) TeamStatus(ctx context.Context, teamID uuid.UUID, viewerTz string) (*dto.TeamStatusResponse, *errors.AppError) {
	if viewerTz == "" {
		viewerTz = "UTC"
	}

	participants, err := s.repo.GetTeamParticipants(ctx, teamID, nil)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load team members", err)
	}

	now := s.finder.Clock()
	members := make([]entity.MemberStatus, 0, len(participants))
	for _, p := range participants {
		status, appErr := MemberStatusAt(now, p, viewerTz)
		if appErr != nil {
			return nil, appErr
		}
		members = append(members, *status)
	}

	return &dto.TeamStatusResponse{
		TeamID:         teamID.String(),
		ViewerTimezone: viewerTz,
		Members:        members,
	}, nil
}
