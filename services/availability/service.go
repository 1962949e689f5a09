package availability

import (
	"context"
	"fmt"
	"time"

	groupRepo "smartcal/database/repository/group"
	userRepo "smartcal/database/repository/user"
	"smartcal/models"
	"smartcal/utils"

	"go.uber.org/zap"
)

// GroupAvailabilityService is the contract the rest of the application (and
// the meeting planner) consumes. The engine is a pure, request-scoped
// computation over data fetched from the calendar store; it persists and
// caches nothing of its own, so a single instance is safe for concurrent
// requests.
type GroupAvailabilityService interface {
	GetGroupAvailability(ctx context.Context, groupID, startDate, endDate string) (*models.GroupAvailability, error)
	GetRecommendations(ctx context.Context, groupID, startDate, endDate string, targetDuration int) (*models.RecommendationSet, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	GroupRepo groupRepo.GroupRepository
	UserRepo  userRepo.UserRepository
	Store     CalendarStore
	Settings  Settings
	Now       func() time.Time // overridable for tests
}

func NewDefaultAvailabilityService(groups groupRepo.GroupRepository, users userRepo.UserRepository, store CalendarStore) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		GroupRepo: groups,
		UserRepo:  users,
		Store:     store,
		Settings:  DefaultSettings(),
		Now:       time.Now,
	}
}

// GetGroupAvailability computes the classified slots for the group over the
// requested range. EmptyGroup and RangeTooLarge are request failures; a
// failed member fetch degrades the result to partial instead.
func (svc *DefaultAvailabilityService) GetGroupAvailability(ctx context.Context, groupID, startDate, endDate string) (*models.GroupAvailability, error) {
	start, end, dates, err := svc.resolveRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	members, err := svc.resolveMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	results := fetchMemberIntervals(ctx, svc.Store, members, start, end)
	slots, partial, unavailable := AggregateRange(dates, results, svc.Settings)
	if slots == nil {
		slots = []models.AvailableSlot{}
	}

	if partial {
		utils.GetLogger().Warn("availability computed from partial data",
			zap.String("groupId", groupID),
			zap.Strings("unavailableMembers", unavailable))
	}

	return &models.GroupAvailability{
		Slots:              slots,
		DateRange:          models.DateRange{Start: start, End: end},
		Partial:            partial,
		UnavailableMembers: unavailable,
	}, nil
}

// GetRecommendations ranks the group's slots into best/alternative tiers.
func (svc *DefaultAvailabilityService) GetRecommendations(ctx context.Context, groupID, startDate, endDate string, targetDuration int) (*models.RecommendationSet, error) {
	avail, err := svc.GetGroupAvailability(ctx, groupID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	set := Recommend(avail.Slots, targetDuration, svc.Now(), svc.Settings)
	set.Partial = avail.Partial
	return &set, nil
}

// resolveRange applies defaults (today through today+DefaultRangeDays) and
// validates the requested window against the configured cap.
func (svc *DefaultAvailabilityService) resolveRange(startDate, endDate string) (string, string, []string, error) {
	now := svc.Now()
	if startDate == "" {
		startDate = now.Format(utils.DateLayout)
	}
	if endDate == "" {
		t, err := utils.ParseDate(startDate)
		if err != nil {
			return "", "", nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
		}
		endDate = t.AddDate(0, 0, svc.Settings.DefaultRangeDays).Format(utils.DateLayout)
	}

	from, err := utils.ParseDate(startDate)
	if err != nil {
		return "", "", nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	to, err := utils.ParseDate(endDate)
	if err != nil {
		return "", "", nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	if to.Before(from) {
		return "", "", nil, fmt.Errorf("%w: end %s before start %s", ErrInvalidRange, endDate, startDate)
	}
	if days := int(to.Sub(from).Hours()/24) + 1; days > svc.Settings.MaxRangeDays {
		return "", "", nil, fmt.Errorf("%w: %d days requested, maximum %d", ErrRangeTooLarge, days, svc.Settings.MaxRangeDays)
	}

	dates, err := utils.DatesBetween(startDate, endDate)
	if err != nil {
		return "", "", nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	return startDate, endDate, dates, nil
}

// resolveMembers loads the group and turns its member IDs into the identity
// view the engine consumes.
func (svc *DefaultAvailabilityService) resolveMembers(ctx context.Context, groupID string) ([]models.Member, error) {
	group, err := svc.GroupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, groupID)
	}
	if len(group.MemberIDs) == 0 {
		return nil, ErrEmptyGroup
	}

	members, err := svc.UserRepo.GetMembers(ctx, group.MemberIDs)
	if err != nil {
		return nil, fmt.Errorf("resolving group members: %w", err)
	}
	if len(members) == 0 {
		return nil, ErrEmptyGroup
	}
	return members, nil
}
