package planner

import (
	"context"
	"fmt"

	"smartcal/models"
	"smartcal/services/availability"
	"smartcal/services/places"
	"smartcal/utils"

	"go.uber.org/zap"
)

// MeetingPlanner glues the recommendation engine to venue lookup: the caller
// picks one recommended window and gets it back enriched with places to meet.
type MeetingPlanner interface {
	PlanMeeting(ctx context.Context, groupID string, in models.PlanMeetingInput) (*models.MeetingPlan, error)
}

// DefaultMeetingPlanner is the production implementation.
type DefaultMeetingPlanner struct {
	avail  availability.GroupAvailabilityService
	venues places.VenueFinder // nil disables venue lookup
}

func NewDefaultMeetingPlanner(avail availability.GroupAvailabilityService, venues places.VenueFinder) *DefaultMeetingPlanner {
	return &DefaultMeetingPlanner{avail: avail, venues: venues}
}

// PlanMeeting re-runs the recommendation query for the chosen date and
// selects the window matching the input. Venue lookup is best effort; a
// failure leaves the plan without venues instead of failing the request.
func (p *DefaultMeetingPlanner) PlanMeeting(ctx context.Context, groupID string, in models.PlanMeetingInput) (*models.MeetingPlan, error) {
	set, err := p.avail.GetRecommendations(ctx, groupID, in.Date, in.Date, 0)
	if err != nil {
		return nil, err
	}

	var chosen *models.Recommendation
	for i := range set.Recommendations {
		rec := &set.Recommendations[i]
		if rec.Date == in.Date && rec.StartTime == in.StartTime {
			chosen = rec
			break
		}
	}
	if chosen == nil {
		return nil, fmt.Errorf("no recommended window on %s starting %s", in.Date, in.StartTime)
	}

	plan := &models.MeetingPlan{Slot: *chosen}
	if p.venues != nil && (in.Latitude != 0 || in.Longitude != 0) {
		venues, err := p.venues.Nearby(ctx, in.Latitude, in.Longitude, in.Keyword)
		if err != nil {
			utils.GetLogger().Warn("venue lookup failed",
				zap.String("groupId", groupID),
				zap.Error(err))
		} else {
			plan.Venues = venues
		}
	}
	return plan, nil
}
