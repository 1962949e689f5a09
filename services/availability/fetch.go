package availability

import (
	"context"
	"sync"
	"time"

	eventRepo "smartcal/database/repository/event"
	"smartcal/models"
	"smartcal/utils"

	"go.uber.org/zap"
)

const (
	// fetchConcurrency bounds the per-member calendar fan-out.
	fetchConcurrency = 4
	// memberFetchTimeout is the per-member deadline; a member that exceeds
	// it is treated as unavailable, not as a fatal error.
	memberFetchTimeout = 3 * time.Second
)

// CalendarStore is the collaborator that supplies raw calendar records for
// one member across a date range.
type CalendarStore interface {
	GetBusyEvents(ctx context.Context, memberID, startDate, endDate string) ([]models.Event, error)
}

// RepoCalendarStore adapts the event repository to the CalendarStore
// contract.
type RepoCalendarStore struct {
	Repo eventRepo.EventRepository
}

func (s *RepoCalendarStore) GetBusyEvents(ctx context.Context, memberID, startDate, endDate string) ([]models.Event, error) {
	return s.Repo.GetByUserAndRange(ctx, memberID, startDate, endDate)
}

// MemberFetchResult is the tagged outcome of one member's calendar fetch:
// either normalized intervals keyed by date, or the error that made the
// member's data unavailable. Representing failures as data lets partial
// aggregation compose without exception plumbing.
type MemberFetchResult struct {
	MemberID string
	ByDate   map[string][]models.BusyInterval
	Err      error
}

// fetchMemberIntervals fans out over the group with bounded concurrency and
// normalizes each member's records. The result slice preserves member order.
func fetchMemberIntervals(ctx context.Context, store CalendarStore, members []models.Member, startDate, endDate string) []MemberFetchResult {
	logger := utils.GetLogger()
	results := make([]MemberFetchResult, len(members))
	sem := make(chan struct{}, fetchConcurrency)

	// An event on the day before the range can spill busy time past
	// midnight onto the range's first date, so fetch from one day earlier.
	// Normalized intervals on out-of-range dates are ignored downstream.
	fetchStart := startDate
	if prev, err := utils.PrevDate(startDate); err == nil {
		fetchStart = prev
	}

	var wg sync.WaitGroup
	for i, member := range members {
		wg.Add(1)
		go func(i int, member models.Member) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			fetchCtx, cancel := context.WithTimeout(ctx, memberFetchTimeout)
			defer cancel()

			events, err := store.GetBusyEvents(fetchCtx, member.ID, fetchStart, endDate)
			if err != nil {
				logger.Warn("member calendar fetch failed; excluding member",
					zap.String("memberId", member.ID),
					zap.Error(err))
				results[i] = MemberFetchResult{MemberID: member.ID, Err: err}
				return
			}

			byDate, dropped := NormalizeEvents(member.ID, events)
			if dropped > 0 {
				logger.Warn("dropped invalid calendar records",
					zap.String("memberId", member.ID),
					zap.Int("dropped", dropped))
			}
			results[i] = MemberFetchResult{MemberID: member.ID, ByDate: byDate}
		}(i, member)
	}
	wg.Wait()

	return results
}
