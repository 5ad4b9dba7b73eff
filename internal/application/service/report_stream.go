package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// ReportStream fans out full dashboard snapshots to live subscribers.
// Each publish replaces whatever a slow subscriber has not yet consumed;
// consumers always see the latest state, never a backlog of deltas.
type ReportStream struct {
	mu        sync.Mutex
	subs      map[uuid.UUID]chan DashboardStats
	dashboard *DashboardService
}

// NewReportStream creates a new report stream
func NewReportStream(dashboard *DashboardService) *ReportStream {
	return &ReportStream{
		subs:      make(map[uuid.UUID]chan DashboardStats),
		dashboard: dashboard,
	}
}

// Subscribe registers a new listener and returns its channel together with a
// cancel function. The channel is closed on cancel.
func (s *ReportStream) Subscribe() (<-chan DashboardStats, func()) {
	ch := make(chan DashboardStats, 1)
	id := uuid.New()

	s.mu.Lock()
	s.subs[id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// NotifyChange recomputes the dashboard snapshot and pushes it to every
// subscriber. A stale undelivered snapshot is discarded first so the send
// never blocks the committing request.
func (s *ReportStream) NotifyChange(ctx context.Context) {
	if s == nil {
		return
	}

	stats, err := s.dashboard.GetStats(ctx)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- *stats:
		default:
		}
	}
}
