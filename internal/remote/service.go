package remote

import (
	"context"
	"log"
	"sync"
	"time"

	"localjobs-engine/internal/domain"
)

// Service keeps a cached snapshot of remote job summaries so listing requests
// never wait on the network. Refresh runs the fetchers; every failure is
// swallowed here, leaving the previous snapshot (possibly empty) in place.
type Service struct {
	mu     sync.Mutex
	cached []domain.Job
	status Status
}

func NewService() *Service {
	return &Service{}
}

// Refresh fetches every source sequentially. Fetchers are passed per call so
// a config reload takes effect on the next refresh. Sources are independent:
// one failing does not stop the others, its jobs are just absent this round.
func (s *Service) Refresh(ctx context.Context, fetchers ...Fetcher) {
	s.mu.Lock()
	s.status.Running = true
	s.status.LastRunAt = time.Now().Format(time.RFC3339)
	s.mu.Unlock()

	var jobs []domain.Job
	var lastErr string
	for _, f := range fetchers {
		got, err := f.Fetch(ctx)
		if err != nil {
			log.Printf("[remote:%s] fetch error: %v", f.Name(), err)
			lastErr = err.Error()
			continue
		}
		jobs = append(jobs, got...)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = jobs
	s.status.Running = false
	s.status.LastAdded = len(jobs)
	s.status.LastError = lastErr
	if lastErr == "" {
		s.status.LastOkAt = time.Now().Format(time.RFC3339)
	}
}

// Snapshot returns the cached remote jobs. The slice is a copy; callers may
// merge and reorder it freely.
func (s *Service) Snapshot() []domain.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Job(nil), s.cached...)
}

func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}
