package rates

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"
)

// ErrNoSnapshot is returned when no rate table has been fetched yet
var ErrNoSnapshot = errors.New("no rates fetched yet")

// Config represents the configuration for the rates service
type Config struct {
	// Schedule in cron format (e.g. "0 * * * *" for every hour)
	Schedule string
	// Enabled determines if the service should refresh on schedule
	Enabled bool
	// BaseURL overrides the upstream endpoint, mainly for tests
	BaseURL string
}

// Service caches the most recent rate table and refreshes it on a schedule
type Service struct {
	client *Client
	config Config
	cron   *cron.Cron

	mu   sync.RWMutex
	snap *Snapshot
}

// NewService creates a new rates service
func NewService(config Config) *Service {
	// Cron scheduler with seconds disabled
	c := cron.New(cron.WithParser(cron.NewParser(
		cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
	)))

	return &Service{
		client: NewClient(config.BaseURL),
		config: config,
		cron:   c,
	}
}

// Refresh fetches the rate table now and replaces the cached snapshot
func (s *Service) Refresh(ctx context.Context) (*Snapshot, error) {
	snap, err := s.client.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	return snap, nil
}

// Latest returns the most recently fetched rate table
func (s *Service) Latest() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snap == nil {
		return nil, ErrNoSnapshot
	}
	return s.snap, nil
}

// Start performs an initial fetch and starts the scheduled refresh.
// A failed initial fetch is logged, not fatal; the next scheduled run retries.
func (s *Service) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.Println("Rates refresh is disabled, skipping scheduler")
		return nil
	}

	if s.config.Schedule == "" {
		return fmt.Errorf("rates service has no schedule configured")
	}

	if _, err := s.Refresh(ctx); err != nil {
		log.Printf("Initial rates fetch failed: %v", err)
	}

	_, err := s.cron.AddFunc(s.config.Schedule, func() {
		if _, err := s.Refresh(context.Background()); err != nil {
			log.Printf("Error refreshing rates: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule rates refresh: %w", err)
	}

	s.cron.Start()
	log.Printf("Scheduled rates refresh with schedule %s", s.config.Schedule)
	return nil
}

// Stop halts the scheduled refresh
func (s *Service) Stop() {
	s.cron.Stop()
}
