package services

import (
	"context"
	"time"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthService struct {
	db      Pinger
	timeout time.Duration
}

func NewHealthService(db Pinger) *HealthService {
	return &HealthService{db: db, timeout: 2 * time.Second}
}

// Get reports whether the database answers within the timeout.
func (s *HealthService) Get(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.db.Ping(ctx)
}
