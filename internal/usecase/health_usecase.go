package usecase

import (
	"context"
	"time"
)

type HealthStatus struct {
	Status    string
	Message   string
	Timestamp time.Time
	Uptime    time.Duration
}

type HealthUsecase interface {
	Check(ctx context.Context) HealthStatus
}

type healthUsecase struct {
	startedAt time.Time
}

// NewHealthUsecase records the process start. Uptime is measured on the monotonic clock.
func NewHealthUsecase() HealthUsecase {
	return &healthUsecase{startedAt: time.Now()}
}

func (u *healthUsecase) Check(ctx context.Context) HealthStatus {
	now := time.Now()
	return HealthStatus{
		Status:    "OK",
		Message:   "Portfolio backend server is running",
		Timestamp: now,
		Uptime:    now.Sub(u.startedAt),
	}
}
