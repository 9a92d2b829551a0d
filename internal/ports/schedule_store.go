package ports

import (
	"context"

	"delivery-scheduler/internal/domain"
)

// Port: a boundary for persisting the output of a completed run.
type ScheduleStore interface {
	// Store all delivery records and daily metrics of one schedule.
	SaveSchedule(ctx context.Context, s *domain.Schedule) error
}
