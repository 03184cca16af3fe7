package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"med-schedule/internal/domain/schedule"
)

// scheduleRepo guarda el calendario activo de cada usuario solo en memoria:
// las dosis no sobreviven un reinicio, a propósito (ver dominio schedule).
type scheduleRepo struct {
	mu      sync.RWMutex
	byOwner map[string]schedule.Schedule
}

func NewScheduleRepo() schedule.Repository {
	return &scheduleRepo{
		byOwner: make(map[string]schedule.Schedule),
	}
}

func (r *scheduleRepo) GetByOwner(ctx context.Context, ownerUserID string) (schedule.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byOwner[ownerUserID]
	if !ok {
		return schedule.Schedule{}, schedule.ErrNotFound
	}
	return cloneSchedule(s), nil
}

func (r *scheduleRepo) Save(ctx context.Context, s schedule.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.OwnerUserID) == "" {
		return errors.New("schedule owner required")
	}
	r.byOwner[s.OwnerUserID] = cloneSchedule(s)
	return nil
}

// cloneSchedule copia el slice de dosis para que el caller no comparta
// backing array con lo guardado.
func cloneSchedule(s schedule.Schedule) schedule.Schedule {
	out := s
	out.Doses = make([]schedule.Dose, len(s.Doses))
	copy(out.Doses, s.Doses)
	return out
}
