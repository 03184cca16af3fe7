package schedule

import "context"

// GetByOwner devuelve ErrNotFound cuando el usuario todavía no tiene
// calendario; cualquier otro error es una falla real del storage y se
// propaga tal cual.
type Repository interface {
	GetByOwner(ctx context.Context, ownerUserID string) (Schedule, error)
	Save(ctx context.Context, s Schedule) error
}
