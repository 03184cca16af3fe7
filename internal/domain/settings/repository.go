package settings

import "context"

// GetByOwner devuelve ErrNotFound cuando el usuario todavía no guardó
// preferencias; cualquier otro error es una falla real del storage y se
// propaga tal cual.
type Repository interface {
	GetByOwner(ctx context.Context, ownerUserID string) (Settings, error)
	Save(ctx context.Context, s Settings) error
}
