package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"med-schedule/internal/domain/settings"
)

type settingsRepo struct {
	mu      sync.RWMutex
	byOwner map[string]settings.Settings
}

func NewSettingsRepo() settings.Repository {
	return &settingsRepo{
		byOwner: make(map[string]settings.Settings),
	}
}

func (r *settingsRepo) GetByOwner(ctx context.Context, ownerUserID string) (settings.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byOwner[ownerUserID]
	if !ok {
		return settings.Settings{}, settings.ErrNotFound
	}
	return s, nil
}

func (r *settingsRepo) Save(ctx context.Context, s settings.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.OwnerUserID) == "" {
		return errors.New("settings owner required")
	}
	r.byOwner[s.OwnerUserID] = s
	return nil
}
