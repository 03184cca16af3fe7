package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"med-schedule/internal/domain/settings"
)

// SettingsRepo persiste las preferencias de display (el único estado durable
// del servicio). Upsert por usuario: cada setter escribe de inmediato.
type SettingsRepo struct {
	db *sql.DB
}

func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

func (r *SettingsRepo) GetByOwner(ctx context.Context, ownerUserID string) (settings.Settings, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return settings.Settings{}, settings.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT owner_user_id, use_24h, theme, language, updated_at
		FROM user_settings
		WHERE owner_user_id = $1
	`, ownerUserID)

	var s settings.Settings
	err := row.Scan(&s.OwnerUserID, &s.Use24h, &s.Theme, &s.Language, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return settings.Settings{}, settings.ErrNotFound
		}
		return settings.Settings{}, err
	}
	return s, nil
}

func (r *SettingsRepo) Save(ctx context.Context, s settings.Settings) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_settings (owner_user_id, use_24h, theme, language, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (owner_user_id) DO UPDATE SET
			use_24h = EXCLUDED.use_24h,
			theme = EXCLUDED.theme,
			language = EXCLUDED.language,
			updated_at = EXCLUDED.updated_at
	`,
		s.OwnerUserID,
		s.Use24h,
		s.Theme,
		s.Language,
		s.UpdatedAt,
	)
	return err
}
