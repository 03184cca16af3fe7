package settings

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Get devuelve las preferencias del usuario, con defaults (12h, light, en)
// cuando todavía no guardó nada. Los defaults no se persisten hasta el
// primer Update.
func (s *Service) Get(ctx context.Context, ownerUserID string) (Settings, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return Settings{}, ErrInvalidInput
	}

	existing, err := s.repo.GetByOwner(ctx, ownerUserID)
	if err == nil {
		return existing, nil
	}
	// Solo ErrNotFound habilita los defaults; con el repo de Postgres, una
	// caída transitoria no debe disfrazarse de "usuario sin preferencias"
	// (el siguiente Update pisaría lo guardado).
	if !errors.Is(err, ErrNotFound) {
		return Settings{}, err
	}

	return Settings{
		OwnerUserID: ownerUserID,
		Use24h:      false,
		Theme:       ThemeLight,
		Language:    LanguageEN,
	}, nil
}

// UpdateInput usa punteros para PATCH real: nil = no tocar.
type UpdateInput struct {
	Use24h   *bool
	Theme    *string
	Language *string
}

// Update aplica los setters y persiste en cada cambio (las preferencias son
// el único estado durable del servicio).
func (s *Service) Update(ctx context.Context, ownerUserID string, in UpdateInput) (Settings, error) {
	current, err := s.Get(ctx, ownerUserID)
	if err != nil {
		return Settings{}, err
	}

	if in.Use24h != nil {
		current.Use24h = *in.Use24h
	}
	if in.Theme != nil {
		switch Theme(strings.TrimSpace(*in.Theme)) {
		case ThemeLight:
			current.Theme = ThemeLight
		case ThemeDark:
			current.Theme = ThemeDark
		default:
			return Settings{}, ErrInvalidInput
		}
	}
	if in.Language != nil {
		switch Language(strings.TrimSpace(*in.Language)) {
		case LanguageEN:
			current.Language = LanguageEN
		case LanguageES:
			current.Language = LanguageES
		default:
			return Settings{}, ErrInvalidInput
		}
	}

	current.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, current); err != nil {
		return Settings{}, err
	}
	return current, nil
}
