package settings

import "time"

// Theme define los temas soportados.
// @Enum light, dark
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Language define los idiomas soportados.
// @Enum en, es
type Language string

const (
	LanguageEN Language = "en"
	LanguageES Language = "es"
)

// Settings son las preferencias de display de un usuario. A diferencia del
// calendario de dosis, estas sí se persisten en cada cambio.
type Settings struct {
	OwnerUserID string

	Use24h   bool
	Theme    Theme
	Language Language

	UpdatedAt time.Time
}
