package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "med-schedule/internal/adapters/storage/memory"
	pg "med-schedule/internal/adapters/storage/postgres"
	_ "med-schedule/docs"
	"med-schedule/internal/domain/export"
	"med-schedule/internal/domain/schedule"
	"med-schedule/internal/domain/settings"
	"med-schedule/internal/middleware"
	"med-schedule/internal/platform/logger"
	"med-schedule/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	Logger logger.Logger // opcional; si viene, se loguea cada request

	// Opcional: si viene, las preferencias se persisten en Postgres.
	// Si no, in-memory.
	DB *sql.DB
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if opts.Logger != nil {
		r.Use(middleware.RequestLog(opts.Logger))
	}

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	// Las preferencias son durables (Postgres si hay DB); el calendario de
	// dosis vive solo en memoria: no sobrevive un reinicio, a propósito.
	var settingsRepo settings.Repository
	if db != nil {
		settingsRepo = pg.NewSettingsRepo(db)
	} else {
		settingsRepo = mem.NewSettingsRepo()
	}
	scheduleRepo := mem.NewScheduleRepo()

	// Services por módulo
	scheduleSvc := schedule.NewService(scheduleRepo)
	settingsSvc := settings.NewService(settingsRepo)

	// Rutas por módulo
	schedule.RegisterRoutes(r, scheduleSvc)
	settings.RegisterRoutes(r, settingsSvc)
	export.RegisterRoutes(r, scheduleSvc, settingsSvc)

	return r
}
