package main

import (
	"net/http"
	"os"
	"time"

	"med-schedule/internal/adapters/auth/token"
	"med-schedule/internal/platform/logger"
	"med-schedule/internal/ports/auth"
	"med-schedule/internal/router"
)

// @title MedSchedule API
// @version 1.0
// @description Servicio de calendario de medicación: genera tomas a partir de intervalo + duración, y las exporta a ICS/Google/Outlook.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	// Sin AUTH_VERIFY_URL queda en modo dev (X-Debug-User-ID).
	var verifier auth.AuthVerifier
	if base := os.Getenv("AUTH_VERIFY_URL"); base != "" {
		v, err := token.NewVerifier(token.Config{
			BaseURL: base,
			APIKey:  os.Getenv("AUTH_API_KEY"),
		})
		if err != nil {
			log.Error("auth verifier init failed", "error", err)
			os.Exit(1)
		}
		verifier = v
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		Logger:       log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
