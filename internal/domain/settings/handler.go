package settings

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"med-schedule/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/settings", func(sr chi.Router) {
		sr.Get("/", getSettingsHandler(svc))
		sr.Patch("/", updateSettingsHandler(svc))
	})
}

type settingsResponse struct {
	OwnerUserID string    `json:"owner_user_id"`
	Use24h      bool      `json:"use_24h"`
	Theme       Theme     `json:"theme"`
	Language    Language  `json:"language"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type updateSettingsRequest struct {
	Use24h   *bool   `json:"use_24h"`
	Theme    *string `json:"theme" enums:"light,dark"`
	Language *string `json:"language" enums:"en,es"`
}

func getSettingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		st, err := svc.Get(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toSettingsResponse(st))
	}
}

// updateSettingsHandler godoc
// @Summary Actualizar preferencias de display
// @Description Cambia formato de hora (12/24h), tema (light/dark) y/o idioma (en/es). Cada cambio se persiste de inmediato.
// @Tags settings
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param payload body updateSettingsRequest true "Campos a modificar; omitir los que no cambian"
// @Success 200 {object} settingsResponse
// @Failure 400 {string} string "invalid json / valor fuera del enum"
// @Failure 401 {string} string "unauthorized"
// @Router /settings [patch]
func updateSettingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateSettingsRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		st, err := svc.Update(r.Context(), claims.UserID, UpdateInput{
			Use24h:   req.Use24h,
			Theme:    req.Theme,
			Language: req.Language,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toSettingsResponse(st))
	}
}

func toSettingsResponse(s Settings) settingsResponse {
	return settingsResponse{
		OwnerUserID: s.OwnerUserID,
		Use24h:      s.Use24h,
		Theme:       s.Theme,
		Language:    s.Language,
		UpdatedAt:   s.UpdatedAt,
	}
}

// writeJSON duplicado a propósito por módulo (ver nota en schedule/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
