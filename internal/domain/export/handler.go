package export

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"med-schedule/internal/domain/schedule"
	"med-schedule/internal/domain/settings"
	"med-schedule/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, scheduleSvc *schedule.Service, settingsSvc *settings.Service) {
	r.Route("/schedule/export", func(er chi.Router) {
		er.Get("/ics", icsHandler(scheduleSvc))
		er.Get("/csv", csvHandler(scheduleSvc, settingsSvc))
		er.Get("/google", googleHandler(scheduleSvc))
		er.Get("/outlook", outlookHandler(scheduleSvc))
		er.Get("/print", printHandler(scheduleSvc, settingsSvc))
	})
}

type calendarLinkResponse struct {
	URL string `json:"url"`
}

// icsHandler godoc
// @Summary Descargar calendario ICS
// @Description Descarga un VCALENDAR con un VEVENT por dosis (importación masiva). El nombre de archivo es el medicamento con espacios reemplazados por "_" y sufijo _schedule.ics.
// @Tags export
// @Produce plain
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Success 200 {string} string "text/calendar"
// @Failure 401 {string} string "unauthorized"
// @Router /schedule/export/ics [get]
func icsHandler(scheduleSvc *schedule.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sc, err := scheduleSvc.Get(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		// El UID incorpora el timestamp de generación; si la lista se armó
		// solo a mano (nunca se generó), usamos el momento del export.
		generatedAt := time.Now()
		if sc.GeneratedAt != nil {
			generatedAt = *sc.GeneratedAt
		}

		content := BuildICS(sc.Doses, sc.MedicationName, sc.PatientName, generatedAt)

		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", ICSFileName(sc.MedicationName)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(content))
	}
}

func csvHandler(scheduleSvc *schedule.Service, settingsSvc *settings.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sc, err := scheduleSvc.Get(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		st, err := settingsSvc.Get(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		content := BuildCSV(sc.Doses, st.Language, st.Use24h)

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", CSVFileName(sc.MedicationName)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(content))
	}
}

// googleHandler devuelve el deep link de un solo evento para la primera
// dosis. Con lista vacía responde 204: no hay acción externa que abrir.
func googleHandler(scheduleSvc *schedule.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sc, err := scheduleSvc.Get(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		u, okURL := GoogleCalendarURL(sc.Doses, sc.MedicationName, sc.PatientName)
		if !okURL {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(w, http.StatusOK, calendarLinkResponse{URL: u})
	}
}

func outlookHandler(scheduleSvc *schedule.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sc, err := scheduleSvc.Get(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		u, okURL := OutlookURL(sc.Doses, sc.MedicationName, sc.PatientName)
		if !okURL {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(w, http.StatusOK, calendarLinkResponse{URL: u})
	}
}

// printHandler arma el payload de impresión/PDF. ?columns=1|2 (default 1).
func printHandler(scheduleSvc *schedule.Service, settingsSvc *settings.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		columns := 1
		if v := strings.TrimSpace(r.URL.Query().Get("columns")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || (n != 1 && n != 2) {
				http.Error(w, "columns must be 1 or 2", http.StatusBadRequest)
				return
			}
			columns = n
		}

		sc, err := scheduleSvc.Get(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		st, err := settingsSvc.Get(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		doc := BuildPrintDocument(sc.Doses, sc.MedicationName, sc.PatientName, columns, st.Language, st.Use24h)
		writeJSON(w, http.StatusOK, doc)
	}
}

// writeJSON duplicado a propósito por módulo (ver nota en schedule/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
