package schedule

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
	r.Route("/schedule", func(sr chi.Router) {
		sr.Get("/", getScheduleHandler(svc))
		sr.Patch("/config", updateConfigHandler(svc))
		sr.Post("/generate", generateHandler(svc))
		sr.Get("/estimated-end", estimatedEndHandler(svc))

		sr.Post("/doses", addManualDoseHandler(svc))
		sr.Delete("/doses/last", removeLastDoseHandler(svc))
		sr.Post("/doses/{doseID}/toggle", toggleDoseHandler(svc))
	})
}

type doseResponse struct {
	ID       string    `json:"id"`
	Number   int       `json:"number"`
	DateTime time.Time `json:"date_time"`
	Taken    bool      `json:"taken"`
}

type scheduleResponse struct {
	ID             string         `json:"id"`
	OwnerUserID    string         `json:"owner_user_id"`
	MedicationName string         `json:"medication_name"`
	PatientName    string         `json:"patient_name"`
	StartDate      string         `json:"start_date"`
	StartTime      string         `json:"start_time"`
	IntervalHours  int            `json:"interval_hours"`
	DurationType   DurationType   `json:"duration_type"`
	DurationValue  int            `json:"duration_value"`
	Doses          []doseResponse `json:"doses"`
	GeneratedAt    *time.Time     `json:"generated_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// updateConfigRequest: punteros para PATCH real (nil = no tocar).
type updateConfigRequest struct {
	MedicationName *string `json:"medication_name"`
	PatientName    *string `json:"patient_name"`
	StartDate      *string `json:"start_date"` // YYYY-MM-DD
	StartTime      *string `json:"start_time"` // HH:MM
	IntervalHours  *int    `json:"interval_hours"`
	DurationType   *string `json:"duration_type" enums:"days,quantity"`
	DurationValue  *int    `json:"duration_value"`
}

type estimatedEndResponse struct {
	EstimatedEnd time.Time `json:"estimated_end"`
}

func getScheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sc, err := svc.Get(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toScheduleResponse(sc))
	}
}

// updateConfigHandler godoc
// @Summary Actualizar configuración del calendario
// @Description Aplica cambios parciales sobre la configuración (PATCH). La lista de dosis generada no se toca hasta la próxima acción de generar. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags schedule
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param payload body updateConfigRequest true "Campos a modificar; omitir los que no cambian"
// @Success 200 {object} scheduleResponse
// @Failure 400 {string} string "invalid json / formato de fecha u hora inválido"
// @Failure 401 {string} string "unauthorized"
// @Router /schedule/config [patch]
func updateConfigHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateConfigRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sc, err := svc.UpdateConfig(r.Context(), claims.UserID, UpdateConfigInput{
			MedicationName: req.MedicationName,
			PatientName:    req.PatientName,
			StartDate:      req.StartDate,
			StartTime:      req.StartTime,
			IntervalHours:  req.IntervalHours,
			DurationType:   req.DurationType,
			DurationValue:  req.DurationValue,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toScheduleResponse(sc))
	}
}

// generateHandler godoc
// @Summary Generar lista de dosis
// @Description Reemplaza la lista de dosis con el resultado del generador sobre la configuración actual. Entradas degeneradas (intervalo o duración no positivos) producen lista vacía, no error.
// @Tags schedule
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Success 200 {object} scheduleResponse
// @Failure 401 {string} string "unauthorized"
// @Router /schedule/generate [post]
func generateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sc, err := svc.Generate(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toScheduleResponse(sc))
	}
}

// estimatedEndHandler responde 204 cuando la configuración no produce
// ninguna dosis: el "sin valor" es explícito, no un sentinel en el body.
func estimatedEndHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		end, okEnd, err := svc.EstimatedEnd(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !okEnd {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(w, http.StatusOK, estimatedEndResponse{EstimatedEnd: end})
	}
}

func addManualDoseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sc, err := svc.AddManualDose(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toScheduleResponse(sc))
	}
}

func removeLastDoseHandler(svc *Service) http.HandlerFunc {
	// No-op (200 con la lista sin cambios) cuando la lista ya está vacía.
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sc, err := svc.RemoveLastDose(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toScheduleResponse(sc))
	}
}

func toggleDoseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		doseID := chi.URLParam(r, "doseID")
		sc, err := svc.ToggleDose(r.Context(), claims.UserID, doseID)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "dose not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toScheduleResponse(sc))
	}
}

func toScheduleResponse(sc Schedule) scheduleResponse {
	doses := make([]doseResponse, 0, len(sc.Doses))
	for _, d := range sc.Doses {
		doses = append(doses, doseResponse{
			ID:       d.ID,
			Number:   d.Number,
			DateTime: d.DateTime,
			Taken:    d.Taken,
		})
	}

	return scheduleResponse{
		ID:             sc.ID,
		OwnerUserID:    sc.OwnerUserID,
		MedicationName: sc.MedicationName,
		PatientName:    sc.PatientName,
		StartDate:      sc.StartDate,
		StartTime:      sc.StartTime,
		IntervalHours:  sc.IntervalHours,
		DurationType:   sc.DurationType,
		DurationValue:  sc.DurationValue,
		Doses:          doses,
		GeneratedAt:    sc.GeneratedAt,
		CreatedAt:      sc.CreatedAt,
		UpdatedAt:      sc.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (schedule/settings/export) para evitar crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
