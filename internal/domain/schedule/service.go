package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Defaults del formulario para un usuario nuevo (espejo de la UI).
const (
	defaultIntervalHours = 8
	defaultDurationValue = 5
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

// getOrInit devuelve el schedule del usuario, creándolo con defaults la
// primera vez (fecha/hora de inicio = ahora, cada 8h por 5 días).
func (s *Service) getOrInit(ctx context.Context, ownerUserID string) (Schedule, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return Schedule{}, ErrInvalidInput
	}

	existing, err := s.repo.GetByOwner(ctx, ownerUserID)
	if err == nil {
		return existing, nil
	}
	// Solo la ausencia de registro dispara la inicialización; una falla
	// real del storage se propaga, nunca se pisa con un calendario nuevo.
	if !errors.Is(err, ErrNotFound) {
		return Schedule{}, err
	}

	now := s.now()
	sc := Schedule{
		ID:            uuid.NewString(),
		OwnerUserID:   ownerUserID,
		StartDate:     now.Format("2006-01-02"),
		StartTime:     now.Format("15:04"),
		IntervalHours: defaultIntervalHours,
		DurationType:  DurationByDays,
		DurationValue: defaultDurationValue,
		Doses:         []Dose{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Save(ctx, sc); err != nil {
		return Schedule{}, err
	}
	return sc, nil
}

func (s *Service) Get(ctx context.Context, ownerUserID string) (Schedule, error) {
	return s.getOrInit(ctx, ownerUserID)
}

// UpdateConfigInput usa punteros para PATCH real: nil = no tocar.
type UpdateConfigInput struct {
	MedicationName *string
	PatientName    *string
	StartDate      *string
	StartTime      *string
	IntervalHours  *int
	DurationType   *string
	DurationValue  *int
}

// UpdateConfig aplica asignaciones campo a campo sobre la configuración.
// Valida formato (fecha, hora, enum de duración) pero no positividad:
// intervalos/duraciones no positivas fluyen hasta el generador, que
// responde con una lista vacía en vez de error.
func (s *Service) UpdateConfig(ctx context.Context, ownerUserID string, in UpdateConfigInput) (Schedule, error) {
	sc, err := s.getOrInit(ctx, ownerUserID)
	if err != nil {
		return Schedule{}, err
	}

	if in.MedicationName != nil {
		sc.MedicationName = strings.TrimSpace(*in.MedicationName)
	}
	if in.PatientName != nil {
		sc.PatientName = strings.TrimSpace(*in.PatientName)
	}
	if in.StartDate != nil {
		v := strings.TrimSpace(*in.StartDate)
		if _, err := time.Parse("2006-01-02", v); err != nil {
			return Schedule{}, ErrInvalidInput
		}
		sc.StartDate = v
	}
	if in.StartTime != nil {
		v := strings.TrimSpace(*in.StartTime)
		if _, err := time.Parse("15:04", v); err != nil {
			return Schedule{}, ErrInvalidInput
		}
		sc.StartTime = v
	}
	if in.IntervalHours != nil {
		sc.IntervalHours = *in.IntervalHours
	}
	if in.DurationType != nil {
		switch DurationType(strings.TrimSpace(*in.DurationType)) {
		case DurationByDays:
			sc.DurationType = DurationByDays
		case DurationByQuantity:
			sc.DurationType = DurationByQuantity
		default:
			return Schedule{}, ErrInvalidInput
		}
	}
	if in.DurationValue != nil {
		sc.DurationValue = *in.DurationValue
	}

	sc.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, sc); err != nil {
		return Schedule{}, err
	}
	return sc, nil
}

// Generate reemplaza la lista de dosis completa con el resultado del
// generador sobre la configuración actual (la acción "generar" explícita).
func (s *Service) Generate(ctx context.Context, ownerUserID string) (Schedule, error) {
	sc, err := s.getOrInit(ctx, ownerUserID)
	if err != nil {
		return Schedule{}, err
	}

	now := s.now()
	sc.Doses = GenerateSchedule(sc.Config())
	sc.GeneratedAt = &now
	sc.UpdatedAt = now

	if err := s.repo.Save(ctx, sc); err != nil {
		return Schedule{}, err
	}
	return sc, nil
}

// ToggleDose invierte el flag taken de la dosis indicada, sin tocar orden
// ni el resto de campos.
func (s *Service) ToggleDose(ctx context.Context, ownerUserID, doseID string) (Schedule, error) {
	doseID = strings.TrimSpace(doseID)
	if doseID == "" {
		return Schedule{}, ErrInvalidInput
	}

	sc, err := s.getOrInit(ctx, ownerUserID)
	if err != nil {
		return Schedule{}, err
	}

	found := false
	for i := range sc.Doses {
		if sc.Doses[i].ID == doseID {
			sc.Doses[i].Taken = !sc.Doses[i].Taken
			found = true
			break
		}
	}
	if !found {
		return Schedule{}, ErrNotFound
	}

	sc.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, sc); err != nil {
		return Schedule{}, err
	}
	return sc, nil
}

// AddManualDose agrega una dosis al final: última dosis + intervalo, o
// "ahora" si la lista está vacía. El id/número sigue la secuencia.
func (s *Service) AddManualDose(ctx context.Context, ownerUserID string) (Schedule, error) {
	sc, err := s.getOrInit(ctx, ownerUserID)
	if err != nil {
		return Schedule{}, err
	}

	now := s.now()

	var at time.Time
	if n := len(sc.Doses); n > 0 {
		at = sc.Doses[n-1].DateTime.Add(time.Duration(sc.IntervalHours) * time.Hour)
	} else {
		// Misma base de reloj de pared que el generador: componentes
		// locales de "ahora" construidos en UTC, con precisión de minuto
		// (getOrInit siembra StartDate/StartTime con ese mismo reloj).
		at = time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), 0, 0, time.UTC)
	}

	next := len(sc.Doses) + 1
	sc.Doses = append(sc.Doses, Dose{
		ID:       fmt.Sprintf("dose-%d", next),
		Number:   next,
		DateTime: at,
		Taken:    false,
	})

	sc.UpdatedAt = now
	if err := s.repo.Save(ctx, sc); err != nil {
		return Schedule{}, err
	}
	return sc, nil
}

// RemoveLastDose descarta la última dosis. No-op sobre lista vacía
// (solo se soporta remover la cola, así nunca hay huecos de numeración).
func (s *Service) RemoveLastDose(ctx context.Context, ownerUserID string) (Schedule, error) {
	sc, err := s.getOrInit(ctx, ownerUserID)
	if err != nil {
		return Schedule{}, err
	}

	if len(sc.Doses) == 0 {
		return sc, nil
	}

	sc.Doses = sc.Doses[:len(sc.Doses)-1]
	sc.UpdatedAt = s.now()

	if err := s.repo.Save(ctx, sc); err != nil {
		return Schedule{}, err
	}
	return sc, nil
}

// EstimatedEnd calcula el fin estimado para la configuración actual sin
// modificar la lista de dosis activa (preview previo a generar).
func (s *Service) EstimatedEnd(ctx context.Context, ownerUserID string) (time.Time, bool, error) {
	sc, err := s.getOrInit(ctx, ownerUserID)
	if err != nil {
		return time.Time{}, false, err
	}
	end, ok := EstimatedEnd(sc.Config())
	return end, ok, nil
}
