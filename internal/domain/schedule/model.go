package schedule

import "time"

// DurationType define cómo se interpreta la duración del tratamiento.
// @Enum days, quantity
type DurationType string

const (
	// DurationByDays: la duración es una cantidad de períodos de 24h desde el inicio.
	DurationByDays DurationType = "days"
	// DurationByQuantity: la duración es una cantidad exacta de dosis.
	DurationByQuantity DurationType = "quantity"
)

// Dose representa una toma programada del medicamento.
// El ID tiene formato estable "dose-<n>" (n = posición 1-based al generarse).
type Dose struct {
	ID       string
	Number   int
	DateTime time.Time
	Taken    bool
}

// Config es la entrada del generador de dosis.
// StartDate en formato YYYY-MM-DD y StartTime en HH:MM (reloj de 24h).
type Config struct {
	StartDate     string
	StartTime     string
	IntervalHours int
	DurationType  DurationType
	DurationValue int
}

// Schedule es el estado completo del calendario de un usuario:
// configuración del formulario + lista de dosis generada.
type Schedule struct {
	ID          string
	OwnerUserID string

	MedicationName string
	PatientName    string

	StartDate     string // YYYY-MM-DD
	StartTime     string // HH:MM
	IntervalHours int
	DurationType  DurationType
	DurationValue int

	Doses []Dose

	// GeneratedAt es el instante de la última generación (nil si nunca se generó).
	// Se usa para construir UIDs únicos en el export a calendario.
	GeneratedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Config arma el input del generador a partir del estado actual.
func (s Schedule) Config() Config {
	return Config{
		StartDate:     s.StartDate,
		StartTime:     s.StartTime,
		IntervalHours: s.IntervalHours,
		DurationType:  s.DurationType,
		DurationValue: s.DurationValue,
	}
}
