package schedule

import (
	"fmt"
	"time"
)

const hoursPerDay = 24

// startAt combina fecha + hora en un timestamp absoluto.
// Se construye en UTC para que la aritmética de intervalos sea puramente
// aditiva: sumar H horas siempre avanza el reloj exactamente H*3600s,
// sin normalización por DST. Esto es intencional; no "arreglarlo".
func startAt(startDate, startTime string) (time.Time, bool) {
	d, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return time.Time{}, false
	}
	tm, err := time.Parse("15:04", startTime)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(d.Year(), d.Month(), d.Day(), tm.Hour(), tm.Minute(), 0, 0, time.UTC), true
}

// GenerateByDays genera dosis dentro de una ventana fija de days*24h anclada
// en el instante exacto de inicio (no en medianoche). La ventana es semiabierta:
// una dosis que cae justo en el límite queda excluida, y una dosis puede caer
// en el día calendario N+1 si el intervalo cruza la medianoche antes del cierre.
// Entradas no positivas o fecha/hora inválidas producen una lista vacía, nunca error.
func GenerateByDays(startDate, startTime string, intervalHours, days int) []Dose {
	if days <= 0 || intervalHours <= 0 {
		return []Dose{}
	}
	start, ok := startAt(startDate, startTime)
	if !ok {
		return []Dose{}
	}

	windowEnd := start.Add(time.Duration(days) * hoursPerDay * time.Hour)
	step := time.Duration(intervalHours) * time.Hour

	doses := make([]Dose, 0)
	count := 1
	for current := start; current.Before(windowEnd); current = current.Add(step) {
		doses = append(doses, Dose{
			ID:       fmt.Sprintf("dose-%d", count),
			Number:   count,
			DateTime: current,
			Taken:    false,
		})
		count++
	}
	return doses
}

// GenerateByQuantity genera exactamente quantity dosis espaciadas intervalHours,
// sin ventana: siempre quantity entradas sin importar el tamaño del intervalo.
func GenerateByQuantity(startDate, startTime string, intervalHours, quantity int) []Dose {
	if quantity <= 0 || intervalHours <= 0 {
		return []Dose{}
	}
	start, ok := startAt(startDate, startTime)
	if !ok {
		return []Dose{}
	}

	step := time.Duration(intervalHours) * time.Hour

	doses := make([]Dose, 0, quantity)
	for i := 0; i < quantity; i++ {
		doses = append(doses, Dose{
			ID:       fmt.Sprintf("dose-%d", i+1),
			Number:   i + 1,
			DateTime: start.Add(time.Duration(i) * step),
			Taken:    false,
		})
	}
	return doses
}

// GenerateSchedule es el único punto de entrada usado por los consumidores;
// despacha según el tipo de duración.
func GenerateSchedule(cfg Config) []Dose {
	if cfg.DurationType == DurationByDays {
		return GenerateByDays(cfg.StartDate, cfg.StartTime, cfg.IntervalHours, cfg.DurationValue)
	}
	return GenerateByQuantity(cfg.StartDate, cfg.StartTime, cfg.IntervalHours, cfg.DurationValue)
}

// EstimatedEnd devuelve el timestamp de la última dosis que produciría la
// configuración, sin comprometer la lista activa. El segundo valor es false
// cuando la generación no produce ninguna dosis.
func EstimatedEnd(cfg Config) (time.Time, bool) {
	doses := GenerateSchedule(cfg)
	if len(doses) == 0 {
		return time.Time{}, false
	}
	return doses[len(doses)-1].DateTime, true
}
