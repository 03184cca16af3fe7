package export

import (
	"encoding/csv"
	"fmt"
	"strings"

	"med-schedule/internal/domain/schedule"
	"med-schedule/internal/domain/settings"
	"med-schedule/internal/platform/datefmt"
)

// BuildCSV exporta la tabla de dosis (#, fecha, hora, estado) con cabeceras
// localizadas. Las fechas formateadas llevan coma ("Jan 15, 2024"), así que
// se usa encoding/csv para el quoting en vez de concatenar a mano.
func BuildCSV(doses []schedule.Dose, lang settings.Language, use24h bool) string {
	l := LabelsFor(lang)

	var b strings.Builder
	w := csv.NewWriter(&b)

	_ = w.Write([]string{l.DoseNumber, l.Date, l.Time, l.Status})

	for _, d := range doses {
		status := l.Pending
		if d.Taken {
			status = l.Taken
		}
		_ = w.Write([]string{
			fmt.Sprintf("%02d", d.Number),
			datefmt.FormatDate(d.DateTime, string(lang)),
			datefmt.FormatTime(d.DateTime, string(lang), use24h),
			status,
		})
	}

	w.Flush()
	return b.String()
}
