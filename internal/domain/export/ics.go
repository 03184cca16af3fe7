package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"med-schedule/internal/domain/schedule"
)

const (
	icsProdID = "-//MedSchedule Pro//EN"

	// Cada toma se representa como un evento de 15 minutos.
	eventDuration = 15 * time.Minute
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// BuildICS genera el documento VCALENDAR completo: un VEVENT por dosis,
// con alarma de display 5 minutos antes. Los timestamps son "flotantes"
// (hora local sin zona), igual que el resto de la aritmética del calendario.
// generatedAt entra al UID para que re-exportar produzca UIDs nuevos.
func BuildICS(doses []schedule.Dose, medicationName, patientName string, generatedAt time.Time) string {
	var b strings.Builder

	// RFC 5545 exige CRLF como fin de línea.
	line := func(s string) {
		b.WriteString(s)
		b.WriteString("\r\n")
	}

	line("BEGIN:VCALENDAR")
	line("VERSION:2.0")
	line("PRODID:" + icsProdID)
	line("CALSCALE:GREGORIAN")
	line("METHOD:PUBLISH")

	stamp := generatedAt.UnixMilli()

	for _, d := range doses {
		line("BEGIN:VEVENT")
		line("DTSTART:" + icsDate(d.DateTime))
		line("DTEND:" + icsDate(d.DateTime.Add(eventDuration)))
		line(fmt.Sprintf("SUMMARY:💊 %s - Dose #%d", medicationName, d.Number))
		line("DESCRIPTION:" + icsDescription(medicationName, patientName, d.Number))
		line(fmt.Sprintf("UID:medschedule-%s-%d@medschedule", d.ID, stamp))
		line("STATUS:CONFIRMED")
		line("BEGIN:VALARM")
		line("TRIGGER:-PT5M")
		line("ACTION:DISPLAY")
		line("DESCRIPTION:Time to take " + medicationName)
		line("END:VALARM")
		line("END:VEVENT")
	}

	line("END:VCALENDAR")
	return b.String()
}

// icsDate formatea en la forma compacta de ICS sin zona ("20240115T080000").
func icsDate(t time.Time) string {
	return t.Format("20060102T150405")
}

// icsDescription arma la descripción multilínea con el escape \n de ICS.
// Sin paciente no se emite la línea "Patient:" (nada de labels colgantes).
func icsDescription(medicationName, patientName string, number int) string {
	if patientName != "" {
		return fmt.Sprintf(`Medication: %s\nPatient: %s\nDose #%d`, medicationName, patientName, number)
	}
	return fmt.Sprintf(`Medication: %s\nDose #%d`, medicationName, number)
}

// ICSFileName: nombre del medicamento con espacios colapsados a "_",
// sufijo _schedule.ics.
func ICSFileName(medicationName string) string {
	return whitespaceRe.ReplaceAllString(medicationName, "_") + "_schedule.ics"
}

// CSVFileName sigue la misma convención que el ICS.
func CSVFileName(medicationName string) string {
	return whitespaceRe.ReplaceAllString(medicationName, "_") + "_schedule.csv"
}

// PDFFileName: misma convención, sufijo _schedule.pdf (contrato de nombre
// del artefacto; el rasterizado en sí no vive en este servicio).
func PDFFileName(medicationName string) string {
	return whitespaceRe.ReplaceAllString(medicationName, "_") + "_schedule.pdf"
}
