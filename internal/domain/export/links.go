package export

import (
	"fmt"
	"net/url"
	"time"

	"med-schedule/internal/domain/schedule"
)

// eventDetails es el texto compartido por los deep links de Google/Outlook.
// Con paciente vacío se omite la línea completa.
func eventDetails(medicationName, patientName string, number int) string {
	if patientName != "" {
		return fmt.Sprintf("Medication: %s\nPatient: %s\nDose #%d", medicationName, patientName, number)
	}
	return fmt.Sprintf("Medication: %s\nDose #%d", medicationName, number)
}

// BuildGoogleCalendarURL arma el deep link de un solo evento para una dosis.
func BuildGoogleCalendarURL(d schedule.Dose, medicationName, patientName string) string {
	v := url.Values{}
	v.Set("action", "TEMPLATE")
	v.Set("text", "💊 "+medicationName)
	v.Set("dates", googleDate(d.DateTime)+"/"+googleDate(d.DateTime.Add(eventDuration)))
	v.Set("details", eventDetails(medicationName, patientName, d.Number))
	return "https://calendar.google.com/calendar/render?" + v.Encode()
}

// googleDate: formato compacto UTC que espera el template de Google.
func googleDate(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// BuildOutlookURL arma el deep link análogo de Outlook, con timestamps ISO-8601.
func BuildOutlookURL(d schedule.Dose, medicationName, patientName string) string {
	v := url.Values{}
	v.Set("subject", "💊 "+medicationName)
	v.Set("startdt", d.DateTime.UTC().Format(time.RFC3339))
	v.Set("enddt", d.DateTime.Add(eventDuration).UTC().Format(time.RFC3339))
	v.Set("body", eventDetails(medicationName, patientName, d.Number))
	return "https://outlook.office.com/calendar/0/action/compose?" + v.Encode()
}

// GoogleCalendarURL es la operación a nivel de lista: link de un solo evento
// sobre la primera dosis (la importación masiva es trabajo del ICS).
// ok=false con lista vacía; el caller no debe abrir nada.
func GoogleCalendarURL(doses []schedule.Dose, medicationName, patientName string) (string, bool) {
	if len(doses) == 0 {
		return "", false
	}
	return BuildGoogleCalendarURL(doses[0], medicationName, patientName), true
}

// OutlookURL: ídem GoogleCalendarURL para Outlook.
func OutlookURL(doses []schedule.Dose, medicationName, patientName string) (string, bool) {
	if len(doses) == 0 {
		return "", false
	}
	return BuildOutlookURL(doses[0], medicationName, patientName), true
}
