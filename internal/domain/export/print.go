package export

import (
	"fmt"

	"med-schedule/internal/domain/schedule"
	"med-schedule/internal/domain/settings"
	"med-schedule/internal/platform/datefmt"
)

// PrintRow es una fila ya renderizada de la tabla imprimible.
type PrintRow struct {
	Number string `json:"number"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Status string `json:"status"`
	Taken  bool   `json:"taken"`
}

// PrintDocument reúne todos los insumos del layout de impresión/PDF:
// cabecera, período, tabla renderizada, labels y nombre de archivo.
// El rasterizado (paginación, medición de filas) es del cliente; este
// payload solo le da la lista de dosis ya formateada.
type PrintDocument struct {
	Title          string     `json:"title"`
	MedicationLine string     `json:"medication_line"`
	PatientLine    string     `json:"patient_line,omitempty"`
	PeriodLine     string     `json:"period_line,omitempty"`
	Headers        [4]string  `json:"headers"`
	Rows           []PrintRow `json:"rows"`
	Columns        int        `json:"columns"`
	Footer         string     `json:"footer"`
	FileName       string     `json:"file_name"`
}

// BuildPrintDocument renderiza el documento. columns fuera de {1,2} cae a 1.
// Sin paciente no hay línea de paciente; sin dosis no hay línea de período.
func BuildPrintDocument(
	doses []schedule.Dose,
	medicationName, patientName string,
	columns int,
	lang settings.Language,
	use24h bool,
) PrintDocument {
	l := LabelsFor(lang)

	if columns != 2 {
		columns = 1
	}

	doc := PrintDocument{
		Title:          l.HeaderTitle,
		MedicationLine: l.Medication + ": " + medicationName,
		Headers:        [4]string{l.DoseNumber, l.Date, l.Time, l.Status},
		Columns:        columns,
		Footer:         l.Footer,
		FileName:       PDFFileName(medicationName),
	}

	if patientName != "" {
		doc.PatientLine = l.Patient + ": " + patientName
	}

	if len(doses) > 0 {
		first := datefmt.FormatDate(doses[0].DateTime, string(lang))
		last := datefmt.FormatDate(doses[len(doses)-1].DateTime, string(lang))
		doc.PeriodLine = l.Period + ": " + first + " — " + last
	}

	rows := make([]PrintRow, 0, len(doses))
	for _, d := range doses {
		status := "☐ " + l.Pending
		if d.Taken {
			status = "☑ " + l.Taken
		}
		rows = append(rows, PrintRow{
			Number: fmt.Sprintf("%02d", d.Number),
			Date:   datefmt.FormatDate(d.DateTime, string(lang)),
			Time:   datefmt.FormatTime(d.DateTime, string(lang), use24h),
			Status: status,
			Taken:  d.Taken,
		})
	}
	doc.Rows = rows

	return doc
}
