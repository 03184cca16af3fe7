package export

import "med-schedule/internal/domain/settings"

// Labels son los textos fijos de cabecera/pie que consumen el CSV y el
// layout de impresión/PDF. Dos idiomas cerrados, igual que datefmt.
type Labels struct {
	HeaderTitle string
	Medication  string
	Patient     string
	Period      string
	DoseNumber  string
	Date        string
	Time        string
	Status      string
	Taken       string
	Pending     string
	Footer      string
}

var labelsEN = Labels{
	HeaderTitle: "Medication Schedule",
	Medication:  "Medication",
	Patient:     "Patient",
	Period:      "Period",
	DoseNumber:  "Dose",
	Date:        "Date",
	Time:        "Time",
	Status:      "Status",
	Taken:       "Taken",
	Pending:     "Pending",
	Footer:      "Generated with MedSchedule Pro",
}

var labelsES = Labels{
	HeaderTitle: "Calendario de Medicación",
	Medication:  "Medicamento",
	Patient:     "Paciente",
	Period:      "Período",
	DoseNumber:  "Dosis",
	Date:        "Fecha",
	Time:        "Hora",
	Status:      "Estado",
	Taken:       "Tomada",
	Pending:     "Pendiente",
	Footer:      "Generado con MedSchedule Pro",
}

func LabelsFor(lang settings.Language) Labels {
	if lang == settings.LanguageES {
		return labelsES
	}
	return labelsEN
}
