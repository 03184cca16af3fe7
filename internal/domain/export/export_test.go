package export

import (
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"

	"med-schedule/internal/domain/schedule"
	"med-schedule/internal/domain/settings"
)

func testDoses() []schedule.Dose {
	base := time.Date(2024, time.January, 15, 8, 0, 0, 0, time.UTC)
	return []schedule.Dose{
		{ID: "dose-1", Number: 1, DateTime: base, Taken: true},
		{ID: "dose-2", Number: 2, DateTime: base.Add(8 * time.Hour)},
		{ID: "dose-3", Number: 3, DateTime: base.Add(16 * time.Hour)},
	}
}

func TestBuildICS(t *testing.T) {
	generatedAt := time.UnixMilli(1705300000000)
	got := BuildICS(testDoses(), "Amoxicillin", "John Doe", generatedAt)

	if !strings.HasSuffix(got, "END:VCALENDAR\r\n") {
		t.Error("calendar should end with END:VCALENDAR and CRLF")
	}
	if strings.Contains(strings.ReplaceAll(got, "\r\n", ""), "\n") {
		t.Error("all line endings must be CRLF")
	}

	for _, want := range []string{
		"VERSION:2.0\r\n",
		"PRODID:-//MedSchedule Pro//EN\r\n",
		"CALSCALE:GREGORIAN\r\n",
		"METHOD:PUBLISH\r\n",
		"DTSTART:20240115T080000\r\n",
		"DTEND:20240115T081500\r\n",
		"SUMMARY:💊 Amoxicillin - Dose #1\r\n",
		`DESCRIPTION:Medication: Amoxicillin\nPatient: John Doe\nDose #2`,
		"UID:medschedule-dose-1-1705300000000@medschedule\r\n",
		"STATUS:CONFIRMED\r\n",
		"TRIGGER:-PT5M\r\n",
		"ACTION:DISPLAY\r\n",
		"DESCRIPTION:Time to take Amoxicillin\r\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ICS output missing %q", want)
		}
	}

	// El documento debe ser parseable por un consumidor ICS real.
	cal, err := ical.ParseCalendar(strings.NewReader(got))
	if err != nil {
		t.Fatalf("parse generated ICS: %v", err)
	}
	events := cal.Events()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if p := events[1].GetProperty(ical.ComponentPropertySummary); p == nil || p.Value != "💊 Amoxicillin - Dose #2" {
		t.Errorf("unexpected SUMMARY on second event: %+v", p)
	}
	if p := events[0].GetProperty(ical.ComponentPropertyDtStart); p == nil || p.Value != "20240115T080000" {
		t.Errorf("unexpected DTSTART on first event: %+v", p)
	}
}

func TestBuildICS_WithoutPatientOmitsLine(t *testing.T) {
	got := BuildICS(testDoses()[:1], "Ibuprofen", "", time.UnixMilli(0))

	if strings.Contains(got, "Patient:") {
		t.Error("empty patient must not produce a Patient line")
	}
	if !strings.Contains(got, `DESCRIPTION:Medication: Ibuprofen\nDose #1`) {
		t.Error("description should collapse to medication + dose number")
	}
}

func TestGoogleCalendarURL(t *testing.T) {
	got, ok := GoogleCalendarURL(testDoses(), "Amoxicillin 500mg", "Jane Doe")
	if !ok {
		t.Fatal("expected a link for a non-empty list")
	}

	if !strings.HasPrefix(got, "https://calendar.google.com/calendar/render?") {
		t.Errorf("unexpected base URL: %s", got)
	}
	// url.Values codifica espacios como "+", así que se chequea por fragmento.
	for _, want := range []string{
		"action=TEMPLATE",
		"dates=20240115T080000Z%2F20240115T081500Z",
		"Amoxicillin",
		"Jane",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("google link missing %q: %s", want, got)
		}
	}

	if _, ok := GoogleCalendarURL(nil, "Amoxicillin", ""); ok {
		t.Error("empty dose list must not produce a link")
	}
}

func TestOutlookURL(t *testing.T) {
	got, ok := OutlookURL(testDoses(), "Amoxicillin", "")
	if !ok {
		t.Fatal("expected a link for a non-empty list")
	}

	if !strings.HasPrefix(got, "https://outlook.office.com/calendar/0/action/compose?") {
		t.Errorf("unexpected base URL: %s", got)
	}
	for _, want := range []string{
		"startdt=2024-01-15T08%3A00%3A00Z",
		"enddt=2024-01-15T08%3A15%3A00Z",
		"subject=",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("outlook link missing %q: %s", want, got)
		}
	}
	if strings.Contains(got, "Patient") {
		t.Error("empty patient must not appear in the body")
	}

	if _, ok := OutlookURL([]schedule.Dose{}, "Amoxicillin", ""); ok {
		t.Error("empty dose list must not produce a link")
	}
}

func TestFileNames(t *testing.T) {
	cases := []struct {
		med      string
		ics, csv string
		pdf      string
	}{
		{"Amoxicillin", "Amoxicillin_schedule.ics", "Amoxicillin_schedule.csv", "Amoxicillin_schedule.pdf"},
		{"Amoxicillin 500 mg", "Amoxicillin_500_mg_schedule.ics", "Amoxicillin_500_mg_schedule.csv", "Amoxicillin_500_mg_schedule.pdf"},
		{"a\t b", "a_b_schedule.ics", "a_b_schedule.csv", "a_b_schedule.pdf"},
	}

	for _, tc := range cases {
		if got := ICSFileName(tc.med); got != tc.ics {
			t.Errorf("ICSFileName(%q) = %q, want %q", tc.med, got, tc.ics)
		}
		if got := CSVFileName(tc.med); got != tc.csv {
			t.Errorf("CSVFileName(%q) = %q, want %q", tc.med, got, tc.csv)
		}
		if got := PDFFileName(tc.med); got != tc.pdf {
			t.Errorf("PDFFileName(%q) = %q, want %q", tc.med, got, tc.pdf)
		}
	}
}

func TestBuildCSV(t *testing.T) {
	got := BuildCSV(testDoses(), settings.LanguageEN, false)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(lines))
	}
	if lines[0] != "Dose,Date,Time,Status" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	// Las fechas llevan coma, así que el campo va entre comillas.
	if !strings.Contains(lines[1], `"Jan 15, 2024"`) {
		t.Errorf("date field should be quoted: %q", lines[1])
	}
	if !strings.Contains(lines[1], "08:00 AM") || !strings.Contains(lines[1], "Taken") {
		t.Errorf("unexpected first row: %q", lines[1])
	}
	if !strings.Contains(lines[2], "Pending") {
		t.Errorf("untaken dose should be Pending: %q", lines[2])
	}

	gotES := BuildCSV(testDoses(), settings.LanguageES, true)
	esLines := strings.Split(gotES, "\n")
	if esLines[0] != "Dosis,Fecha,Hora,Estado" {
		t.Errorf("unexpected spanish header: %q", esLines[0])
	}
	if !strings.Contains(esLines[1], "08:00") || !strings.Contains(esLines[1], "Tomada") {
		t.Errorf("unexpected spanish first row: %q", esLines[1])
	}
}

func TestBuildPrintDocument(t *testing.T) {
	doc := BuildPrintDocument(testDoses(), "Amoxicillin", "John Doe", 2, settings.LanguageEN, true)

	if doc.Title != "Medication Schedule" {
		t.Errorf("unexpected title: %q", doc.Title)
	}
	if doc.MedicationLine != "Medication: Amoxicillin" {
		t.Errorf("unexpected medication line: %q", doc.MedicationLine)
	}
	if doc.PatientLine != "Patient: John Doe" {
		t.Errorf("unexpected patient line: %q", doc.PatientLine)
	}
	if doc.PeriodLine != "Period: Jan 15, 2024 — Jan 16, 2024" {
		t.Errorf("unexpected period line: %q", doc.PeriodLine)
	}
	if doc.Columns != 2 {
		t.Errorf("columns = %d, want 2", doc.Columns)
	}
	if doc.FileName != "Amoxicillin_schedule.pdf" {
		t.Errorf("unexpected file name: %q", doc.FileName)
	}
	if len(doc.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(doc.Rows))
	}
	if doc.Rows[0].Status != "☑ Taken" || !doc.Rows[0].Taken {
		t.Errorf("unexpected first row status: %+v", doc.Rows[0])
	}
	if doc.Rows[1].Status != "☐ Pending" {
		t.Errorf("unexpected second row status: %+v", doc.Rows[1])
	}
	if doc.Rows[0].Time != "08:00" {
		t.Errorf("24h time expected, got %q", doc.Rows[0].Time)
	}
}

func TestBuildPrintDocument_Defaults(t *testing.T) {
	doc := BuildPrintDocument(nil, "Ibuprofen", "", 7, settings.LanguageES, false)

	if doc.Columns != 1 {
		t.Errorf("invalid columns should fall back to 1, got %d", doc.Columns)
	}
	if doc.PatientLine != "" {
		t.Errorf("empty patient should omit the line, got %q", doc.PatientLine)
	}
	if doc.PeriodLine != "" {
		t.Errorf("no doses means no period line, got %q", doc.PeriodLine)
	}
	if doc.Title != "Calendario de Medicación" {
		t.Errorf("unexpected spanish title: %q", doc.Title)
	}
	if doc.Footer != "Generado con MedSchedule Pro" {
		t.Errorf("unexpected spanish footer: %q", doc.Footer)
	}
}
