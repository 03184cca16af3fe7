// Package datefmt renderiza timestamps para pantalla, PDF y exports.
// Funciones puras: mismo timestamp + idioma + flag 12/24h => misma salida.
// El idioma solo afecta el nombre del mes y el token AM/PM; los campos
// numéricos son invariantes (dos dígitos, año de cuatro).
package datefmt

import (
	"fmt"
	"time"
)

// Idiomas soportados. El dominio solo maneja dos, así que el despacho es
// un lookup cerrado, no un catálogo abierto de locales.
const (
	LangEN = "en"
	LangES = "es"
)

var monthsEN = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
var monthsES = [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"}

func monthName(m time.Month, lang string) string {
	if lang == LangES {
		return monthsES[m-1]
	}
	return monthsEN[m-1]
}

func meridiem(t time.Time, lang string) string {
	am := t.Hour() < 12
	if lang == LangES {
		if am {
			return "a. m."
		}
		return "p. m."
	}
	if am {
		return "AM"
	}
	return "PM"
}

// FormatDate => "Jan 15, 2024" / "ene 15, 2024".
func FormatDate(t time.Time, lang string) string {
	return fmt.Sprintf("%s %02d, %04d", monthName(t.Month(), lang), t.Day(), t.Year())
}

// FormatTime => "14:30" en 24h, "02:30 PM" en 12h.
// La hora de 12h siempre lleva dos dígitos (02, no 2) y 12 para medianoche/mediodía.
func FormatTime(t time.Time, lang string, use24h bool) string {
	if use24h {
		return t.Format("15:04")
	}
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%02d:%02d %s", h, t.Minute(), meridiem(t, lang))
}

// FormatEstimatedEnd combina fecha y hora para el display de fin estimado:
// "Jan 15, 02:30 PM" (sin año).
func FormatEstimatedEnd(t time.Time, lang string, use24h bool) string {
	return fmt.Sprintf("%s %02d, %s", monthName(t.Month(), lang), t.Day(), FormatTime(t, lang, use24h))
}
