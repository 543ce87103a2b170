package utils

import (
	"fmt"
	"time"

	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
)

// FormatPortugueseDate renders t as a pt-BR long date, e.g.
// "05 de outubro de 2026".
func FormatPortugueseDate(t time.Time) string {
	return fmt.Sprintf(constvars.ConsentHeaderDateFormat, t.Day(), constvars.PortugueseMonthNames[t.Month()-1], t.Year())
}

func FormatConsentTime(t time.Time) string {
	return t.Format(constvars.ConsentHeaderTimeFormat)
}

// LoadLocation falls back to UTC when name is empty or unknown.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	location, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return location
}
