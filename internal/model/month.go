package model

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrUnknownMonth is returned when a month name cannot be resolved.
var ErrUnknownMonth = errors.New("unknown month")

// Month is a calendar month, 1 = Enero.
type Month int

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Setiembre", "Octubre", "Noviembre", "Diciembre",
}

// Months returns the twelve months in calendar order.
func Months() []Month {
	months := make([]Month, 0, len(monthNames))
	for i := range monthNames {
		months = append(months, Month(i+1))
	}

	return months
}

// Valid reports whether m is in 1..12.
func (m Month) Valid() bool {
	return m >= 1 && int(m) <= len(monthNames)
}

// String returns the canonical month name used by the rainfall API.
func (m Month) String() string {
	if !m.Valid() {
		return ""
	}

	return monthNames[m-1]
}

// MarshalJSON writes the canonical name.
func (m Month) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts anything ParseMonth accepts, as string or number.
func (m *Month) UnmarshalJSON(b []byte) error {
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var s string
	switch v := raw.(type) {
	case string:
		s = v
	case float64:
		s = strconv.Itoa(int(v))
	default:
		return ErrUnknownMonth
	}

	parsed, err := ParseMonth(s)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

// ParseMonth resolves numeric months ("1", "01"), names in any case with or
// without accents, and three-letter prefixes ("set", "Dic").
func ParseMonth(s string) (Month, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrUnknownMonth
	}

	if n, err := strconv.Atoi(s); err == nil {
		m := Month(n)
		if !m.Valid() {
			return 0, ErrUnknownMonth
		}
		return m, nil
	}

	folded := Fold(s)
	for i, name := range monthNames {
		if Fold(name) == folded {
			return Month(i + 1), nil
		}
	}

	if len([]rune(folded)) < 3 {
		return 0, ErrUnknownMonth
	}

	prefix := string([]rune(folded)[:3])
	for i, name := range monthNames {
		if strings.HasPrefix(Fold(name), prefix) {
			return Month(i + 1), nil
		}
	}

	return 0, ErrUnknownMonth
}

// SameMonth compares two month labels after canonicalization, falling back
// to a folded string comparison when either side does not parse.
func SameMonth(a, b string) bool {
	ma, errA := ParseMonth(a)
	mb, errB := ParseMonth(b)
	if errA == nil && errB == nil {
		return ma == mb
	}

	return Fold(a) == Fold(b)
}

// Fold lower-cases s and strips diacritics, so "Asunción" folds to "asuncion".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	return cases.Fold().String(stripped)
}
