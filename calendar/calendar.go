/*
Package calendar answers holiday and Sunday questions for Colombian dates.

PURPOSE:
  The payroll engines need to know, for any worked date, whether it is a
  Sunday or a statutory holiday. This package generates the full Colombian
  holiday set for a year from fixed rules:

  - Six fixed-date holidays (New Year, Labor Day, Independence Day,
    Battle of Boyaca, Immaculate Conception, Christmas).
  - Seven "Ley Emiliani" holidays anchored to a month/day but observed on
    the following Monday unless the anchor already falls on one.
  - Five Easter-relative holidays. Easter itself comes from the standard
    Gauss/Meeus congruence algorithm for the Gregorian calendar. Holy
    Thursday and Good Friday stay fixed; Ascension, Corpus Christi and
    Sacred Heart shift to the following Monday.

DESIGN:
  Holiday rules are pure functions of the year, so generated sets are
  cached per year with no invalidation. All lookups take ISO YYYY-MM-DD
  date strings, matching the engine's entry format. Malformed dates are
  simply "not a holiday" rather than errors.

SEE ALSO:
  - payroll: consumes this package through the Oracle interface
*/
package calendar

import (
	"sync"
	"time"
)

// Oracle is what the payroll engines need from a working calendar.
type Oracle interface {
	// IsHoliday reports whether the ISO date is a statutory holiday.
	IsHoliday(date string) bool

	// IsSunday reports whether the ISO date falls on a Sunday.
	IsSunday(date string) bool

	// HolidayName returns the holiday's name, or "" if the date is not one.
	HolidayName(date string) string
}

// Holiday is one statutory holiday in a given year.
type Holiday struct {
	Date string // YYYY-MM-DD
	Name string
	Type HolidayType
}

type HolidayType string

const (
	TypeFixed   HolidayType = "fixed"   // observed on its anchor date
	TypeMovable HolidayType = "movable" // shifted to the next Monday (Ley Emiliani)
)

// =============================================================================
// COLOMBIA - statutory calendar with per-year cache
// =============================================================================

// Colombia implements Oracle for the Colombian statutory calendar.
type Colombia struct {
	mu    sync.Mutex
	years map[int][]Holiday
}

var _ Oracle = (*Colombia)(nil)

func NewColombia() *Colombia {
	return &Colombia{years: make(map[int][]Holiday)}
}

// Holidays returns the full holiday set for a year, generating and caching
// it on first use.
func (c *Colombia) Holidays(year int) []Holiday {
	c.mu.Lock()
	defer c.mu.Unlock()

	if hs, ok := c.years[year]; ok {
		return hs
	}
	hs := Generate(year)
	c.years[year] = hs
	return hs
}

func (c *Colombia) IsHoliday(date string) bool {
	return c.HolidayName(date) != ""
}

func (c *Colombia) HolidayName(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	for _, h := range c.Holidays(t.Year()) {
		if h.Date == date {
			return h.Name
		}
	}
	return ""
}

func (c *Colombia) IsSunday(date string) bool {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	return t.Weekday() == time.Sunday
}

// =============================================================================
// HOLIDAY GENERATION
// =============================================================================

// Generate computes the Colombian holiday set for a year. Pure; callers that
// care about repeated lookups should go through Colombia's cache instead.
func Generate(year int) []Holiday {
	var hs []Holiday

	fixed := func(month time.Month, day int, name string) {
		hs = append(hs, Holiday{Date: isoDate(year, month, day), Name: name, Type: TypeFixed})
	}
	movable := func(month time.Month, day int, name string) {
		hs = append(hs, Holiday{Date: nextMonday(year, month, day), Name: name, Type: TypeMovable})
	}

	fixed(time.January, 1, "Año Nuevo")
	fixed(time.May, 1, "Día del Trabajo")
	fixed(time.July, 20, "Día de la Independencia")
	fixed(time.August, 7, "Batalla de Boyacá")
	fixed(time.December, 8, "Inmaculada Concepción")
	fixed(time.December, 25, "Navidad")

	movable(time.January, 6, "Reyes Magos")
	movable(time.March, 19, "San José")
	movable(time.June, 29, "San Pedro y San Pablo")
	movable(time.August, 15, "Asunción de la Virgen")
	movable(time.October, 12, "Día de la Raza")
	movable(time.November, 1, "Todos los Santos")
	movable(time.November, 11, "Independencia de Cartagena")

	easter := easterSunday(year)
	hs = append(hs,
		Holiday{Date: iso(easter.AddDate(0, 0, -3)), Name: "Jueves Santo", Type: TypeFixed},
		Holiday{Date: iso(easter.AddDate(0, 0, -2)), Name: "Viernes Santo", Type: TypeFixed},
	)
	easterMovable := func(offset int, name string) {
		d := easter.AddDate(0, 0, offset)
		hs = append(hs, Holiday{Date: nextMonday(d.Year(), d.Month(), d.Day()), Name: name, Type: TypeMovable})
	}
	easterMovable(43, "Ascensión del Señor")
	easterMovable(64, "Corpus Christi")
	easterMovable(71, "Sagrado Corazón de Jesús")

	return hs
}

// nextMonday applies the Ley Emiliani observance rule: keep the anchor date
// if it is already a Monday, otherwise shift forward to the next Monday.
func nextMonday(year int, month time.Month, day int) string {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	dow := int(d.Weekday())
	if dow == 1 {
		return iso(d)
	}
	until := 8 - dow
	if dow == 0 {
		until = 1
	}
	return iso(d.AddDate(0, 0, until))
}

// easterSunday computes Gregorian Easter via the Gauss/Meeus congruences.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func iso(t time.Time) string { return t.Format("2006-01-02") }

func isoDate(year int, month time.Month, day int) string {
	return iso(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// =============================================================================
// NOOP - calendar with no holidays, for tests and neutral comparisons
// =============================================================================

// Noop is an Oracle that knows no holidays; Sundays are still Sundays.
type Noop struct{}

var _ Oracle = Noop{}

func (Noop) IsHoliday(string) bool     { return false }
func (Noop) HolidayName(string) string { return "" }

func (Noop) IsSunday(date string) bool {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	return t.Weekday() == time.Sunday
}
