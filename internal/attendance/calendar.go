// Package attendance keeps the per-student day attendance ledger.
package attendance

import (
	"fmt"
	"sort"
	"time"

	"cbrarecords/internal/apperr"
)

const (
	MinYear = 2024
	MaxYear = 2034
)

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in month of year, or 0 for an
// invalid month.
func DaysInMonth(month, year int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month-1]
}

// Date is a calendar day key.
type Date struct {
	Year  int
	Month int
	Day   int
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Before orders dates chronologically.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// Validate checks the date against the supported range.
func (d Date) Validate() error {
	if d.Year < MinYear || d.Year > MaxYear {
		return apperr.New(apperr.KindOutOfRange, "year must be between %d-%d", MinYear, MaxYear)
	}
	if d.Month < 1 || d.Month > 12 {
		return apperr.New(apperr.KindOutOfRange, "invalid month %d", d.Month)
	}
	if d.Day < 1 || d.Day > DaysInMonth(d.Month, d.Year) {
		return apperr.New(apperr.KindOutOfRange, "invalid day %d for %04d-%02d", d.Day, d.Year, d.Month)
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD key and validates its range.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, apperr.Wrap(apperr.KindInvalidFormat, err, "invalid date %q", s)
	}
	d := Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// Entry is one marked day.
type Entry struct {
	Date    Date
	Present bool
}

// Calendar maps marked days to present/absent.
type Calendar struct {
	days map[Date]bool
}

func New() *Calendar {
	return &Calendar{days: make(map[Date]bool)}
}

// Mark records attendance for a day, overwriting any previous mark.
func (c *Calendar) Mark(year, month, day int, present bool) error {
	d := Date{Year: year, Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return err
	}
	if c.days == nil {
		c.days = make(map[Date]bool)
	}
	c.days[d] = present
	return nil
}

// Query returns the recorded value. Unmarked days read as absent.
func (c *Calendar) Query(year, month, day int) bool {
	return c.days[Date{Year: year, Month: month, Day: day}]
}

// IsMarked reports whether the day has an entry.
func (c *Calendar) IsMarked(year, month, day int) bool {
	_, ok := c.days[Date{Year: year, Month: month, Day: day}]
	return ok
}

func (c *Calendar) TotalPresent() int {
	count := 0
	for _, present := range c.days {
		if present {
			count++
		}
	}
	return count
}

func (c *Calendar) TotalAbsent() int {
	count := 0
	for _, present := range c.days {
		if !present {
			count++
		}
	}
	return count
}

func (c *Calendar) TotalMarkedDays() int {
	return len(c.days)
}

// Entries returns all marked days in chronological order.
func (c *Calendar) Entries() []Entry {
	entries := make([]Entry, 0, len(c.days))
	for d, present := range c.days {
		entries = append(entries, Entry{Date: d, Present: present})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries
}
