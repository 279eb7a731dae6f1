// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package seasonal

import "time"

// Season is a quarter of the culinary year.
type Season int

const (
	Spring Season = iota
	Summer
	Fall
	Winter
)

// String returns the season's display label.
func (s Season) String() string {
	switch s {
	case Spring:
		return "Spring"
	case Summer:
		return "Summer"
	case Fall:
		return "Fall"
	case Winter:
		return "Winter"
	default:
		return "Unknown"
	}
}

// Months returns the calendar months belonging to the season.
func (s Season) Months() []time.Month {
	switch s {
	case Spring:
		return []time.Month{time.March, time.April, time.May}
	case Summer:
		return []time.Month{time.June, time.July, time.August}
	case Fall:
		return []time.Month{time.September, time.October, time.November}
	default:
		return []time.Month{time.December, time.January, time.February}
	}
}

// SeasonOf returns the season containing the given time.
func SeasonOf(t time.Time) Season {
	switch t.Month() {
	case time.March, time.April, time.May:
		return Spring
	case time.June, time.July, time.August:
		return Summer
	case time.September, time.October, time.November:
		return Fall
	default:
		return Winter
	}
}

// Holiday is a menu-relevant holiday. Easter and Thanksgiving have
// dynamic dates; the rest are fixed month/day pairs.
type Holiday int

const (
	NewYear Holiday = iota
	Valentine
	Easter
	IndependenceDay
	Halloween
	Thanksgiving
	Christmas
)

// String returns the holiday's display label.
func (h Holiday) String() string {
	switch h {
	case NewYear:
		return "New Year's Day"
	case Valentine:
		return "Valentine's Day"
	case Easter:
		return "Easter"
	case IndependenceDay:
		return "Independence Day"
	case Halloween:
		return "Halloween"
	case Thanksgiving:
		return "Thanksgiving"
	case Christmas:
		return "Christmas"
	default:
		return "Unknown"
	}
}

// allHolidays enumerates every holiday for date matching.
var allHolidays = []Holiday{
	NewYear, Valentine, Easter, IndependenceDay, Halloween, Thanksgiving, Christmas,
}

// Date returns the holiday's date in the given year.
func (h Holiday) Date(year int) time.Time {
	switch h {
	case NewYear:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	case Valentine:
		return time.Date(year, time.February, 14, 0, 0, 0, 0, time.UTC)
	case Easter:
		return easterDate(year)
	case IndependenceDay:
		return time.Date(year, time.July, 4, 0, 0, 0, 0, time.UTC)
	case Halloween:
		return time.Date(year, time.October, 31, 0, 0, 0, 0, time.UTC)
	case Thanksgiving:
		return thanksgivingDate(year)
	default:
		return time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC)
	}
}

// HolidayOn returns the holiday falling on the given date, if any.
func HolidayOn(t time.Time) (Holiday, bool) {
	y, m, d := t.Date()
	for _, h := range allHolidays {
		hy, hm, hd := h.Date(y).Date()
		if hy == y && hm == m && hd == d {
			return h, true
		}
	}
	return 0, false
}

// easterDate computes Easter Sunday for a year using the anonymous
// Gregorian computus.
func easterDate(year int) time.Time {
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

// thanksgivingDate computes the fourth Thursday of November.
func thanksgivingDate(year int) time.Time {
	first := time.Date(year, time.November, 1, 0, 0, 0, 0, time.UTC)
	for first.Weekday() != time.Thursday {
		first = first.AddDate(0, 0, 1)
	}
	return first.AddDate(0, 0, 21)
}
