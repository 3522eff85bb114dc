package format

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
)

const day = 24 * time.Hour

// DaysBetween is the absolute distance between a and b in whole days,
// rounded to the nearest day.
func DaysBetween(a, b time.Time) int {
	return int(math.Round(math.Abs(float64(b.Sub(a))) / float64(day)))
}

// MovementDate renders when a movement happened relative to now: "Today",
// "Yesterday", "N days ago" up to a week, and the locale calendar date
// beyond that.
func MovementDate(date, now time.Time, locale string) string {
	switch days := DaysBetween(date, now); {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days <= 7:
		return fmt.Sprintf("%d days ago", days)
	}
	return CalendarDate(date, locale)
}

// Layouts keyed by BCP 47 tag. A tag falls back to its base language and
// then to ISO 8601.
var dateLayouts = map[string]string{
	"en-US": "1/2/2006",
	"en-GB": "02/01/2006",
	"en":    "1/2/2006",
	"pt":    "02/01/2006",
	"es":    "2/1/2006",
	"fr":    "02/01/2006",
	"it":    "2/1/2006",
	"de":    "2.1.2006",
	"nl":    "2-1-2006",
	"ja":    "2006/1/2",
	"zh":    "2006/1/2",
}

const isoLayout = "2006-01-02"

func layoutFor(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return isoLayout
	}
	base, _ := tag.Base()
	region, conf := tag.Region()
	if conf == language.Exact {
		if l, ok := dateLayouts[base.String()+"-"+region.String()]; ok {
			return l
		}
	}
	if l, ok := dateLayouts[base.String()]; ok {
		return l
	}
	return isoLayout
}

// CalendarDate formats the date part of t the way locale writes it.
func CalendarDate(t time.Time, locale string) string {
	return t.Format(layoutFor(locale))
}

// Timestamp formats t as the locale date plus a 24h clock, for the
// "as of" label shown after login.
func Timestamp(t time.Time, locale string) string {
	return CalendarDate(t, locale) + ", " + t.Format("15:04")
}
