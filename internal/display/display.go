// Package display renders catalog records for terminal output.
package display

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/chrisdamba/foodcatalog/internal/models"
)

const defaultIcon = "🍽️"

var cuisineIcons = map[string]string{
	"Chinese":       "🥡",
	"Italian":       "🍝",
	"Mexican":       "🌮",
	"Japanese":      "🍣",
	"American":      "🍔",
	"Indian":        "🍛",
	"Vietnamese":    "🍜",
	"Mediterranean": "🥙",
	"Korean":        "🍲",
	"French":        "🥐",
	"Thai":          "🍜",
	"Vegan":         "🥗",
	"Seafood":       "🦐",
	"Greek":         "🥙",
	"Ethiopian":     "🍲",
	"Brazilian":     "🥩",
	"Peruvian":      "🐟",
	"Spanish":       "🥘",
}

// CuisineIcon returns the icon for an exact cuisine name.
func CuisineIcon(cuisine string) string {
	if icon, ok := cuisineIcons[cuisine]; ok {
		return icon
	}
	return defaultIcon
}

// minutesOf parses a canonical "HH:MM" time into minutes after midnight.
func minutesOf(clock string) (int, bool) {
	h, m, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

// FormatClock turns "13:30" into "1:30 PM". Anything that is not a
// canonical time is returned as is.
func FormatClock(clock string) string {
	total, ok := minutesOf(clock)
	if !ok {
		return clock
	}
	hour, minute := total/60, total%60
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	switch {
	case hour == 0:
		hour = 12
	case hour > 12:
		hour -= 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, period)
}

// IsOpenAt reports whether at falls in [opening, closing). A closing time
// earlier than the opening time wraps past midnight.
func IsOpenAt(opening, closing string, at time.Time) bool {
	from, ok := minutesOf(opening)
	if !ok {
		return false
	}
	until, ok := minutesOf(closing)
	if !ok {
		return false
	}
	now := at.Hour()*60 + at.Minute()
	if from <= until {
		return now >= from && now < until
	}
	return now >= from || now < until
}

// RenderStars draws a five star scale with an optional half star.
func RenderStars(rating float64) string {
	rating = math.Max(0, math.Min(5, rating))
	full := int(math.Floor(rating))
	half := rating-float64(full) >= 0.5
	empty := 5 - full
	var b strings.Builder
	b.WriteString(strings.Repeat("★", full))
	if half {
		b.WriteString("½")
		empty--
	}
	b.WriteString(strings.Repeat("☆", empty))
	return b.String()
}

// Hours is the human form of a record's operating hours.
func Hours(r models.Restaurant) string {
	return FormatClock(r.OpenTime) + " - " + FormatClock(r.CloseTime)
}

// OpenLabel is "Open" or "Closed" for the given time.
func OpenLabel(r models.Restaurant, at time.Time) string {
	if IsOpenAt(r.OpenTime, r.CloseTime, at) {
		return "Open"
	}
	return "Closed"
}

// Card is a one-line summary of a record.
func Card(r models.Restaurant, at time.Time) string {
	return fmt.Sprintf("%s %s  %s  %s %.1f  %s  %s (%s)",
		CuisineIcon(r.Cuisine), r.Name, r.PriceTier.Symbol(),
		RenderStars(r.Rating), r.Rating, r.Cuisine, Hours(r), OpenLabel(r, at))
}
