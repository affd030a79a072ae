package ingest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/chrisdamba/foodcatalog/internal/models"
)

var clockPattern = regexp.MustCompile(`(?i)(\d{1,2}):?(\d{2})?\s*(AM|PM)`)

// ParseOperatingHours extracts canonical opening and closing times from a
// free-text hours string. The first clock time found opens and the last one
// closes, so "Mon-Fri 8AM-5PM, Sat 9AM-1PM" yields 08:00-13:00. Fewer than two
// usable times yields the default 11:00-22:00 pair.
func ParseOperatingHours(hours string) (opening, closing string) {
	var times []string
	for _, m := range clockPattern.FindAllStringSubmatch(hours, -1) {
		if t, ok := to24Hour(m[1], m[2], m[3]); ok {
			times = append(times, t)
		}
	}
	if len(times) < 2 {
		return models.DefaultOpenTime, models.DefaultCloseTime
	}
	return times[0], times[len(times)-1]
}

// to24Hour converts a 12-hour reading. Hours outside 1-12 or minutes past 59
// are not clock times and are rejected.
func to24Hour(hourText, minuteText, period string) (string, bool) {
	hour, err := strconv.Atoi(hourText)
	if err != nil || hour < 1 || hour > 12 {
		return "", false
	}
	minute := 0
	if minuteText != "" {
		minute, err = strconv.Atoi(minuteText)
		if err != nil || minute > 59 {
			return "", false
		}
	}

	switch {
	case strings.EqualFold(period, "AM") && hour == 12:
		hour = 0
	case strings.EqualFold(period, "PM") && hour != 12:
		hour += 12
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), true
}
