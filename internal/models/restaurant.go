package models

import (
	"errors"
	"fmt"
)

// Restaurant is one normalized catalog record. Records are built once per
// ingestion run and never mutated afterwards.
type Restaurant struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Description string    `json:"description"`
	Cuisine     string    `json:"cuisine"`
	Rating      float64   `json:"rating"`
	PriceTier   PriceTier `json:"priceTier"`
	OpenTime    string    `json:"openTime"`
	CloseTime   string    `json:"closeTime"`
	HoursRaw    string    `json:"hoursRaw,omitempty"`
	Coordinates Location  `json:"coordinates"`
}

// ErrInvalidRecord marks a stored record that breaks the catalog rules.
var ErrInvalidRecord = errors.New("invalid restaurant record")

// ValidClock reports whether s is a zero-padded 24-hour "HH:MM" time.
func ValidClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	return hour <= 23 && minute <= 59
}

func (r Restaurant) Validate() error {
	switch {
	case !r.PriceTier.Valid():
		return fmt.Errorf("%w %q: price tier %d", ErrInvalidRecord, r.ID, int(r.PriceTier))
	case !ValidClock(r.OpenTime) || !ValidClock(r.CloseTime):
		return fmt.Errorf("%w %q: hours %q-%q", ErrInvalidRecord, r.ID, r.OpenTime, r.CloseTime)
	case !r.Coordinates.Valid():
		return fmt.Errorf("%w %q: coordinates %s", ErrInvalidRecord, r.ID, r.Coordinates)
	}
	return nil
}
