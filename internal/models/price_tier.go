package models

import (
	"fmt"
	"strings"
)

// PriceTier is an ordinal affordability bucket.
type PriceTier int

const (
	PriceBudget PriceTier = iota + 1
	PriceModerate
	PriceUpscale
	PricePremium
)

var priceTierNames = map[PriceTier]string{
	PriceBudget:   "Budget",
	PriceModerate: "Moderate",
	PriceUpscale:  "Upscale",
	PricePremium:  "Premium",
}

func (p PriceTier) Valid() bool {
	return p >= PriceBudget && p <= PricePremium
}

func (p PriceTier) String() string {
	if name, ok := priceTierNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PriceTier(%d)", int(p))
}

// Symbol renders the tier as a run of dollar signs, "$" through "$$$$".
func (p PriceTier) Symbol() string {
	if !p.Valid() {
		return ""
	}
	return strings.Repeat("$", int(p))
}

func (p PriceTier) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid price tier %d", int(p))
	}
	return []byte(p.Symbol()), nil
}

// UnmarshalText accepts either the dollar form or the tier name.
func (p *PriceTier) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s != "" && strings.Trim(s, "$") == "" && len(s) <= int(PricePremium) {
		*p = PriceTier(len(s))
		return nil
	}
	for tier, name := range priceTierNames {
		if strings.EqualFold(name, s) {
			*p = tier
			return nil
		}
	}
	return fmt.Errorf("unknown price tier %q", s)
}
