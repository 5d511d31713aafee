package domain

import (
	"fmt"
	"strings"
)

// Tier is one of the fixed checkout price points
type Tier int

const (
	TierUnknown Tier = 0
	Tier39      Tier = 39
	Tier49      Tier = 49
	Tier59      Tier = 59
)

// Currency is the ISO currency code used for every tier
const Currency = "eur"

const callbackPrefix = "checkout_"

var productLabels = map[Tier]string{
	Tier39: "Документ стандарт",
	Tier49: "Документ премиум",
	Tier59: "Документ юридический",
}

// Tiers returns known tiers in display order
func Tiers() []Tier {
	return []Tier{Tier39, Tier49, Tier59}
}

// ParseTier decodes a callback payload like "checkout_49".
// Anything that is not a known tier yields TierUnknown.
func ParseTier(payload string) Tier {
	if !strings.HasPrefix(payload, callbackPrefix) {
		return TierUnknown
	}

	switch strings.TrimPrefix(payload, callbackPrefix) {
	case "39":
		return Tier39
	case "49":
		return Tier49
	case "59":
		return Tier59
	}
	return TierUnknown
}

// Known reports whether t is one of the three price points
func (t Tier) Known() bool {
	_, ok := productLabels[t]
	return ok
}

// PriceEUR returns the price in whole euros
func (t Tier) PriceEUR() int {
	if !t.Known() {
		return 0
	}
	return int(t)
}

// UnitAmount returns the price in minor units (cents)
func (t Tier) UnitAmount() int64 {
	return int64(t.PriceEUR()) * 100
}

// ProductLabel returns the product name shown on the checkout page
func (t Tier) ProductLabel() string {
	return productLabels[t]
}

// CallbackData returns the inline button payload for the tier
func (t Tier) CallbackData() string {
	return fmt.Sprintf("%s%d", callbackPrefix, t.PriceEUR())
}

// ButtonText returns the price label for the inline button
func (t Tier) ButtonText() string {
	return fmt.Sprintf("💳 %d€", t.PriceEUR())
}

func (t Tier) String() string {
	if !t.Known() {
		return "unknown"
	}
	return fmt.Sprintf("%d", int(t))
}
