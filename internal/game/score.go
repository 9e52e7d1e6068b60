package game

import (
	"math"

	"github.com/thryft-app/thryft/internal/models"
)

const (
	// RequiredPoints is awarded per required category worn
	RequiredPoints = 5
	// BonusPoints is awarded per bonus category worn
	BonusPoints = 3
	// TimeBonusFactor scales the seconds left on the clock
	TimeBonusFactor = 0.5
)

// Score computes the points for wearing eq against challenge c with
// timeRemaining seconds left. The required and bonus lists are sets: a
// category listed twice counts once. It does not check the submission rules.
func Score(eq Equipment, c models.Challenge, timeRemaining int) int {
	return RequiredPoints*wornCount(eq, c.RequiredCategories) +
		BonusPoints*wornCount(eq, c.BonusCategories) +
		TimeBonus(timeRemaining)
}

// wornCount counts the distinct occupied slots among categories
func wornCount(eq Equipment, categories []string) int {
	var seen [slotCount]bool
	n := 0
	for _, cat := range categories {
		slot, ok := SlotForCategory(cat)
		if !ok || seen[slot] {
			continue
		}
		seen[slot] = true
		if eq.Occupied(slot) {
			n++
		}
	}
	return n
}

// TimeBonus returns floor(timeRemaining * TimeBonusFactor); negative input counts as zero
func TimeBonus(timeRemaining int) int {
	if timeRemaining <= 0 {
		return 0
	}
	return int(math.Floor(float64(timeRemaining) * TimeBonusFactor))
}
