package seeddata

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"

	"github.com/giftbench/giftbench/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	donorTierDivisor   = 8
)

// Constants for donor generation ranges (GBP for monetary values).
const (
	modestIncomeMin    = 500.0
	modestIncomeRange  = 4500.0
	midIncomeMin       = 5000.0
	midIncomeRange     = 45000.0
	majorIncomeMin     = 50000.0
	majorIncomeRange   = 450000.0
	transformIncomeMin = 500000.0
	transformIncomeMax = 5000000.0

	giftCountMax    = 24
	interactionsMax = 40
	eventsMax       = 12
	largestGiftBump = 1.5
)

// Constants for donor tier cases.
const (
	caseModestDonor = iota
	caseMidDonor
	caseMajorDonor
	caseTransformDonor
	caseLapsedDonor
	caseGrowingDonor
	caseDecliningDonor
	caseErraticDonor
)

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// getRandomInt returns a random int in [0, max).
func getRandomInt(max int) int {
	if max <= 0 {
		return 0
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max)))
	return int(n.Int64())
}

// generateDonors creates the configured number of donor rows.
func generateDonors(ctx context.Context, config *Config, stats *Stats) []Donor {
	logger.Get().Info(ctx, "generating donor rows",
		logger.Int("numDonors", config.NumDonors),
		logger.Int("years", config.Years))

	donors := make([]Donor, config.NumDonors)
	for i := range donors {
		donors[i] = generateSingleDonor(config.Years)
	}

	stats.DonorsGenerated = len(donors)
	return donors
}

// generateSingleDonor creates one donor with a tiered giving profile.
func generateSingleDonor(years int) Donor {
	base := generateTieredIncome()
	trend := generateTrendFactor()

	d := Donor{
		Name:         "Prospect " + uuid.NewString()[:8],
		Income:       make([]float64, years),
		GiftCounts:   make([]int, years),
		Interactions: getRandomInt(interactionsMax + 1),
		Events:       getRandomInt(eventsMax + 1),
	}

	level := base
	for y := 0; y < years; y++ {
		d.Income[y] = level * (0.8 + getRandomFloat()*0.4)
		d.GiftCounts[y] = 1 + getRandomInt(giftCountMax)
		if d.Income[y] > d.LargestGift {
			d.LargestGift = d.Income[y]
		}
		level *= trend
	}
	d.LargestGift *= 1 + getRandomFloat()*(largestGiftBump-1)

	return d
}

// generateTieredIncome draws a base annual giving level from a tiered
// distribution so the seeded file spans modest to transformational donors.
func generateTieredIncome() float64 {
	tier, _ := rand.Int(rand.Reader, big.NewInt(donorTierDivisor))
	switch tier.Int64() {
	case caseModestDonor, caseLapsedDonor:
		return modestIncomeMin + getRandomFloat()*modestIncomeRange
	case caseMidDonor, caseGrowingDonor, caseDecliningDonor:
		return midIncomeMin + getRandomFloat()*midIncomeRange
	case caseMajorDonor, caseErraticDonor:
		return majorIncomeMin + getRandomFloat()*majorIncomeRange
	case caseTransformDonor:
		return transformIncomeMin + getRandomFloat()*(transformIncomeMax-transformIncomeMin)
	default:
		return modestIncomeMin + getRandomFloat()*modestIncomeRange
	}
}

// generateTrendFactor returns a year-over-year multiplier.
func generateTrendFactor() float64 {
	tier, _ := rand.Int(rand.Reader, big.NewInt(donorTierDivisor))
	switch tier.Int64() {
	case caseGrowingDonor:
		return 1.1 + getRandomFloat()*0.3
	case caseDecliningDonor, caseLapsedDonor:
		return 0.5 + getRandomFloat()*0.4
	case caseErraticDonor:
		return 0.6 + getRandomFloat()*0.9
	default:
		return 0.95 + getRandomFloat()*0.1
	}
}
