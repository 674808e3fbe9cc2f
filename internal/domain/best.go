package domain

import "math"

// BestChoice picks the lowest-priced transport from results. The first
// element is the initial candidate and only a strictly lower price
// replaces it, so ties keep the earliest element. Others preserves the
// incoming order minus the winner. ok is false for an empty slice.
func BestChoice(results []Transport) (best Transport, others []Transport, ok bool) {
	if len(results) == 0 {
		return Transport{}, nil, false
	}

	bestIdx := 0
	for i, item := range results {
		if item.Price < results[bestIdx].Price {
			bestIdx = i
		}
	}

	others = make([]Transport, 0, len(results)-1)
	for i, item := range results {
		if i == bestIdx {
			continue
		}
		others = append(others, item)
	}
	return results[bestIdx], others, true
}

// Round2 rounds to two decimal places, the precision every displayed
// amount uses.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// TotalFare is unit price times traveler count, rounded to 2 decimals.
func TotalFare(unitPrice float64, travelers int) float64 {
	return Round2(unitPrice * float64(travelers))
}
