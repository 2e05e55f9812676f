package table

import "slices"

// Pot is one tier of the pot: the chips and the players who can win them.
// Folded players' chips stay in the amount but never in the eligibility.
type Pot struct {
	Amount   int
	Eligible []int
}

// potLadder splits collected contributions into a main pot and side pots.
// Tiers are the distinct contribution levels of unfolded players,
// ascending, so the main pot comes first and the shallowest-stacked
// all-in player is eligible only for it.
func potLadder(contributions []int, folded []bool) []Pot {
	var levels []int
	for i, c := range contributions {
		if folded[i] || c == 0 {
			continue
		}
		if !slices.Contains(levels, c) {
			levels = append(levels, c)
		}
	}
	slices.Sort(levels)

	var pots []Pot
	prev := 0
	for li, level := range levels {
		last := li == len(levels)-1
		pot := Pot{}
		for i, c := range contributions {
			capped := c
			if !last && capped > level {
				capped = level
			}
			if capped > prev {
				pot.Amount += capped - prev
			}
			if !folded[i] && c >= level {
				pot.Eligible = append(pot.Eligible, i)
			}
		}
		if pot.Amount > 0 {
			pots = append(pots, pot)
		}
		prev = level
	}
	return pots
}
