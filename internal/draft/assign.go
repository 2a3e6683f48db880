package draft

import (
	"math/rand"

	"github.com/tidraft/tidraft/internal/apperr"
)

// Assign shuffles a copy of pool and deals consecutive disjoint pairs to the
// given player ids, in roster order. Every player receives exactly two
// distinct factions and no faction appears in two players' pairs.
//
// The shuffle is an unbiased Fisher-Yates over the injected rng, so a client
// cannot infer another player's options from its own. Neither input slice is
// mutated.
func Assign(playerIDs []string, pool []Faction, rng *rand.Rand) (map[string][]Faction, error) {
	required := len(playerIDs) * 2
	if len(pool) < required {
		return nil, apperr.New(apperr.InsufficientPool,
			"not enough factions for draft: need %d, got %d", required, len(pool))
	}

	shuffled := make([]Faction, len(pool))
	copy(shuffled, pool)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	options := make(map[string][]Faction, len(playerIDs))
	for i, id := range playerIDs {
		options[id] = []Faction{shuffled[i*2], shuffled[i*2+1]}
	}
	return options, nil
}
