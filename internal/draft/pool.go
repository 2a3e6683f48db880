package draft

import "github.com/tidraft/tidraft/internal/apperr"

// BuildPool filters the catalog down to the factions eligible under mode.
// The result keeps catalog order; shuffling happens later, at assignment.
// Pure function of mode and the static catalog.
func BuildPool(mode ModeConfig) ([]Faction, error) {
	if !mode.IncludeBase {
		return nil, apperr.New(apperr.Configuration, "base game must be included")
	}

	enabled := mode.EnabledSources()
	pool := make([]Faction, 0, len(Factions))
	for _, f := range Factions {
		if enabled[f.Source] {
			pool = append(pool, f)
		}
	}
	return pool, nil
}
