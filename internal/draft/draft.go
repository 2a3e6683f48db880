// Package draft holds the static faction catalog, the mode-driven pool
// builder, and the private-option assignment engine.
package draft

// Source identifies which content group a faction ships with.
type Source string

const (
	SourceBase   Source = "base"
	SourcePok    Source = "pok"
	SourceCodex1 Source = "codex1"
	SourceCodex2 Source = "codex2"
)

// Faction is a single entry from the static catalog. Values are immutable.
type Faction struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Source Source `json:"source"`
}

// ModeConfig selects which content groups are eligible for a draft.
// IncludeBase must be true for any valid configuration.
type ModeConfig struct {
	IncludeBase   bool `json:"includeBase"`
	IncludePok    bool `json:"includePok"`
	IncludeCodex1 bool `json:"includeCodex1"`
	IncludeCodex2 bool `json:"includeCodex2"`
}

// EnabledSources expands the config into the set of source tags it allows.
func (m ModeConfig) EnabledSources() map[Source]bool {
	enabled := map[Source]bool{SourceBase: true}
	if m.IncludePok {
		enabled[SourcePok] = true
	}
	if m.IncludeCodex1 {
		enabled[SourceCodex1] = true
	}
	if m.IncludeCodex2 {
		enabled[SourceCodex2] = true
	}
	return enabled
}
