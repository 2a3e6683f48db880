package draft

// Factions is the static catalog, in canonical catalog order. BuildPool
// filters it; nothing mutates it.
var Factions = []Faction{
	{ID: "arborec", Name: "The Arborec", Source: SourceBase},
	{ID: "barony-of-letnev", Name: "The Barony of Letnev", Source: SourceBase},
	{ID: "clan-of-saar", Name: "The Clan of Saar", Source: SourceBase},
	{ID: "embers-of-muaat", Name: "The Embers of Muaat", Source: SourceBase},
	{ID: "emirates-of-hacan", Name: "The Emirates of Hacan", Source: SourceBase},
	{ID: "federation-of-sol", Name: "The Federation of Sol", Source: SourceBase},
	{ID: "ghosts-of-creuss", Name: "The Ghosts of Creuss", Source: SourceBase},
	{ID: "l1z1x-mindnet", Name: "The L1Z1X Mindnet", Source: SourceBase},
	{ID: "mentak-coalition", Name: "The Mentak Coalition", Source: SourceBase},
	{ID: "naalu-collective", Name: "The Naalu Collective", Source: SourceBase},
	{ID: "nekro-virus", Name: "The Nekro Virus", Source: SourceBase},
	{ID: "sardakk-norr", Name: "Sardakk N'orr", Source: SourceBase},
	{ID: "universities-of-jol-nar", Name: "The Universities of Jol-Nar", Source: SourceBase},
	{ID: "winnu", Name: "The Winnu", Source: SourceBase},
	{ID: "xxcha-kingdom", Name: "The Xxcha Kingdom", Source: SourceBase},
	{ID: "yin-brotherhood", Name: "The Yin Brotherhood", Source: SourceBase},
	{ID: "yssaril-tribes", Name: "The Yssaril Tribes", Source: SourceBase},

	{ID: "argent-flight", Name: "The Argent Flight", Source: SourcePok},
	{ID: "empyrean", Name: "The Empyrean", Source: SourcePok},
	{ID: "mahact-gene-sorcerers", Name: "The Mahact Gene-Sorcerers", Source: SourcePok},
	{ID: "naaz-rokha-alliance", Name: "The Naaz-Rokha Alliance", Source: SourcePok},
	{ID: "nomad", Name: "The Nomad", Source: SourcePok},
	{ID: "titans-of-ul", Name: "The Titans of Ul", Source: SourcePok},
	{ID: "vuilraith-cabal", Name: "The Vuil'Raith Cabal", Source: SourcePok},

	{ID: "keleres-argent", Name: "The Council Keleres - Argent", Source: SourceCodex1},

	{ID: "keleres-mentak", Name: "The Council Keleres - Mentak", Source: SourceCodex2},
	{ID: "keleres-xxcha", Name: "The Council Keleres - Xxcha", Source: SourceCodex2},
}

// FactionByID returns the catalog entry for an id, if present.
func FactionByID(id string) (Faction, bool) {
	for _, f := range Factions {
		if f.ID == id {
			return f, true
		}
	}
	return Faction{}, false
}
