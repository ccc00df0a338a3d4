package entities

import "strings"

// Clan is one of the fixed starter clans
type Clan struct {
	Key     string
	Name    string
	Icon    string
	Lore    string
	Aliases []string
}

// Clans returns the clan table in display order
func Clans() []Clan {
	return []Clan{
		{Key: "genesis", Name: "Genesis", Icon: "🐦‍⬛", Lore: "Seekers of first light and embered origins.", Aliases: []string{"gen", "g"}},
		{Key: "lambda", Name: "Lambda", Icon: "🐏", Lore: "Keepers of logic, recursion, and order.", Aliases: []string{"lam", "lmb", "l"}},
		{Key: "vortex", Name: "Vortex", Icon: "🎱", Lore: "Gamblers of the cosmic spiral; embrace chaos.", Aliases: []string{"vor", "v"}},
		{Key: "nexus", Name: "Nexus", Icon: "🐺", Lore: "Hunters of convergence; where paths entwine.", Aliases: []string{"nex", "nx"}},
		{Key: "mythos", Name: "Mythos", Icon: "⚡", Lore: "Story-forgers; thunder that writes legends.", Aliases: []string{"myth", "m"}},
		{Key: "horizons", Name: "Horizons", Icon: "🌇", Lore: "Wanderers who chart edges of the Rift.", Aliases: []string{"hor", "hz"}},
	}
}

// LookupClan resolves a key, alias or display name
func LookupClan(name string) (Clan, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return Clan{}, false
	}
	for _, c := range Clans() {
		if c.Key == n || strings.ToLower(c.Name) == n {
			return c, true
		}
		for _, a := range c.Aliases {
			if a == n {
				return c, true
			}
		}
	}
	return Clan{}, false
}
