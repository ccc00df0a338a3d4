// Package catalog serves the read-only species and boss tier data.
package catalog

import (
	"log/slog"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/errors"
)

// Catalog looks up species and boss tiers by key. Keys are matched
// case-insensitively.
type Catalog struct {
	species    map[string]*entities.Species
	bossTiers  map[string]*entities.BossTier
	sorted     []*entities.Species
	tierLookup []string
}

// Config names the catalog files to load
type Config struct {
	SpeciesPath  string
	BossTierPath string
}

// Load reads both files. A missing or unreadable file yields an empty
// dataset and a warning so the service can still start.
func Load(cfg Config) *Catalog {
	species := map[string]*entities.Species{}
	if err := readFile(cfg.SpeciesPath, &species); err != nil {
		slog.Warn("Species catalog unavailable", "path", cfg.SpeciesPath, "error", err)
		species = map[string]*entities.Species{}
	}

	tiers := map[string]*entities.BossTier{}
	if err := readFile(cfg.BossTierPath, &tiers); err != nil {
		slog.Warn("Boss tier catalog unavailable", "path", cfg.BossTierPath, "error", err)
		tiers = map[string]*entities.BossTier{}
	}

	c := New(species, tiers)
	slog.Info("Catalog loaded", "species", len(c.species), "boss_tiers", len(c.bossTiers))
	return c
}

func readFile(path string, into any) error {
	if path == "" {
		return errors.InvalidArgument("no path configured")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", path)
	}
	if err := yaml.Unmarshal(data, into); err != nil {
		return errors.Wrapf(err, "failed to parse %s", path)
	}
	return nil
}

// New builds a catalog from in-memory data. Map keys become entry keys.
func New(species map[string]*entities.Species, tiers map[string]*entities.BossTier) *Catalog {
	c := &Catalog{
		species:   make(map[string]*entities.Species, len(species)),
		bossTiers: make(map[string]*entities.BossTier, len(tiers)),
	}

	for key, sp := range species {
		if sp == nil {
			continue
		}
		entry := *sp
		entry.Key = strings.ToLower(key)
		c.species[entry.Key] = &entry
		c.sorted = append(c.sorted, &entry)
	}
	sort.Slice(c.sorted, func(i, j int) bool {
		a, b := c.sorted[i], c.sorted[j]
		if a.SortID() != b.SortID() {
			return a.SortID() < b.SortID()
		}
		return a.Key < b.Key
	})

	for key, tier := range tiers {
		if tier == nil {
			continue
		}
		entry := *tier
		entry.Key = strings.ToLower(key)
		c.bossTiers[entry.Key] = &entry
		c.tierLookup = append(c.tierLookup, entry.Key)
	}
	sort.Strings(c.tierLookup)

	return c
}

// Species returns the species for key
func (c *Catalog) Species(key string) (*entities.Species, error) {
	sp, ok := c.species[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return nil, errors.NotFoundf("Unknown TAC '%s'.", key)
	}
	return sp, nil
}

// HasSpecies reports whether key is in the catalog
func (c *Catalog) HasSpecies(key string) bool {
	_, ok := c.species[strings.ToLower(key)]
	return ok
}

// AllSpecies returns every species ordered by catalog id
func (c *Catalog) AllSpecies() []*entities.Species {
	return c.sorted
}

// SortID returns the catalog order for key; unknown species sort last
func (c *Catalog) SortID(key string) int {
	if sp, ok := c.species[strings.ToLower(key)]; ok {
		return sp.SortID()
	}
	return (&entities.Species{}).SortID()
}

// BossTier returns the tier for key
func (c *Catalog) BossTier(key string) (*entities.BossTier, error) {
	tier, ok := c.bossTiers[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return nil, errors.NotFoundf("Unknown boss tier '%s'.", key)
	}
	return tier, nil
}

// BossTierKeys returns the configured tier keys sorted
func (c *Catalog) BossTierKeys() []string {
	return c.tierLookup
}
