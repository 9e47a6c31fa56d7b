package learnset

import (
	"github.com/KirkDiggler/rpg-legality/internal/entities/game"
	"github.com/KirkDiggler/rpg-legality/internal/errors"
	"github.com/KirkDiggler/rpg-legality/internal/pkg/experience"
)

// Registry is the process-wide, read-only set of release tables keyed by the
// release each table was dumped from.
type Registry struct {
	tables   map[game.Version]*Table
	versions []game.Version
}

// NewRegistry validates a dataset and builds the immutable table set from it.
// The dataset is not retained.
func NewRegistry(ds *Dataset) (*Registry, error) {
	if ds == nil {
		return nil, errors.InvalidArgument("dataset is required")
	}

	r := &Registry{
		tables: make(map[game.Version]*Table, len(ds.Tables)),
	}

	for i := range ds.Tables {
		td := &ds.Tables[i]
		if _, exists := r.tables[td.Version]; exists {
			return nil, errors.InvalidArgumentf("duplicate table for version %s", td.Version).
				WithMeta("version", td.Version.String())
		}

		table, err := buildTable(td)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid table %s", td.Version)
		}

		r.tables[td.Version] = table
		r.versions = append(r.versions, td.Version)
	}

	return r, nil
}

func buildTable(td *TableData) (*Table, error) {
	vb := errors.NewValidationBuilder()
	if td.Version.Generation() == 0 {
		vb.Fieldf("version", "%s is not a release table", td.Version)
	}
	if td.MaxSpeciesID <= 0 {
		vb.Field("max_species_id", "must be positive")
	}
	for _, info := range td.Personal {
		if info.Species <= 0 || info.Species > td.MaxSpeciesID {
			vb.Fieldf("personal", "species %d outside 1..%d", info.Species, td.MaxSpeciesID)
		}
		if !info.EXPGrowth.Valid() {
			vb.Fieldf("personal", "species %d has unknown growth rate %d", info.Species, info.EXPGrowth)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	personal := NewPersonalTable(td.MaxSpeciesID, td.Personal)
	learnsets := make(map[Key]Learnset, len(td.Learnsets))

	for _, ld := range td.Learnsets {
		key := Key{Species: ld.Species, Form: ld.Form}
		info, ok := personal.Info(ld.Species)
		if !ok {
			return nil, errors.InvalidArgumentf("learnset for species %d has no personal data within 1..%d",
				ld.Species, personal.MaxSpeciesID())
		}
		if ld.Form < 0 || (ld.Form > 0 && ld.Form >= info.FormCount) {
			return nil, errors.InvalidArgumentf("learnset form %d of species %d is outside its %d forms",
				ld.Form, ld.Species, info.FormCount)
		}
		if _, exists := learnsets[key]; exists {
			return nil, errors.InvalidArgumentf("duplicate learnset for species %d form %d", ld.Species, ld.Form)
		}
		for _, e := range ld.Entries {
			if e.Move <= 0 || e.Level < 0 || e.Level > game.MaxLevel {
				return nil, errors.InvalidArgumentf("species %d form %d has invalid entry move %d level %d",
					ld.Species, ld.Form, e.Move, e.Level)
			}
		}
		learnsets[key] = NewLearnset(ld.Entries)
	}

	return &Table{
		version:   td.Version,
		personal:  personal,
		learnsets: learnsets,
	}, nil
}

// Table returns the table dumped from version, or nil when the registry has
// none. A nil table answers every query with "not learnable".
func (r *Registry) Table(version game.Version) *Table {
	if r == nil {
		return nil
	}
	return r.tables[version]
}

// Versions returns the loaded table versions in load order
func (r *Registry) Versions() []game.Version {
	if r == nil {
		return nil
	}
	out := make([]game.Version, len(r.versions))
	copy(out, r.versions)
	return out
}

// Len returns the number of loaded tables
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.tables)
}

// GrowthRate returns the experience curve of species from the first loaded
// table that knows it. Growth rates do not change between releases.
func (r *Registry) GrowthRate(species int) (experience.GrowthRate, bool) {
	if r == nil {
		return 0, false
	}
	for _, v := range r.versions {
		if info, ok := r.tables[v].Personal().Info(species); ok {
			return info.EXPGrowth, true
		}
	}
	return 0, false
}
