package learnset

import "github.com/KirkDiggler/rpg-legality/internal/entities/game"

// Dataset is the serialized form of every release table. It is what the
// repositories read from YAML files and Redis.
type Dataset struct {
	Tables []TableData `json:"tables" yaml:"tables"`
}

// TableData is the serialized form of one release table
type TableData struct {
	Version      game.Version   `json:"version" yaml:"version"`
	MaxSpeciesID int            `json:"max_species_id" yaml:"max_species_id"`
	Personal     []PersonalInfo `json:"personal" yaml:"personal"`
	Learnsets    []LearnsetData `json:"learnsets" yaml:"learnsets"`
}

// LearnsetData is the serialized movepool of one species form
type LearnsetData struct {
	Species int     `json:"species" yaml:"species"`
	Form    int     `json:"form,omitempty" yaml:"form,omitempty"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Find returns the table data for version
func (d *Dataset) Find(version game.Version) (*TableData, bool) {
	if d == nil {
		return nil, false
	}
	for i := range d.Tables {
		if d.Tables[i].Version == version {
			return &d.Tables[i], true
		}
	}
	return nil, false
}
