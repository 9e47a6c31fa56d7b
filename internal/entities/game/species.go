package game

import "fmt"

// Species referenced directly by legality rules
const (
	Kadabra  = 64
	Alakazam = 65
	Machoke  = 67
	Machamp  = 68
	Graveler = 75
	Golem    = 76
	Haunter  = 93
	Gengar   = 94
	Manaphy  = 490
	Deoxys   = 386
	Kyurem   = 646
)

// TradeEvolutions1 lists the generation 1 species that evolve when traded.
// Each evolves into the next dex number.
var TradeEvolutions1 = []int{Kadabra, Machoke, Graveler, Haunter}

var speciesNames = map[int]string{
	Kadabra:  "Kadabra",
	Alakazam: "Alakazam",
	Machoke:  "Machoke",
	Machamp:  "Machamp",
	Graveler: "Graveler",
	Golem:    "Golem",
	Haunter:  "Haunter",
	Gengar:   "Gengar",
	Deoxys:   "Deoxys",
	Manaphy:  "Manaphy",
	Kyurem:   "Kyurem",
}

// SpeciesName returns a display name for species the rules mention by name and
// a "#id" label for everything else.
func SpeciesName(species int) string {
	if name, ok := speciesNames[species]; ok {
		return name
	}
	return fmt.Sprintf("#%03d", species)
}

// IsTradeEvolution1 reports whether species evolves by trade in generation 1.
func IsTradeEvolution1(species int) bool {
	for _, s := range TradeEvolutions1 {
		if s == species {
			return true
		}
	}
	return false
}
