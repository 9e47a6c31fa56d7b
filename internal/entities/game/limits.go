package game

// Highest species ID present in each generation's data
const (
	MaxSpeciesID1     = 151
	MaxSpeciesID2     = 251
	MaxSpeciesID3     = 386
	MaxSpeciesID4     = 493
	MaxSpeciesID5     = 649
	MaxSpeciesID6     = 721
	MaxSpeciesID7     = 802
	MaxSpeciesID7USUM = 807
	MaxSpeciesID7b    = 809
	MaxSpeciesID8     = 898
)

// Highest move ID usable in each generation
const (
	MaxMoveID1     = 165
	MaxMoveID2     = 251
	MaxMoveID3     = 354
	MaxMoveID4     = 467
	MaxMoveID5     = 559
	MaxMoveID6XY   = 617
	MaxMoveID6AO   = 621
	MaxMoveID7     = 719
	MaxMoveID7USUM = 728
	MaxMoveID7b    = 742
	MaxMoveID8     = 826
)

// MaxLevel is the level cap shared by every generation.
const MaxLevel = 100

// MaxSpeciesID returns the species cap for a generation, 0 for unknown generations.
func MaxSpeciesID(generation int) int {
	switch generation {
	case 1:
		return MaxSpeciesID1
	case 2:
		return MaxSpeciesID2
	case 3:
		return MaxSpeciesID3
	case 4:
		return MaxSpeciesID4
	case 5:
		return MaxSpeciesID5
	case 6:
		return MaxSpeciesID6
	case 7:
		return MaxSpeciesID7b
	case 8:
		return MaxSpeciesID8
	}
	return 0
}

// MaxMoveID returns the move cap for a generation, 0 for unknown generations.
// Generation 7 includes the Let's Go move additions.
func MaxMoveID(generation int) int {
	switch generation {
	case 1:
		return MaxMoveID1
	case 2:
		return MaxMoveID2
	case 3:
		return MaxMoveID3
	case 4:
		return MaxMoveID4
	case 5:
		return MaxMoveID5
	case 6:
		return MaxMoveID6AO
	case 7:
		return MaxMoveID7b
	case 8:
		return MaxMoveID8
	}
	return 0
}
