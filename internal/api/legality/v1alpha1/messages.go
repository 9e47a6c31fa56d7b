package v1alpha1

// Creature is a creature record snapshot
type Creature struct {
	Id                string  `json:"id,omitempty"`
	Species           int32   `json:"species"`
	Form              int32   `json:"form,omitempty"`
	CurrentLevel      int32   `json:"current_level"`
	MetLevel          int32   `json:"met_level"`
	MetLocation       int32   `json:"met_location,omitempty"`
	Exp               uint32  `json:"exp,omitempty"`
	Moves             []int32 `json:"moves,omitempty"`
	Version           string  `json:"version"`
	Format            int32   `json:"format"`
	IsEgg             bool    `json:"is_egg,omitempty"`
	Korean            bool    `json:"korean,omitempty"`
	VirtualConsole    bool    `json:"virtual_console,omitempty"`
	Tradeback         string  `json:"tradeback,omitempty"`
	FromActiveTrainer bool    `json:"from_active_trainer,omitempty"`
}

// GetId returns the record ID
func (x *Creature) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

// GetMoves returns the current moves
func (x *Creature) GetMoves() []int32 {
	if x != nil {
		return x.Moves
	}
	return nil
}

// Gift is the fixed content of a distributed gift
type Gift struct {
	Generation   int32 `json:"generation"`
	Level        int32 `json:"level"`
	MetLevel     int32 `json:"met_level"`
	IsEgg        bool  `json:"is_egg,omitempty"`
	IsManaphyEgg bool  `json:"is_manaphy_egg,omitempty"`
}

// Encounter is the matched origin of a record
type Encounter struct {
	Kind     string `json:"kind"`
	Species  int32  `json:"species"`
	Version  string `json:"version"`
	LevelMin int32  `json:"level_min"`
	LevelMax int32  `json:"level_max"`
	Gift     *Gift  `json:"gift,omitempty"`
}

// GetGift returns the gift content
func (x *Encounter) GetGift() *Gift {
	if x != nil {
		return x.Gift
	}
	return nil
}

// ResolveLevelUpRequest asks whether a record can learn a move by level-up
type ResolveLevelUpRequest struct {
	Creature   *Creature `json:"creature"`
	Move       int32     `json:"move"`
	Generation int32     `json:"generation"`

	// Version pins a release; empty consults every release of the generation
	Version    string `json:"version,omitempty"`
	MinLevelG1 int32  `json:"min_level_g1,omitempty"`
	MinLevelG2 int32  `json:"min_level_g2,omitempty"`
}

// GetCreature returns the record
func (x *ResolveLevelUpRequest) GetCreature() *Creature {
	if x != nil {
		return x.Creature
	}
	return nil
}

// GetMove returns the move ID
func (x *ResolveLevelUpRequest) GetMove() int32 {
	if x != nil {
		return x.Move
	}
	return 0
}

// GetGeneration returns the generation
func (x *ResolveLevelUpRequest) GetGeneration() int32 {
	if x != nil {
		return x.Generation
	}
	return 0
}

// GetVersion returns the pinned release
func (x *ResolveLevelUpRequest) GetVersion() string {
	if x != nil {
		return x.Version
	}
	return ""
}

// ResolveLevelUpResponse answers a ResolveLevelUpRequest. Level is -1 and
// Version is empty when the move is not learnable.
type ResolveLevelUpResponse struct {
	Outcome   string `json:"outcome"`
	Learnable bool   `json:"learnable"`
	Level     int32  `json:"level"`
	Version   string `json:"version,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// ListLevelUpMovesRequest asks for every level-up move of a record
type ListLevelUpMovesRequest struct {
	Creature     *Creature `json:"creature"`
	Generation   int32     `json:"generation"`
	Version      string    `json:"version,omitempty"`
	MoveReminder bool      `json:"move_reminder,omitempty"`
	MinLevelG1   int32     `json:"min_level_g1,omitempty"`
	MinLevelG2   int32     `json:"min_level_g2,omitempty"`
}

// GetCreature returns the record
func (x *ListLevelUpMovesRequest) GetCreature() *Creature {
	if x != nil {
		return x.Creature
	}
	return nil
}

// GetGeneration returns the generation
func (x *ListLevelUpMovesRequest) GetGeneration() int32 {
	if x != nil {
		return x.Generation
	}
	return 0
}

// GetVersion returns the pinned release
func (x *ListLevelUpMovesRequest) GetVersion() string {
	if x != nil {
		return x.Version
	}
	return ""
}

// ListLevelUpMovesResponse lists move IDs in table order
type ListLevelUpMovesResponse struct {
	Outcome string  `json:"outcome"`
	Moves   []int32 `json:"moves"`
	Reason  string  `json:"reason,omitempty"`
}

// EncounterMovesRequest asks for the default moveset of a wild encounter
type EncounterMovesRequest struct {
	Species int32  `json:"species"`
	Form    int32  `json:"form,omitempty"`
	Level   int32  `json:"level"`
	Version string `json:"version"`
}

// GetVersion returns the release
func (x *EncounterMovesRequest) GetVersion() string {
	if x != nil {
		return x.Version
	}
	return ""
}

// EncounterMovesResponse holds four move slots, empty slots are 0
type EncounterMovesResponse struct {
	Moves []int32 `json:"moves"`
}

// VerifyLevelRequest asks for a level verdict on one record
type VerifyLevelRequest struct {
	Creature  *Creature  `json:"creature"`
	Encounter *Encounter `json:"encounter"`
}

// GetCreature returns the record
func (x *VerifyLevelRequest) GetCreature() *Creature {
	if x != nil {
		return x.Creature
	}
	return nil
}

// GetEncounter returns the matched encounter
func (x *VerifyLevelRequest) GetEncounter() *Encounter {
	if x != nil {
		return x.Encounter
	}
	return nil
}

// Verdict is the outcome of a level check
type Verdict struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Comment  string `json:"comment"`
}

// VerifyLevelResponse holds the verdict for one record
type VerifyLevelResponse struct {
	Verdict *Verdict `json:"verdict"`
}

// GetVerdict returns the verdict
func (x *VerifyLevelResponse) GetVerdict() *Verdict {
	if x != nil {
		return x.Verdict
	}
	return nil
}

// BatchRecord pairs a record with its matched encounter
type BatchRecord struct {
	Creature  *Creature  `json:"creature"`
	Encounter *Encounter `json:"encounter"`
}

// VerifyBatchRequest asks for level verdicts on many records
type VerifyBatchRequest struct {
	Records []*BatchRecord `json:"records"`
}

// GetRecords returns the records
func (x *VerifyBatchRequest) GetRecords() []*BatchRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

// VerifyBatchResponse is a scan report. StartedAt is RFC 3339.
type VerifyBatchResponse struct {
	ScanId     string              `json:"scan_id"`
	StartedAt  string              `json:"started_at"`
	Verdicts   map[string]*Verdict `json:"verdicts"`
	Valid      int32               `json:"valid"`
	Invalid    int32               `json:"invalid"`
	Suspicious int32               `json:"suspicious"`
}
