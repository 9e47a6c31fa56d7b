// Package game holds the release, generation and ID-range facts shared by the
// legality engine. Everything here is immutable game data.
package game

import (
	"fmt"
	"strings"
)

// Version identifies a single release or a family of sibling releases.
// Single releases carry the ID stored in creature records; families are
// synthetic values above the single-release range.
type Version int

// Single releases
const (
	Invalid Version = -1
	Any     Version = 0

	S  Version = 1
	R  Version = 2
	E  Version = 3
	FR Version = 4
	LG Version = 5
	HG Version = 7
	SS Version = 8
	D  Version = 10
	P  Version = 11
	Pt Version = 12
	W  Version = 20
	B  Version = 21
	W2 Version = 22
	B2 Version = 23
	X  Version = 24
	Y  Version = 25
	AS Version = 26
	OR Version = 27
	SN Version = 30
	MN Version = 31
	US Version = 32
	UM Version = 33
	GO Version = 34
	RD Version = 35
	GN Version = 36
	BU Version = 37
	YW Version = 38
	GD Version = 39
	SV Version = 40
	C  Version = 41
	GP Version = 42
	GE Version = 43
	SW Version = 44
	SH Version = 45
)

// Release families
const (
	RB Version = iota + 100
	RBY
	GS
	GSC
	RS
	RSE
	FRLG
	DP
	DPPt
	HGSS
	BW
	B2W2
	XY
	ORAS
	SM
	USUM
	GG
	Gen7b
	SWSH
)

var versionNames = map[Version]string{
	Invalid: "Invalid", Any: "Any",
	S: "S", R: "R", E: "E", FR: "FR", LG: "LG",
	HG: "HG", SS: "SS", D: "D", P: "P", Pt: "Pt",
	W: "W", B: "B", W2: "W2", B2: "B2",
	X: "X", Y: "Y", AS: "AS", OR: "OR",
	SN: "SN", MN: "MN", US: "US", UM: "UM", GO: "GO",
	RD: "RD", GN: "GN", BU: "BU", YW: "YW",
	GD: "GD", SV: "SV", C: "C",
	GP: "GP", GE: "GE", SW: "SW", SH: "SH",
	RB: "RB", RBY: "RBY", GS: "GS", GSC: "GSC",
	RS: "RS", RSE: "RSE", FRLG: "FRLG",
	DP: "DP", DPPt: "DPPt", HGSS: "HGSS",
	BW: "BW", B2W2: "B2W2", XY: "XY", ORAS: "ORAS",
	SM: "SM", USUM: "USUM", GG: "GG", Gen7b: "Gen7b", SWSH: "SWSH",
}

var versionsByName = func() map[string]Version {
	m := make(map[string]Version, len(versionNames))
	for v, name := range versionNames {
		m[strings.ToLower(name)] = v
	}
	return m
}()

// family members, used by Contains
var families = map[Version][]Version{
	RB:    {RD, BU, GN},
	RBY:   {RD, BU, GN, YW, RB},
	GS:    {GD, SV},
	GSC:   {GD, SV, C, GS},
	RS:    {R, S},
	RSE:   {R, S, E, RS},
	FRLG:  {FR, LG},
	DP:    {D, P},
	DPPt:  {D, P, Pt, DP},
	HGSS:  {HG, SS},
	BW:    {B, W},
	B2W2:  {B2, W2},
	XY:    {X, Y},
	ORAS:  {OR, AS},
	SM:    {SN, MN},
	USUM:  {US, UM},
	GG:    {GP, GE},
	Gen7b: {GP, GE, GO, GG},
	SWSH:  {SW, SH},
}

// ParseVersion resolves a release name (case-insensitive) to its Version.
func ParseVersion(name string) (Version, error) {
	v, ok := versionsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Invalid, fmt.Errorf("unknown game version %q", name)
	}
	return v, nil
}

// String returns the short release name
func (v Version) String() string {
	if name, ok := versionNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Version(%d)", int(v))
}

// MarshalText implements encoding.TextMarshaler so versions are written by name
// in YAML and JSON documents.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// IsFamily reports whether v groups several releases.
func (v Version) IsFamily() bool {
	_, ok := families[v]
	return ok
}

// Contains reports whether other is v itself or a member of the family v.
func (v Version) Contains(other Version) bool {
	if v == other {
		return true
	}
	for _, member := range families[v] {
		if member == other {
			return true
		}
		if member.IsFamily() && member.Contains(other) {
			return true
		}
	}
	return false
}

// Generation returns the generation a release belongs to, or 0 when the value
// has no single generation (Any, Invalid, unknown).
func (v Version) Generation() int {
	switch v {
	case RD, GN, BU, YW, RB, RBY:
		return 1
	case GD, SV, C, GS, GSC:
		return 2
	case R, S, E, FR, LG, RS, RSE, FRLG:
		return 3
	case D, P, Pt, HG, SS, DP, DPPt, HGSS:
		return 4
	case B, W, B2, W2, BW, B2W2:
		return 5
	case X, Y, OR, AS, XY, ORAS:
		return 6
	case SN, MN, US, UM, SM, USUM, GP, GE, GO, GG, Gen7b:
		return 7
	case SW, SH, SWSH:
		return 8
	}
	return 0
}
