// Package experience computes experience thresholds for the six growth curves
package experience

// GrowthRate identifies an experience curve. Values match the personal data
// encoding.
type GrowthRate int

// Growth curves
const (
	MediumFast  GrowthRate = 0
	Erratic     GrowthRate = 1
	Fluctuating GrowthRate = 2
	MediumSlow  GrowthRate = 3
	Fast        GrowthRate = 4
	Slow        GrowthRate = 5
)

// MaxLevel is the highest level a threshold exists for
const MaxLevel = 100

// Valid reports whether g is one of the six known curves
func (g GrowthRate) Valid() bool {
	return g >= MediumFast && g <= Slow
}

// String returns the curve name
func (g GrowthRate) String() string {
	switch g {
	case MediumFast:
		return "medium_fast"
	case Erratic:
		return "erratic"
	case Fluctuating:
		return "fluctuating"
	case MediumSlow:
		return "medium_slow"
	case Fast:
		return "fast"
	case Slow:
		return "slow"
	}
	return "unknown"
}

// table[g][level-1] holds the minimum experience for level on curve g.
var table = func() [6][MaxLevel]uint32 {
	var t [6][MaxLevel]uint32
	for g := MediumFast; g <= Slow; g++ {
		for level := 2; level <= MaxLevel; level++ {
			t[g][level-1] = formula(g, int64(level))
		}
	}
	return t
}()

// Level 1 is always 0 and is never passed here.
func formula(g GrowthRate, n int64) uint32 {
	cube := n * n * n
	var exp int64
	switch g {
	case MediumFast:
		exp = cube
	case Erratic:
		switch {
		case n < 50:
			exp = cube * (100 - n) / 50
		case n < 68:
			exp = cube * (150 - n) / 100
		case n < 98:
			exp = cube * ((1911 - 10*n) / 3) / 500
		default:
			exp = cube * (160 - n) / 100
		}
	case Fluctuating:
		switch {
		case n < 15:
			exp = cube * ((n+1)/3 + 24) / 50
		case n < 36:
			exp = cube * (n + 14) / 50
		default:
			exp = cube * (n/2 + 32) / 50
		}
	case MediumSlow:
		exp = 6*cube/5 - 15*n*n + 100*n - 140
	case Fast:
		exp = 4 * cube / 5
	case Slow:
		exp = 5 * cube / 4
	}
	if exp < 0 {
		return 0
	}
	return uint32(exp)
}

// EXP returns the experience threshold for level on the given curve. Levels
// outside 1..100 are clamped; an unknown curve yields 0.
func EXP(level int, growth GrowthRate) uint32 {
	if !growth.Valid() {
		return 0
	}
	if level <= 1 {
		return 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return table[growth][level-1]
}
