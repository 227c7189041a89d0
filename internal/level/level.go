// Package level holds the difficulty tiers and their coefficient tables.
//
// The tables are fixed at compile time and never mutated; Lookup returns copies.
package level

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTable is returned by Validate when a tier table is malformed.
var ErrInvalidTable = errors.New("invalid level table")

// Tier is a difficulty level.
type Tier int

const (
	Easy Tier = iota
	Normal
	Hard

	TierCount = int(Hard) + 1
)

// String returns the lowercase tier name used in reports.
func (t Tier) String() string {
	switch t {
	case Easy:
		return "easy"
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// Kind is the obstacle variant. It carries no behaviour beyond the tag.
type Kind int

const (
	Prize Kind = iota
	Penalty
	Killer

	KindCount = int(Killer) + 1
)

// Kinds lists every obstacle kind in declaration order.
var Kinds = [KindCount]Kind{Prize, Penalty, Killer}

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case Prize:
		return "prize"
	case Penalty:
		return "penalty"
	case Killer:
		return "killer"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Config is the coefficient table of a single tier.
type Config struct {
	SideCoef      [KindCount]float64 // Obstacle side multiplier per kind
	SpeedCoef     float64            // Obstacle speed multiplier
	BallSpeedCoef float64            // Ball angular speed multiplier
	SpawnInterval time.Duration      // Time between obstacle spawns
	Points        [KindCount]int     // Score delta per kind
	AdvanceScore  int                // Exact score that moves to the next tier
	Terminal      bool               // No further tier; AdvanceScore is ignored
}

// tiers is indexed by Tier.
var tiers = [TierCount]Config{
	Easy: {
		SideCoef:      [KindCount]float64{Prize: 1, Penalty: 1, Killer: 1},
		SpeedCoef:     0.1,
		BallSpeedCoef: 0.25,
		SpawnInterval: 6 * time.Second,
		Points:        [KindCount]int{Prize: 1, Penalty: -1, Killer: 0},
		AdvanceScore:  3,
	},
	Normal: {
		SideCoef:      [KindCount]float64{Prize: 1, Penalty: 1, Killer: 1},
		SpeedCoef:     0.15,
		BallSpeedCoef: 0.4,
		SpawnInterval: 4 * time.Second,
		Points:        [KindCount]int{Prize: 2, Penalty: -1, Killer: 0},
		AdvanceScore:  9,
	},
	Hard: {
		SideCoef:      [KindCount]float64{Prize: 0.75, Penalty: 1.25, Killer: 1.25},
		SpeedCoef:     0.15,
		BallSpeedCoef: 0.6,
		SpawnInterval: 2 * time.Second,
		Points:        [KindCount]int{Prize: 3, Penalty: -1, Killer: 0},
		Terminal:      true,
	},
}

// Lookup returns the configuration of tier t. It panics on an unknown tier.
func Lookup(t Tier) Config {
	if t < 0 || int(t) >= TierCount {
		panic(fmt.Sprintf("level: unknown tier %d", int(t)))
	}
	return tiers[t]
}

// Next returns the tier after t and whether one exists.
// Progression never skips a tier.
func Next(t Tier) (Tier, bool) {
	if Lookup(t).Terminal {
		return t, false
	}
	return t + 1, true
}

// Validate checks the built-in tier table.
func Validate() error {
	return ValidateTable(tiers[:])
}

// ValidateTable checks that every tier has positive multipliers and spawn interval,
// that exactly the last tier is terminal, and that thresholds are non-negative.
func ValidateTable(table []Config) error {
	if len(table) == 0 {
		return fmt.Errorf("%w: no tiers", ErrInvalidTable)
	}
	for i, cfg := range table {
		name := Tier(i).String()
		for _, k := range Kinds {
			if cfg.SideCoef[k] <= 0 {
				return fmt.Errorf("%w: %s %s side multiplier %v", ErrInvalidTable, name, k, cfg.SideCoef[k])
			}
		}
		if cfg.SpeedCoef <= 0 {
			return fmt.Errorf("%w: %s speed multiplier %v", ErrInvalidTable, name, cfg.SpeedCoef)
		}
		if cfg.BallSpeedCoef <= 0 {
			return fmt.Errorf("%w: %s ball speed multiplier %v", ErrInvalidTable, name, cfg.BallSpeedCoef)
		}
		if cfg.SpawnInterval <= 0 {
			return fmt.Errorf("%w: %s spawn interval %v", ErrInvalidTable, name, cfg.SpawnInterval)
		}
		last := i == len(table)-1
		if cfg.Terminal != last {
			return fmt.Errorf("%w: %s terminal=%v", ErrInvalidTable, name, cfg.Terminal)
		}
		if !cfg.Terminal && cfg.AdvanceScore < 0 {
			return fmt.Errorf("%w: %s advance score %d", ErrInvalidTable, name, cfg.AdvanceScore)
		}
	}
	return nil
}
