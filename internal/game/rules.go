package game

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tetris-bane/internal/config"
)

// Timing holds the fall clock intervals.
type Timing struct {
	Fall          time.Duration // Normal fall interval
	FastFall      time.Duration // While soft drop is held
	GameOverPause time.Duration // How long the final board stays up
}

// DefaultTiming returns the classic intervals.
func DefaultTiming() Timing {
	return Timing{
		Fall:          500 * time.Millisecond,
		FastFall:      25 * time.Millisecond,
		GameOverPause: 2 * time.Second,
	}
}

// TimingFromConfig converts millisecond settings to durations.
func TimingFromConfig(tc config.TimingConfig) Timing {
	return Timing{
		Fall:          time.Duration(tc.DefaultFallMS) * time.Millisecond,
		FastFall:      time.Duration(tc.FastFallMS) * time.Millisecond,
		GameOverPause: time.Duration(tc.GameOverPauseMS) * time.Millisecond,
	}
}

// ScoreRule turns the number of rows removed by one landing into points.
type ScoreRule interface {
	Points(rows int) int
}

// FlatRule awards one point per row.
type FlatRule struct{}

// Points implements ScoreRule.
func (FlatRule) Points(rows int) int {
	return max(rows, 0)
}

// TableRule awards Table[rows] points. Clears larger than the table use
// its last entry.
type TableRule struct {
	Table []int
}

// Points implements ScoreRule.
func (r TableRule) Points(rows int) int {
	if rows <= 0 || len(r.Table) == 0 {
		return 0
	}
	if rows >= len(r.Table) {
		return r.Table[len(r.Table)-1]
	}
	return r.Table[rows]
}

// RuleFromConfig selects the configured score rule.
func RuleFromConfig(sc config.ScoringConfig) (ScoreRule, error) {
	switch sc.Rule {
	case "", "flat":
		return FlatRule{}, nil
	case "table":
		if len(sc.Table) == 0 {
			return nil, fmt.Errorf("game: scoring table is empty")
		}
		table := make([]int, len(sc.Table))
		copy(table, sc.Table)
		return TableRule{Table: table}, nil
	default:
		return nil, fmt.Errorf("game: unknown scoring rule %q", sc.Rule)
	}
}
