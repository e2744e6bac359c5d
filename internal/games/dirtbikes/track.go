package dirtbikes

import (
	"math/rand"
	"sort"

	"github.com/samber/lo"

	"github.com/vovakirdan/tui-dirtbikes/internal/core"
)

// ObstacleKind identifies what a racer hits.
type ObstacleKind int

const (
	ObstacleRock ObstacleKind = iota
	ObstacleLog
	ObstacleRamp
)

// String returns the kind name.
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleRock:
		return "rock"
	case ObstacleLog:
		return "log"
	case ObstacleRamp:
		return "ramp"
	default:
		return "unknown"
	}
}

// Glyph returns the themed rune for the kind.
func (k ObstacleKind) Glyph(t Theme) rune {
	switch k {
	case ObstacleRock:
		return t.Rock
	case ObstacleLog:
		return t.Log
	case ObstacleRamp:
		return t.Ramp
	default:
		return '?'
	}
}

// Color returns the display color for the kind.
func (k ObstacleKind) Color() core.Color {
	switch k {
	case ObstacleRock:
		return core.ColorBrightRed
	case ObstacleLog:
		return core.ColorBrightYellow
	case ObstacleRamp:
		return core.ColorBrightCyan
	default:
		return core.ColorDefault
	}
}

// obstacleMix weights rocks and logs twice as likely as ramps.
var obstacleMix = [...]ObstacleKind{ObstacleRock, ObstacleLog, ObstacleRamp, ObstacleRock, ObstacleLog}

// Obstacle is a fixed hazard on one lane.
type Obstacle struct {
	X    float64
	Lane int
	Kind ObstacleKind
}

// Track holds the per-lane obstacle layout for one race.
type Track struct {
	Length float64
	Lanes  int
	lanes  [][]Obstacle // sorted by X
}

// GenerateTrack builds a random layout. Each lane is walked independently.
func GenerateTrack(rng *rand.Rand, length float64, lanes int) *Track {
	t := &Track{Length: length, Lanes: lanes}
	t.Regenerate(rng)
	return t
}

// NewTrack builds a track from a fixed obstacle list.
// Obstacles on lanes outside [0, lanes) are dropped.
func NewTrack(length float64, lanes int, obstacles []Obstacle) *Track {
	t := &Track{Length: length, Lanes: lanes, lanes: make([][]Obstacle, lanes)}
	for _, o := range obstacles {
		if o.Lane < 0 || o.Lane >= lanes {
			continue
		}
		t.lanes[o.Lane] = append(t.lanes[o.Lane], o)
	}
	for _, lane := range t.lanes {
		sort.SliceStable(lane, func(i, j int) bool { return lane[i].X < lane[j].X })
	}
	return t
}

// Regenerate clears the layout and rebuilds it from rng.
func (t *Track) Regenerate(rng *rand.Rand) {
	t.lanes = make([][]Obstacle, t.Lanes)
	end := t.Length - TrackEndMargin

	for lane := range t.Lanes {
		x := TrackStart
		for x < end {
			if rng.Float64() < ObstacleDensity {
				kind := obstacleMix[rng.Intn(len(obstacleMix))]
				t.lanes[lane] = append(t.lanes[lane], Obstacle{X: x, Lane: lane, Kind: kind})
				x += float64(randInt(rng, 12, 28))
			} else {
				x += float64(randInt(rng, MinObstacleGap, 12))
			}
		}
	}
}

// ObstaclesInLane returns the lane's obstacles ordered by X.
// The returned slice is shared and must not be modified.
func (t *Track) ObstaclesInLane(lane int) []Obstacle {
	if lane < 0 || lane >= len(t.lanes) {
		return nil
	}
	return t.lanes[lane]
}

// Obstacles returns a copy of every obstacle, lane by lane.
func (t *Track) Obstacles() []Obstacle {
	return lo.Flatten(t.lanes)
}

// Count returns the total number of obstacles.
func (t *Track) Count() int {
	return lo.SumBy(t.lanes, func(lane []Obstacle) int { return len(lane) })
}

// randInt returns a uniform integer in [lo, hi].
func randInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// uniform returns a uniform float in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
