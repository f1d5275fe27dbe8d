package domain

import "time"

const (
	DefaultWidth  = 10
	DefaultHeight = 24

	DefaultFallInterval    = 500 * time.Millisecond
	DefaultMinFallInterval = 10 * time.Millisecond
	DefaultSpeedUpFactor   = 0.9

	// The fall interval shrinks once whenever a lock moves the score into a
	// new bucket of this many points.
	SpeedUpEvery = 1000

	// Automatic switch period: SwitchIntervalMax minus one second per
	// SwitchStepPoints, never below SwitchIntervalMin.
	SwitchIntervalMax = 10 * time.Second
	SwitchIntervalMin = 2 * time.Second
	SwitchStepPoints  = 1000
)

// linePoints[n] is the award for clearing n lines at once; 4+ pay like 4.
var linePoints = [...]int{0, 100, 300, 500, 800}

// Rules holds the tunable parameters of a session.
type Rules struct {
	Width           int
	Height          int
	FallInterval    time.Duration
	MinFallInterval time.Duration
	SpeedUpFactor   float64
}

func DefaultRules() Rules {
	return Rules{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		FallInterval:    DefaultFallInterval,
		MinFallInterval: DefaultMinFallInterval,
		SpeedUpFactor:   DefaultSpeedUpFactor,
	}
}

// PointsFor returns the score for a single lock that cleared n lines.
func PointsFor(n int) int {
	if n <= 0 {
		return 0
	}
	if n >= len(linePoints) {
		n = len(linePoints) - 1
	}
	return linePoints[n]
}

// SwitchInterval is the automatic board switch period at the given score.
func SwitchInterval(score int) time.Duration {
	d := SwitchIntervalMax - time.Duration(score/SwitchStepPoints)*time.Second
	return max(d, SwitchIntervalMin)
}

func crossedSpeedUp(before, after int) bool {
	return before/SpeedUpEvery != after/SpeedUpEvery
}

func (r Rules) spedUp(cur time.Duration) time.Duration {
	next := time.Duration(float64(cur) * r.SpeedUpFactor)
	return max(next, r.MinFallInterval)
}
