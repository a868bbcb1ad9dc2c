// Package swipe models the horizontal drag used to answer a question card.
package swipe

import "math"

const (
	// Threshold is the horizontal distance a drag must exceed to commit.
	Threshold = 80.0

	maxRotationDeg = 15.0
	opacitySpan    = 100.0
	scaleBoost     = 0.3
)

// Phase is the state of a Gesture.
type Phase int

const (
	Idle Phase = iota
	Dragging
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Outcome is the result of releasing a drag.
type Outcome int

const (
	SnappedBack Outcome = iota
	CommittedYes
	CommittedNo
)

func (o Outcome) String() string {
	switch o {
	case CommittedYes:
		return "yes"
	case CommittedNo:
		return "no"
	default:
		return "snapped-back"
	}
}

// Committed reports whether the outcome records an answer, and which one.
func (o Outcome) Committed() (answer, ok bool) {
	switch o {
	case CommittedYes:
		return true, true
	case CommittedNo:
		return false, true
	default:
		return false, false
	}
}

// Gesture tracks a single pointer drag. The zero value is idle.
type Gesture struct {
	phase  Phase
	startX float64
	dx     float64
}

func (g *Gesture) Phase() Phase { return g.phase }

// DX is the current horizontal offset; 0 when idle.
func (g *Gesture) DX() float64 { return g.dx }

// Press starts a drag at x.
func (g *Gesture) Press(x float64) {
	g.phase = Dragging
	g.startX = x
	g.dx = 0
}

// Move updates the offset. Ignored unless dragging.
func (g *Gesture) Move(x float64) {
	if g.phase != Dragging {
		return
	}
	g.dx = x - g.startX
}

// Release ends the drag and returns the outcome. The gesture is idle afterwards
// in every case. Releasing an idle gesture snaps back.
func (g *Gesture) Release() Outcome {
	if g.phase != Dragging {
		return SnappedBack
	}
	dx := g.dx
	g.Reset()
	return Classify(dx)
}

// Reset drops any drag in progress.
func (g *Gesture) Reset() {
	*g = Gesture{}
}

// Classify maps a final offset to an outcome: |dx| strictly above Threshold
// commits, positive meaning yes.
func Classify(dx float64) Outcome {
	if math.Abs(dx) <= Threshold {
		return SnappedBack
	}
	if dx > 0 {
		return CommittedYes
	}
	return CommittedNo
}

// Rotation is the card tilt in degrees for offset dx.
func Rotation(dx float64) float64 {
	return clamp(dx/10, -maxRotationDeg, maxRotationDeg)
}

// YesOpacity is the opacity of the "yes" hint for offset dx.
func YesOpacity(dx float64) float64 {
	return clamp(dx/opacitySpan, 0, 1)
}

// NoOpacity is the opacity of the "no" hint for offset dx.
func NoOpacity(dx float64) float64 {
	return clamp(-dx/opacitySpan, 0, 1)
}

// Scale grows a hint icon with its opacity.
func Scale(opacity float64) float64 {
	return 1 + scaleBoost*opacity
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
