// Package quality implements the closed-loop controller that trades
// ray-marching step size against measured frame timings to hold a
// target frame rate.
package quality

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelray/internal/logger"
	"github.com/Faultbox/voxelray/pkg/math"
)

// Step size output range. Matches the bounds the voxel providers
// enforce on their side.
const (
	MinStepSize = 0.005
	MaxStepSize = 0.05
)

const (
	// windowSize bounds the frame-time history; small for quick reaction.
	windowSize = 10

	// warmupFrames is how many samples are needed before any decision.
	warmupFrames = 3

	// emergencyFraction of the target below which a single frame
	// triggers an immediate step increase, bypassing the average.
	emergencyFraction = 0.95

	// panicCap bounds the emergency multiplier.
	panicCap = 2.0

	// dampedFrames: adjustments are halved until this many stable
	// frames have passed, to stop the loop oscillating.
	dampedFrames = 10

	// headroomFraction and settleFrames gate quality improvement:
	// the average must exceed target*(1+headroom) and the loop must
	// have been stable for more than settleFrames before the step
	// size is lowered. Chasing noise here causes visible pumping.
	headroomFraction = 0.2
	settleFrames     = 15
)

// Direction records which way the last adjustment moved the step size.
type Direction int8

const (
	Decrease Direction = -1
	None     Direction = 0
	Increase Direction = 1
)

// Controller adapts the global ray-marching step size from per-frame
// wall-clock durations. Single-threaded: Update is called exactly once
// per rendered frame by the render loop.
type Controller struct {
	targetFrameRate float32
	currentStepSize float32
	frameTimes      []float32
	lastDirection   Direction
	stableFrames    uint32
}

// NewController creates a controller for the given target frame rate
// (frames per second).
func NewController(targetFrameRate float32) (*Controller, error) {
	if targetFrameRate <= 0 {
		return nil, fmt.Errorf("target frame rate must be positive, got %v", targetFrameRate)
	}
	return &Controller{
		targetFrameRate: targetFrameRate,
		currentStepSize: 0.02,
		frameTimes:      make([]float32, 0, windowSize),
	}, nil
}

// StepSize returns the current base step size.
func (c *Controller) StepSize() float32 {
	return c.currentStepSize
}

// Update feeds one frame duration (seconds) into the control loop and
// returns the new step size with changed=true when an adjustment was
// made. A false return means "leave the GPU-visible parameter alone",
// which is distinct from an adjustment that lands on the same value.
func (c *Controller) Update(frameTime float32) (stepSize float32, changed bool) {
	c.frameTimes = append(c.frameTimes, frameTime)
	if len(c.frameTimes) > windowSize {
		c.frameTimes = c.frameTimes[1:]
	}

	// Need a few frames of signal before making any decision.
	if len(c.frameTimes) < warmupFrames {
		return 0, false
	}

	currentFPS := 1 / frameTime
	avgFPS := 1 / c.averageFrameTime()

	// A single frame far below target gets an immediate response;
	// waiting for the average to catch up costs visible hitches.
	if currentFPS < emergencyFraction*c.targetFrameRate {
		mult := math.Min(c.targetFrameRate/math.Max(currentFPS, 10), panicCap)
		c.currentStepSize = math.Min(c.currentStepSize*mult, MaxStepSize)

		logger.Warn("emergency quality drop",
			zap.Float32("fps", currentFPS),
			zap.Float32("stepSize", c.currentStepSize),
		)
		c.lastDirection = Increase
		c.stableFrames = 0
		return c.currentStepSize, true
	}

	adjustmentFactor := float32(1.0)
	if c.stableFrames < dampedFrames {
		adjustmentFactor = 0.5
	}

	switch {
	case avgFPS < c.targetFrameRate:
		// Below target: coarsen. A smaller increment right after a
		// decrease, so the loop does not ping-pong across the target.
		scale := 1 + 0.3*adjustmentFactor
		if c.lastDirection == Decrease {
			scale = 1 + 0.1*adjustmentFactor
		}
		c.currentStepSize = math.Min(c.currentStepSize*scale, MaxStepSize)

		logger.Debug("performance low",
			zap.Float32("avgFPS", avgFPS),
			zap.Float32("stepSize", c.currentStepSize),
		)
		c.lastDirection = Increase
		c.stableFrames = 0
		return c.currentStepSize, true

	case avgFPS > c.targetFrameRate*(1+headroomFraction) && c.stableFrames > settleFrames:
		// Sustained headroom: spend it on quality.
		c.currentStepSize = math.Max(c.currentStepSize*(1-0.1*adjustmentFactor), MinStepSize)

		logger.Debug("performance good",
			zap.Float32("avgFPS", avgFPS),
			zap.Float32("stepSize", c.currentStepSize),
		)
		c.lastDirection = Decrease
		c.stableFrames = 0
		return c.currentStepSize, true

	default:
		c.stableFrames++
		return 0, false
	}
}

func (c *Controller) averageFrameTime() float32 {
	if len(c.frameTimes) == 0 {
		return 0.016
	}
	var sum float32
	for _, t := range c.frameTimes {
		sum += t
	}
	return sum / float32(len(c.frameTimes))
}
