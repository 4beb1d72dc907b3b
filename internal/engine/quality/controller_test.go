package quality

import (
	"testing"

	"github.com/Faultbox/voxelray/pkg/math"
)

// Frame durations chosen against a 60 FPS target:
//   - 1/80 s: far above target, eligible for quality improvement
//   - 1/65 s: inside the target..+20% band, no adjustment
//   - 1/58 s: below target average, above the emergency threshold
//   - 1/30 s: emergency, a single such frame must react
const (
	frameFast   = 1.0 / 80
	frameStable = 1.0 / 65
	frameSlow   = 1.0 / 58
	framePanic  = 1.0 / 30
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	c, err := NewController(60)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c
}

func feed(c *Controller, frameTime float32, n int) {
	for i := 0; i < n; i++ {
		c.Update(frameTime)
	}
}

func TestNewController_InvalidTarget(t *testing.T) {
	for _, target := range []float32{0, -30} {
		if _, err := NewController(target); err == nil {
			t.Errorf("NewController(%v) should fail", target)
		}
	}
}

func TestController_WarmupWindow(t *testing.T) {
	c := newTestController(t)

	// Frame times at 50 FPS: the third call is the first that may
	// produce a decision, never the first two.
	for call := 1; call <= 3; call++ {
		step, changed := c.Update(0.02)
		if call < 3 {
			if changed {
				t.Errorf("call %d: changed during warmup, step %v", call, step)
			}
			continue
		}
		// 50 FPS is an emergency against a 60 FPS target
		if !changed {
			t.Error("call 3: expected a decision once warmup completed")
		}
	}
}

func TestController_EmergencyResponse(t *testing.T) {
	c := newTestController(t)
	feed(c, frameStable, 5)
	before := c.StepSize()

	step, changed := c.Update(framePanic)
	if !changed {
		t.Fatal("single bad frame did not trigger an adjustment")
	}
	if step <= before {
		t.Errorf("emergency step %v, want > %v", step, before)
	}

	// 60/30 doubles the step size
	if math.Abs(step-before*2) > 1e-6 {
		t.Errorf("emergency step = %v, want %v", step, before*2)
	}
}

func TestController_EmergencyIgnoresStability(t *testing.T) {
	c := newTestController(t)
	// A long stable run must not dampen the emergency branch
	feed(c, frameStable, 40)
	before := c.StepSize()

	step, changed := c.Update(framePanic)
	if !changed || step <= before {
		t.Errorf("emergency after stable run: step %v changed %v, want increase", step, changed)
	}
}

func TestController_StableBandMakesNoChanges(t *testing.T) {
	c := newTestController(t)

	for i := 0; i < 50; i++ {
		if step, changed := c.Update(frameStable); changed {
			t.Fatalf("frame %d: unexpected adjustment to %v in stable band", i, step)
		}
	}
	if c.StepSize() != 0.02 {
		t.Errorf("step size drifted to %v without any change signal", c.StepSize())
	}
}

func TestController_BelowTargetIncreases(t *testing.T) {
	c := newTestController(t)

	c.Update(frameSlow)
	c.Update(frameSlow)
	step, changed := c.Update(frameSlow)
	if !changed {
		t.Fatal("expected increase when average FPS is below target")
	}
	// Damped increment: 0.02 * (1 + 0.3*0.5)
	want := float32(0.02 * 1.15)
	if math.Abs(step-want) > 1e-4 {
		t.Errorf("step = %v, want %v", step, want)
	}
}

func TestController_QualityImprovementGated(t *testing.T) {
	c := newTestController(t)

	// Sustained 80 FPS: no decrease may happen until more than 15
	// stable frames have accumulated (warmup 2 + 16 stable = call 19).
	for call := 1; call <= 18; call++ {
		if step, changed := c.Update(frameFast); changed {
			t.Fatalf("call %d: premature quality improvement to %v", call, step)
		}
	}

	step, changed := c.Update(frameFast)
	if !changed {
		t.Fatal("expected quality improvement after sustained headroom")
	}
	if step >= 0.02 {
		t.Errorf("step = %v, want a decrease below 0.02", step)
	}
	// Undamped decrement after a long stable run: 0.02 * 0.9
	want := float32(0.02 * 0.9)
	if math.Abs(step-want) > 1e-4 {
		t.Errorf("step = %v, want %v", step, want)
	}
}

func TestController_ReversalUsesSmallerIncrement(t *testing.T) {
	c := newTestController(t)

	// Drive to a quality improvement first (direction becomes Decrease)
	feed(c, frameFast, 19)
	afterDecrease := c.StepSize()

	// Then drag the average below target; once it crosses, the
	// increase uses the damped anti-oscillation increment (×1.05),
	// not the damped normal one (×1.15).
	var step float32
	var changed bool
	for i := 0; i < 10; i++ {
		if step, changed = c.Update(frameSlow); changed {
			break
		}
	}
	if !changed {
		t.Fatal("average never fell below target")
	}
	want := afterDecrease * 1.05
	if math.Abs(step-want) > 1e-4 {
		t.Errorf("reversal step = %v, want %v (smaller increment)", step, want)
	}
}

func TestController_StepSizeStaysBounded(t *testing.T) {
	c := newTestController(t)

	check := func() {
		s := c.StepSize()
		if s < MinStepSize || s > MaxStepSize {
			t.Fatalf("step size %v escaped [%v, %v]", s, MinStepSize, MaxStepSize)
		}
	}

	// Hammer with emergencies until the ceiling holds
	for i := 0; i < 100; i++ {
		c.Update(0.1)
		check()
	}
	if c.StepSize() != MaxStepSize {
		t.Errorf("step = %v after sustained panic, want ceiling %v", c.StepSize(), MaxStepSize)
	}

	// Then grant headroom until the floor holds
	for i := 0; i < 2000; i++ {
		c.Update(frameFast)
		check()
	}
	if c.StepSize() != MinStepSize {
		t.Errorf("step = %v after sustained headroom, want floor %v", c.StepSize(), MinStepSize)
	}
}

func TestController_NoChangeAfterAdjustmentUntilSignal(t *testing.T) {
	c := newTestController(t)
	feed(c, frameSlow, 3) // produces an increase on call 3

	// With the window still mostly slow the controller keeps
	// increasing; every changed=false step must leave state untouched.
	prev := c.StepSize()
	for i := 0; i < 20; i++ {
		step, changed := c.Update(frameStable)
		if changed {
			prev = step
			continue
		}
		if c.StepSize() != prev {
			t.Fatalf("step mutated to %v without change signal", c.StepSize())
		}
	}
}
