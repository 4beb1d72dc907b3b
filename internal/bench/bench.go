// Package bench drives the adaptive quality loop through a scripted
// camera path without a GPU, standing in for the render loop: it feeds
// frame durations to the controller and propagates step-size changes
// to the voxel provider exactly the way the renderer would.
package bench

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelray/internal/config"
	"github.com/Faultbox/voxelray/internal/engine/camera"
	"github.com/Faultbox/voxelray/internal/engine/perf"
	"github.com/Faultbox/voxelray/internal/engine/quality"
	"github.com/Faultbox/voxelray/internal/engine/voxel"
	"github.com/Faultbox/voxelray/internal/logger"
	"github.com/Faultbox/voxelray/pkg/math"
)

// Waypoint is one camera station of the benchmark path.
type Waypoint struct {
	Position math.Vec3
	Label    string
}

// DefaultWaypoints walks from far outside the Cornell Box to deep
// inside it, where ray-marching cost peaks.
func DefaultWaypoints() []Waypoint {
	return []Waypoint{
		{math.Vec3{X: 0, Y: 1, Z: -5}, "Very far outside"},
		{math.Vec3{X: 0, Y: 1, Z: -3}, "Far outside"},
		{math.Vec3{X: 0, Y: 1, Z: -1}, "Just outside"},
		{math.Vec3{X: 0, Y: 1, Z: 0}, "At entrance"},
		{math.Vec3{X: 0, Y: 1, Z: 0.5}, "Slightly inside"},
		{math.Vec3{X: 0, Y: 1, Z: 1}, "Center of room"},
		{math.Vec3{X: 0, Y: 1, Z: 1.8}, "Deep inside"},
	}
}

// Bench runs the scripted benchmark.
type Bench struct {
	cfg       *config.Config
	provider  *voxel.StaticProvider
	ctrl      *quality.Controller
	monitor   *perf.Monitor
	cam       *camera.FlyCamera
	waypoints []Waypoint
}

// New builds the Cornell Box scene, bakes it and wires the control
// loop together.
func New(cfg *config.Config) (*Bench, error) {
	provider, err := voxel.NewCornellBox(cfg.Scene.MaxDepth, cfg.Scene.Resolution)
	if err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}
	provider.SetQualityTarget(cfg.Render.InitialStepSize)

	ctrl, err := quality.NewController(cfg.Render.TargetFPS)
	if err != nil {
		return nil, fmt.Errorf("creating quality controller: %w", err)
	}

	// The baked buffer is what the renderer would upload as a 3D
	// texture; baking here keeps the benchmark path identical to the
	// real startup path.
	baked := provider.Bake(cfg.Render.BakeSize)
	logger.Info("baked scene volume",
		zap.Int("size", cfg.Render.BakeSize),
		zap.Int("bytes", len(baked)),
	)

	return &Bench{
		cfg:       cfg,
		provider:  provider,
		ctrl:      ctrl,
		monitor:   perf.NewMonitor(),
		cam:       camera.NewFlyCamera(),
		waypoints: DefaultWaypoints(),
	}, nil
}

// Run walks the camera path, simulating frame times at each waypoint
// and letting the controller adapt, then writes the report.
func (b *Bench) Run() error {
	target := math.Vec3{X: 0, Y: 1, Z: 1}

	for _, wp := range b.waypoints {
		b.cam.Position = wp.Position
		b.cam.LookAt(target)

		for i := 0; i < b.cfg.Benchmark.FramesPerWaypoint; i++ {
			frameTime := b.simulateFrame()
			b.monitor.RecordFrame(frameTime, &b.cam.Position)

			if step, changed := b.ctrl.Update(frameTime); changed {
				prev := b.provider.BaseStepSize()
				b.provider.SetQualityTarget(step)
				perf.InstrumentStepSize(step, directionLabel(step, prev))
			}
		}

		logger.Info("benchmark waypoint done",
			zap.String("label", wp.Label),
			zap.Float32("distance", b.cam.DistanceTo(target)),
			zap.Float32("fps", b.monitor.CurrentFPS()),
			zap.Float32("stepSize", b.ctrl.StepSize()),
		)
	}

	if err := b.monitor.WriteReport(b.cfg.Benchmark.ReportPath); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	logger.Info("benchmark report written", zap.String("path", b.cfg.Benchmark.ReportPath))
	return nil
}

// simulateFrame models the frame cost of ray marching from the current
// camera position: deeper inside the volume means more occupied
// samples per ray, and a larger step size buys that cost back.
func (b *Bench) simulateFrame() float32 {
	z := b.cam.Position.Z

	var fps float32
	if z < -0.5 {
		// Outside looking in: cheap, improves with distance
		fps = 60 + (math.Abs(z)-0.5)*20
	} else {
		// Inside the volume: expensive
		fps = 30 - (z+0.5)*15
	}

	// Larger marching steps roughly halve the per-ray work across the
	// controller's output range.
	fps *= b.provider.BaseStepSize() / 0.02

	if fps < 5 {
		fps = 5
	}
	return 1 / fps
}

func directionLabel(newStep, oldStep float32) string {
	if newStep < oldStep {
		return "decrease"
	}
	return "increase"
}
