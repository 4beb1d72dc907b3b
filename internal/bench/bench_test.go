package bench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/voxelray/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	// Small scene and short path to keep the test fast
	cfg.Scene.MaxDepth = 4
	cfg.Scene.Resolution = 0.25
	cfg.Render.BakeSize = 8
	cfg.Benchmark.FramesPerWaypoint = 10
	cfg.Benchmark.ReportPath = filepath.Join(t.TempDir(), "report.md")
	return cfg
}

func TestBench_Run(t *testing.T) {
	b, err := New(testConfig(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := b.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if _, err := os.Stat(b.cfg.Benchmark.ReportPath); err != nil {
		t.Errorf("report not written: %v", err)
	}

	step := b.ctrl.StepSize()
	if step < 0.005 || step > 0.05 {
		t.Errorf("controller step %v escaped its bounds", step)
	}
}

func TestBench_SimulatedFramesSlowerInside(t *testing.T) {
	b, err := New(testConfig(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	b.cam.Position.Z = -5
	outside := b.simulateFrame()

	b.cam.Position.Z = 1.8
	inside := b.simulateFrame()

	if inside <= outside {
		t.Errorf("inside frame %v should be slower than outside frame %v", inside, outside)
	}
}

func TestBench_InvalidTargetFPS(t *testing.T) {
	cfg := testConfig(t)
	cfg.Render.TargetFPS = 0

	if _, err := New(cfg); err == nil {
		t.Error("expected error for non-positive target FPS")
	}
}
