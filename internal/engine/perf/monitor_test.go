package perf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/voxelray/pkg/math"
)

func TestMonitor_RecordFrame(t *testing.T) {
	m := NewMonitor()

	pos := math.Vec3{X: 0, Y: 1, Z: -3}
	for i := 0; i < 10; i++ {
		m.RecordFrame(0.016, &pos)
	}

	if m.TotalFrames != 10 {
		t.Errorf("TotalFrames = %d, want 10", m.TotalFrames)
	}

	fps := m.CurrentFPS()
	if fps < 62 || fps > 63 {
		t.Errorf("CurrentFPS = %v, want ~62.5", fps)
	}
}

func TestMonitor_CurrentFPSEmpty(t *testing.T) {
	m := NewMonitor()
	if fps := m.CurrentFPS(); fps != 0 {
		t.Errorf("CurrentFPS with no frames = %v, want 0", fps)
	}
}

func TestMonitor_RollingWindowEvicts(t *testing.T) {
	m := NewMonitor()

	// Fill the window with slow frames, then flush with fast ones;
	// the rolling FPS must track only the recent frames.
	for i := 0; i < rollingWindow; i++ {
		m.RecordFrame(0.1, nil)
	}
	for i := 0; i < rollingWindow; i++ {
		m.RecordFrame(0.01, nil)
	}

	fps := m.CurrentFPS()
	if fps < 99 || fps > 101 {
		t.Errorf("CurrentFPS after flush = %v, want ~100", fps)
	}
}

func TestMonitor_WriteReport(t *testing.T) {
	m := NewMonitor()
	pos := math.Vec3{X: 0, Y: 1, Z: -3}
	for i := 0; i < 30; i++ {
		m.RecordFrame(0.02, &pos)
	}

	path := filepath.Join(t.TempDir(), "report.md")
	if err := m.WriteReport(path); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	report := string(data)

	for _, want := range []string{
		"# Performance Report",
		"**Total Frames**: 30",
		"## FPS Per Second",
		"## Camera Position Samples",
		"(0.00, 1.00, -3.00)",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestMonitor_WriteReportBadPath(t *testing.T) {
	m := NewMonitor()
	if err := m.WriteReport(filepath.Join(t.TempDir(), "missing", "report.md")); err == nil {
		t.Error("expected error for unwritable path")
	}
}
