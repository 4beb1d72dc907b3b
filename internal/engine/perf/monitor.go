// Package perf tracks frame timings and produces performance reports.
package perf

import (
	"fmt"
	"os"
	"time"

	"github.com/Faultbox/voxelray/pkg/math"
)

// rollingWindow is how many recent frame times feed CurrentFPS.
const rollingWindow = 120

type fpsSample struct {
	second uint32
	fps    float32
}

type cameraSample struct {
	elapsed  float32
	position math.Vec3
}

// Monitor accumulates frame statistics for the lifetime of the process
// and can write them out as a markdown report.
type Monitor struct {
	start           time.Time
	frameTimes      []float32
	fpsHistory      []fpsSample
	lastSecond      uint32
	framesInSecond  uint32
	TotalFrames     uint32
	cameraPositions []cameraSample
}

// NewMonitor creates a monitor; the clock starts now.
func NewMonitor() *Monitor {
	return &Monitor{
		start:      time.Now(),
		frameTimes: make([]float32, 0, rollingWindow),
	}
}

// RecordFrame registers one frame duration (seconds) and, optionally,
// the camera position during that frame.
func (m *Monitor) RecordFrame(frameTime float32, cameraPosition *math.Vec3) {
	m.frameTimes = append(m.frameTimes, frameTime)
	if len(m.frameTimes) > rollingWindow {
		m.frameTimes = m.frameTimes[1:]
	}

	m.TotalFrames++
	m.framesInSecond++

	elapsed := float32(time.Since(m.start).Seconds())
	currentSecond := uint32(elapsed)

	if cameraPosition != nil {
		m.cameraPositions = append(m.cameraPositions, cameraSample{elapsed, *cameraPosition})
	}

	observeFrame(frameTime)

	// Crossing a second boundary closes out the previous second's
	// frame count as its FPS figure.
	if currentSecond > m.lastSecond {
		m.fpsHistory = append(m.fpsHistory, fpsSample{m.lastSecond, float32(m.framesInSecond)})
		m.lastSecond = currentSecond
		m.framesInSecond = 0
	}
}

// CurrentFPS returns the FPS implied by the recent rolling window.
func (m *Monitor) CurrentFPS() float32 {
	if len(m.frameTimes) == 0 {
		return 0
	}
	var sum float32
	for _, t := range m.frameTimes {
		sum += t
	}
	return float32(len(m.frameTimes)) / sum
}

// AverageFPS returns the lifetime average frame rate.
func (m *Monitor) AverageFPS() float32 {
	elapsed := float32(time.Since(m.start).Seconds())
	if elapsed <= 0 {
		return 0
	}
	return float32(m.TotalFrames) / elapsed
}

// WriteReport writes a markdown performance report to path.
func (m *Monitor) WriteReport(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer f.Close()

	fmt.Fprintln(f, "# Performance Report")
	fmt.Fprintln(f)
	fmt.Fprintln(f, "## Summary")
	fmt.Fprintf(f, "- **Total Runtime**: %.2f seconds\n", time.Since(m.start).Seconds())
	fmt.Fprintf(f, "- **Total Frames**: %d\n", m.TotalFrames)
	fmt.Fprintf(f, "- **Average FPS**: %.2f\n", m.AverageFPS())
	fmt.Fprintf(f, "- **Current FPS**: %.2f\n", m.CurrentFPS())

	if len(m.frameTimes) > 0 {
		minFt, maxFt := m.frameTimes[0], m.frameTimes[0]
		for _, t := range m.frameTimes[1:] {
			minFt = math.Min(minFt, t)
			maxFt = math.Max(maxFt, t)
		}
		fmt.Fprintf(f, "- **Best Frame Time**: %.2f ms (%.2f FPS)\n", minFt*1000, 1/minFt)
		fmt.Fprintf(f, "- **Worst Frame Time**: %.2f ms (%.2f FPS)\n", maxFt*1000, 1/maxFt)
	}

	fmt.Fprintln(f)
	fmt.Fprintln(f, "## FPS Per Second")
	fmt.Fprintln(f)
	fmt.Fprintln(f, "| Second | FPS |")
	fmt.Fprintln(f, "|--------|-----|")
	for _, s := range m.fpsHistory {
		fmt.Fprintf(f, "| %d | %.0f |\n", s.second, s.fps)
	}
	if m.framesInSecond > 0 {
		fmt.Fprintf(f, "| %d | %d |\n", m.lastSecond, m.framesInSecond)
	}

	if len(m.cameraPositions) > 0 {
		fmt.Fprintln(f)
		fmt.Fprintln(f, "## Camera Position Samples")
		fmt.Fprintln(f)
		fmt.Fprintln(f, "| Time (s) | Position (x, y, z) | Distance from Origin |")
		fmt.Fprintln(f, "|----------|-------------------|---------------------|")

		// Thin out to roughly ten rows.
		sampleRate := len(m.cameraPositions) / 10
		if sampleRate < 1 {
			sampleRate = 1
		}
		for i, s := range m.cameraPositions {
			if i%sampleRate != 0 {
				continue
			}
			fmt.Fprintf(f, "| %.2f | (%.2f, %.2f, %.2f) | %.2f |\n",
				s.elapsed, s.position.X, s.position.Y, s.position.Z,
				s.position.Length())
		}
	}

	return nil
}
