package perf

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	framesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "voxelray_frames_total",
		Help: "The number of frames rendered.",
	})

	frameSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "voxelray_frame_seconds",
		Help:    "Wall-clock frame durations.",
		Buckets: []float64{0.004, 0.008, 0.0167, 0.022, 0.033, 0.05, 0.1},
	})

	stepSizeGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "voxelray_step_size",
		Help: "The current base ray-marching step size.",
	})

	qualityAdjustments = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voxelray_quality_adjustments_total",
		Help: "Step size adjustments made by the quality controller.",
	}, []string{"direction"})
)

func observeFrame(frameTime float32) {
	framesTotal.Inc()
	frameSeconds.Observe(float64(frameTime))
}

// InstrumentStepSize records a step-size change signaled by the
// quality controller.
func InstrumentStepSize(stepSize float32, direction string) {
	stepSizeGauge.Set(float64(stepSize))
	qualityAdjustments.With(prometheus.Labels{"direction": direction}).Inc()
}
