// Package config handles renderer configuration loading and management.
package config

// Config holds all renderer settings.
type Config struct {
	Render    RenderConfig    `yaml:"render"`
	Scene     SceneConfig     `yaml:"scene"`
	Benchmark BenchmarkConfig `yaml:"benchmark"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// RenderConfig holds quality and performance settings.
type RenderConfig struct {
	TargetFPS       float32 `yaml:"target_fps"`
	InitialStepSize float32 `yaml:"initial_step_size"`
	BakeSize        int     `yaml:"bake_size"` // 3D texture edge length
}

// SceneConfig holds the voxel scene settings.
type SceneConfig struct {
	MaxDepth   uint8   `yaml:"max_depth"`
	Resolution float32 `yaml:"resolution"` // rasterization grid spacing
}

// BenchmarkConfig holds the benchmark harness settings.
type BenchmarkConfig struct {
	FramesPerWaypoint int    `yaml:"frames_per_waypoint"`
	ReportPath        string `yaml:"report_path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			TargetFPS:       60,
			InitialStepSize: 0.02,
			BakeSize:        256,
		},
		Scene: SceneConfig{
			MaxDepth:   8,
			Resolution: 0.02,
		},
		Benchmark: BenchmarkConfig{
			FramesPerWaypoint: 120,
			ReportPath:        "performance_report.md",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
