package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagTargetFPS = flag.Float64("target-fps", 0, "Target frame rate for adaptive quality")
	flagMaxDepth  = flag.Int("max-depth", 0, "Octree maximum depth")
	flagBakeSize  = flag.Int("bake-size", 0, "Baked 3D texture edge length")
	flagReport    = flag.String("report", "", "Benchmark report output path")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagTargetFPS > 0 {
		cfg.Render.TargetFPS = float32(*flagTargetFPS)
	}
	if *flagMaxDepth > 0 {
		cfg.Scene.MaxDepth = uint8(*flagMaxDepth)
	}
	if *flagBakeSize > 0 {
		cfg.Render.BakeSize = *flagBakeSize
	}
	if *flagReport != "" {
		cfg.Benchmark.ReportPath = *flagReport
	}
}
