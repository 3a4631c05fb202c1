package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagNoise       = flag.String("noise", "", "Noise type (perlin, simplex, ridged, billow, voronoi, combined)")
	flagSeed        = flag.Int64("seed", -1, "Seed for noise generation (-1 = random)")
	flagOctaves     = flag.Int("octaves", 0, "Number of octaves for noise generation")
	flagPersistence = flag.Float64("persistence", 0, "Persistence value for noise generation")
	flagLacunarity  = flag.Float64("lacunarity", 0, "Lacunarity value for noise generation")
	flagScale       = flag.Float64("scale", 0, "Scale factor for noise")
	flagHeightScale = flag.Float64("height-scale", 0, "Scale factor for terrain height")
	flagSize        = flag.Int("size", 0, "Size of terrain grid (size x size)")
	flagFly         = flag.Bool("fly", false, "Use free-flight camera")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")
	flagFullscreen  = flag.Bool("fullscreen", false, "Run in fullscreen mode")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagNoise != "" {
		cfg.Noise.Type = *flagNoise
	}
	if *flagSeed >= 0 {
		cfg.Noise.Seed = *flagSeed
	}
	if *flagOctaves > 0 {
		cfg.Noise.Octaves = *flagOctaves
	}
	if *flagPersistence > 0 {
		cfg.Noise.Persistence = *flagPersistence
	}
	if *flagLacunarity > 0 {
		cfg.Noise.Lacunarity = *flagLacunarity
	}
	if *flagScale > 0 {
		cfg.Noise.Scale = *flagScale
	}
	if *flagHeightScale > 0 {
		cfg.Terrain.HeightScale = *flagHeightScale
	}
	if *flagSize > 0 {
		cfg.Terrain.Size = *flagSize
	}
	if *flagFly {
		cfg.Camera.Fly = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
}
