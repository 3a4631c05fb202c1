// Package config handles terrain viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Noise    NoiseConfig    `yaml:"noise"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// TerrainConfig holds terrain grid settings.
type TerrainConfig struct {
	Size        int     `yaml:"size"`         // Grid dimension (size x size heights)
	CellSpacing float64 `yaml:"cell_spacing"` // World-space distance between grid cells
	HeightScale float64 `yaml:"height_scale"` // Multiplier applied to noise heights
}

// NoiseConfig holds noise generation settings.
// Seed -1 means "draw a random seed at startup".
type NoiseConfig struct {
	Type        string  `yaml:"type"`
	Seed        int64   `yaml:"seed"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Scale       float64 `yaml:"scale"`
}

// CameraConfig holds camera mode settings.
type CameraConfig struct {
	Fly bool `yaml:"fly"` // Free-flight camera instead of the default orbit camera
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   60,
		},
		Terrain: TerrainConfig{
			Size:        25,
			CellSpacing: 0.5,
			HeightScale: 2.0,
		},
		Noise: NoiseConfig{
			Type:        "perlin",
			Seed:        -1,
			Octaves:     6,
			Persistence: 0.5,
			Lacunarity:  2.0,
			Scale:       5.0,
		},
		Camera: CameraConfig{
			Fly: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
