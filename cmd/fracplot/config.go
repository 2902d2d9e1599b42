package main

import (
	"os"
	"time"

	"github.com/sgostarter/libfraccalc/fracdiff"
	"gopkg.in/yaml.v3"
)

type Limits struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type Config struct {
	WindowWidth  int `yaml:"windowWidth"`
	WindowHeight int `yaml:"windowHeight"`

	Domain fracdiff.Domain `yaml:"domain"`

	OrderLimits Limits `yaml:"orderLimits"`
	ConstLimits Limits `yaml:"constLimits"`
	PowerLimits Limits `yaml:"powerLimits"`

	SliderStep float64 `yaml:"sliderStep"`

	ComputeDeadline time.Duration `yaml:"computeDeadline"`
}

func defaultConfig() Config {
	return Config{
		WindowWidth:  960,
		WindowHeight: 640,
		Domain: fracdiff.Domain{
			Start:       0.00001,
			End:         5,
			SampleCount: 1000,
		},
		OrderLimits:     Limits{Min: -3, Max: 3},
		ConstLimits:     Limits{Min: 0, Max: 3},
		PowerLimits:     Limits{Min: 0, Max: 3},
		SliderStep:      0.01,
		ComputeDeadline: time.Second,
	}
}

// loadConfig reads the optional config file next to the binary; missing
// file or bad fields fall back to the defaults.
func loadConfig(fileName string) (cfg Config) {
	cfg = defaultConfig()

	d, err := os.ReadFile(fileName)
	if err != nil {
		return
	}

	if err = yaml.Unmarshal(d, &cfg); err != nil {
		cfg = defaultConfig()

		return
	}

	if cfg.Domain.Validate() != nil {
		cfg.Domain = defaultConfig().Domain
	}

	if cfg.WindowWidth < 320 || cfg.WindowHeight < 240 {
		cfg.WindowWidth = defaultConfig().WindowWidth
		cfg.WindowHeight = defaultConfig().WindowHeight
	}

	if cfg.SliderStep <= 0 {
		cfg.SliderStep = defaultConfig().SliderStep
	}

	return
}
