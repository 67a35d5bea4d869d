package analysis

import (
	"fmt"
	"runtime"
)

// Config holds the tunables of the analysis pipeline.
type Config struct {
	// Workers is the number of goroutines computing per-vehicle estimates.
	// Defaults to the number of CPUs.
	Workers int `json:"workers"`

	HotspotRadiusKm     float64 `json:"hotspot_radius_km"`
	RedirectWaitMinutes float64 `json:"redirect_wait_minutes"`

	// AverageSpeedKmh converts fleet trip distance into travel time.
	AverageSpeedKmh float64 `json:"average_speed_kmh"`
}

// SetDefaults fills unset fields with the study defaults.
func (c *Config) SetDefaults() {
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.HotspotRadiusKm == 0 {
		c.HotspotRadiusKm = DefaultHotspotRadiusKm
	}
	if c.RedirectWaitMinutes == 0 {
		c.RedirectWaitMinutes = DefaultRedirectWaitMinutes
	}
	if c.AverageSpeedKmh == 0 {
		c.AverageSpeedKmh = DefaultAverageSpeedKmh
	}
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c Config) Validate() error {
	if c.HotspotRadiusKm <= 0 {
		return fmt.Errorf("hotspot_radius_km must be positive, got %v", c.HotspotRadiusKm)
	}
	if c.RedirectWaitMinutes < 0 {
		return fmt.Errorf("redirect_wait_minutes must not be negative, got %v", c.RedirectWaitMinutes)
	}
	if c.AverageSpeedKmh <= 0 {
		return fmt.Errorf("average_speed_kmh must be positive, got %v", c.AverageSpeedKmh)
	}
	return nil
}
