package analysis

import (
	"github.com/alibabarta/hotspot/core/demand"
	"github.com/alibabarta/hotspot/core/model"
)

// Defaults for the relocation policy, matching the study this tool
// reproduces: a driver ending a trip within 0.5 km of a predicted hotspot
// is redirected immediately and waits a flat 5 minutes for the next fare.
const (
	DefaultHotspotRadiusKm     = 0.5
	DefaultRedirectWaitMinutes = 5
	DefaultAverageSpeedKmh     = 30
)

// PolicySimulator estimates per-vehicle wait times under the
// dispatch-to-nearest-hotspot policy. The zero value is not usable; Index
// must be set and the tunables default via Config.SetDefaults upstream.
type PolicySimulator struct {
	Index demand.Index

	// HotspotRadiusKm is the redirect-qualifying distance from a trip's end
	// point to a demand cluster (inclusive).
	HotspotRadiusKm float64

	// RedirectWaitMinutes is the fixed simulated wait charged for a
	// qualifying transition, modelling the short residual repositioning time.
	RedirectWaitMinutes float64
}

// AverageWait simulates one vehicle's average wait in minutes. For each
// adjacent trip pair the wait is the fixed redirect value when any cluster
// registered for the next trip's start hour lies within the hotspot radius
// of the current trip's end point, and the literal start-to-start gap
// otherwise. A timeline with fewer than two trips yields 0.
func (s PolicySimulator) AverageWait(tl model.VehicleTimeline) float64 {
	n := tl.Transitions()
	if n == 0 {
		return 0
	}
	var totalMinutes float64
	for i := 0; i < len(tl.Trips)-1; i++ {
		cur, next := tl.Trips[i], tl.Trips[i+1]
		if s.Index.AnyWithin(cur.EndLat, cur.EndLon, next.Hour(), s.HotspotRadiusKm) {
			totalMinutes += s.RedirectWaitMinutes
		} else {
			totalMinutes += next.StartTime.Sub(cur.StartTime).Minutes()
		}
	}
	return totalMinutes / float64(n)
}
