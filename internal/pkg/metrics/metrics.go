package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the engine's instrumentation on a private registry so
// the /metrics endpoint only exposes our own series.
type Collector struct {
	reg *prometheus.Registry

	WaypointsCreated prometheus.Counter
	WaypointsDeleted prometheus.Counter
	WaypointCount    prometheus.Gauge

	PositionUpdates prometheus.Counter
	TogglesApplied  prometheus.Counter

	PersistenceRecoveries prometheus.Counter

	CountdownSeconds prometheus.Gauge
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		WaypointsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "companion_waypoints_created_total",
			Help: "Total custom waypoints created.",
		}),
		WaypointsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "companion_waypoints_deleted_total",
			Help: "Total custom waypoints deleted.",
		}),
		WaypointCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "companion_waypoints",
			Help: "Current number of custom waypoints in the store.",
		}),
		PositionUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "companion_position_updates_total",
			Help: "Total GPS fixes ingested from the location feed.",
		}),
		TogglesApplied: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "companion_activity_toggles_total",
			Help: "Total activity completion toggles applied.",
		}),
		PersistenceRecoveries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "companion_persistence_recoveries_total",
			Help: "Times corrupt persisted waypoint data was reset to an empty store.",
		}),
		CountdownSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "companion_boarding_countdown_seconds",
			Help: "Seconds remaining until the boarding deadline, 0 once elapsed.",
		}),
	}

	reg.MustRegister(
		c.WaypointsCreated,
		c.WaypointsDeleted,
		c.WaypointCount,
		c.PositionUpdates,
		c.TogglesApplied,
		c.PersistenceRecoveries,
		c.CountdownSeconds,
	)

	return c
}

// Handler serves the private registry for scrapes.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}
