package metrics

import (
	"strconv"

	"github.com/aretw0/pillars/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pillars"

// Collector records the roll lifecycle as Prometheus metrics.
type Collector struct {
	rollsStarted   prometheus.Counter
	rollsCompleted *prometheus.CounterVec
	ticks          prometheus.Counter
	resets         *prometheus.CounterVec
	teardowns      *prometheus.CounterVec
	rollDuration   prometheus.Histogram
	revealed       prometheus.Gauge
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		rollsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rolls_started_total",
			Help:      "Total number of accepted roll requests",
		}),
		rollsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rolls_completed_total",
			Help:      "Total number of settled rolls by revealed category",
		}, []string{"category"}),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Total number of cosmetic faces shown",
		}),
		resets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resets_total",
			Help:      "Total number of session resets",
		}, []string{"interrupted"}),
		teardowns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "teardowns_total",
			Help:      "Total number of widget teardowns",
		}, []string{"interrupted"}),
		rollDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "roll_duration_seconds",
			Help:      "Wall time from roll start to settled face",
			Buckets:   []float64{0.5, 1, 1.5, 2, 2.5, 3, 5},
		}),
		revealed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "revealed_categories",
			Help:      "Number of categories revealed in the current session",
		}),
	}

	for _, col := range []prometheus.Collector{
		c.rollsStarted, c.rollsCompleted, c.ticks, c.resets, c.teardowns, c.rollDuration, c.revealed,
	} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Hooks returns lifecycle hooks feeding the collectors.
func (c *Collector) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRollStart: func(e *domain.RollEvent) {
			c.rollsStarted.Inc()
		},
		OnTick: func(e *domain.RollEvent) {
			c.ticks.Inc()
		},
		OnRollComplete: func(e *domain.RollEvent) {
			c.rollsCompleted.WithLabelValues(e.Category).Inc()
			c.rollDuration.Observe(e.Elapsed.Seconds())
			c.revealed.Set(float64(e.TargetIndex + 1))
		},
		OnReset: func(e *domain.RollEvent) {
			c.resets.WithLabelValues(strconv.FormatBool(e.Interrupted)).Inc()
			c.revealed.Set(0)
		},
		OnTeardown: func(e *domain.RollEvent) {
			c.teardowns.WithLabelValues(strconv.FormatBool(e.Interrupted)).Inc()
		},
	}
}
