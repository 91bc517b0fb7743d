package runner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric definitions with appropriate labels.
var (
	// eventsProcessed tracks events delivered to machines through runners.
	eventsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fsm_runner_events_total",
		Help: "Total number of events processed by runner, by machine",
	}, []string{"machine"})

	// panicsRecovered tracks panics recovered from state callbacks.
	panicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fsm_runner_panics_total",
		Help: "Total number of panics recovered from state callbacks, by machine",
	}, []string{"machine"})

	// aliveRunners tracks currently running runners.
	aliveRunners = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "fsm_runner_alive",
		Help: "Number of runners currently alive, by machine",
	}, []string{"machine"})
)
