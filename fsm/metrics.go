package fsm

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric definitions with appropriate labels.
var (
	// transitionsTotal tracks state transitions by machine, from and to state.
	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fsm_transitions_total",
		Help: "Total number of state transitions by machine, from_state and to_state",
	}, []string{"machine", "from_state", "to_state"})

	// eventsTotal tracks dispatched events by machine, state and outcome.
	eventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fsm_events_total",
		Help: "Total number of dispatched events by machine, state and outcome (stay, transition or stop)",
	}, []string{"machine", "state", "outcome"})

	// stopsTotal tracks machines reaching the stopped condition.
	stopsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fsm_stops_total",
		Help: "Total number of machines stopped, by machine and last state",
	}, []string{"machine", "state"})

	// cascadeDepth tracks how many automatic entry transitions a single
	// Start or Dispatch triggered before the machine settled.
	cascadeDepth = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fsm_entry_cascade_depth",
		Help:    "Number of chained entry transitions per applied directive",
		Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
	}, []string{"machine"})

	// dispatchDuration tracks the wall time of a single Dispatch call.
	dispatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fsm_dispatch_duration_seconds",
		Help:    "Duration of event dispatch by machine and state",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5, 30},
	}, []string{"machine", "state"})
)

func sanitizeMachine(name string) string {
	if name == "" {
		return "unknown"
	}

	return name
}
