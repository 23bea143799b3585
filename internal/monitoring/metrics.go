package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	stageTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studio_stage_transitions_total",
			Help: "Event stage transitions by origin and target stage",
		},
		[]string{"from", "to"},
	)

	assignmentOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studio_assignment_operations_total",
			Help: "Assignment operations by outcome",
		},
		[]string{"operation", "status"},
	)

	deliverableTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studio_deliverable_transitions_total",
			Help: "Deliverable status changes",
		},
		[]string{"from", "to"},
	)

	hoursLogged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "studio_hours_logged_total",
			Help: "Work hours logged against events",
		},
	)

	eventCommands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studio_event_commands_total",
			Help: "Event store commands by result (ok, stale, persistence_error, rejected)",
		},
		[]string{"command", "result"},
	)

	persistenceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "studio_persistence_duration_seconds",
			Help:    "Duration of persistence port calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"entity", "operation"},
	)
)

// RecordStageTransition counts a stage change
func RecordStageTransition(from, to string) {
	stageTransitions.WithLabelValues(from, to).Inc()
}

// RecordAssignmentOperation counts an assignment operation outcome
func RecordAssignmentOperation(operation string, err error) {
	assignmentOperations.WithLabelValues(operation, outcome(err)).Inc()
}

// RecordDeliverableTransition counts a deliverable status change
func RecordDeliverableTransition(from, to string) {
	deliverableTransitions.WithLabelValues(from, to).Inc()
}

// RecordHoursLogged adds logged hours
func RecordHoursLogged(hours float64) {
	hoursLogged.Add(hours)
}

// RecordEventCommand counts an event store command by result
func RecordEventCommand(command, result string) {
	eventCommands.WithLabelValues(command, result).Inc()
}

// ObservePersistence records the duration of a persistence call in seconds
func ObservePersistence(entity, operation string, seconds float64) {
	persistenceDuration.WithLabelValues(entity, operation).Observe(seconds)
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
