package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SamplesIngested counts accepted position reports.
	SamplesIngested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "schooltrack_samples_ingested_total",
			Help: "Total number of accepted position samples.",
		},
	)

	// SamplesRejected counts rejected position reports by reason.
	SamplesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schooltrack_samples_rejected_total",
			Help: "Total number of rejected position reports.",
		},
		[]string{"reason"}, // unauthorized / invalid_input / not_found / persistence
	)

	// DriversConnected tracks live driver connections on the gate.
	DriversConnected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "schooltrack_drivers_connected",
			Help: "Number of currently connected driver streams.",
		},
	)

	// BroadcastsSent counts fan-out events by topic.
	BroadcastsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schooltrack_broadcasts_sent_total",
			Help: "Total number of events fanned out to observers.",
		},
		[]string{"topic"}, // all / route
	)

	// BroadcastsDropped counts events dropped on slow observer buffers.
	BroadcastsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "schooltrack_broadcasts_dropped_total",
			Help: "Total number of events dropped due to full observer buffers.",
		},
	)

	// CheckinScans counts check-in scans by action and outcome.
	CheckinScans = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schooltrack_checkin_scans_total",
			Help: "Total number of check-in scans processed.",
		},
		[]string{"action", "outcome"}, // outcome: success / error
	)

	// NotificationAttempts counts per-channel delivery attempts.
	NotificationAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schooltrack_notification_attempts_total",
			Help: "Total number of notification delivery attempts per channel.",
		},
		[]string{"channel", "outcome"}, // outcome: success / failure
	)

	// NotificationJobs counts terminal job outcomes.
	NotificationJobs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schooltrack_notification_jobs_total",
			Help: "Total number of notification jobs by terminal status.",
		},
		[]string{"status"}, // delivered / failed_permanently / dropped
	)
)
