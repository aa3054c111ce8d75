package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AuthorizationDecisions counts real-time card authorization answers by
	// outcome ("approved"/"denied") and deny reason.
	AuthorizationDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_authorization_decisions_total",
		Help: "Real-time card authorization decisions by outcome and reason.",
	}, []string{"outcome", "reason"})

	// SweepTransitions counts state transitions applied by the sweep jobs.
	SweepTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_sweep_transitions_total",
		Help: "Spending request transitions applied by sweep passes.",
	}, []string{"transition"})

	// NotificationsSent counts reminder notifications issued by sweeps.
	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_notifications_total",
		Help: "Notifications issued by the wallet engine by type.",
	}, []string{"type"})
)
