package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var identityTransitions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "privacy_identity_transitions_total",
		Help: "Identity reveal/hide attempts by outcome.",
	},
	[]string{"transition", "outcome"},
)

func recordTransition(transition string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	identityTransitions.WithLabelValues(transition, outcome).Inc()
}
