package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "activitiesbackend"

	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeConflict = "conflict"
)

var (
	RegistrySignups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "registry", "signups_total"),
		Help: "Signup attempts against the activity registry by outcome",
	}, []string{"outcome"})
	RegistryUnregisters = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "registry", "unregisters_total"),
		Help: "Unregister attempts against the activity registry by outcome",
	}, []string{"outcome"})
)
