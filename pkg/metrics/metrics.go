package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	NotificationFanout = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "notification_fanout_total", Help: "Number of notification fan-out writes by source entity."},
		[]string{"source"},
	)
	NotificationFanoutFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "notification_fanout_failures_total", Help: "Number of fan-out writes that failed after retries."},
		[]string{"source"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(NotificationFanout)
	reg.MustRegister(NotificationFanoutFailures)
}
