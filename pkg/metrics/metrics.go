package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	AuthRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "taskhive", Name: "auth_requests_total", Help: "Auth endpoint outcomes by endpoint and result."},
		[]string{"endpoint", "result"},
	)
	Uploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "taskhive", Name: "uploads_total", Help: "Image upload outcomes."},
		[]string{"result"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(AuthRequests)
	reg.MustRegister(Uploads)
}
