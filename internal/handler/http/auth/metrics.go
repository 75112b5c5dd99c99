package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var loginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "login_attempts_total",
		Help: "Total number of login attempts by result",
	},
	[]string{"result"},
)

// RecordLogin counts a login attempt. result is "success" or "failure".
func RecordLogin(result string) {
	loginAttemptsTotal.WithLabelValues(result).Inc()
}
