package server

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	decisionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "floodsnake",
			Subsystem: "policy",
			Name:      "decision_duration_seconds",
			Help:      "Time spent choosing a move, by the stage that produced it.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5},
		},
		[]string{"reason"},
	)
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "floodsnake",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Requests handled, by endpoint and status code.",
		},
		[]string{"endpoint", "code"},
	)
)

func init() {
	prometheus.MustRegister(decisionDuration, requestsTotal)
}

func instrument(c *gin.Context) {
	c.Next()
	endpoint := c.FullPath()
	if endpoint == "" {
		endpoint = "unmatched"
	}
	requestsTotal.WithLabelValues(endpoint, strconv.Itoa(c.Writer.Status())).Inc()
}
