package server

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/thywilljoshua/hydra/internal/analyze"
)

type metrics struct {
	analyses *prometheus.CounterVec
	duration prometheus.Histogram
	clauses  prometheus.Histogram
	flags    *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hydra",
			Name:      "analyses_total",
			Help:      "Document analyses by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hydra",
			Name:      "analysis_duration_seconds",
			Help:      "Time spent running the analysis pipeline.",
			Buckets:   prometheus.DefBuckets,
		}),
		clauses: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hydra",
			Name:      "clauses_per_document",
			Help:      "Clauses identified per analyzed document.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}),
		flags: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hydra",
			Name:      "rule_flags_total",
			Help:      "Rule results emitted, by rule and severity.",
		}, []string{"rule", "severity"}),
	}
	reg.MustRegister(m.analyses, m.duration, m.clauses, m.flags)
	return m
}

func (m *metrics) observe(a *analyze.DocumentAnalysis, seconds float64) {
	m.analyses.WithLabelValues("ok").Inc()
	m.duration.Observe(seconds)
	m.clauses.Observe(float64(len(a.Clauses)))
	for _, r := range a.Rules {
		m.flags.WithLabelValues(r.Rule, r.Severity).Inc()
	}
}
