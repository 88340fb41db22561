package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Engine Metrics
var (
	MatchesReported = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMatchesReported,
			Help: HelpTextMatchesReported,
		},
	)

	Confirmations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameConfirmations,
			Help: HelpTextConfirmations,
		},
		[]string{LabelStatus},
	)

	MatchesFullyConfirmed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMatchesFullyConfirmed,
			Help: HelpTextMatchesFullyConfirmed,
		},
	)

	LedgerRebuilds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLedgerRebuilds,
			Help: HelpTextLedgerRebuilds,
		},
		[]string{LabelReason},
	)

	LedgerPlayers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameLedgerPlayers,
			Help: HelpTextLedgerPlayers,
		},
	)

	LedgerAudits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLedgerAudits,
			Help: HelpTextLedgerAudits,
		},
		[]string{LabelResult},
	)
)

// Chat Metrics
var (
	ChatCommands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameChatCommands,
			Help: HelpTextChatCommands,
		},
		[]string{LabelCommand},
	)
)
